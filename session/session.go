// Package session runs the repeating command/response/delay cycle against
// one opened DigitalVFO connection.
package session

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"vfotool/device"
)

// Record is one request/response cycle: when it happened, what was sent,
// and the trimmed line that came back. Records are append-only.
type Record struct {
	Time     time.Time
	Command  string
	Response string
}

// Sink receives one record per cycle. Implementations must make the record
// durable before returning so an abrupt kill loses at most the in-flight
// cycle.
type Sink interface {
	Append(Record) error
}

// Config holds the per-session parameters, set once before Run.
type Config struct {
	// Delay is the fixed pause after each cycle
	Delay time.Duration

	// DrainBanner discards one unsolicited line before the first command
	DrainBanner bool

	// Echo, when non-nil, receives a console trace of each cycle
	Echo io.Writer
}

// Run drives the command/response loop until the source is exhausted or the
// context is canceled. Every cycle sends one command, reads one line,
// appends a record to the sink (if any), then sleeps for the configured
// delay. Any transport error is fatal: there is no retry. Run does not close
// the device; the caller owns the port lifetime.
func Run(ctx context.Context, vfo *device.VFO, src Source, cfg Config, sink Sink) error {
	if cfg.DrainBanner {
		if err := vfo.DrainBanner(); err != nil {
			return fmt.Errorf("failed to drain banner: %w", err)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, ok := src.Next()
		if !ok {
			return nil
		}

		if cfg.Echo != nil {
			fmt.Fprintf(cfg.Echo, "Send: %s\n", cmd)
		}

		resp, err := vfo.Exchange(cmd)
		if err != nil {
			return err
		}

		now := time.Now()
		if sink != nil {
			rec := Record{Time: now, Command: cmd, Response: strings.TrimSpace(resp)}
			if err := sink.Append(rec); err != nil {
				return fmt.Errorf("failed to append record: %w", err)
			}
		}

		if cfg.Echo != nil {
			fmt.Fprintf(cfg.Echo, "%s: received %s\n", now.Format(time.RFC3339), resp)
		}

		if cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.Delay):
			}
		}
	}
}
