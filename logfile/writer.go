// Package logfile reads and writes the comma-separated telemetry logs the
// charting front end consumes.
package logfile

import (
	"fmt"
	"os"

	"vfotool/session"
)

// TimeFormat is the timestamp written in front of every record, chosen so
// existing plot tooling keeps parsing the files.
const TimeFormat = "2006-01-02T15:04:05.000000"

// Writer appends one "<timestamp>,<response>" line per record. Every record
// hits the file before Append returns, so an abrupt kill loses at most the
// in-flight cycle.
type Writer struct {
	f *os.File
}

// Create opens the log file for appending, creating it if needed
func Create(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return &Writer{f: f}, nil
}

// Append writes one record. os.File writes are unbuffered, so the line is
// handed to the OS before this returns; no separate flush step exists to
// forget.
func (w *Writer) Append(r session.Record) error {
	_, err := fmt.Fprintf(w.f, "%s,%s\n", r.Time.Format(TimeFormat), r.Response)
	if err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Close closes the underlying file
func (w *Writer) Close() error {
	return w.f.Close()
}
