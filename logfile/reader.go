package logfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Sample is one parsed telemetry record: the wall-clock timestamp, the raw
// response text, and the time axis in hours since the first record.
type Sample struct {
	Time  time.Time
	Value string
	Hours float64
}

// Timestamps may carry fractional seconds or not, depending on which script
// wrote the file.
var timeLayouts = []string{
	TimeFormat,
	"2006-01-02T15:04:05",
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// ReadVoltageLog parses "<timestamp>,<value>" lines. The value is everything
// after the first comma, unchanged, so responses containing commas survive a
// round trip. The hours axis starts at zero on the first record.
func ReadVoltageLog(r io.Reader) ([]Sample, error) {
	var samples []Sample
	var start time.Time

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ts, value, found := strings.Cut(line, ",")
		if !found {
			return nil, fmt.Errorf("line %d: no comma in %q", lineNo, line)
		}
		t, err := parseTime(ts)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(samples) == 0 {
			start = t
		}
		samples = append(samples, Sample{
			Time:  t,
			Value: value,
			Hours: t.Sub(start).Hours(),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

// Monotonic reports whether the time axis never decreases
func Monotonic(samples []Sample) bool {
	for i := 1; i < len(samples); i++ {
		if samples[i].Time.Before(samples[i-1].Time) {
			return false
		}
	}
	return true
}

// ChargeSample is one record of the six-field charger log:
// date, hour, supply volts, supply milliamps, battery volts, charge percent.
type ChargeSample struct {
	Date    string
	Hour    string
	PSV     float64
	PSI     int
	Volts   float64
	Percent int
	Hours   float64
}

// chargeInterval is the fixed cadence the charger log was sampled at
const chargeInterval = 0.25

// ReadChargeLog parses the older fixed-cadence charger format, e.g.
//
//	2018-07-13,1745,8.39,344,7.82,101
//
// The hours axis advances a quarter hour per record.
func ReadChargeLog(r io.Reader) ([]ChargeSample, error) {
	var samples []ChargeSample

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 6 {
			return nil, fmt.Errorf("line %d: expected 6 fields, got %d", lineNo, len(fields))
		}

		psv, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad supply voltage %q", lineNo, fields[2])
		}
		psi, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad supply current %q", lineNo, fields[3])
		}
		volts, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad battery voltage %q", lineNo, fields[4])
		}
		percent, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad charge percent %q", lineNo, fields[5])
		}

		samples = append(samples, ChargeSample{
			Date:    fields[0],
			Hour:    fields[1],
			PSV:     psv,
			PSI:     psi,
			Volts:   volts,
			Percent: percent,
			Hours:   float64(len(samples)) * chargeInterval,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}
