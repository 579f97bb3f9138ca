// Package device speaks the DigitalVFO's line-oriented serial protocol.
//
// Commands are short ASCII strings terminated by ';' (e.g. "ID;", "FS7100000;")
// and the firmware answers each one with a single newline-terminated line.
// There is no framing, checksum, or acknowledgment beyond the newline.
package device

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vfotool/serial"
)

// ProductName is the prefix a genuine DigitalVFO reports for "ID;"
const ProductName = "DigitalVFO"

// ErrNotVFO means the identification response did not come from a
// DigitalVFO; no further command should be sent to the device.
var ErrNotVFO = errors.New("device is not a DigitalVFO")

// VFO represents a connection to a DigitalVFO instrument
type VFO struct {
	// Serial port
	port serial.Port

	// Connection state
	connected bool
}

// New creates a new VFO instance (not yet connected)
func New() *VFO {
	return &VFO{}
}

// Connect connects to a VFO via serial port
func (v *VFO) Connect(devicePath string) error {
	return v.ConnectWithConfig(serial.DefaultConfig(devicePath))
}

// ConnectWithConfig connects to a VFO with a custom serial config
func (v *VFO) ConnectWithConfig(cfg *serial.Config) error {
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}

	v.port = port
	v.connected = true

	// Give the firmware time to settle if it just enumerated
	time.Sleep(100 * time.Millisecond)

	return nil
}

// ConnectPort attaches an already-open port (used by tests with a mock)
func (v *VFO) ConnectPort(port serial.Port) {
	v.port = port
	v.connected = true
}

// Close closes the connection to the VFO
func (v *VFO) Close() error {
	if v.port != nil {
		if err := v.port.Close(); err != nil {
			return err
		}
	}
	v.connected = false
	return nil
}

// Connected reports whether a port is attached
func (v *VFO) Connected() bool {
	return v.connected
}

// Exchange writes one command and reads the single response line, with any
// trailing carriage return removed.
func (v *VFO) Exchange(cmd string) (string, error) {
	if !v.connected {
		return "", fmt.Errorf("not connected to device")
	}
	if _, err := v.port.Write([]byte(cmd)); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", cmd, err)
	}
	line, err := serial.ReadLine(v.port)
	if err != nil {
		return "", fmt.Errorf("failed to read response to %q: %w", cmd, err)
	}
	return strings.TrimRight(line, "\r"), nil
}

// ReadLine reads one unsolicited line from the device
func (v *VFO) ReadLine() (string, error) {
	if !v.connected {
		return "", fmt.Errorf("not connected to device")
	}
	line, err := serial.ReadLine(v.port)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r"), nil
}

// DrainBanner reads and discards the one unsolicited line a freshly opened
// port may carry, so it is not mistaken for the first command's response.
func (v *VFO) DrainBanner() error {
	if !v.connected {
		return fmt.Errorf("not connected to device")
	}
	_, err := serial.ReadLine(v.port)
	return err
}

// Identify sends the identification query and verifies the device is a
// DigitalVFO. A mismatch is fatal to the session: it returns ErrNotVFO and
// the caller must not send further commands.
func (v *VFO) Identify() (string, error) {
	id, err := v.Exchange("ID;")
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(id, ProductName) {
		return id, fmt.Errorf("%w: ID=%q", ErrNotVFO, id)
	}
	return id, nil
}

// SetFrequency tunes the VFO to the given frequency in hertz
func (v *VFO) SetFrequency(hz uint32) (string, error) {
	return v.Exchange(fmt.Sprintf("FS%d;", hz))
}

// SetCursor moves the frequency digit cursor to the given index
func (v *VFO) SetCursor(index int) (string, error) {
	return v.Exchange(fmt.Sprintf("CS%d;", index))
}

// Probe sends the numbered test command used by the exerciser loop
func (v *VFO) Probe(n int) (string, error) {
	return v.Exchange(fmt.Sprintf("CMD%d;", n))
}

// Voltage queries the measured battery voltage
func (v *VFO) Voltage() (string, error) {
	return v.Exchange("VG;")
}
