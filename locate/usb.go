package locate

import (
	"fmt"
	"strconv"

	"go.bug.st/serial/enumerator"
)

// USBEnumerator lists serial ports through the operating system's port
// registry via go.bug.st/serial. On platforms without a supported
// enumeration backend List fails, and callers are expected to stop before
// any device access.
type USBEnumerator struct{}

// List returns every registered serial port in enumeration order. Non-USB
// ports are included with zero vendor/product identifiers so they can still
// be listed, but never match an identifier filter.
func (USBEnumerator) List() ([]Descriptor, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("serial port enumeration unavailable: %w", err)
	}

	out := make([]Descriptor, 0, len(details))
	for _, d := range details {
		desc := Descriptor{Port: d.Name}
		if d.IsUSB {
			desc.VendorID = parseUSBID(d.VID)
			desc.ProductID = parseUSBID(d.PID)
			desc.Product = d.Product
			desc.Serial = d.SerialNumber
		}
		out = append(out, desc)
	}
	return out, nil
}

// parseUSBID converts the hex identifier string reported by the platform
// ("16C0") to its numeric form, zero if unparseable.
func parseUSBID(s string) uint16 {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0
	}
	return uint16(v)
}
