// Package locate finds USB serial devices by vendor/product identity.
package locate

import (
	"errors"
	"strings"
)

// Well-known identifiers for the boards the DigitalVFO firmware runs behind.
const (
	TeensyVendorID  = 0x16c0
	TeensyProductID = 0x0483

	FTDIVendorID    = 0x0403
	FT232RProductID = 0x6001
)

// Descriptor identifies one enumerated serial-capable endpoint.
// Produced by an Enumerator; immutable.
type Descriptor struct {
	// Port is the OS device path (e.g., "/dev/ttyACM0", "COM3")
	Port string

	// VendorID and ProductID are the USB identifiers, zero for
	// non-USB ports
	VendorID  uint16
	ProductID uint16

	// Product is the USB product string, when the platform reports one
	Product string

	// Serial is the USB serial number, when reported
	Serial string
}

// Enumerator is the capability interface over the host's port registry.
// Implementations must preserve the registry's enumeration order and must
// not touch any device.
type Enumerator interface {
	List() ([]Descriptor, error)
}

// Match decides whether a descriptor is the device we are looking for.
type Match func(Descriptor) bool

// ByID matches on the USB vendor/product identifier pair.
func ByID(vendorID, productID uint16) Match {
	return func(d Descriptor) bool {
		return d.VendorID == vendorID && d.ProductID == productID
	}
}

// ByProduct matches on the USB product string, exactly.
func ByProduct(product string) Match {
	return func(d Descriptor) bool {
		return strings.EqualFold(d.Product, product)
	}
}

// Find returns the matching descriptors in enumeration order. It is a pure
// query: no port is opened and no device state is touched.
func Find(e Enumerator, m Match) ([]Descriptor, error) {
	all, err := e.List()
	if err != nil {
		return nil, err
	}
	var out []Descriptor
	for _, d := range all {
		if m(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

var (
	// ErrNoDevice means enumeration found no matching device.
	ErrNoDevice = errors.New("no matching device found")

	// ErrAmbiguous means more than one device matched and no
	// tie-breaking is attempted.
	ErrAmbiguous = errors.New("multiple matching devices, cannot choose")
)

// Resolve finds exactly one matching device. Zero matches yield ErrNoDevice,
// more than one yield ErrAmbiguous; ambiguity is never resolved
// heuristically.
func Resolve(e Enumerator, m Match) (Descriptor, error) {
	matches, err := Find(e, m)
	if err != nil {
		return Descriptor{}, err
	}
	switch len(matches) {
	case 0:
		return Descriptor{}, ErrNoDevice
	case 1:
		return matches[0], nil
	default:
		return Descriptor{}, ErrAmbiguous
	}
}
