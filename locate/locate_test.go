package locate

import (
	"errors"
	"testing"
)

// fakeEnumerator returns a fixed descriptor list, or an error when the
// platform backend is meant to be unavailable.
type fakeEnumerator struct {
	devices []Descriptor
	err     error
}

func (f fakeEnumerator) List() ([]Descriptor, error) {
	return f.devices, f.err
}

func teensyAt(port string) Descriptor {
	return Descriptor{
		Port:      port,
		VendorID:  TeensyVendorID,
		ProductID: TeensyProductID,
		Product:   "USB Serial",
	}
}

func TestFindPreservesOrder(t *testing.T) {
	e := fakeEnumerator{devices: []Descriptor{
		{Port: "/dev/ttyS0"},
		teensyAt("/dev/ttyACM0"),
		{Port: "/dev/ttyUSB0", VendorID: FTDIVendorID, ProductID: FT232RProductID},
		teensyAt("/dev/ttyACM1"),
	}}

	matches, err := Find(e, ByID(TeensyVendorID, TeensyProductID))
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	if matches[0].Port != "/dev/ttyACM0" || matches[1].Port != "/dev/ttyACM1" {
		t.Errorf("Enumeration order not preserved: %v", matches)
	}
}

func TestResolveSingleMatch(t *testing.T) {
	e := fakeEnumerator{devices: []Descriptor{
		{Port: "/dev/ttyS0"},
		teensyAt("/dev/ttyACM0"),
	}}

	d, err := Resolve(e, ByID(TeensyVendorID, TeensyProductID))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if d.Port != "/dev/ttyACM0" {
		t.Errorf("Expected /dev/ttyACM0, got %s", d.Port)
	}
}

func TestResolveNoMatch(t *testing.T) {
	e := fakeEnumerator{devices: []Descriptor{{Port: "/dev/ttyS0"}}}

	_, err := Resolve(e, ByID(TeensyVendorID, TeensyProductID))
	if !errors.Is(err, ErrNoDevice) {
		t.Errorf("Expected ErrNoDevice, got %v", err)
	}
}

func TestResolveAmbiguous(t *testing.T) {
	e := fakeEnumerator{devices: []Descriptor{
		teensyAt("/dev/ttyACM0"),
		teensyAt("/dev/ttyACM1"),
	}}

	_, err := Resolve(e, ByID(TeensyVendorID, TeensyProductID))
	if !errors.Is(err, ErrAmbiguous) {
		t.Errorf("Expected ErrAmbiguous, got %v", err)
	}
}

func TestResolveEnumerationUnavailable(t *testing.T) {
	enumErr := errors.New("no backend for this platform")
	e := fakeEnumerator{err: enumErr}

	_, err := Resolve(e, ByID(TeensyVendorID, TeensyProductID))
	if !errors.Is(err, enumErr) {
		t.Errorf("Expected the enumeration error to propagate, got %v", err)
	}
}

func TestByProduct(t *testing.T) {
	m := ByProduct("USB Serial")
	if !m(teensyAt("/dev/ttyACM0")) {
		t.Error("ByProduct should match the reported product string")
	}
	if m(Descriptor{Port: "/dev/ttyS0"}) {
		t.Error("ByProduct should not match a port with no product string")
	}
}

func TestParseUSBID(t *testing.T) {
	cases := []struct {
		in   string
		want uint16
	}{
		{"16C0", 0x16c0},
		{"16c0", 0x16c0},
		{"0403", 0x0403},
		{"", 0},
		{"zzzz", 0},
	}
	for _, c := range cases {
		if got := parseUSBID(c.in); got != c.want {
			t.Errorf("parseUSBID(%q) = %#x, want %#x", c.in, got, c.want)
		}
	}
}
