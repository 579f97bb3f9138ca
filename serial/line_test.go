package serial

import (
	"testing"
)

func TestReadLine(t *testing.T) {
	p := NewMockPort()
	p.QueueRead("DigitalVFO 1.1\nsecond\n")

	line, err := ReadLine(p)
	if err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if line != "DigitalVFO 1.1" {
		t.Errorf("Expected 'DigitalVFO 1.1', got '%s'", line)
	}

	line, err = ReadLine(p)
	if err != nil {
		t.Fatalf("ReadLine failed on second line: %v", err)
	}
	if line != "second" {
		t.Errorf("Expected 'second', got '%s'", line)
	}
}

func TestReadLineTimeout(t *testing.T) {
	// An empty mock reports io.EOF like a timed-out native read;
	// that must surface as an ordinary empty line, not an error.
	p := NewMockPort()

	line, err := ReadLine(p)
	if err != nil {
		t.Fatalf("Timeout should not be an error, got: %v", err)
	}
	if line != "" {
		t.Errorf("Expected empty line on timeout, got '%s'", line)
	}
}

func TestReadLinePartial(t *testing.T) {
	p := NewMockPort()
	p.QueueRead("partial")

	line, err := ReadLine(p)
	if err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if line != "partial" {
		t.Errorf("Expected partial line 'partial', got '%s'", line)
	}
}

func TestMockPortScript(t *testing.T) {
	p := NewMockPort("ok1\n", "ok2\n")

	if _, err := p.Write([]byte("A;")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	line, _ := ReadLine(p)
	if line != "ok1" {
		t.Errorf("Expected scripted response 'ok1', got '%s'", line)
	}

	if _, err := p.Write([]byte("B;")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	line, _ = ReadLine(p)
	if line != "ok2" {
		t.Errorf("Expected scripted response 'ok2', got '%s'", line)
	}

	if len(p.Writes) != 2 || p.Writes[0] != "A;" || p.Writes[1] != "B;" {
		t.Errorf("Writes not recorded in order: %v", p.Writes)
	}
}
