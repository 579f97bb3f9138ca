package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vfotool/device"
	"vfotool/serial"
)

// memSink collects records in memory
type memSink struct {
	records []Record
}

func (m *memSink) Append(r Record) error {
	m.records = append(m.records, r)
	return nil
}

func mockVFO(script ...string) (*device.VFO, *serial.MockPort) {
	port := serial.NewMockPort(script...)
	v := device.New()
	v.ConnectPort(port)
	return v, port
}

func TestRunFiniteSweep(t *testing.T) {
	vfo, port := mockVFO("ok1\n", "ok2\n", "ok3\n")
	sink := &memSink{}

	src := NewSweep("FS", 100, 300, 100)
	err := Run(context.Background(), vfo, src, Config{}, sink)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(port.Writes) != 3 {
		t.Fatalf("Expected 3 commands, got %v", port.Writes)
	}
	if port.Writes[0] != "FS100;" || port.Writes[2] != "FS300;" {
		t.Errorf("Unexpected commands: %v", port.Writes)
	}
	if len(sink.records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(sink.records))
	}
	if sink.records[0].Command != "FS100;" || sink.records[0].Response != "ok1" {
		t.Errorf("Unexpected first record: %+v", sink.records[0])
	}
}

func TestRunTrimsResponse(t *testing.T) {
	vfo, _ := mockVFO("  7.84 \r\n")
	sink := &memSink{}

	src := NewSweep("VG", 1, 1, 1)
	if err := Run(context.Background(), vfo, src, Config{}, sink); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if sink.records[0].Response != "7.84" {
		t.Errorf("Expected trimmed response, got %q", sink.records[0].Response)
	}
}

func TestRunNoSink(t *testing.T) {
	vfo, port := mockVFO("ok\n")
	src := NewSweep("FS", 100, 100, 1)

	if err := Run(context.Background(), vfo, src, Config{}, nil); err != nil {
		t.Fatalf("Run without sink failed: %v", err)
	}
	if len(port.Writes) != 1 {
		t.Errorf("Expected 1 command, got %v", port.Writes)
	}
}

func TestRunDrainBanner(t *testing.T) {
	vfo, port := mockVFO("pong\n")
	port.QueueRead("booting...\n")
	sink := &memSink{}

	src := NewSweep("CMD", 0, 0, 1)
	cfg := Config{DrainBanner: true}
	if err := Run(context.Background(), vfo, src, cfg, sink); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if sink.records[0].Response != "pong" {
		t.Errorf("Banner was recorded instead of the response: %+v", sink.records[0])
	}
}

func TestRunCanceled(t *testing.T) {
	vfo, port := mockVFO()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, vfo, Fixed("VG;"), Config{}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if len(port.Writes) != 0 {
		t.Errorf("Canceled session still sent commands: %v", port.Writes)
	}
}

func TestRunCancelDuringDelay(t *testing.T) {
	vfo, port := mockVFO("ok\n", "ok\n", "ok\n")
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	cfg := Config{Delay: time.Hour}
	err := Run(ctx, vfo, Fixed("VG;"), cfg, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if len(port.Writes) != 1 {
		t.Errorf("Expected exactly 1 command before cancellation, got %v", port.Writes)
	}
}

func TestRunEcho(t *testing.T) {
	vfo, _ := mockVFO("pong\n")
	var echo bytes.Buffer

	src := NewSweep("CMD", 0, 0, 1)
	if err := Run(context.Background(), vfo, src, Config{Echo: &echo}, nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	out := echo.String()
	if !strings.Contains(out, "Send: CMD0;") {
		t.Errorf("Echo missing command trace: %q", out)
	}
	if !strings.Contains(out, "received pong") {
		t.Errorf("Echo missing response trace: %q", out)
	}
}

// failSink always errors, to prove sink failures are fatal
type failSink struct{}

func (failSink) Append(Record) error { return errors.New("disk full") }

func TestRunSinkErrorFatal(t *testing.T) {
	vfo, port := mockVFO("ok\n", "ok\n")

	err := Run(context.Background(), vfo, Fixed("VG;"), Config{}, failSink{})
	if err == nil {
		t.Fatal("Expected sink error to be fatal")
	}
	if len(port.Writes) != 1 {
		t.Errorf("Expected the session to stop after the failed record, got %v", port.Writes)
	}
}
