package serial

import (
	"bytes"
	"io"
	"sync"
)

// MockPort is an in-memory Port for tests. Each Write records the outgoing
// command and, when a scripted response is available, queues it for the next
// reads. Reads drain the queued bytes and report io.EOF when empty, which is
// how the native backend surfaces a read timeout.
type MockPort struct {
	mu sync.Mutex

	// Writes holds every command written to the port, in order
	Writes []string

	// Script holds the responses handed out one per write
	Script []string

	readBuf bytes.Buffer
	closed  bool
}

// NewMockPort creates a mock port that answers writes with the given
// responses, in order. Writes past the end of the script get no response.
func NewMockPort(script ...string) *MockPort {
	return &MockPort{Script: script}
}

// QueueRead preloads bytes to be read before any command is written,
// simulating a device banner on a freshly opened port.
func (p *MockPort) QueueRead(data string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.readBuf.WriteString(data)
}

func (p *MockPort) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, io.ErrClosedPipe
	}
	if p.readBuf.Len() == 0 {
		return 0, io.EOF
	}
	return p.readBuf.Read(b)
}

func (p *MockPort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, io.ErrClosedPipe
	}
	p.Writes = append(p.Writes, string(b))
	if len(p.Script) > 0 {
		p.readBuf.WriteString(p.Script[0])
		p.Script = p.Script[1:]
	}
	return len(b), nil
}

func (p *MockPort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func (p *MockPort) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.readBuf.Reset()
	return nil
}

// Closed reports whether Close has been called
func (p *MockPort) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}
