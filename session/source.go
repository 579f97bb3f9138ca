package session

import "fmt"

// Source yields the command for each loop iteration. Next reports ok=false
// when the source is exhausted, which ends the session naturally; infinite
// sources never do.
type Source interface {
	Next() (cmd string, ok bool)
}

// Fixed yields the same command forever (e.g. "VG;")
type Fixed string

func (f Fixed) Next() (string, bool) {
	return string(f), true
}

// Counter yields "<prefix><n>;" with n counting up from zero, forever.
type Counter struct {
	prefix string
	next   int
}

// NewCounter creates a counter source, e.g. NewCounter("CMD") for
// CMD0; CMD1; CMD2; ...
func NewCounter(prefix string) *Counter {
	return &Counter{prefix: prefix}
}

func (c *Counter) Next() (string, bool) {
	cmd := fmt.Sprintf("%s%d;", c.prefix, c.next)
	c.next++
	return cmd, true
}

// Sweep steps a value from start to stop inclusive by a fixed step, one
// command per iteration, then ends. This is the only source with a finite
// terminal condition of its own.
type Sweep struct {
	prefix          string
	cur, stop, step int
}

// NewSweep creates a finite sweep source, e.g.
// NewSweep("FS", 1000000, 30000000, 1000).
func NewSweep(prefix string, start, stop, step int) *Sweep {
	return &Sweep{prefix: prefix, cur: start, stop: stop, step: step}
}

func (s *Sweep) Next() (string, bool) {
	if s.cur > s.stop {
		return "", false
	}
	cmd := fmt.Sprintf("%s%d;", s.prefix, s.cur)
	s.cur += s.step
	return cmd, true
}

// Bounce walks an index between lo and hi inclusive, reversing direction on
// hitting either bound (a triangle wave), forever.
type Bounce struct {
	prefix string
	lo, hi int
	pos    int
	dir    int
}

// NewBounce creates a bouncing cursor source starting at lo moving up,
// e.g. NewBounce("CS", 0, 7) for CS0; CS1; ... CS7; CS6; ...
func NewBounce(prefix string, lo, hi int) *Bounce {
	return &Bounce{prefix: prefix, lo: lo, hi: hi, pos: lo, dir: +1}
}

func (b *Bounce) Next() (string, bool) {
	cmd := fmt.Sprintf("%s%d;", b.prefix, b.pos)

	next := b.pos + b.dir
	if next > b.hi || next < b.lo {
		b.dir = -b.dir
		next = b.pos + b.dir
		if next > b.hi || next < b.lo {
			// Degenerate single-position range
			next = b.pos
		}
	}
	b.pos = next

	return cmd, true
}

// Interleave yields one command from each source in turn. It ends as soon as
// any source is exhausted, so a finite sweep bounds the whole session even
// when paired with an infinite bounce.
type Interleave struct {
	sources []Source
	idx     int
}

// NewInterleave combines sources round-robin
func NewInterleave(sources ...Source) *Interleave {
	return &Interleave{sources: sources}
}

func (i *Interleave) Next() (string, bool) {
	if len(i.sources) == 0 {
		return "", false
	}
	cmd, ok := i.sources[i.idx].Next()
	if !ok {
		return "", false
	}
	i.idx = (i.idx + 1) % len(i.sources)
	return cmd, true
}
