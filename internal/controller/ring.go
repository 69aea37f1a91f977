package controller

// DefaultLogLines is the number of diagnostic lines kept when no size is configured.
const DefaultLogLines = 500

// LineRing keeps the most recent diagnostic lines. Older lines are evicted
// once the ring is full.
type LineRing struct {
	dropped int
	full    bool
	lines   []string
	next    int
}

// NewLineRing returns a ring sized for size lines.
func NewLineRing(size int) *LineRing {
	if size <= 0 {
		size = DefaultLogLines
	}
	return &LineRing{lines: make([]string, size)}
}

// Add appends a line, evicting the oldest one when full.
func (r *LineRing) Add(line string) {
	if r.full {
		r.dropped++
	}
	r.lines[r.next] = line
	r.next++
	if r.next >= len(r.lines) {
		r.next = 0
		r.full = true
	}
}

// Snapshot returns the buffered lines in chronological order.
func (r *LineRing) Snapshot() []string {
	if !r.full {
		out := make([]string, r.next)
		copy(out, r.lines[:r.next])
		return out
	}

	size := len(r.lines)
	out := make([]string, size)
	copy(out, r.lines[r.next:])
	copy(out[size-r.next:], r.lines[:r.next])
	return out
}

// Dropped returns how many lines have been evicted.
func (r *LineRing) Dropped() int {
	return r.dropped
}
