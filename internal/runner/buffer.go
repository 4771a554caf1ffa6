package runner

// Buffer is the ordered history of accepted statement-lines.
type Buffer struct {
	lines []string
}

// Push appends a line.
func (b *Buffer) Push(line string) {
	b.lines = append(b.lines, line)
}

// Pop removes and returns the most recently appended line.
func (b *Buffer) Pop() (string, bool) {
	if len(b.lines) == 0 {
		return "", false
	}
	last := b.lines[len(b.lines)-1]
	b.lines = b.lines[:len(b.lines)-1]
	return last, true
}

// Truncate keeps only the first n lines.
func (b *Buffer) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(b.lines) {
		b.lines = b.lines[:n]
	}
}

// Len returns the number of buffered lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Lines returns a copy of the buffered lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}
