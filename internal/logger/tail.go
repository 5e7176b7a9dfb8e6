package logger

import (
	"bytes"
	"io"
	"sync"
)

// Tail wraps a writer and records the last N complete lines into a ring
// buffer so the window can draw recent log output.
type Tail struct {
	Dest      io.Writer
	lines     []string
	nextIndex int
	count     int
	partial   []byte
	mu        sync.RWMutex
}

func NewTail(dest io.Writer, size int) *Tail {
	if size < 1 {
		size = 1
	}
	if dest == nil {
		dest = io.Discard
	}
	return &Tail{
		Dest:  dest,
		lines: make([]string, size),
	}
}

func (t *Tail) Write(p []byte) (int, error) {
	n, err := t.Dest.Write(p)

	t.mu.Lock()
	t.partial = append(t.partial, p...)
	for {
		i := bytes.IndexByte(t.partial, '\n')
		if i < 0 {
			break
		}
		t.lines[t.nextIndex] = string(t.partial[:i])
		t.nextIndex++
		if t.nextIndex >= len(t.lines) {
			t.nextIndex = 0
		}
		if t.count < len(t.lines) {
			t.count++
		}
		t.partial = t.partial[i+1:]
	}
	// drop consumed prefix so the buffer does not grow forever
	t.partial = append([]byte(nil), t.partial...)
	t.mu.Unlock()

	return n, err
}

// Snapshot returns up to the last n lines, oldest first.
func (t *Tail) Snapshot(n int) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > t.count {
		n = t.count
	}
	out := make([]string, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.lines)
	}
	for i := 0; i < n; i++ {
		out[i] = t.lines[idx]
		idx++
		if idx >= len(t.lines) {
			idx = 0
		}
	}
	return out
}
