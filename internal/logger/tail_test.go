package logger

import (
	"bytes"
	"fmt"
	"reflect"
	"testing"
)

// TestTailKeepsLastLines verifies the ring buffer keeps the newest lines in order
func TestTailKeepsLastLines(t *testing.T) {
	var dest bytes.Buffer
	tail := NewTail(&dest, 3)

	for i := 1; i <= 5; i++ {
		fmt.Fprintf(tail, "line %d\n", i)
	}

	got := tail.Snapshot(10)
	want := []string{"line 3", "line 4", "line 5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot(10) = %q, want %q", got, want)
	}
	if got := tail.Snapshot(2); !reflect.DeepEqual(got, want[1:]) {
		t.Errorf("Snapshot(2) = %q, want %q", got, want[1:])
	}
	if dest.Len() == 0 {
		t.Error("destination writer received nothing")
	}
}

// TestTailPartialWrites verifies lines split across writes are joined
func TestTailPartialWrites(t *testing.T) {
	tail := NewTail(nil, 4)
	tail.Write([]byte("hel"))
	if got := tail.Snapshot(4); len(got) != 0 {
		t.Fatalf("incomplete line recorded: %q", got)
	}
	tail.Write([]byte("lo\nwor"))
	tail.Write([]byte("ld\n"))

	want := []string{"hello", "world"}
	if got := tail.Snapshot(4); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot = %q, want %q", got, want)
	}
}

// TestTailWithLogger verifies logger output lands in the tail
func TestTailWithLogger(t *testing.T) {
	tail := NewTail(nil, 2)
	l := New(tail, LevelInfo, "ui")
	l.Info("saved %s", "thorn.png")

	got := tail.Snapshot(1)
	if len(got) != 1 || !bytes.Contains([]byte(got[0]), []byte("[ui] saved thorn.png")) {
		t.Errorf("tail = %q", got)
	}
}
