package assistant

import (
	"fmt"
	"testing"
)

func TestMemoryBounded(t *testing.T) {
	var m Memory
	for i := 0; i < 35; i++ {
		m.Record(Turn{Message: fmt.Sprintf("m%d", i)})
		want := i + 1
		if want > maxMemoryTurns {
			want = maxMemoryTurns
		}
		if m.Len() != want {
			t.Fatalf("after %d records: len = %d, want %d", i+1, m.Len(), want)
		}
	}

	// Oldest entries were evicted FIFO.
	recent := m.Recent(maxMemoryTurns)
	if recent[0].Message != "m15" {
		t.Errorf("expected oldest retained turn m15, got %s", recent[0].Message)
	}
	if recent[len(recent)-1].Message != "m34" {
		t.Errorf("expected newest turn m34, got %s", recent[len(recent)-1].Message)
	}
}

func TestMemoryRecent(t *testing.T) {
	var m Memory
	for i := 0; i < 5; i++ {
		m.Record(Turn{Message: fmt.Sprintf("m%d", i)})
	}

	recent := m.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(recent))
	}
	if recent[0].Message != "m2" || recent[2].Message != "m4" {
		t.Errorf("unexpected order: %v", recent)
	}

	if got := m.Recent(100); len(got) != 5 {
		t.Errorf("expected clamped length 5, got %d", len(got))
	}
	if got := m.Recent(0); got != nil {
		t.Errorf("expected nil for n=0, got %v", got)
	}
}
