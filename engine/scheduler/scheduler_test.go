package scheduler

import (
	"testing"
	"time"
)

func TestAdvanceOrderAndDeregister(t *testing.T) {
	s := NewScheduler()
	var calls []string
	remaining := 2
	s.Schedule(func(time.Time) bool {
		calls = append(calls, "a")
		remaining--
		return remaining > 0
	})
	s.Schedule(func(time.Time) bool {
		calls = append(calls, "b")
		return true
	})

	now := time.Unix(0, 0)
	s.Advance(now)
	s.Advance(now)
	s.Advance(now)

	want := []string{"a", "b", "a", "b", "b"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}
}

func TestCancel(t *testing.T) {
	s := NewScheduler()
	ran := false
	id := s.Schedule(func(time.Time) bool { ran = true; return true })
	if !s.Cancel(id) {
		t.Fatalf("Cancel returned false for a registered task")
	}
	if s.Cancel(id) {
		t.Fatalf("second Cancel returned true")
	}
	if s.Cancel(0) {
		t.Fatalf("zero TaskID matched a task")
	}
	s.Advance(time.Now())
	if ran {
		t.Fatalf("cancelled task ran")
	}
}

func TestCancelDuringAdvance(t *testing.T) {
	s := NewScheduler()
	var second TaskID
	secondRan := false
	s.Schedule(func(time.Time) bool {
		s.Cancel(second)
		return true
	})
	second = s.Schedule(func(time.Time) bool { secondRan = true; return true })

	s.Advance(time.Now())
	if secondRan {
		t.Fatalf("task cancelled earlier in the frame still ran")
	}
}

func TestScheduleDuringAdvanceRunsNextFrame(t *testing.T) {
	s := NewScheduler()
	late := 0
	s.Schedule(func(time.Time) bool {
		s.Schedule(func(time.Time) bool { late++; return false })
		return false
	})

	s.Advance(time.Now())
	if late != 0 {
		t.Fatalf("task scheduled during Advance ran in the same frame")
	}
	s.Advance(time.Now())
	if late != 1 || s.Pending() != 0 {
		t.Fatalf("late = %d, Pending() = %d", late, s.Pending())
	}
}

func TestClear(t *testing.T) {
	s := NewScheduler()
	for range 3 {
		s.Schedule(func(time.Time) bool { return true })
	}
	s.Clear()
	if s.Pending() != 0 {
		t.Fatalf("Pending() = %d after Clear", s.Pending())
	}
}
