package profiler

import (
	"testing"
	"time"
)

func TestRecordRebuildResetsAfterLoggedInterval(t *testing.T) {
	p := NewProfiler()
	p.RecordRebuild(2 * time.Millisecond)
	p.RecordRebuild(6 * time.Millisecond)
	if p.Rebuilds() != 2 {
		t.Fatalf("Rebuilds() = %d, want 2", p.Rebuilds())
	}
	if p.rebuildMax != 6*time.Millisecond || p.rebuildTotal != 8*time.Millisecond {
		t.Errorf("max/total = %s/%s", p.rebuildMax, p.rebuildTotal)
	}

	if p.Tick() {
		t.Fatal("Tick logged before the interval elapsed")
	}
	p.lastTime = time.Now().Add(-2 * time.Second)
	if !p.Tick() {
		t.Fatal("Tick did not log after the interval elapsed")
	}
	if p.Rebuilds() != 0 || p.rebuildMax != 0 {
		t.Errorf("rebuild stats not reset: %d, %s", p.Rebuilds(), p.rebuildMax)
	}
}
