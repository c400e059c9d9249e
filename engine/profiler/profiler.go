package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate, room rebuild timing and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	rebuildCount int
	rebuildTotal time.Duration
	rebuildMax   time.Duration
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
	}
}

// RecordRebuild adds one geometry rebuild to the current interval.
//
// Parameters:
//   - d: wall time spent building and applying the room surfaces
func (p *Profiler) RecordRebuild(d time.Duration) {
	p.rebuildCount++
	p.rebuildTotal += d
	p.rebuildMax = max(p.rebuildMax, d)
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, rebuild count/timing, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024
	allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	var avgRebuild time.Duration
	if p.rebuildCount > 0 {
		avgRebuild = p.rebuildTotal / time.Duration(p.rebuildCount)
	}

	log.Printf("[Profiler] FPS: %.2f | Rebuilds: %d (avg: %s, max: %s) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		fps, p.rebuildCount, avgRebuild, p.rebuildMax, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	p.rebuildCount = 0
	p.rebuildTotal = 0
	p.rebuildMax = 0
	return true
}

// Rebuilds returns the number of rebuilds recorded since the last logged interval.
func (p *Profiler) Rebuilds() int {
	return p.rebuildCount
}
