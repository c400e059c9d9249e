// Package scheduler runs per-frame callbacks on the frame loop.
//
// Tasks are plain functions that receive the frame timestamp and report whether
// they want to run again next frame. Nothing runs on its own goroutine: the
// owner calls Advance once per frame, which keeps every camera write on the
// frame loop.
package scheduler

import (
	"sync"
	"time"
)

// Task is a per-frame callback. Returning false deregisters it.
type Task func(now time.Time) bool

// TaskID identifies a scheduled task. The zero value never names a task.
type TaskID uint64

type entry struct {
	id   TaskID
	task Task
}

type scheduler struct {
	mu *sync.Mutex

	nextID  TaskID
	entries []entry
}

// Scheduler is an ordered list of per-frame tasks.
// Safe for concurrent Schedule and Cancel calls while Advance runs; tasks
// themselves may schedule or cancel tasks.
type Scheduler interface {
	// Schedule registers a task to run on every Advance until it returns false or is cancelled.
	// Tasks scheduled during Advance first run on the following Advance.
	//
	// Parameters:
	//   - task: the callback to run
	//
	// Returns:
	//   - TaskID: the identifier to cancel the task with
	Schedule(task Task) TaskID

	// Cancel removes a task. A task cancelled during Advance does not run for the
	// rest of that frame.
	//
	// Parameters:
	//   - id: the task to remove
	//
	// Returns:
	//   - bool: true if the task was still registered
	Cancel(id TaskID) bool

	// Pending returns the number of registered tasks.
	Pending() int

	// Advance runs every registered task once, in registration order.
	//
	// Parameters:
	//   - now: the frame timestamp passed to each task
	Advance(now time.Time)

	// Clear cancels every task.
	Clear()
}

var _ Scheduler = &scheduler{}

// NewScheduler creates an empty Scheduler.
//
// Returns:
//   - Scheduler: the new scheduler
func NewScheduler() Scheduler {
	return &scheduler{mu: &sync.Mutex{}}
}

func (s *scheduler) Schedule(task Task) TaskID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.entries = append(s.entries, entry{id: s.nextID, task: task})
	return s.nextID
}

func (s *scheduler) Cancel(id TaskID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (s *scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *scheduler) Advance(now time.Time) {
	s.mu.Lock()
	snapshot := make([]entry, len(s.entries))
	copy(snapshot, s.entries)
	s.mu.Unlock()

	for _, e := range snapshot {
		// The lock is not held while a task runs so tasks can call back into the scheduler.
		if !s.registered(e.id) {
			continue
		}
		if !e.task(now) {
			s.Cancel(e.id)
		}
	}
}

func (s *scheduler) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

func (s *scheduler) registered(id TaskID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.id == id {
			return true
		}
	}
	return false
}
