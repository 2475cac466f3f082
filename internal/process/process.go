package process

import (
	"errors"
	"fmt"
	"math"
)

// Process describes a single job handed to the scheduler. Values are treated as
// immutable: schedulers work on their own copies.
type Process struct {
	ProcessID     int64
	ArrivalTime   int64
	BurstDuration int64
	Priority      int64
}

var ErrNoProcesses = errors.New("no processes")

// InvalidProcessError reports a descriptor that cannot be scheduled.
type InvalidProcessError struct {
	ID     int64
	Field  string
	Reason string
	Err    error
}

func (e *InvalidProcessError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid process set: %s", e.Reason)
	}
	return fmt.Sprintf("invalid process %d: %s %s", e.ID, e.Field, e.Reason)
}

func (e *InvalidProcessError) Unwrap() error { return e.Err }

// New builds a validated descriptor.
func New(id, arrival, burst, priority int64) (Process, error) {
	p := Process{
		ProcessID:     id,
		ArrivalTime:   arrival,
		BurstDuration: burst,
		Priority:      priority,
	}
	if err := p.Validate(); err != nil {
		return Process{}, err
	}
	return p, nil
}

func (p Process) Validate() error {
	switch {
	case p.ProcessID <= 0:
		return &InvalidProcessError{ID: p.ProcessID, Field: "id", Reason: "must be positive"}
	case p.ArrivalTime < 0:
		return &InvalidProcessError{ID: p.ProcessID, Field: "arrival", Reason: fmt.Sprintf("must be >= 0, got %d", p.ArrivalTime)}
	case p.BurstDuration <= 0:
		return &InvalidProcessError{ID: p.ProcessID, Field: "burst", Reason: fmt.Sprintf("must be > 0, got %d", p.BurstDuration)}
	}
	return nil
}

// ValidateAll checks a whole run: the set must be non-empty, every descriptor
// valid, every id unique and the latest possible finish time must fit in an
// int64.
func ValidateAll(processes []Process) error {
	if len(processes) == 0 {
		return &InvalidProcessError{Reason: "at least one process is required", Err: ErrNoProcesses}
	}
	seen := make(map[int64]struct{}, len(processes))
	var maxArrival, totalBurst int64
	for _, p := range processes {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.ProcessID]; ok {
			return &InvalidProcessError{ID: p.ProcessID, Field: "id", Reason: "is duplicated"}
		}
		seen[p.ProcessID] = struct{}{}

		if p.BurstDuration > math.MaxInt64-totalBurst {
			return &InvalidProcessError{ID: p.ProcessID, Field: "burst", Reason: "overflows the total schedule length"}
		}
		totalBurst += p.BurstDuration
		maxArrival = max(maxArrival, p.ArrivalTime)
		if maxArrival > math.MaxInt64-totalBurst {
			return &InvalidProcessError{ID: p.ProcessID, Field: "burst", Reason: "makes the schedule end beyond the int64 range"}
		}
	}
	return nil
}

// Snapshot returns an independent copy of processes.
func Snapshot(processes []Process) []Process {
	out := make([]Process, len(processes))
	copy(out, processes)
	return out
}
