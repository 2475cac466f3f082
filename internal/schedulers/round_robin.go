package schedulers

import (
	"math"

	"github.com/Barritosaurus/cpu-scheduler/internal/process"
)

// RRSchedule services processes in fixed input order, one quantum per turn.
// Each pass walks the whole list; a preempted process is picked up again on the
// next pass rather than queued behind later arrivals. A pass that finds nothing
// to run idles the CPU until the earliest pending arrival.
func RRSchedule(processes []process.Process, quantum int64) []TimeSlice {
	var (
		ct        int64
		com       int
		remaining = make([]int64, len(processes))
		g         = make(gantt, 0, len(processes))
	)
	for i, p := range processes {
		remaining[i] = p.BurstDuration
	}

	for com != len(processes) {
		ran := false
		for i, p := range processes {
			if p.ArrivalTime > ct || remaining[i] == 0 {
				continue
			}
			slice := quantum
			if remaining[i] <= quantum {
				slice = remaining[i]
				com++
			}
			g.run(p.ProcessID, ct, ct+slice)
			ct += slice
			remaining[i] -= slice
			ran = true
		}
		if !ran {
			next := nextArrival(processes, remaining)
			g.idle(ct, next)
			ct = next
		}
	}
	return g
}

// nextArrival is the earliest arrival among processes with work left.
func nextArrival(processes []process.Process, remaining []int64) int64 {
	next := int64(math.MaxInt64)
	for i, p := range processes {
		if remaining[i] > 0 && p.ArrivalTime < next {
			next = p.ArrivalTime
		}
	}
	return next
}
