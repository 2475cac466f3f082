package schedulers

import (
	"math"
	"sort"

	"github.com/Barritosaurus/cpu-scheduler/internal/process"
)

// SJFSchedule is non-preemptive shortest-job-first. The list is ordered by burst
// once; at every decision point the first ready process in that order is
// dispatched, which is not always the shortest ready job.
func SJFSchedule(processes []process.Process) []TimeSlice {
	jobs := process.Snapshot(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].BurstDuration < jobs[j].BurstDuration
	})
	return dispatchInOrder(jobs)
}

// NPPSSchedule is non-preemptive priority scheduling; a lower value means a
// higher priority.
func NPPSSchedule(processes []process.Process) []TimeSlice {
	jobs := process.Snapshot(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Priority < jobs[j].Priority
	})
	return dispatchInOrder(jobs)
}

// dispatchInOrder scans jobs in their given order and runs the first one that
// has arrived to completion. When nothing is ready the clock jumps to the
// earliest pending arrival.
func dispatchInOrder(jobs []process.Process) []TimeSlice {
	var (
		current  int64
		complete int
		done     = make([]bool, len(jobs))
		g        = make(gantt, 0, len(jobs))
	)

	for complete != len(jobs) {
		progressed := false
		for i, p := range jobs {
			if done[i] || p.ArrivalTime > current {
				continue
			}
			g.run(p.ProcessID, current, current+p.BurstDuration)
			current += p.BurstDuration
			done[i] = true
			complete++
			progressed = true
			break
		}
		if progressed {
			continue
		}

		next := int64(math.MaxInt64)
		for i, p := range jobs {
			if !done[i] && p.ArrivalTime < next {
				next = p.ArrivalTime
			}
		}
		g.idle(current, next)
		current = next
	}
	return g
}
