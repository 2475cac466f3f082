package schedulers

import (
	"sort"

	"github.com/Barritosaurus/cpu-scheduler/internal/process"
)

// FCFSSchedule runs processes to completion in arrival order. Equal arrivals keep
// their input order.
func FCFSSchedule(processes []process.Process) []TimeSlice {
	jobs := process.Snapshot(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})

	var (
		current int64
		g       = make(gantt, 0, len(jobs))
	)
	for _, p := range jobs {
		if p.ArrivalTime > current {
			g.idle(current, p.ArrivalTime)
			current = p.ArrivalTime
		}
		g.run(p.ProcessID, current, current+p.BurstDuration)
		current += p.BurstDuration
	}
	return g
}
