package schedulers

import (
	"sort"

	"github.com/Barritosaurus/cpu-scheduler/internal/process"
)

type pending struct {
	process.Process
	remaining int64
	done      bool
}

// SRTFSchedule is preemptive shortest-remaining-time-first. Scheduling decisions
// are only taken at arrival times and at completions inside an arrival window.
func SRTFSchedule(processes []process.Process) []TimeSlice {
	return preemptive(processes, func(a, b *pending) bool {
		return a.remaining < b.remaining
	})
}

// PPSSchedule is preemptive priority scheduling. Priority picks who runs; the
// window arithmetic still works on remaining burst.
func PPSSchedule(processes []process.Process) []TimeSlice {
	return preemptive(processes, func(a, b *pending) bool {
		return a.Priority < b.Priority
	})
}

func preemptive(processes []process.Process, less func(a, b *pending) bool) []TimeSlice {
	jobs := make([]pending, len(processes))
	for i, p := range processes {
		jobs[i] = pending{Process: p, remaining: p.BurstDuration}
	}
	reorder := func() {
		sort.SliceStable(jobs, func(i, j int) bool { return less(&jobs[i], &jobs[j]) })
	}
	reorder()

	var (
		bounds = arrivalBoundaries(processes)
		time   int64
		g      = make(gantt, 0, len(jobs))
	)

	for i := 0; i < len(bounds)-1; i++ {
		fmin, smin := bounds[i], bounds[i+1]
		if time < fmin {
			g.idle(time, fmin)
			time = fmin
		}

		for restart := true; restart; {
			restart = false
			j := firstReady(jobs, time)
			if j < 0 {
				break
			}
			job := &jobs[j]
			width := smin - fmin
			switch {
			case job.remaining < width:
				g.run(job.ProcessID, time, time+job.remaining)
				time += job.remaining
				job.done = true
				fmin = time
				restart = true
			case job.remaining == width:
				g.run(job.ProcessID, time, smin)
				time = smin
				job.done = true
			default:
				job.remaining -= width
				g.run(job.ProcessID, time, smin)
				time = smin
			}
		}

		reorder()
	}

	for j := range jobs {
		job := &jobs[j]
		if job.done {
			continue
		}
		if job.ArrivalTime > time {
			g.idle(time, job.ArrivalTime)
			time = job.ArrivalTime
		}
		g.run(job.ProcessID, time, time+job.remaining)
		time += job.remaining
		job.done = true
	}
	return g
}

func firstReady(jobs []pending, time int64) int {
	for j := range jobs {
		if !jobs[j].done && jobs[j].ArrivalTime <= time {
			return j
		}
	}
	return -1
}

// arrivalBoundaries returns the distinct arrival times in ascending order.
func arrivalBoundaries(processes []process.Process) []int64 {
	seen := make(map[int64]struct{}, len(processes))
	bounds := make([]int64, 0, len(processes))
	for _, p := range processes {
		if _, ok := seen[p.ArrivalTime]; ok {
			continue
		}
		seen[p.ArrivalTime] = struct{}{}
		bounds = append(bounds, p.ArrivalTime)
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i] < bounds[j] })
	return bounds
}
