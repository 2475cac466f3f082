package schedulers

import (
	"github.com/Barritosaurus/cpu-scheduler/internal/process"
)

// Result holds the timing of a single process once the schedule completed.
type Result struct {
	process.Process
	Exit       int64
	Turnaround int64
	Wait       int64
}

// Report is the outcome of one policy run. It is never modified after Run returns.
type Report struct {
	Policy            Policy
	Quantum           int64
	Gantt             []TimeSlice
	Results           []Result
	AverageWait       float64
	AverageTurnaround float64
	Makespan          int64
	IdleTime          int64
	Utilization       float64
	Throughput        float64
}

// computeReport derives per-process and aggregate metrics from a timeline.
// Results follow the order of processes; exit time is the end of the last slice
// of each process.
func computeReport(policy Policy, processes []process.Process, timeline []TimeSlice) Report {
	exits := make(map[int64]int64, len(processes))
	var makespan, idle int64
	for _, ts := range timeline {
		if ts.Stop > makespan {
			makespan = ts.Stop
		}
		if ts.Idle() {
			idle += ts.Len()
			continue
		}
		if ts.Stop > exits[ts.PID] {
			exits[ts.PID] = ts.Stop
		}
	}

	var totalWait, totalTurnaround int64
	results := make([]Result, len(processes))
	for i, p := range processes {
		exit := exits[p.ProcessID]
		turnaround := exit - p.ArrivalTime
		results[i] = Result{
			Process:    p,
			Exit:       exit,
			Turnaround: turnaround,
			Wait:       turnaround - p.BurstDuration,
		}
		totalWait += results[i].Wait
		totalTurnaround += turnaround
	}

	count := float64(len(processes))
	r := Report{
		Policy:            policy,
		Gantt:             timeline,
		Results:           results,
		AverageWait:       float64(totalWait) / count,
		AverageTurnaround: float64(totalTurnaround) / count,
		Makespan:          makespan,
		IdleTime:          idle,
	}
	if makespan > 0 {
		r.Utilization = float64(makespan-idle) / float64(makespan)
		r.Throughput = count / float64(makespan)
	}
	return r
}
