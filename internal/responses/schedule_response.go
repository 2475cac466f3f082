package responses

import (
	"github.com/Barritosaurus/cpu-scheduler/internal/process"
	"github.com/Barritosaurus/cpu-scheduler/internal/schedulers"
)

type ProcessResponse struct {
	ProcessId      int64 `json:"process_id"`
	ArrivalTime    int64 `json:"arrival_time"`
	BurstTime      int64 `json:"burst_time"`
	Priority       int64 `json:"priority"`
	FinishTime     int64 `json:"finish_time"`
	TurnAroundTime int64 `json:"turn_around_time"`
	WaitingTime    int64 `json:"waiting_time"`
}

type ScheduleResponse struct {
	Policy                schedulers.Policy      `json:"policy"`
	Quantum               int64                  `json:"quantum,omitempty"`
	Gantt                 []schedulers.TimeSlice `json:"gantt"`
	TotalTime             int64                  `json:"total_time"`
	IdleTime              int64                  `json:"idle_time"`
	AverageWaitingTime    float64                `json:"average_waiting_time"`
	AverageTurnAroundTime float64                `json:"average_turn_around_time"`
	CpuUtilization        float64                `json:"cpu_utilization"`
	CpuThroughput         float64                `json:"cpu_throughput"`
	Details               []ProcessResponse      `json:"details"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func FromReport(r schedulers.Report) ScheduleResponse {
	resp := ScheduleResponse{
		Policy:                r.Policy,
		Quantum:               r.Quantum,
		Gantt:                 r.Gantt,
		TotalTime:             r.Makespan,
		IdleTime:              r.IdleTime,
		AverageWaitingTime:    r.AverageWait,
		AverageTurnAroundTime: r.AverageTurnaround,
		CpuUtilization:        r.Utilization,
		CpuThroughput:         r.Throughput,
		Details:               make([]ProcessResponse, len(r.Results)),
	}
	for i, res := range r.Results {
		resp.Details[i] = ProcessResponse{
			ProcessId:      res.ProcessID,
			ArrivalTime:    res.ArrivalTime,
			BurstTime:      res.BurstDuration,
			Priority:       res.Priority,
			FinishTime:     res.Exit,
			TurnAroundTime: res.Turnaround,
			WaitingTime:    res.Wait,
		}
	}
	return resp
}

// Report rebuilds the scheduler report carried by a response.
func (s ScheduleResponse) Report() schedulers.Report {
	r := schedulers.Report{
		Policy:            s.Policy,
		Quantum:           s.Quantum,
		Gantt:             s.Gantt,
		AverageWait:       s.AverageWaitingTime,
		AverageTurnaround: s.AverageTurnAroundTime,
		Makespan:          s.TotalTime,
		IdleTime:          s.IdleTime,
		Utilization:       s.CpuUtilization,
		Throughput:        s.CpuThroughput,
		Results:           make([]schedulers.Result, len(s.Details)),
	}
	for i, d := range s.Details {
		r.Results[i] = schedulers.Result{
			Process: process.Process{
				ProcessID:     d.ProcessId,
				ArrivalTime:   d.ArrivalTime,
				BurstDuration: d.BurstTime,
				Priority:      d.Priority,
			},
			Exit:       d.FinishTime,
			Turnaround: d.TurnAroundTime,
			Wait:       d.WaitingTime,
		}
	}
	return r
}
