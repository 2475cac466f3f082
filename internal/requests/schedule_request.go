package requests

import "github.com/Barritosaurus/cpu-scheduler/internal/process"

type Process struct {
	ProcessId   int64 `json:"process_id"`
	ArrivalTime int64 `json:"arrival_time"`
	BurstTime   int64 `json:"burst_time"`
	Priority    int64 `json:"priority"`
}

type ScheduleRequest struct {
	Quantum   int64     `json:"quantum,omitempty"`
	Processes []Process `json:"processes"`
}

func NewScheduleRequest(processes []process.Process, quantum int64) ScheduleRequest {
	req := ScheduleRequest{Quantum: quantum, Processes: make([]Process, len(processes))}
	for i, p := range processes {
		req.Processes[i] = Process{
			ProcessId:   p.ProcessID,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstDuration,
			Priority:    p.Priority,
		}
	}
	return req
}

// Descriptors converts the request body into scheduler input. Validation is
// left to the dispatcher.
func (r ScheduleRequest) Descriptors() []process.Process {
	out := make([]process.Process, len(r.Processes))
	for i, p := range r.Processes {
		out[i] = process.Process{
			ProcessID:     p.ProcessId,
			ArrivalTime:   p.ArrivalTime,
			BurstDuration: p.BurstTime,
			Priority:      p.Priority,
		}
	}
	return out
}
