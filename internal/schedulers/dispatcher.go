package schedulers

import (
	"log/slog"
	"sync"

	"github.com/Barritosaurus/cpu-scheduler/internal/process"
)

// Dispatcher validates input, snapshots it and runs the selected policy.
type Dispatcher struct {
	Log *slog.Logger
}

func NewDispatcher(log *slog.Logger) *Dispatcher {
	return &Dispatcher{Log: log}
}

// Run simulates processes under policy. quantum is only read for RR.
// The caller's slice is never modified.
func (d *Dispatcher) Run(policy Policy, processes []process.Process, quantum int64) (Report, error) {
	if _, ok := policyNames[policy]; !ok {
		return Report{}, &UnknownPolicyError{Policy: policy.String()}
	}
	if policy == RR && quantum <= 0 {
		return Report{}, &InvalidQuantumError{Quantum: quantum}
	}
	if err := process.ValidateAll(processes); err != nil {
		return Report{}, err
	}

	snapshot := process.Snapshot(processes)
	var timeline []TimeSlice
	switch policy {
	case FCFS:
		timeline = FCFSSchedule(snapshot)
	case SJF:
		timeline = SJFSchedule(snapshot)
	case SRTF:
		timeline = SRTFSchedule(snapshot)
	case NPPS:
		timeline = NPPSSchedule(snapshot)
	case PPS:
		timeline = PPSSchedule(snapshot)
	case RR:
		timeline = RRSchedule(snapshot, quantum)
	}

	report := computeReport(policy, snapshot, timeline)
	if policy == RR {
		report.Quantum = quantum
	}

	if d.Log != nil {
		d.Log.Debug("schedule computed",
			slog.String("policy", policy.String()),
			slog.Int("processes", len(snapshot)),
			slog.Int64("makespan", report.Makespan),
			slog.Float64("average_wait", report.AverageWait),
		)
	}
	return report, nil
}

// RunAll runs every policy concurrently against the same input and returns the
// reports in the order the policies were given. The first failing policy's
// error is returned.
func (d *Dispatcher) RunAll(processes []process.Process, policies []Policy, quantum int64) ([]Report, error) {
	var (
		wg      sync.WaitGroup
		reports = make([]Report, len(policies))
		errs    = make([]error, len(policies))
	)
	wg.Add(len(policies))
	for i, policy := range policies {
		go func(i int, policy Policy) {
			defer wg.Done()
			reports[i], errs[i] = d.Run(policy, processes, quantum)
		}(i, policy)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return reports, nil
}
