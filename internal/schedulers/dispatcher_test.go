package schedulers

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Barritosaurus/cpu-scheduler/internal/process"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDispatcherRunGoldenSRTF(t *testing.T) {
	t.Parallel()
	report, err := newTestDispatcher().Run(SRTF, golden, 0)
	require.NoError(t, err)

	exits := map[int64]int64{}
	for _, r := range report.Results {
		exits[r.ProcessID] = r.Exit
	}
	assert.Equal(t, map[int64]int64{1: 9, 2: 5, 3: 3}, exits)

	assert.Equal(t, []Result{
		{Process: golden[0], Exit: 9, Turnaround: 9, Wait: 4},
		{Process: golden[1], Exit: 5, Turnaround: 4, Wait: 1},
		{Process: golden[2], Exit: 3, Turnaround: 1, Wait: 0},
	}, report.Results)
	assert.InDelta(t, 5.0/3.0, report.AverageWait, 1e-9)
	assert.InDelta(t, 14.0/3.0, report.AverageTurnaround, 1e-9)
	assert.Equal(t, int64(9), report.Makespan)
	assert.Equal(t, int64(0), report.IdleTime)
	assert.InDelta(t, 1.0, report.Utilization, 1e-9)
}

func TestDispatcherRunMetricsWithIdle(t *testing.T) {
	t.Parallel()
	in := procs([3]int64{0, 2, 1}, [3]int64{5, 1, 1})
	report, err := newTestDispatcher().Run(FCFS, in, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(6), report.Makespan)
	assert.Equal(t, int64(3), report.IdleTime)
	assert.InDelta(t, 0.5, report.Utilization, 1e-9)
	assert.InDelta(t, 2.0/6.0, report.Throughput, 1e-9)
	assert.InDelta(t, 0.0, report.AverageWait, 1e-9)
	assert.InDelta(t, 1.5, report.AverageTurnaround, 1e-9)
	assert.Zero(t, report.Quantum)
}

func TestDispatcherRunErrors(t *testing.T) {
	t.Parallel()
	d := newTestDispatcher()

	_, err := d.Run(Policy(42), golden, 2)
	var upe *UnknownPolicyError
	assert.ErrorAs(t, err, &upe)

	for _, q := range []int64{0, -3} {
		_, err = d.Run(RR, golden, q)
		var iqe *InvalidQuantumError
		if assert.ErrorAs(t, err, &iqe) {
			assert.Equal(t, q, iqe.Quantum)
		}
	}

	_, err = d.Run(FCFS, nil, 0)
	assert.ErrorIs(t, err, process.ErrNoProcesses)

	_, err = d.Run(SJF, []process.Process{{ProcessID: 7, ArrivalTime: 0, BurstDuration: -1}}, 0)
	var ipe *process.InvalidProcessError
	if assert.ErrorAs(t, err, &ipe) {
		assert.Equal(t, int64(7), ipe.ID)
		assert.Equal(t, "burst", ipe.Field)
	}

	_, err = d.Run(FCFS, []process.Process{{ProcessID: 3, ArrivalTime: math.MaxInt64 - 1, BurstDuration: 5}}, 0)
	if assert.ErrorAs(t, err, &ipe) {
		assert.Equal(t, int64(3), ipe.ID)
		assert.Equal(t, "burst", ipe.Field)
	}

	report, err := d.Run(RR, procs([3]int64{2_000_000_000, 1, 1}), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2_000_000_001), report.Makespan)
}

func TestDispatcherDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := procs([3]int64{6, 6, 3}, [3]int64{0, 5, 2}, [3]int64{3, 9, 1})
	before := process.Snapshot(in)

	d := newTestDispatcher()
	for _, policy := range Policies {
		_, err := d.Run(policy, in, 2)
		require.NoError(t, err)
		assert.Equal(t, before, in, policy.String())
	}
}

func TestDispatcherIdempotent(t *testing.T) {
	t.Parallel()
	d := newTestDispatcher()
	for _, policy := range Policies {
		first, err := d.Run(policy, golden, 2)
		require.NoError(t, err)
		second, err := d.Run(policy, golden, 2)
		require.NoError(t, err)
		assert.Equal(t, first, second, policy.String())
	}
}

func TestDispatcherRunAll(t *testing.T) {
	t.Parallel()
	d := newTestDispatcher()

	reports, err := d.RunAll(golden, Policies, 2)
	require.NoError(t, err)
	require.Len(t, reports, len(Policies))
	for i, policy := range Policies {
		want, err := d.Run(policy, golden, 2)
		require.NoError(t, err)
		assert.Equal(t, want, reports[i])
	}
	assert.Equal(t, int64(2), reports[len(reports)-1].Quantum)

	_, err = d.RunAll(golden, []Policy{FCFS, RR}, 0)
	var iqe *InvalidQuantumError
	assert.ErrorAs(t, err, &iqe)
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{in: "fcfs", want: FCFS},
		{in: " SJF ", want: SJF},
		{in: "3", want: SRTF},
		{in: "npps", want: NPPS},
		{in: "priority", want: NPPS},
		{in: "preemptive-priority", want: PPS},
		{in: "Round-Robin", want: RR},
		{in: "6", want: RR},
		{in: "7", wantErr: true},
		{in: "lottery", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				var upe *UnknownPolicyError
				require.ErrorAs(t, err, &upe)
				assert.Equal(t, tt.in, upe.Policy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicyText(t *testing.T) {
	t.Parallel()
	b, err := PPS.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "pps", string(b))

	var p Policy
	require.NoError(t, p.UnmarshalText([]byte("rr")))
	assert.Equal(t, RR, p)
	assert.Equal(t, "Round-robin", p.Title())

	_, err = Policy(0).MarshalText()
	assert.Error(t, err)
}
