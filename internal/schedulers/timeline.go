package schedulers

// IdlePID marks a TimeSlice during which the CPU runs nothing.
const IdlePID int64 = 0

// TimeSlice is one contiguous execution interval [Start, Stop).
type TimeSlice struct {
	PID   int64 `json:"pid"`
	Start int64 `json:"start"`
	Stop  int64 `json:"stop"`
}

// Idle reports whether the CPU had nothing to run during the slice.
func (t TimeSlice) Idle() bool { return t.PID == IdlePID }

// Len is the number of ticks the slice covers.
func (t TimeSlice) Len() int64 { return t.Stop - t.Start }

// gantt accumulates slices in start order, merging a slice into the previous one
// when it continues the same process (or idle period) without a gap.
type gantt []TimeSlice

func (g *gantt) run(pid, start, stop int64) {
	if stop <= start {
		return
	}
	if n := len(*g); n > 0 {
		last := &(*g)[n-1]
		if last.PID == pid && last.Stop == start {
			last.Stop = stop
			return
		}
	}
	*g = append(*g, TimeSlice{PID: pid, Start: start, Stop: stop})
}

func (g *gantt) idle(start, stop int64) {
	g.run(IdlePID, start, stop)
}
