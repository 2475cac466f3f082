package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Barritosaurus/cpu-scheduler/internal/schedulers"
)

const idleLabel = "idle"

// Report writes the title, execution chart, Gantt schedule and timing table of
// a single run. Averages are printed with precision decimals.
func Report(w io.Writer, r schedulers.Report, precision int) {
	title := r.Policy.Title()
	if r.Policy == schedulers.RR {
		title = fmt.Sprintf("%s (quantum %d)", title, r.Quantum)
	}
	Title(w, title)
	Chart(w, r.Gantt)
	Gantt(w, r.Gantt)
	Schedule(w, r, precision)
}

// Title prints a policy heading between dashed rules.
func Title(w io.Writer, title string) {
	banner(w, '-', title)
}

// banner centres text between two rules of rule, each twice as wide as text.
func banner(w io.Writer, rule rune, text string) {
	width := 2 * len(text)
	line := strings.Repeat(string(rule), width)
	_, _ = fmt.Fprintf(w, "%s\n%*s%s\n%s\n", line, (width-len(text))/2, "", text, line)
}

// Chart prints the order in which processes got the CPU.
func Chart(w io.Writer, gantt []schedulers.TimeSlice) {
	banner(w, '=', "Execution chart")
	_, _ = fmt.Fprint(w, "(START) ")
	for _, ts := range gantt {
		if ts.Idle() {
			continue
		}
		_, _ = fmt.Fprintf(w, "p%d --> ", ts.PID)
	}
	_, _ = fmt.Fprintln(w, "(END)")
}

func Gantt(w io.Writer, gantt []schedulers.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		label := idleLabel
		if !gantt[i].Idle() {
			label = fmt.Sprint(gantt[i].PID)
		}
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func Schedule(w io.Writer, r schedulers.Report, precision int) {
	rows := make([][]string, len(r.Results))
	for i, res := range r.Results {
		rows[i] = []string{
			fmt.Sprint(res.ProcessID),
			fmt.Sprint(res.Priority),
			fmt.Sprint(res.BurstDuration),
			fmt.Sprint(res.ArrivalTime),
			fmt.Sprint(res.Wait),
			fmt.Sprint(res.Turnaround),
			fmt.Sprint(res.Exit),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.*f", precision, r.AverageWait),
		fmt.Sprintf("Average\n%.*f", precision, r.AverageTurnaround),
		fmt.Sprintf("Throughput\n%.*f/t", precision, r.Throughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization %.*f%%, idle %d of %d\n\n",
		precision, r.Utilization*100, r.IdleTime, r.Makespan)
}
