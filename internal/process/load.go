package process

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Input is the parsed content of a process file.
type Input struct {
	Header        string
	Processes     []Process
	ContextSwitch int64
	// Truncated is set when a trailing partial triple was dropped.
	Truncated bool
}

var intToken = regexp.MustCompile(`-?\d+`)

// Load reads the header line followed by (arrival, burst, priority) triples and
// one trailing context switch value. Ids are assigned 1..n in file order.
func Load(r io.Reader) (Input, error) {
	var in Input

	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return in, fmt.Errorf("%w: reading header", err)
	}
	in.Header = strings.TrimRight(header, "\r\n")

	rest, err := io.ReadAll(br)
	if err != nil {
		return in, fmt.Errorf("%w: reading process data", err)
	}

	tokens := intToken.FindAllString(string(rest), -1)
	if len(tokens) == 0 {
		return in, &InvalidProcessError{Reason: "no integer data after header", Err: ErrNoProcesses}
	}
	values := make([]int64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return in, fmt.Errorf("%w: parsing %q", err, tok)
		}
		values[i] = v
	}

	in.ContextSwitch = values[len(values)-1]
	count := len(values) - 1
	if count%3 != 0 {
		in.Truncated = true
		count = count / 3 * 3
	}
	if count == 0 {
		return in, &InvalidProcessError{Reason: "no process triples found", Err: ErrNoProcesses}
	}

	in.Processes = make([]Process, 0, count/3)
	for i := 0; i < count; i += 3 {
		p, err := New(int64(i/3+1), values[i], values[i+1], values[i+2])
		if err != nil {
			return Input{}, err
		}
		in.Processes = append(in.Processes, p)
	}

	return in, nil
}

// LoadCSV reads rows of id,burst,arrival[,priority].
func LoadCSV(r io.Reader) ([]Process, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	processes := make([]Process, len(rows))
	for i := range rows {
		if len(rows[i]) < 3 || len(rows[i]) > 4 {
			return nil, fmt.Errorf("row %d: expected 3 or 4 fields, got %d", i+1, len(rows[i]))
		}
		fields := make([]int64, 4)
		for j, s := range rows[i] {
			v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d field %d", err, i+1, j+1)
			}
			fields[j] = v
		}
		processes[i].ProcessID = fields[0]
		processes[i].BurstDuration = fields[1]
		processes[i].ArrivalTime = fields[2]
		processes[i].Priority = fields[3]
	}

	if err := ValidateAll(processes); err != nil {
		return nil, err
	}
	return processes, nil
}
