package schedulers

import (
	"fmt"
	"strings"
)

// Policy selects a scheduling algorithm.
type Policy int

const (
	FCFS Policy = iota + 1
	SJF
	SRTF
	NPPS
	PPS
	RR
)

// Policies lists every policy in menu order.
var Policies = []Policy{FCFS, SJF, SRTF, NPPS, PPS, RR}

var policyNames = map[Policy]string{
	FCFS: "fcfs",
	SJF:  "sjf",
	SRTF: "srtf",
	NPPS: "npps",
	PPS:  "pps",
	RR:   "rr",
}

var policyTitles = map[Policy]string{
	FCFS: "First-come, first-serve",
	SJF:  "Shortest-job-first",
	SRTF: "Shortest-remaining-time-first",
	NPPS: "Non-preemptive priority",
	PPS:  "Preemptive priority",
	RR:   "Round-robin",
}

var policyAliases = map[string]Policy{
	"first-come-first-serve":        FCFS,
	"shortest-job-first":            SJF,
	"shortest-remaining-time-first": SRTF,
	"non-preemptive-priority":       NPPS,
	"priority":                      NPPS,
	"preemptive-priority":           PPS,
	"round-robin":                   RR,
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

func (p Policy) Title() string {
	return policyTitles[p]
}

// ParsePolicy accepts a short name, a long hyphenated name or a menu code 1-6.
func ParsePolicy(s string) (Policy, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Policies {
		if key == p.String() || key == fmt.Sprint(int(p)) {
			return p, nil
		}
	}
	if p, ok := policyAliases[key]; ok {
		return p, nil
	}
	return 0, &UnknownPolicyError{Policy: s}
}

// MarshalText lets policies travel as their short name in JSON and config.
func (p Policy) MarshalText() ([]byte, error) {
	if _, ok := policyNames[p]; !ok {
		return nil, &UnknownPolicyError{Policy: p.String()}
	}
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(b []byte) error {
	parsed, err := ParsePolicy(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
