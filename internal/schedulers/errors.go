package schedulers

import "fmt"

// UnknownPolicyError is returned for a policy name or value outside the supported set.
type UnknownPolicyError struct {
	Policy string
}

func (e *UnknownPolicyError) Error() string {
	return fmt.Sprintf("unknown scheduling policy %q", e.Policy)
}

// InvalidQuantumError is returned when round-robin is asked to run with a non-positive quantum.
type InvalidQuantumError struct {
	Quantum int64
}

func (e *InvalidQuantumError) Error() string {
	return fmt.Sprintf("invalid round-robin quantum %d: must be positive", e.Quantum)
}
