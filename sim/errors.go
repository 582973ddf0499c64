package sim

import "errors"

// Sentinel errors returned by the simulation core. Callers match them with
// errors.Is; the wrapped message carries the offending values.
var (
	// ErrInvalidConfiguration indicates a circuit or statevector was
	// requested with a qubit count below 1.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidGate indicates a gate/target mismatch: wrong number of
	// targets for the gate arity, duplicate targets, or a malformed matrix.
	ErrInvalidGate = errors.New("invalid gate")

	// ErrQubitOutOfRange indicates a target qubit index outside
	// [0, qubit count).
	ErrQubitOutOfRange = errors.New("qubit out of range")

	// ErrInconsistentState indicates validation found a basis index outside
	// the 2^n space implied by the qubit count.
	ErrInconsistentState = errors.New("inconsistent state")
)
