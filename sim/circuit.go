package sim

import "fmt"

// Operation is one entry of a circuit: a gate together with the ordered
// qubit indices it acts on.
type Operation struct {
	Gate    Gate
	Targets []int
}

// Circuit is an ordered sequence of gate applications over a fixed number
// of qubits. Operations are append-only through AddGate; their order is the
// order of application and is never rearranged or deduplicated.
type Circuit struct {
	NumQubits  int
	Operations []Operation
}

// NewCircuit creates an empty circuit over numQubits qubits. Fails with
// ErrInvalidConfiguration when numQubits < 1.
func NewCircuit(numQubits int) (*Circuit, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("%w: qubit count must be >= 1, got %d", ErrInvalidConfiguration, numQubits)
	}
	return &Circuit{NumQubits: numQubits}, nil
}

// AddGate validates and appends a gate application. The target count must
// match the gate arity (ErrInvalidGate), targets must be distinct
// (ErrInvalidGate) and within [0, NumQubits) (ErrQubitOutOfRange). The gate
// matrix is cloned so the circuit owns its operations.
func (c *Circuit) AddGate(g Gate, targets ...int) error {
	if len(targets) != g.Arity() {
		return fmt.Errorf("%w: %s acts on %d qubit(s), got %d target(s)",
			ErrInvalidGate, g.Name, g.Arity(), len(targets))
	}
	for i, q := range targets {
		if q < 0 || q >= c.NumQubits {
			return fmt.Errorf("%w: target qubit %d outside [0, %d)", ErrQubitOutOfRange, q, c.NumQubits)
		}
		for _, prev := range targets[:i] {
			if prev == q {
				return fmt.Errorf("%w: duplicate target qubit %d", ErrInvalidGate, q)
			}
		}
	}
	c.Operations = append(c.Operations, Operation{
		Gate:    g.clone(),
		Targets: append([]int(nil), targets...),
	})
	return nil
}
