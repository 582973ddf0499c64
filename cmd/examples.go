package cmd

import (
	"fmt"

	"github.com/quantum-sim/quantum-sim/sim"
)

// BuildExample constructs one of the built-in demonstration circuits.
func BuildExample(name string) (*sim.Circuit, error) {
	switch name {
	case "bell":
		// Hadamard then CNOT: the canonical entangled pair.
		circuit, err := sim.NewCircuit(2)
		if err != nil {
			return nil, err
		}
		if err := circuit.AddGate(sim.Hadamard(), 0); err != nil {
			return nil, err
		}
		if err := circuit.AddGate(sim.CNOT(), 0, 1); err != nil {
			return nil, err
		}
		return circuit, nil

	case "medium":
		// Mixed single-qubit gates followed by a CNOT on 3 qubits.
		circuit, err := sim.NewCircuit(3)
		if err != nil {
			return nil, err
		}
		steps := []struct {
			gate    sim.Gate
			targets []int
		}{
			{sim.Hadamard(), []int{0}},
			{sim.PauliX(), []int{1}},
			{sim.PauliZ(), []int{2}},
			{sim.CNOT(), []int{0, 1}},
		}
		for _, s := range steps {
			if err := circuit.AddGate(s.gate, s.targets...); err != nil {
				return nil, err
			}
		}
		return circuit, nil

	case "ghz":
		// Superposition on every qubit, then a CNOT chain.
		circuit, err := sim.NewCircuit(8)
		if err != nil {
			return nil, err
		}
		for q := 0; q < 8; q++ {
			if err := circuit.AddGate(sim.Hadamard(), q); err != nil {
				return nil, err
			}
		}
		for q := 0; q < 7; q++ {
			if err := circuit.AddGate(sim.CNOT(), q, q+1); err != nil {
				return nil, err
			}
		}
		return circuit, nil

	default:
		return nil, fmt.Errorf("unknown example %q (valid: bell, medium, ghz)", name)
	}
}
