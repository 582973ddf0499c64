package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quantum-sim/quantum-sim/sim"
)

// CircuitSpec is the top-level circuit configuration.
// Loaded from YAML via LoadCircuitSpec(path).
type CircuitSpec struct {
	Qubits int        `yaml:"qubits"`
	Gates  []GateSpec `yaml:"gates"`
}

// GateSpec defines a single gate application in a circuit file.
type GateSpec struct {
	Gate    string   `yaml:"gate"`
	Targets []int    `yaml:"targets"`
	Theta   *float64 `yaml:"theta,omitempty"` // rotation angle, required for rx/ry/rz
}

// LoadCircuitSpec reads and parses a YAML circuit file.
func LoadCircuitSpec(path string) (*CircuitSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read circuit spec: %w", err)
	}
	var spec CircuitSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse circuit spec: %w", err)
	}
	return &spec, nil
}

// BuildCircuit converts a parsed spec into a validated circuit.
func BuildCircuit(spec *CircuitSpec) (*sim.Circuit, error) {
	circuit, err := sim.NewCircuit(spec.Qubits)
	if err != nil {
		return nil, err
	}
	for i, gs := range spec.Gates {
		gate, err := lookupGate(gs)
		if err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
		if err := circuit.AddGate(gate, gs.Targets...); err != nil {
			return nil, fmt.Errorf("gate %d (%s): %w", i, gs.Gate, err)
		}
	}
	return circuit, nil
}

// lookupGate resolves a gate name (plus optional angle) to a catalog gate.
func lookupGate(gs GateSpec) (sim.Gate, error) {
	switch gs.Gate {
	case "i", "id", "identity":
		return sim.Identity(), nil
	case "x":
		return sim.PauliX(), nil
	case "z":
		return sim.PauliZ(), nil
	case "h":
		return sim.Hadamard(), nil
	case "rx":
		if gs.Theta == nil {
			return sim.Gate{}, fmt.Errorf("rx requires theta")
		}
		return sim.RotationX(*gs.Theta), nil
	case "ry":
		if gs.Theta == nil {
			return sim.Gate{}, fmt.Errorf("ry requires theta")
		}
		return sim.RotationY(*gs.Theta), nil
	case "rz":
		if gs.Theta == nil {
			return sim.Gate{}, fmt.Errorf("rz requires theta")
		}
		return sim.RotationZ(*gs.Theta), nil
	case "cnot", "cx":
		return sim.CNOT(), nil
	case "swap":
		return sim.Swap(), nil
	default:
		return sim.Gate{}, fmt.Errorf("unknown gate %q (valid: i, x, z, h, rx, ry, rz, cnot, swap)", gs.Gate)
	}
}
