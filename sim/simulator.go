package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/quantum-sim/quantum-sim/sim/trace"
)

// unitaryTolerance bounds the deviation of U*U^H from identity accepted by
// the debug-level re-validation pass.
const unitaryTolerance = 1e-9

// Simulator replays a circuit's gate sequence against a freshly initialized
// statevector. The circuit is read-only; all randomness (measurement during
// sampling) flows through the simulator's PartitionedRNG.
type Simulator struct {
	Circuit *Circuit
	Backend string
	// Trace collects per-gate and per-measurement records when enabled.
	// A nil trace disables collection.
	Trace *trace.SimulationTrace

	rng *PartitionedRNG
}

// NewSimulator creates a simulator for the given circuit. The seed derives
// every randomness subsystem; backend selects the amplitude storage
// (BackendAuto when empty).
func NewSimulator(circuit *Circuit, seed int64, backend string) *Simulator {
	if backend == "" {
		backend = BackendAuto
	}
	return &Simulator{
		Circuit: circuit,
		Backend: backend,
		rng:     NewPartitionedRNG(NewSimulationKey(seed)),
	}
}

// Run replays every operation in insertion order against a new |0...0>
// statevector and returns the final state. Run itself never measures.
//
// At debug log level each gate is re-verified for unitarity and the state
// re-validated for dimensional consistency after every application.
func (s *Simulator) Run() (*Statevector, error) {
	sv, err := NewStatevectorWithBackend(s.Circuit.NumQubits, s.Backend)
	if err != nil {
		return nil, err
	}
	sv.SetRNG(s.rng.ForSubsystem(SubsystemMeasurement))

	debug := logrus.IsLevelEnabled(logrus.DebugLevel)
	for i, op := range s.Circuit.Operations {
		logrus.Debugf("[step %03d] applying %s to qubits %v", i, op.Gate.Name, op.Targets)
		if debug {
			if err := VerifyUnitary(op.Gate, unitaryTolerance); err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
		}
		if err := sv.ApplyGate(op.Gate, op.Targets...); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, op.Gate.Name, err)
		}
		if debug {
			if err := sv.Validate(); err != nil {
				return nil, fmt.Errorf("step %d (%s): %w", i, op.Gate.Name, err)
			}
		}
		if s.Trace.Enabled() {
			s.Trace.RecordGate(trace.GateRecord{
				Step:    i,
				Gate:    op.Gate.Name,
				Targets: append([]int(nil), op.Targets...),
				Norm:    sv.TotalProbability(),
				NonZero: len(sv.NonZeroAmplitudes()),
			})
		}
	}
	logrus.Debugf("[done] %d operation(s) applied, %d occupied basis state(s)",
		len(s.Circuit.Operations), len(sv.NonZeroAmplitudes()))
	return sv, nil
}

// Sample runs the circuit once, then measures the listed qubits shot times,
// cloning the final state per shot so collapses are independent. Bit i of a
// recorded outcome is the result for qubits[i]. Returns the aggregated
// counts histogram.
func (s *Simulator) Sample(qubits []int, shots int) (*Counts, error) {
	if shots < 1 {
		return nil, fmt.Errorf("%w: shots must be >= 1, got %d", ErrInvalidConfiguration, shots)
	}
	for _, q := range qubits {
		if q < 0 || q >= s.Circuit.NumQubits {
			return nil, fmt.Errorf("%w: measured qubit %d outside [0, %d)",
				ErrQubitOutOfRange, q, s.Circuit.NumQubits)
		}
	}

	final, err := s.Run()
	if err != nil {
		return nil, err
	}
	final.SetRNG(s.rng.ForSubsystem(SubsystemSampling))

	counts := NewCounts(qubits, shots)
	for shot := 0; shot < shots; shot++ {
		sv := final.Clone()
		outcome := 0
		for i, q := range qubits {
			if s.Trace.Enabled() {
				prob0, perr := sv.ProbabilityZero(q)
				if perr != nil {
					return nil, perr
				}
				r, merr := sv.Measure(q)
				if merr != nil {
					return nil, merr
				}
				s.Trace.RecordMeasurement(trace.MeasurementRecord{Qubit: q, Outcome: r, ProbZero: prob0})
				outcome |= r << i
				continue
			}
			r, merr := sv.Measure(q)
			if merr != nil {
				return nil, merr
			}
			outcome |= r << i
		}
		counts.Record(outcome)
	}
	return counts, nil
}

// Simulate replays the circuit against a fresh statevector and returns the
// final state. Convenience wrapper over Simulator for callers that do not
// measure.
func Simulate(circuit *Circuit) (*Statevector, error) {
	return NewSimulator(circuit, 0, BackendAuto).Run()
}
