package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantum-sim/quantum-sim/sim/trace"
)

func bellCircuit(t *testing.T) *Circuit {
	t.Helper()
	c, err := NewCircuit(2)
	assert.NoError(t, err)
	assert.NoError(t, c.AddGate(Hadamard(), 0))
	assert.NoError(t, c.AddGate(CNOT(), 0, 1))
	return c
}

func TestSimulatorRunBell(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s := NewSimulator(bellCircuit(t), 42, backend)
			final, err := s.Run()
			assert.NoError(t, err)

			entries := final.NonZeroAmplitudes()
			assert.Len(t, entries, 2)
			assert.Equal(t, 0, entries[0].Index)
			assert.Equal(t, 3, entries[1].Index)
			assert.InDelta(t, 0.5, probability(entries[0].Amplitude), 1e-9)
			assert.InDelta(t, 0.5, probability(entries[1].Amplitude), 1e-9)
		})
	}
}

func TestSimulateConvenienceWrapper(t *testing.T) {
	final, err := Simulate(bellCircuit(t))
	assert.NoError(t, err)
	assert.InDelta(t, 1, final.TotalProbability(), 1e-9)
	assert.Len(t, final.NonZeroAmplitudes(), 2)
}

func TestSimulatorDefaultsToAutoBackend(t *testing.T) {
	s := NewSimulator(bellCircuit(t), 42, "")
	assert.Equal(t, BackendAuto, s.Backend)
}

func TestSampleBellOutcomes(t *testing.T) {
	s := NewSimulator(bellCircuit(t), 42, BackendDense)
	counts, err := s.Sample([]int{0, 1}, 500)
	assert.NoError(t, err)

	// The Bell pair only ever collapses to 00 or 11.
	total := 0
	for _, outcome := range counts.Outcomes() {
		assert.Contains(t, []int{0, 3}, outcome)
		total += counts.Histogram[outcome]
	}
	assert.Equal(t, 500, total)

	// With 500 shots the 50/50 split is overwhelmingly within 0.2 of half.
	assert.InDelta(t, 0.5, counts.Probability(0), 0.2)
	assert.InDelta(t, 0.5, counts.Probability(3), 0.2)
}

func TestSampleIsReproducibleForSeed(t *testing.T) {
	run := func() map[int]int {
		s := NewSimulator(bellCircuit(t), 1234, BackendDense)
		counts, err := s.Sample([]int{0, 1}, 100)
		assert.NoError(t, err)
		return counts.Histogram
	}
	assert.Equal(t, run(), run())
}

func TestSampleValidation(t *testing.T) {
	s := NewSimulator(bellCircuit(t), 42, BackendDense)

	_, err := s.Sample([]int{0}, 0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = s.Sample([]int{5}, 10)
	assert.ErrorIs(t, err, ErrQubitOutOfRange)
}

func TestRunPropagatesGateErrors(t *testing.T) {
	c, err := NewCircuit(2)
	assert.NoError(t, err)
	assert.NoError(t, c.AddGate(Hadamard(), 0))
	// Bypass AddGate validation to simulate a circuit corrupted after
	// construction.
	c.Operations = append(c.Operations, Operation{Gate: CNOT(), Targets: []int{0, 7}})

	_, err = NewSimulator(c, 42, BackendDense).Run()
	assert.ErrorIs(t, err, ErrQubitOutOfRange)
	assert.Contains(t, err.Error(), "step 1")
	assert.Contains(t, err.Error(), "CNOT")
}

func TestRunRecordsTrace(t *testing.T) {
	s := NewSimulator(bellCircuit(t), 42, BackendDense)
	s.Trace = trace.NewSimulationTrace(trace.Config{Level: trace.LevelGates})

	_, err := s.Run()
	assert.NoError(t, err)

	assert.Len(t, s.Trace.Gates, 2)
	assert.Equal(t, 0, s.Trace.Gates[0].Step)
	assert.Equal(t, "H", s.Trace.Gates[0].Gate)
	assert.Equal(t, []int{0}, s.Trace.Gates[0].Targets)
	assert.Equal(t, "CNOT", s.Trace.Gates[1].Gate)
	assert.InDelta(t, 1, s.Trace.Gates[1].Norm, 1e-9)
	assert.Equal(t, 2, s.Trace.Gates[1].NonZero)
}

func TestSampleRecordsMeasurementTrace(t *testing.T) {
	s := NewSimulator(bellCircuit(t), 42, BackendDense)
	s.Trace = trace.NewSimulationTrace(trace.Config{Level: trace.LevelGates})

	_, err := s.Sample([]int{0}, 3)
	assert.NoError(t, err)

	assert.Len(t, s.Trace.Measurements, 3)
	for _, m := range s.Trace.Measurements {
		assert.Equal(t, 0, m.Qubit)
		assert.Contains(t, []int{0, 1}, m.Outcome)
		assert.InDelta(t, 0.5, m.ProbZero, 1e-9)
	}
}

func TestNilTraceDisablesCollection(t *testing.T) {
	s := NewSimulator(bellCircuit(t), 42, BackendDense)
	assert.Nil(t, s.Trace)
	_, err := s.Run()
	assert.NoError(t, err)
}
