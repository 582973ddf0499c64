package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLevel(t *testing.T) {
	tests := []struct {
		level string
		want  bool
	}{
		{"none", true},
		{"gates", true},
		{"", true},
		{"verbose", false},
		{"GATES", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidLevel(tt.level), "level %q", tt.level)
	}
}

func TestEnabled(t *testing.T) {
	var nilTrace *SimulationTrace
	assert.False(t, nilTrace.Enabled())

	assert.False(t, NewSimulationTrace(Config{Level: LevelNone}).Enabled())
	assert.False(t, NewSimulationTrace(Config{}).Enabled())
	assert.True(t, NewSimulationTrace(Config{Level: LevelGates}).Enabled())
}

func TestRecordAccumulation(t *testing.T) {
	st := NewSimulationTrace(Config{Level: LevelGates})

	st.RecordGate(GateRecord{Step: 0, Gate: "H", Targets: []int{0}, Norm: 1, NonZero: 2})
	st.RecordGate(GateRecord{Step: 1, Gate: "CNOT", Targets: []int{0, 1}, Norm: 1, NonZero: 2})
	st.RecordMeasurement(MeasurementRecord{Qubit: 0, Outcome: 1, ProbZero: 0.5})

	assert.Len(t, st.Gates, 2)
	assert.Equal(t, "CNOT", st.Gates[1].Gate)
	assert.Len(t, st.Measurements, 1)
	assert.Equal(t, 1, st.Measurements[0].Outcome)
}
