// Package trace provides replay-trace recording for circuit simulation
// analysis. This package has no dependencies on sim/ — it stores pure data
// types.
package trace

// Level controls the verbosity of replay tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelGates captures every gate application and measurement collapse.
	LevelGates Level = "gates"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:  true,
	LevelGates: true,
	"":         true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is a recognized trace
// level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// Config controls trace collection behavior.
type Config struct {
	Level Level
}

// GateRecord captures a single gate application during circuit replay.
type GateRecord struct {
	Step    int    // position in the circuit's operation sequence
	Gate    string // gate name (H, X, CNOT, ...)
	Targets []int
	Norm    float64 // total probability after the application
	NonZero int     // occupied basis states after the application
}

// MeasurementRecord captures a single measurement collapse.
type MeasurementRecord struct {
	Qubit    int
	Outcome  int     // 0 or 1
	ProbZero float64 // probability of reading 0 before the collapse
}

// SimulationTrace collects replay records during a simulation.
type SimulationTrace struct {
	Config       Config
	Gates        []GateRecord
	Measurements []MeasurementRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config Config) *SimulationTrace {
	return &SimulationTrace{
		Config:       config,
		Gates:        make([]GateRecord, 0),
		Measurements: make([]MeasurementRecord, 0),
	}
}

// Enabled reports whether records should be collected. Safe on a nil trace.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == LevelGates
}

// RecordGate appends a gate application record.
func (st *SimulationTrace) RecordGate(record GateRecord) {
	st.Gates = append(st.Gates, record)
}

// RecordMeasurement appends a measurement collapse record.
func (st *SimulationTrace) RecordMeasurement(record MeasurementRecord) {
	st.Measurements = append(st.Measurements, record)
}
