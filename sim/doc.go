// Package sim provides the statevector engine for simulating small quantum
// circuits on a classical machine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - gate.go: the gate catalog (unitary matrices tagged by arity)
//   - statevector.go: gate application, measurement collapse, normalization
//   - simulator.go: circuit replay and shot sampling
//
// # Architecture
//
// A Circuit is an ordered list of (gate, target qubits) operations over a
// declared qubit count. The Simulator replays the operations in insertion
// order against a freshly initialized Statevector, which owns the amplitude
// mapping. Bit k of a basis index is qubit k's computational-basis value.
//
// Amplitude storage sits behind the State interface with two
// interchangeable backings selected by a backend name (state_dense.go,
// state_sparse.go); the gate-application logic is written once against the
// interface. The generalized multi-qubit index mapping lives in
// applyOperator, with a dense fast path for the single-qubit case.
//
// # Determinism
//
// Measurement is the only nondeterminism in the engine. It draws from an
// injectable *rand.Rand, which the Simulator derives from a seed via
// PartitionedRNG (rng.go), so runs with the same seed reproduce bit for
// bit. Sub-packages:
//   - sim/trace/: replay-trace recording (pure data types)
//   - sim/viz/: text circuit diagrams and terminal probability histograms
package sim
