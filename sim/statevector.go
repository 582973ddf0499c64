package sim

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"
)

// AmplitudeEntry is one nonzero entry of a statevector: a basis index and
// its complex amplitude. Bit k of the index is qubit k's computational
// basis value.
type AmplitudeEntry struct {
	Index     int
	Amplitude complex128
}

// BasisProbability pairs a basis index with its measurement probability
// |amplitude|^2. This is the enumerated form handed to visualization.
type BasisProbability struct {
	Index       int
	Probability float64
}

// Statevector holds the amplitudes of an n-qubit system and implements
// gate application, measurement collapse, normalization, and validation.
//
// The amplitude store is exclusively owned by the statevector: gate
// application accumulates into a fresh store and commits it, so a failed
// operation never leaves a partially-applied state behind.
type Statevector struct {
	numQubits int
	state     State
	rng       *rand.Rand
}

// NewStatevector creates a statevector initialized to |0...0> with the
// automatic backend choice. Fails with ErrInvalidConfiguration when
// numQubits < 1.
func NewStatevector(numQubits int) (*Statevector, error) {
	return NewStatevectorWithBackend(numQubits, BackendAuto)
}

// NewStatevectorWithBackend is NewStatevector with an explicit amplitude
// storage backend (BackendDense, BackendSparse, or BackendAuto).
func NewStatevectorWithBackend(numQubits int, backend string) (*Statevector, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("%w: qubit count must be >= 1, got %d", ErrInvalidConfiguration, numQubits)
	}
	state, err := NewState(numQubits, backend)
	if err != nil {
		return nil, err
	}
	state.SetAmplitude(0, 1)
	return &Statevector{
		numQubits: numQubits,
		state:     state,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// SetRNG installs the randomness source used by Measure. Measurement is the
// only nondeterminism in the engine; inject a seeded source for
// reproducible runs.
func (s *Statevector) SetRNG(rng *rand.Rand) {
	s.rng = rng
}

// NumQubits returns the number of qubits in the system.
func (s *Statevector) NumQubits() int {
	return s.numQubits
}

// Dim returns the number of basis states, 2^n.
func (s *Statevector) Dim() int {
	return 1 << s.numQubits
}

// Amplitude returns the amplitude at the given basis index; absent entries
// are zero.
func (s *Statevector) Amplitude(index int) complex128 {
	if index < 0 || index >= s.Dim() {
		return 0
	}
	return s.state.Amplitude(index)
}

// NonZeroAmplitudes returns every entry with |a|^2 > Epsilon, sorted by
// basis index.
func (s *Statevector) NonZeroAmplitudes() []AmplitudeEntry {
	entries := make([]AmplitudeEntry, 0)
	s.state.ForEachNonZero(func(index int, amp complex128) {
		entries = append(entries, AmplitudeEntry{Index: index, Amplitude: amp})
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Index < entries[j].Index })
	return entries
}

// Probabilities returns (basis index, |amplitude|^2) for every nonzero
// entry, sorted by basis index.
func (s *Statevector) Probabilities() []BasisProbability {
	entries := s.NonZeroAmplitudes()
	probs := make([]BasisProbability, len(entries))
	for i, e := range entries {
		probs[i] = BasisProbability{Index: e.Index, Probability: probability(e.Amplitude)}
	}
	return probs
}

// TotalProbability returns the sum of |a|^2 over all entries. It is 1
// within floating tolerance after every committed mutation.
func (s *Statevector) TotalProbability() float64 {
	total := 0.0
	s.state.ForEachNonZero(func(index int, amp complex128) {
		total += probability(amp)
	})
	return total
}

// ApplyGate applies a gate to the listed target qubits. Validation failures
// (ErrQubitOutOfRange, ErrInvalidGate) leave the state untouched.
func (s *Statevector) ApplyGate(g Gate, targets ...int) error {
	if err := s.checkTargets(g, targets); err != nil {
		return err
	}
	if g.Arity() == 1 {
		if dense, ok := s.state.(*denseState); ok {
			s.state = applySingleQubitDense(dense, g.Matrix, targets[0])
		} else {
			s.state = applyOperator(s.state, g.Matrix, targets)
		}
	} else {
		s.state = applyOperator(s.state, g.Matrix, targets)
	}
	s.normalizeAndCleanup()
	return nil
}

// checkTargets enforces the gate arity and target bounds preconditions.
func (s *Statevector) checkTargets(g Gate, targets []int) error {
	if len(targets) != g.Arity() {
		return fmt.Errorf("%w: %s acts on %d qubit(s), got %d target(s)",
			ErrInvalidGate, g.Name, g.Arity(), len(targets))
	}
	for i, q := range targets {
		if q < 0 || q >= s.numQubits {
			return fmt.Errorf("%w: target qubit %d outside [0, %d)", ErrQubitOutOfRange, q, s.numQubits)
		}
		for _, prev := range targets[:i] {
			if prev == q {
				return fmt.Errorf("%w: duplicate target qubit %d", ErrInvalidGate, q)
			}
		}
	}
	return nil
}

// applySingleQubitDense is the dense fast path for 2x2 gates. Each basis
// index with the target bit clear pairs with index|mask; the new amplitudes
// are the matrix-vector product over that 2-dimensional subspace, read from
// the pre-update array.
func applySingleQubitDense(state *denseState, m [][]complex128, target int) State {
	mask := 1 << target
	next := make([]complex128, len(state.amps))
	for index := range state.amps {
		if index&mask != 0 {
			continue
		}
		paired := index | mask
		a0 := state.amps[index]
		a1 := state.amps[paired]
		next[index] = m[0][0]*a0 + m[0][1]*a1
		next[paired] = m[1][0]*a0 + m[1][1]*a1
	}
	return &denseState{amps: next}
}

// applyOperator is the generalized gate application over an ordered target
// list. For each occupied basis index it extracts the local input index
// (target at position i contributes bit i, least-significant first), then
// scatters gate[out][in] * amplitude to the global index obtained by
// rewriting the target bits with the local output pattern. Contributions
// from multiple sources to the same destination accumulate. The result is
// built in a fresh store so reads always see the pre-update state.
func applyOperator(state State, m [][]complex128, targets []int) State {
	next := state.Empty()
	dim := len(m)
	state.ForEachNonZero(func(index int, amp complex128) {
		in := localIndex(index, targets)
		for out := 0; out < dim; out++ {
			entry := m[out][in]
			if probability(entry) <= Epsilon {
				continue
			}
			dest := globalIndex(index, targets, out)
			next.SetAmplitude(dest, next.Amplitude(dest)+entry*amp)
		}
	})
	return next
}

// localIndex packs the target-qubit bits of a global basis index into a
// gate-local index, first-listed target in the least significant bit.
func localIndex(index int, targets []int) int {
	local := 0
	for i, q := range targets {
		local |= ((index >> q) & 1) << i
	}
	return local
}

// globalIndex rewrites the target-qubit bits of a global basis index with
// the bit pattern of a gate-local output index, using the same packing as
// localIndex.
func globalIndex(index int, targets []int, out int) int {
	dest := index
	for i, q := range targets {
		bit := (out >> i) & 1
		dest = dest&^(1<<q) | bit<<q
	}
	return dest
}

// normalizeAndCleanup prunes entries with |a|^2 < Epsilon and rescales the
// remainder so the total probability returns to 1, compensating for
// floating-point drift accumulated across gate applications. A state with
// zero remaining mass is left empty rather than divided by zero.
func (s *Statevector) normalizeAndCleanup() {
	entries := make([]AmplitudeEntry, 0)
	total := 0.0
	s.state.ForEachNonZero(func(index int, amp complex128) {
		p := probability(amp)
		if p < Epsilon {
			return
		}
		entries = append(entries, AmplitudeEntry{Index: index, Amplitude: amp})
		total += p
	})

	next := s.state.Empty()
	if total > 0 {
		scale := complex(1/math.Sqrt(total), 0)
		for _, e := range entries {
			next.SetAmplitude(e.Index, e.Amplitude*scale)
		}
	}
	s.state = next
}

// ProbabilityZero returns the probability that measuring the target qubit
// yields 0, without collapsing the state.
func (s *Statevector) ProbabilityZero(target int) (float64, error) {
	if target < 0 || target >= s.numQubits {
		return 0, fmt.Errorf("%w: target qubit %d outside [0, %d)", ErrQubitOutOfRange, target, s.numQubits)
	}
	mask := 1 << target
	prob0 := 0.0
	s.state.ForEachNonZero(func(index int, amp complex128) {
		if index&mask == 0 {
			prob0 += probability(amp)
		}
	})
	return prob0, nil
}

// Measure collapses the target qubit and returns the sampled outcome
// (0 or 1). One uniform draw from the injected RNG decides the outcome
// against the probability of reading 0; amplitudes inconsistent with the
// outcome are zeroed and the remainder renormalized. Collapse is
// irreversible.
func (s *Statevector) Measure(target int) (int, error) {
	prob0, err := s.ProbabilityZero(target)
	if err != nil {
		return 0, err
	}

	outcome := 1
	if s.rng.Float64() < prob0 {
		outcome = 0
	}

	mask := 1 << target
	next := s.state.Empty()
	remaining := 0.0
	s.state.ForEachNonZero(func(index int, amp complex128) {
		bit := 0
		if index&mask != 0 {
			bit = 1
		}
		if bit == outcome {
			next.SetAmplitude(index, amp)
			remaining += probability(amp)
		}
	})
	if remaining <= Epsilon {
		return 0, fmt.Errorf("%w: no probability mass remains for qubit %d outcome %d",
			ErrInconsistentState, target, outcome)
	}
	s.state = next
	s.normalizeAndCleanup()
	return outcome, nil
}

// Validate checks that every stored basis index fits the 2^n space implied
// by the qubit count, failing with ErrInconsistentState naming the
// offending index and the expected bound.
func (s *Statevector) Validate() error {
	bound := 1 << s.numQubits
	if s.state.Dim() != bound {
		return fmt.Errorf("%w: state dimension %d, want %d for %d qubit(s)",
			ErrInconsistentState, s.state.Dim(), bound, s.numQubits)
	}
	var err error
	s.state.ForEachNonZero(func(index int, amp complex128) {
		if err == nil && (index < 0 || index >= bound) {
			err = fmt.Errorf("%w: basis index %d outside [0, %d)", ErrInconsistentState, index, bound)
		}
	})
	return err
}

// Clone returns an independent copy of the statevector sharing the same
// randomness source, used for repeated measurement sampling from one
// simulated final state.
func (s *Statevector) Clone() *Statevector {
	return &Statevector{
		numQubits: s.numQubits,
		state:     s.state.Clone(),
		rng:       s.rng,
	}
}
