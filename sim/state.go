package sim

import "fmt"

// Epsilon is the squared-magnitude threshold below which an amplitude is
// treated as zero. Sparse backings drop such entries; normalization prunes
// them in both backings.
const Epsilon = 1e-10

// Backend names for amplitude storage selection.
const (
	// BackendDense stores all 2^n amplitudes in a flat array.
	BackendDense = "dense"
	// BackendSparse stores only amplitudes with |a|^2 > Epsilon in a map.
	BackendSparse = "sparse"
	// BackendAuto picks dense for small systems and sparse above
	// autoDenseMaxQubits, where the dense array stops being cheap.
	BackendAuto = "auto"
)

// autoDenseMaxQubits is the largest qubit count for which BackendAuto
// chooses the dense backing (2^20 amplitudes, 16 MiB).
const autoDenseMaxQubits = 20

// State stores the complex amplitude of every basis state of an n-qubit
// system. Absent entries are implicitly zero. The gate-application and
// measurement logic is written once against this interface; the dense and
// sparse backings are interchangeable.
type State interface {
	// Dim returns the number of basis states, 2^n.
	Dim() int
	// Amplitude returns the amplitude at the given basis index, or zero
	// when the entry is absent.
	Amplitude(index int) complex128
	// SetAmplitude stores the amplitude at the given basis index. Sparse
	// backings may discard values with |a|^2 <= Epsilon.
	SetAmplitude(index int, amp complex128)
	// ForEachNonZero calls fn for every stored entry whose squared
	// magnitude exceeds Epsilon, in unspecified order.
	ForEachNonZero(fn func(index int, amp complex128))
	// Empty returns a zeroed state with the same backing and dimension,
	// used to accumulate the result of a gate application.
	Empty() State
	// Clone returns a deep copy of the state.
	Clone() State
}

// NewState allocates a zeroed amplitude store for numQubits qubits using
// the named backend. The caller is responsible for setting the initial
// amplitude.
func NewState(numQubits int, backend string) (State, error) {
	switch backend {
	case BackendDense:
		return newDenseState(1 << numQubits), nil
	case BackendSparse:
		return newSparseState(1 << numQubits), nil
	case BackendAuto, "":
		if numQubits <= autoDenseMaxQubits {
			return newDenseState(1 << numQubits), nil
		}
		return newSparseState(1 << numQubits), nil
	default:
		return nil, fmt.Errorf("%w: unknown state backend %q (valid: %s, %s, %s)",
			ErrInvalidConfiguration, backend, BackendDense, BackendSparse, BackendAuto)
	}
}

// probability returns |amp|^2 without the intermediate square root that
// cmplx.Abs would introduce.
func probability(amp complex128) float64 {
	return real(amp)*real(amp) + imag(amp)*imag(amp)
}
