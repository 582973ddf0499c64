package sim

// sparseState stores only amplitudes with |a|^2 > Epsilon, keyed by basis
// index. Memory is O(occupied entries), which stays far below 2^n for
// circuits that do not fully entangle all qubits.
type sparseState struct {
	dim  int
	amps map[int]complex128
}

func newSparseState(dim int) *sparseState {
	return &sparseState{dim: dim, amps: make(map[int]complex128)}
}

func (s *sparseState) Dim() int {
	return s.dim
}

func (s *sparseState) Amplitude(index int) complex128 {
	return s.amps[index]
}

func (s *sparseState) SetAmplitude(index int, amp complex128) {
	if probability(amp) <= Epsilon {
		delete(s.amps, index)
		return
	}
	s.amps[index] = amp
}

func (s *sparseState) ForEachNonZero(fn func(index int, amp complex128)) {
	for index, amp := range s.amps {
		fn(index, amp)
	}
}

func (s *sparseState) Empty() State {
	return newSparseState(s.dim)
}

func (s *sparseState) Clone() State {
	amps := make(map[int]complex128, len(s.amps))
	for index, amp := range s.amps {
		amps[index] = amp
	}
	return &sparseState{dim: s.dim, amps: amps}
}
