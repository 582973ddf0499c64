package sim

// denseState stores every amplitude in a flat array indexed by basis state.
// Memory is O(2^n) regardless of how many amplitudes are nonzero.
type denseState struct {
	amps []complex128
}

func newDenseState(dim int) *denseState {
	return &denseState{amps: make([]complex128, dim)}
}

func (s *denseState) Dim() int {
	return len(s.amps)
}

func (s *denseState) Amplitude(index int) complex128 {
	return s.amps[index]
}

func (s *denseState) SetAmplitude(index int, amp complex128) {
	s.amps[index] = amp
}

func (s *denseState) ForEachNonZero(fn func(index int, amp complex128)) {
	for index, amp := range s.amps {
		if probability(amp) > Epsilon {
			fn(index, amp)
		}
	}
}

func (s *denseState) Empty() State {
	return newDenseState(len(s.amps))
}

func (s *denseState) Clone() State {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)
	return &denseState{amps: amps}
}
