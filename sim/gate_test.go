package sim

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateArity(t *testing.T) {
	tests := []struct {
		name  string
		gate  Gate
		arity int
	}{
		{"identity", Identity(), 1},
		{"pauli-x", PauliX(), 1},
		{"pauli-z", PauliZ(), 1},
		{"hadamard", Hadamard(), 1},
		{"rotation-x", RotationX(math.Pi / 2), 1},
		{"rotation-y", RotationY(math.Pi / 2), 1},
		{"rotation-z", RotationZ(math.Pi / 2), 1},
		{"cnot", CNOT(), 2},
		{"swap", Swap(), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.arity, tt.gate.Arity())
		})
	}
}

func TestHadamardMatrix(t *testing.T) {
	scale := complex(1/math.Sqrt2, 0)
	want := [][]complex128{
		{scale, scale},
		{scale, -scale},
	}
	assert.Equal(t, want, Hadamard().Matrix)
}

func TestPauliMatrices(t *testing.T) {
	assert.Equal(t, [][]complex128{{0, 1}, {1, 0}}, PauliX().Matrix)
	assert.Equal(t, [][]complex128{{1, 0}, {0, -1}}, PauliZ().Matrix)
	assert.Equal(t, [][]complex128{{1, 0}, {0, 1}}, Identity().Matrix)
}

func TestRotationXMatrix(t *testing.T) {
	theta := math.Pi / 2
	rx := RotationX(theta)
	want := [][]complex128{
		{complex(math.Cos(theta/2), 0), complex(0, -math.Sin(theta/2))},
		{complex(0, -math.Sin(theta/2)), complex(math.Cos(theta/2), 0)},
	}
	assert.Equal(t, want, rx.Matrix)
}

func TestRotationYMatrix(t *testing.T) {
	theta := math.Pi / 2
	ry := RotationY(theta)
	want := [][]complex128{
		{complex(math.Cos(theta/2), 0), complex(-math.Sin(theta/2), 0)},
		{complex(math.Sin(theta/2), 0), complex(math.Cos(theta/2), 0)},
	}
	assert.Equal(t, want, ry.Matrix)
}

// RotationZ uses the full angle in its diagonal phases while RotationX and
// RotationY use the half angle. Composed-circuit results depend on this, so
// the matrix is pinned exactly.
func TestRotationZFullAngleConvention(t *testing.T) {
	theta := math.Pi / 2
	rz := RotationZ(theta)
	assert.InDelta(t, 0, cmplx.Abs(rz.Matrix[0][0]-cmplx.Exp(complex(0, -theta))), 1e-15)
	assert.InDelta(t, 0, cmplx.Abs(rz.Matrix[1][1]-cmplx.Exp(complex(0, theta))), 1e-15)
	assert.Equal(t, complex128(0), rz.Matrix[0][1])
	assert.Equal(t, complex128(0), rz.Matrix[1][0])

	// Pin that the diagonal is NOT the half-angle convention.
	halfAngle := cmplx.Exp(complex(0, -theta/2))
	assert.Greater(t, cmplx.Abs(rz.Matrix[0][0]-halfAngle), 0.1)
}

func TestCNOTMatrix(t *testing.T) {
	// Control is the first-listed qubit (local bit 0): local |01> <-> |11>.
	want := [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	}
	assert.Equal(t, want, CNOT().Matrix)
}

func TestSwapMatrix(t *testing.T) {
	want := [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}
	assert.Equal(t, want, Swap().Matrix)
}

func TestCatalogGatesAreUnitary(t *testing.T) {
	gates := []Gate{
		Identity(),
		PauliX(),
		PauliZ(),
		Hadamard(),
		RotationX(0.3),
		RotationY(1.7),
		RotationZ(2.9),
		RotationX(-math.Pi),
		CNOT(),
		Swap(),
	}
	for _, g := range gates {
		t.Run(g.Name, func(t *testing.T) {
			assert.NoError(t, VerifyUnitary(g, 1e-12))
		})
	}
}

func TestVerifyUnitaryRejectsNonUnitary(t *testing.T) {
	notUnitary := Gate{Name: "BAD", Matrix: [][]complex128{
		{1, 1},
		{0, 1},
	}}
	err := VerifyUnitary(notUnitary, 1e-9)
	assert.ErrorIs(t, err, ErrInvalidGate)
}

func TestVerifyUnitaryRejectsMalformedMatrix(t *testing.T) {
	tests := []struct {
		name   string
		matrix [][]complex128
	}{
		{"3x3", [][]complex128{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
		{"ragged", [][]complex128{{1, 0}, {0}}},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyUnitary(Gate{Name: "BAD", Matrix: tt.matrix}, 1e-9)
			assert.ErrorIs(t, err, ErrInvalidGate)
		})
	}
}
