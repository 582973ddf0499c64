package sim

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// Gate is a unitary operator acting on one or two qubits. The matrix is
// 2x2 for single-qubit gates and 4x4 for two-qubit gates; unitarity is a
// precondition supplied by the factory functions below, not re-checked on
// every application (see VerifyUnitary).
//
// For two-qubit gates the matrix acts on a local 2-bit index whose
// least-significant bit is the first-listed target qubit.
type Gate struct {
	Name   string
	Matrix [][]complex128
}

// Arity returns the number of qubits the gate acts on.
func (g Gate) Arity() int {
	if len(g.Matrix) == 2 {
		return 1
	}
	return 2
}

// clone deep-copies the gate so circuit entries own their matrices.
func (g Gate) clone() Gate {
	matrix := make([][]complex128, len(g.Matrix))
	for i, row := range g.Matrix {
		matrix[i] = append([]complex128(nil), row...)
	}
	return Gate{Name: g.Name, Matrix: matrix}
}

// Identity returns the single-qubit identity gate.
func Identity() Gate {
	return Gate{Name: "I", Matrix: [][]complex128{
		{1, 0},
		{0, 1},
	}}
}

// PauliX returns the Pauli-X (NOT) gate, which flips |0> and |1>.
func PauliX() Gate {
	return Gate{Name: "X", Matrix: [][]complex128{
		{0, 1},
		{1, 0},
	}}
}

// PauliZ returns the Pauli-Z gate, which negates the phase of |1>.
func PauliZ() Gate {
	return Gate{Name: "Z", Matrix: [][]complex128{
		{1, 0},
		{0, -1},
	}}
}

// Hadamard returns the Hadamard gate.
// H|0> = (|0> + |1>)/sqrt(2), H|1> = (|0> - |1>)/sqrt(2).
func Hadamard() Gate {
	scale := complex(1/math.Sqrt2, 0)
	return Gate{Name: "H", Matrix: [][]complex128{
		{scale, scale},
		{scale, -scale},
	}}
}

// RotationX returns the rotation gate about the X axis.
//
//	Rx(theta) = [[ cos(theta/2), -i*sin(theta/2) ],
//	             [ -i*sin(theta/2), cos(theta/2) ]]
func RotationX(theta float64) Gate {
	cos := complex(math.Cos(theta/2), 0)
	sin := complex(0, -math.Sin(theta/2))
	return Gate{Name: "RX", Matrix: [][]complex128{
		{cos, sin},
		{sin, cos},
	}}
}

// RotationY returns the rotation gate about the Y axis.
//
//	Ry(theta) = [[ cos(theta/2), -sin(theta/2) ],
//	             [ sin(theta/2),  cos(theta/2) ]]
func RotationY(theta float64) Gate {
	cos := complex(math.Cos(theta/2), 0)
	sin := complex(math.Sin(theta/2), 0)
	return Gate{Name: "RY", Matrix: [][]complex128{
		{cos, -sin},
		{sin, cos},
	}}
}

// RotationZ returns the rotation gate about the Z axis. Unlike RotationX
// and RotationY this uses the full angle in the diagonal phases:
//
//	Rz(theta) = [[ exp(-i*theta), 0 ],
//	             [ 0, exp(i*theta) ]]
//
// Note the full angle here versus the half angle in RotationX/RotationY.
func RotationZ(theta float64) Gate {
	return Gate{Name: "RZ", Matrix: [][]complex128{
		{cmplx.Exp(complex(0, -theta)), 0},
		{0, cmplx.Exp(complex(0, theta))},
	}}
}

// CNOT returns the controlled-NOT gate. The first-listed target qubit is
// the control and the second is the target: the target flips exactly when
// the control is |1>.
func CNOT() Gate {
	return Gate{Name: "CNOT", Matrix: [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	}}
}

// Swap returns the SWAP gate, which exchanges the states of its two
// target qubits.
func Swap() Gate {
	return Gate{Name: "SWAP", Matrix: [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}}
}

// VerifyUnitary checks that the gate matrix is square with dimension 2 or 4
// and that U * U-dagger is the identity within tol. Returns ErrInvalidGate
// describing the first violation found.
func VerifyUnitary(g Gate, tol float64) error {
	n := len(g.Matrix)
	if n != 2 && n != 4 {
		return fmt.Errorf("%w: matrix must be 2x2 or 4x4, got %dx%d", ErrInvalidGate, n, n)
	}
	data := make([]complex128, 0, n*n)
	for i, row := range g.Matrix {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidGate, i, len(row), n)
		}
		data = append(data, row...)
	}

	u := mat.NewCDense(n, n, data)
	product := mat.NewCDense(n, n, nil)
	cblas128.Gemm(blas.NoTrans, blas.ConjTrans, 1, u.RawCMatrix(), u.RawCMatrix(), 0, product.RawCMatrix())

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if diff := cmplx.Abs(product.At(i, j) - want); diff > tol {
				return fmt.Errorf("%w: %s is not unitary, (U*U^H)[%d][%d] deviates from identity by %g",
					ErrInvalidGate, g.Name, i, j, diff)
			}
		}
	}
	return nil
}
