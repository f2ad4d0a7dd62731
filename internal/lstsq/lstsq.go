// Package lstsq solves small dense linear least-squares problems with a
// Householder QR factorisation. It backs the polynomial fits of the
// smoothing filter design.
package lstsq

import (
	"errors"
	"math"
)

var (
	// ErrSingular is returned when the design matrix is rank deficient.
	ErrSingular = errors.New("lstsq: rank-deficient matrix")
	// ErrShape is returned for empty, ragged or underdetermined matrices.
	ErrShape = errors.New("lstsq: invalid matrix shape")
)

// QR holds the thin factorisation A = Q*R of an m×n matrix with m >= n.
type QR struct {
	m, n int
	q    [][]float64 // m×n, orthonormal columns
	r    [][]float64 // n×n, upper triangular
}

// Factor computes the thin QR factorisation of a, given as m rows of n
// columns. a is not modified.
func Factor(a [][]float64) (*QR, error) {
	m := len(a)
	if m == 0 {
		return nil, ErrShape
	}

	n := len(a[0])
	if n == 0 || n > m {
		return nil, ErrShape
	}

	work := make([][]float64, m)
	for i, row := range a {
		if len(row) != n {
			return nil, ErrShape
		}
		work[i] = append([]float64(nil), row...)
	}

	vs := make([][]float64, n)
	vnorms := make([]float64, n)

	for k := range n {
		var norm float64
		for i := k; i < m; i++ {
			norm = math.Hypot(norm, work[i][k])
		}

		if norm == 0 {
			return nil, ErrSingular
		}

		alpha := -norm
		if work[k][k] < 0 {
			alpha = norm
		}

		v := make([]float64, m-k)
		for i := k; i < m; i++ {
			v[i-k] = work[i][k]
		}
		v[0] -= alpha

		var vn float64
		for _, x := range v {
			vn += x * x
		}

		vs[k] = v
		vnorms[k] = vn

		if vn == 0 {
			continue
		}

		for j := k; j < n; j++ {
			var s float64
			for i := k; i < m; i++ {
				s += v[i-k] * work[i][j]
			}

			f := 2 * s / vn
			for i := k; i < m; i++ {
				work[i][j] -= f * v[i-k]
			}
		}
	}

	r := make([][]float64, n)
	var rmax float64
	for i := range n {
		r[i] = make([]float64, n)
		copy(r[i][i:], work[i][i:])
		rmax = math.Max(rmax, math.Abs(r[i][i]))
	}

	tol := rmax * float64(m) * 1e-13
	for i := range n {
		if math.Abs(r[i][i]) <= tol {
			return nil, ErrSingular
		}
	}

	// Accumulate Q = H_0 H_1 ... H_{n-1} applied to the first n unit columns.
	q := make([][]float64, m)
	for i := range m {
		q[i] = make([]float64, n)
		if i < n {
			q[i][i] = 1
		}
	}

	for k := n - 1; k >= 0; k-- {
		v, vn := vs[k], vnorms[k]
		if vn == 0 {
			continue
		}

		for j := range n {
			var s float64
			for i := k; i < m; i++ {
				s += v[i-k] * q[i][j]
			}

			f := 2 * s / vn
			for i := k; i < m; i++ {
				q[i][j] -= f * v[i-k]
			}
		}
	}

	return &QR{m: m, n: n, q: q, r: r}, nil
}

// Rows returns m.
func (f *QR) Rows() int { return f.m }

// Cols returns n.
func (f *QR) Cols() int { return f.n }

// Solve returns the x minimising ||A*x - b||. len(b) must equal Rows().
func (f *QR) Solve(b []float64) ([]float64, error) {
	if len(b) != f.m {
		return nil, ErrShape
	}

	// y = Q^T b
	y := make([]float64, f.n)
	for i, bi := range b {
		for j := range f.n {
			y[j] += f.q[i][j] * bi
		}
	}

	// Back substitution R x = y.
	x := make([]float64, f.n)
	for i := f.n - 1; i >= 0; i-- {
		s := y[i]
		for j := i + 1; j < f.n; j++ {
			s -= f.r[i][j] * x[j]
		}
		x[i] = s / f.r[i][i]
	}

	return x, nil
}

// PseudoInverseRow returns row k of the Moore-Penrose pseudo-inverse
// R⁻¹Qᵀ, i.e. the weights w with x[k] = sum_i w[i]*b[i] for every
// least-squares solution x of A*x = b.
func (f *QR) PseudoInverseRow(k int) ([]float64, error) {
	if k < 0 || k >= f.n {
		return nil, ErrShape
	}

	// Forward substitution Rᵀ z = e_k.
	z := make([]float64, f.n)
	for j := range f.n {
		s := 0.0
		if j == k {
			s = 1
		}
		for i := range j {
			s -= f.r[i][j] * z[i]
		}
		z[j] = s / f.r[j][j]
	}

	w := make([]float64, f.m)
	for i := range f.m {
		var s float64
		for j := range f.n {
			s += f.q[i][j] * z[j]
		}
		w[i] = s
	}

	return w, nil
}

// Vandermonde returns the len(x)×(order+1) matrix with entries x[i]^j.
func Vandermonde(x []float64, order int) [][]float64 {
	a := make([][]float64, len(x))
	for i, xi := range x {
		row := make([]float64, order+1)
		p := 1.0
		for j := range row {
			row[j] = p
			p *= xi
		}
		a[i] = row
	}
	return a
}

// PolyVal evaluates sum c[j]*x^j with Horner's scheme.
func PolyVal(c []float64, x float64) float64 {
	var y float64
	for j := len(c) - 1; j >= 0; j-- {
		y = y*x + c[j]
	}
	return y
}
