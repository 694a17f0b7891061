package mat

// Matrix is a dense row-major matrix.
type Matrix struct {
	Vals []float64
	Width, Height int
}

// NewMatrix creates a Matrix with the given dimensions backed by vals.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width * height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// NewZeroMatrix creates a zeroed Matrix with the given dimensions.
func NewZeroMatrix(width, height int) *Matrix {
	return NewMatrix(make([]float64, width * height), width, height)
}

// Get returns the element at row i and column j.
func (m *Matrix) Get(i, j int) float64 { return m.Vals[i * m.Width + j] }

// Set assigns the element at row i and column j.
func (m *Matrix) Set(i, j int, x float64) { m.Vals[i * m.Width + j] = x }

// Mul multiplies m by m2 and returns the product as a new matrix.
func (m *Matrix) Mul(m2 *Matrix) *Matrix {
	out := NewZeroMatrix(m2.Width, m.Height)
	m.MulAt(m2, out)
	return out
}

// MulAt multiplies m by m2 and writes the product into out. out may not
// alias either input.
func (m *Matrix) MulAt(m2, out *Matrix) {
	if m.Width != m2.Height {
		panic("m.Width does not equal m2.Height.")
	} else if out.Height != m.Height || out.Width != m2.Width {
		panic("out has different dimensions than m * m2.")
	}

	for i := 0; i < m.Height; i++ {
		iOffset := i * m.Width
		outOffset := i * out.Width
		for j := 0; j < m2.Width; j++ {
			sum := 0.0
			for k := 0; k < m.Width; k++ {
				sum += m.Vals[iOffset + k] * m2.Vals[k*m2.Width + j]
			}
			out.Vals[outOffset + j] = sum
		}
	}
}

// VecMulAt multiplies m by the column vector xs and writes the result to out.
// xs and out may point to the same physical memory.
func (m *Matrix) VecMulAt(xs, out []float64) {
	if m.Width != len(xs) {
		panic("len(xs) does not equal m.Width.")
	} else if m.Height != len(out) {
		panic("len(out) does not equal m.Height.")
	}

	var buf [8]float64
	ys := buf[:0]
	if m.Height > len(buf) { ys = make([]float64, 0, m.Height) }

	for i := 0; i < m.Height; i++ {
		iOffset := i * m.Width
		sum := 0.0
		for j := 0; j < m.Width; j++ {
			sum += m.Vals[iOffset + j] * xs[j]
		}
		ys = append(ys, sum)
	}
	copy(out, ys)
}

// Transpose returns the transpose of m as a new matrix.
func (m *Matrix) Transpose() *Matrix {
	out := NewZeroMatrix(m.Height, m.Width)
	m.TransposeAt(out)
	return out
}

// TransposeAt writes the transpose of m into out. out may not alias m.
func (m *Matrix) TransposeAt(out *Matrix) {
	if out.Width != m.Height || out.Height != m.Width {
		panic("out has different dimensions than the transpose of m.")
	}

	for i := 0; i < m.Height; i++ {
		for j := 0; j < m.Width; j++ {
			out.Vals[j*out.Width + i] = m.Vals[i*m.Width + j]
		}
	}
}
