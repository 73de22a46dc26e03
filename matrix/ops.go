package matrix

// Transpose returns M^T as a new CSR matrix.
// Complexity: O(nnz log nnz); space O(nnz).
func (m *CSR[T]) Transpose() *CSR[T] {
	b := NewBuilder[T](m.cols, m.rows)
	for rc, v := range m.All() {
		b.Add(rc.Col, rc.Row, v)
	}
	return b.Build()
}

// RowNormalize divides each row by its sum. Rows whose sum is zero are left
// as zero rows (the spec's documented "dangling row" allowance). Does not
// allocate proportionally to rows*cols: it walks only the stored nonzeros.
//
// Complexity: O(nnz).
func (m *CSR[T]) RowNormalize() *CSR[T] {
	out := &CSR[T]{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: append([]int(nil), m.rowPtr...),
		colIdx: append([]int(nil), m.colIdx...),
		data:   make([]T, len(m.data)),
	}
	for r := 0; r < m.rows; r++ {
		cols, vals := m.row(r)
		var sum T
		for _, v := range vals {
			sum += v
		}
		if sum == 0 {
			continue
		}
		lo := m.rowPtr[r]
		for i := range cols {
			out.data[lo+i] = vals[i] / sum
		}
	}
	return out
}

// ScalarMul returns a new matrix with every stored entry multiplied by alpha.
// Complexity: O(nnz).
func (m *CSR[T]) ScalarMul(alpha T) *CSR[T] {
	out := &CSR[T]{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: append([]int(nil), m.rowPtr...),
		colIdx: append([]int(nil), m.colIdx...),
		data:   make([]T, len(m.data)),
	}
	for i, v := range m.data {
		out.data[i] = v * alpha
	}
	return out
}

// Hadamard returns the element-wise product of m and other. Zero times
// anything is zero, so the result is sparse wherever either operand is:
// only coordinates present in both operands can be nonzero.
// Returns ErrDimensionMismatch if shapes differ.
//
// Complexity: O(nnz(m) + nnz(other)) via a merge over each row's sorted
// column indices (no dense densification, no per-entry binary search).
func (m *CSR[T]) Hadamard(other *CSR[T]) (*CSR[T], error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, matrixErrorf("Hadamard", ErrDimensionMismatch)
	}
	b := NewBuilder[T](m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		ac, av := m.row(r)
		bc, bv := other.row(r)
		i, j := 0, 0
		for i < len(ac) && j < len(bc) {
			switch {
			case ac[i] < bc[j]:
				i++
			case ac[i] > bc[j]:
				j++
			default:
				b.Add(r, ac[i], av[i]*bv[j])
				i++
				j++
			}
		}
	}
	return b.Build(), nil
}

// Add returns the sparse sum of m and other.
// Returns ErrDimensionMismatch if shapes differ.
//
// Complexity: O(nnz(m) + nnz(other)).
func (m *CSR[T]) Add(other *CSR[T]) (*CSR[T], error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, matrixErrorf("Add", ErrDimensionMismatch)
	}
	b := NewBuilder[T](m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		ac, av := m.row(r)
		bc, bv := other.row(r)
		i, j := 0, 0
		for i < len(ac) && j < len(bc) {
			switch {
			case ac[i] < bc[j]:
				b.Add(r, ac[i], av[i])
				i++
			case ac[i] > bc[j]:
				b.Add(r, bc[j], bv[j])
				j++
			default:
				b.Add(r, ac[i], av[i]+bv[j])
				i++
				j++
			}
		}
		for ; i < len(ac); i++ {
			b.Add(r, ac[i], av[i])
		}
		for ; j < len(bc); j++ {
			b.Add(r, bc[j], bv[j])
		}
	}
	return b.Build(), nil
}

// HStack concatenates mats side by side (block-horizontal). All inputs must
// share the same row count; returns ErrShapeMismatch otherwise.
// Returns ErrEmptyStack given zero inputs.
//
// Complexity: O(total nnz).
func HStack[T Numeric](mats ...*CSR[T]) (*CSR[T], error) {
	if len(mats) == 0 {
		return nil, matrixErrorf("HStack", ErrEmptyStack)
	}
	rows := mats[0].rows
	totalCols := 0
	for _, m := range mats {
		if m.rows != rows {
			return nil, matrixErrorf("HStack", ErrShapeMismatch)
		}
		totalCols += m.cols
	}
	b := NewBuilder[T](rows, totalCols)
	colOffset := 0
	for _, m := range mats {
		for rc, v := range m.All() {
			b.Add(rc.Row, rc.Col+colOffset, v)
		}
		colOffset += m.cols
	}
	return b.Build(), nil
}

// VStack concatenates mats top to bottom (block-vertical). All inputs must
// share the same column count; returns ErrShapeMismatch otherwise.
// Returns ErrEmptyStack given zero inputs.
//
// Complexity: O(total nnz).
func VStack[T Numeric](mats ...*CSR[T]) (*CSR[T], error) {
	if len(mats) == 0 {
		return nil, matrixErrorf("VStack", ErrEmptyStack)
	}
	cols := mats[0].cols
	totalRows := 0
	for _, m := range mats {
		if m.cols != cols {
			return nil, matrixErrorf("VStack", ErrShapeMismatch)
		}
		totalRows += m.rows
	}
	b := NewBuilder[T](totalRows, cols)
	rowOffset := 0
	for _, m := range mats {
		for rc, v := range m.All() {
			b.Add(rc.Row+rowOffset, rc.Col, v)
		}
		rowOffset += m.rows
	}
	return b.Build(), nil
}

// RowSums returns the sum of each row, used by callers that need to check
// the row-stochastic invariant without re-walking the whole matrix.
func (m *CSR[T]) RowSums() []T {
	sums := make([]T, m.rows)
	for r := 0; r < m.rows; r++ {
		_, vals := m.row(r)
		var s T
		for _, v := range vals {
			s += v
		}
		sums[r] = s
	}
	return sums
}
