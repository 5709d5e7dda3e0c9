// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chain

import (
	"sort"
)

// Op is a sparse signed incidence operator between cells of successive
// dimensions, stored in compressed-sparse-row form. Rows are the higher
// cells, columns the lower cells, and nonzero entries are ±1 encoding the
// orientation of the lower cell within the higher cell.
//
// An Op is immutable once built; every transformation returns a new Op.
type Op struct {
	ncols  int
	rowPtr []int
	colIdx []int
	val    []int8
}

// OpBuilder assembles an Op one row at a time. Rows are stored with their
// column indices in ascending order regardless of insertion order.
type OpBuilder struct {
	ncols  int
	rowPtr []int
	colIdx []int
	val    []int8
}

// NewOpBuilder returns a builder for an operator with the given number of
// columns.
func NewOpBuilder(cols int) *OpBuilder {
	return &OpBuilder{
		ncols:  cols,
		rowPtr: []int{0},
	}
}

// AddRow appends a row with the given column indices and values. The two
// slices must have equal length; entries are sorted by column.
func (b *OpBuilder) AddRow(cols []int, vals []int8) {
	n := len(cols)
	start := len(b.colIdx)
	b.colIdx = append(b.colIdx, cols...)
	b.val = append(b.val, vals...)
	row := rowView{b.colIdx[start : start+n], b.val[start : start+n]}
	sort.Sort(row)
	b.rowPtr = append(b.rowPtr, len(b.colIdx))
}

// Build finalizes the operator. The builder must not be reused afterwards.
func (b *OpBuilder) Build() *Op {
	return &Op{
		ncols:  b.ncols,
		rowPtr: b.rowPtr,
		colIdx: b.colIdx,
		val:    b.val,
	}
}

type rowView struct {
	cols []int
	vals []int8
}

func (r rowView) Len() int           { return len(r.cols) }
func (r rowView) Less(i, j int) bool { return r.cols[i] < r.cols[j] }
func (r rowView) Swap(i, j int) {
	r.cols[i], r.cols[j] = r.cols[j], r.cols[i]
	r.vals[i], r.vals[j] = r.vals[j], r.vals[i]
}

// Rows returns the number of rows (higher cells).
func (m *Op) Rows() int { return len(m.rowPtr) - 1 }

// Cols returns the number of columns (lower cells).
func (m *Op) Cols() int { return m.ncols }

// NNZ returns the number of stored entries.
func (m *Op) NNZ() int { return len(m.colIdx) }

// Row returns the column indices (ascending) and values of row i. The
// returned slices alias internal storage and must not be modified.
func (m *Op) Row(i int) ([]int, []int8) {
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	return m.colIdx[lo:hi], m.val[lo:hi]
}

// RowCols returns the column indices of the nonzeros of row i, ascending.
func (m *Op) RowCols(i int) []int {
	cols, _ := m.Row(i)
	return cols
}

// At returns the entry at (i, j), or 0 if not stored.
func (m *Op) At(i, j int) int {
	cols, vals := m.Row(i)
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return int(vals[k])
	}
	return 0
}

// Equal reports whether m and o have identical shape and entries.
func (m *Op) Equal(o *Op) bool {
	if m.ncols != o.ncols || m.Rows() != o.Rows() || len(m.colIdx) != len(o.colIdx) {
		return false
	}
	for i := range m.rowPtr {
		if m.rowPtr[i] != o.rowPtr[i] {
			return false
		}
	}
	for k := range m.colIdx {
		if m.colIdx[k] != o.colIdx[k] || m.val[k] != o.val[k] {
			return false
		}
	}
	return true
}

// Mul returns the integer matrix product m·o. Entries that cancel to zero
// are dropped, so a closed boundary composition yields an operator with no
// stored entries.
func (m *Op) Mul(o *Op) *Op {
	b := NewOpBuilder(o.Cols())
	acc := make(map[int]int)
	for i := 0; i < m.Rows(); i++ {
		for k := range acc {
			delete(acc, k)
		}
		mc, mv := m.Row(i)
		for t, j := range mc {
			oc, ov := o.Row(j)
			for u, col := range oc {
				acc[col] += int(mv[t]) * int(ov[u])
			}
		}
		cols := make([]int, 0, len(acc))
		for col, v := range acc {
			if v != 0 {
				cols = append(cols, col)
			}
		}
		sort.Ints(cols)
		vals := make([]int8, len(cols))
		for t, col := range cols {
			vals[t] = int8(acc[col])
		}
		b.AddRow(cols, vals)
	}
	return b.Build()
}

// Transpose returns the transposed operator.
func (m *Op) Transpose() *Op {
	counts := make([]int, m.ncols+1)
	for _, j := range m.colIdx {
		counts[j+1]++
	}
	for j := 1; j <= m.ncols; j++ {
		counts[j] += counts[j-1]
	}
	rowPtr := make([]int, m.ncols+1)
	copy(rowPtr, counts)
	colIdx := make([]int, len(m.colIdx))
	val := make([]int8, len(m.val))
	next := make([]int, m.ncols)
	copy(next, counts[:m.ncols])
	for i := 0; i < m.Rows(); i++ {
		cols, vals := m.Row(i)
		for t, j := range cols {
			p := next[j]
			colIdx[p] = i
			val[p] = vals[t]
			next[j]++
		}
	}
	return &Op{
		ncols:  m.Rows(),
		rowPtr: rowPtr,
		colIdx: colIdx,
		val:    val,
	}
}

// IsZero reports whether the operator stores no nonzero entries.
func (m *Op) IsZero() bool {
	for _, v := range m.val {
		if v != 0 {
			return false
		}
	}
	return true
}

// Unsigned returns a copy of m with every stored entry set to +1.
func (m *Op) Unsigned() *Op {
	val := make([]int8, len(m.val))
	for k := range val {
		val[k] = 1
	}
	return &Op{
		ncols:  m.ncols,
		rowPtr: m.rowPtr,
		colIdx: m.colIdx,
		val:    val,
	}
}

// BlockDiag returns the block-diagonal merge of a and b: a's rows and
// columns first, then b's with row and column indices shifted. The values of
// both operators are copied unchanged into the new operator.
func BlockDiag(a, b *Op) *Op {
	rowPtr := make([]int, 0, a.Rows()+b.Rows()+1)
	rowPtr = append(rowPtr, a.rowPtr...)
	off := a.rowPtr[len(a.rowPtr)-1]
	for _, p := range b.rowPtr[1:] {
		rowPtr = append(rowPtr, p+off)
	}
	colIdx := make([]int, 0, len(a.colIdx)+len(b.colIdx))
	colIdx = append(colIdx, a.colIdx...)
	for _, j := range b.colIdx {
		colIdx = append(colIdx, j+a.ncols)
	}
	val := make([]int8, 0, len(a.val)+len(b.val))
	val = append(val, a.val...)
	val = append(val, b.val...)
	return &Op{
		ncols:  a.ncols + b.ncols,
		rowPtr: rowPtr,
		colIdx: colIdx,
		val:    val,
	}
}

// selectRows returns a new operator keeping only the rows whose index is
// flagged in keep, in their original order.
func (m *Op) selectRows(keep []bool) *Op {
	b := NewOpBuilder(m.ncols)
	for i := 0; i < m.Rows(); i++ {
		if !keep[i] {
			continue
		}
		cols, vals := m.Row(i)
		b.AddRow(append([]int(nil), cols...), append([]int8(nil), vals...))
	}
	return b.Build()
}

// colCounts returns, for every column, the number of rows referencing it.
func (m *Op) colCounts() []int {
	counts := make([]int, m.ncols)
	for _, j := range m.colIdx {
		counts[j]++
	}
	return counts
}

// remapCols returns a new operator whose column j is renamed to colMap[j].
// A negative mapping drops the entry. width is the new column count.
func (m *Op) remapCols(colMap []int, width int) *Op {
	b := NewOpBuilder(width)
	for i := 0; i < m.Rows(); i++ {
		cols, vals := m.Row(i)
		nc := make([]int, 0, len(cols))
		nv := make([]int8, 0, len(vals))
		for t, j := range cols {
			if colMap[j] < 0 {
				continue
			}
			nc = append(nc, colMap[j])
			nv = append(nv, vals[t])
		}
		b.AddRow(nc, nv)
	}
	return b.Build()
}
