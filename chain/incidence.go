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
	"fmt"
	"sort"
)

// CopEV builds the edge→vertex incidence operator from an edge list. Each
// edge is a pair of vertex indices. In the signed form the column of the
// lower endpoint holds −1 and the higher +1; unsigned holds +1 in both.
// The column count is the highest vertex index seen plus one.
func CopEV(ev [][]int, signed bool) (*Op, error) {
	cols := 0
	for e, pair := range ev {
		if len(pair) != 2 || pair[0] == pair[1] || pair[0] < 0 || pair[1] < 0 {
			return nil, fmt.Errorf("%w: edge %d has endpoints %v", ErrMalformedComplex, e, pair)
		}
		if pair[0] >= cols {
			cols = pair[0] + 1
		}
		if pair[1] >= cols {
			cols = pair[1] + 1
		}
	}
	b := NewOpBuilder(cols)
	for _, pair := range ev {
		lo, hi := pair[0], pair[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		if signed {
			b.AddRow([]int{lo, hi}, []int8{-1, 1})
		} else {
			b.AddRow([]int{lo, hi}, []int8{1, 1})
		}
	}
	return b.Build(), nil
}

// edgeIndex maps a canonical (low, high) endpoint pair to its row in ev.
func edgeIndex(ev [][]int) map[[2]int]int {
	idx := make(map[[2]int]int, len(ev))
	for e, pair := range ev {
		lo, hi := pair[0], pair[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		idx[[2]int{lo, hi}] = e
	}
	return idx
}

// CopFE builds the face→edge incidence operator. Each face is its ordered
// boundary vertex traversal; for every consecutive endpoint pair (wrapping
// last→first) the entry sign is +1 when the face traverses the edge in its
// canonical low→high direction, −1 otherwise. A face referencing an edge
// absent from ev is a malformed complex.
func CopFE(fv [][]int, ev [][]int) (*Op, error) {
	idx := edgeIndex(ev)
	b := NewOpBuilder(len(ev))
	for f, face := range fv {
		if len(face) < 3 {
			return nil, fmt.Errorf("%w: face %d has %d vertices", ErrMalformedComplex, f, len(face))
		}
		cols := make([]int, 0, len(face))
		vals := make([]int8, 0, len(face))
		for i, a := range face {
			bv := face[(i+1)%len(face)]
			lo, hi := a, bv
			if lo > hi {
				lo, hi = hi, lo
			}
			e, ok := idx[[2]int{lo, hi}]
			if !ok {
				return nil, fmt.Errorf("%w: face %d references missing edge (%d,%d)", ErrMalformedComplex, f, a, bv)
			}
			s := int8(1)
			if a > bv {
				s = -1
			}
			cols = append(cols, e)
			vals = append(vals, s)
		}
		b.AddRow(cols, vals)
	}
	return b.Build(), nil
}

// BuildCops builds the signed edge and face operators from an edge list and
// a face list. Face vertex lists need not be ordered: the boundary cycle of
// each face is first recovered by an unsigned incidence walk, then the
// signed face operator is built from the recovered order.
func BuildCops(ev [][]int, fv [][]int) (*Op, *Op, error) {
	copEV, err := CopEV(ev, true)
	if err != nil {
		return nil, nil, err
	}
	ordered := make([][]int, len(fv))
	for f, face := range fv {
		cycle, err := CycleVertices(copEV, CellFromVertices(face))
		if err != nil {
			return nil, nil, fmt.Errorf("face %d: %w", f, err)
		}
		ordered[f] = cycle
	}
	copFE, err := CopFE(ordered, ev)
	if err != nil {
		return nil, nil, err
	}
	return copEV, copFE, nil
}

// FromCells builds an unsigned operator from a list of cells, each cell a
// list of lower-cell indices. Every referenced index gets a +1 entry.
func FromCells(cells [][]int) *Op {
	cols := 0
	for _, cell := range cells {
		for _, j := range cell {
			if j >= cols {
				cols = j + 1
			}
		}
	}
	b := NewOpBuilder(cols)
	for _, cell := range cells {
		uniq := append([]int(nil), cell...)
		sort.Ints(uniq)
		n := 0
		for i, j := range uniq {
			if i == 0 || j != uniq[i-1] {
				uniq[n] = j
				n++
			}
		}
		uniq = uniq[:n]
		vals := make([]int8, len(uniq))
		for i := range vals {
			vals[i] = 1
		}
		b.AddRow(uniq, vals)
	}
	return b.Build()
}

// ToCells inverts an operator to a list of cells: per-row nonzero column
// indices in ascending order, signs ignored.
func ToCells(m *Op) [][]int {
	cells := make([][]int, m.Rows())
	for i := range cells {
		cells[i] = append([]int(nil), m.RowCols(i)...)
	}
	return cells
}

// edgeEndpoints returns the canonical (low, high) endpoints of edge e in an
// edge operator.
func edgeEndpoints(ev *Op, e int) (lo, hi int, err error) {
	cols := ev.RowCols(e)
	if len(cols) != 2 {
		return 0, 0, fmt.Errorf("%w: edge %d has %d endpoints", ErrMalformedComplex, e, len(cols))
	}
	return cols[0], cols[1], nil
}
