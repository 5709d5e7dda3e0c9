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

// CellKind discriminates the three shapes a face can be presented in.
type CellKind int

const (
	// CellVertices is an ordered list of vertex indices (orientation
	// carried by order).
	CellVertices CellKind = iota
	// CellChain is a signed sparse edge vector: edge indices with ±1
	// coefficients.
	CellChain
	// CellEdgeSet is an unsigned set of edge indices; orientation is
	// reconstructed from the incidence structure.
	CellEdgeSet
)

// Cell is a single k-cell presented either as an ordered vertex list, a
// signed edge chain, or an unsigned edge set. The cycle extractor dispatches
// on the kind.
type Cell struct {
	kind   CellKind
	verts  []int
	edges  []int
	coeffs []int8
}

// CellFromVertices wraps an ordered vertex index list.
func CellFromVertices(verts []int) Cell {
	return Cell{kind: CellVertices, verts: verts}
}

// CellFromChain wraps a signed sparse edge vector. edges and coeffs must
// have equal length and coeffs entries must be ±1.
func CellFromChain(edges []int, coeffs []int8) Cell {
	return Cell{kind: CellChain, edges: edges, coeffs: coeffs}
}

// CellFromEdgeSet wraps an unsigned edge index set.
func CellFromEdgeSet(edges []int) Cell {
	return Cell{kind: CellEdgeSet, edges: edges}
}

// FaceCell returns row f of the face operator as a signed edge chain.
func FaceCell(fe *Op, f int) Cell {
	edges, coeffs := fe.Row(f)
	return CellFromChain(edges, coeffs)
}

// Kind returns the representation shape of the cell.
func (c Cell) Kind() CellKind { return c.kind }

// Vertices returns the vertex list of a CellVertices cell, nil otherwise.
func (c Cell) Vertices() []int { return c.verts }

// Edges returns the edge indices of a CellChain or CellEdgeSet cell.
func (c Cell) Edges() []int { return c.edges }

// Coeffs returns the signed coefficients of a CellChain cell, nil otherwise.
func (c Cell) Coeffs() []int8 { return c.coeffs }
