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
)

// incidenceGraph is the vertex→edge adjacency of an edge operator, used for
// the incidence walks.
type incidenceGraph struct {
	outEdges [][]int // vertex index -> incident edge indices, ascending
}

func newIncidenceGraph(ev *Op) *incidenceGraph {
	g := &incidenceGraph{outEdges: make([][]int, ev.Cols())}
	for e := 0; e < ev.Rows(); e++ {
		for _, v := range ev.RowCols(e) {
			g.outEdges[v] = append(g.outEdges[v], e)
		}
	}
	return g
}

// edgesAt returns the indices of edges incident to vertex v.
func (g *incidenceGraph) edgesAt(v int) []int {
	if v >= len(g.outEdges) {
		return nil
	}
	return g.outEdges[v]
}

// CycleVertices recovers the ordered vertex cycle of a face from the edge
// operator. The face may be presented as a signed edge chain (orbit walk on
// the tail→head permutation induced by the signs), an ordered or unordered
// vertex list (unsigned incidence walk), or an unsigned edge set (structural
// walk). The result is a single closed traversal with consistent
// orientation and no repeated start vertex.
//
// For a signed chain whose edges decompose into several orbits (a face with
// holes) only the orbit of the first edge is returned; CycleOrbits returns
// all of them.
func CycleVertices(ev *Op, c Cell) ([]int, error) {
	switch c.kind {
	case CellChain:
		orbits, err := chainOrbits(ev, c.edges, c.coeffs, true)
		if err != nil {
			return nil, err
		}
		return orbits[0], nil
	case CellVertices:
		return unsignedWalk(ev, c.verts)
	case CellEdgeSet:
		orbits, err := structuralOrbits(ev, c.edges, true)
		if err != nil {
			return nil, err
		}
		return orbits[0], nil
	}
	return nil, fmt.Errorf("%w: unknown cell kind %d", ErrMalformedComplex, c.kind)
}

// CycleOrbits returns every boundary cycle of a face presented as a signed
// chain or an edge set. A face with holes yields one orbit per boundary
// component.
func CycleOrbits(ev *Op, c Cell) ([][]int, error) {
	switch c.kind {
	case CellChain:
		return chainOrbits(ev, c.edges, c.coeffs, false)
	case CellEdgeSet:
		return structuralOrbits(ev, c.edges, false)
	case CellVertices:
		cycle, err := unsignedWalk(ev, c.verts)
		if err != nil {
			return nil, err
		}
		return [][]int{cycle}, nil
	}
	return nil, fmt.Errorf("%w: unknown cell kind %d", ErrMalformedComplex, c.kind)
}

// chainOrbits walks the tail→head permutation induced by a signed edge
// chain. A positive coefficient traverses the edge low→high, a negative one
// high→low. The orbits of the permutation are the boundary cycles. With
// firstOnly set, only the orbit seeded at the first edge is walked.
func chainOrbits(ev *Op, edges []int, coeffs []int8, firstOnly bool) ([][]int, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: empty chain", ErrMalformedComplex)
	}
	next := make(map[int]int, len(edges))
	for i, e := range edges {
		lo, hi, err := edgeEndpoints(ev, e)
		if err != nil {
			return nil, err
		}
		tail, head := lo, hi
		if coeffs[i] < 0 {
			tail, head = hi, lo
		}
		if _, dup := next[tail]; dup {
			return nil, fmt.Errorf("%w: vertex %d is tail of two chain edges", ErrMalformedComplex, tail)
		}
		next[tail] = head
	}

	var orbits [][]int
	visited := make(map[int]bool, len(next))
	for i := range edges {
		lo, hi, _ := edgeEndpoints(ev, edges[i])
		seed := lo
		if coeffs[i] < 0 {
			seed = hi
		}
		if visited[seed] {
			continue
		}
		cycle := []int{seed}
		visited[seed] = true
		for v := next[seed]; v != seed; {
			head, ok := next[v]
			if !ok {
				return nil, fmt.Errorf("%w: chain does not close at vertex %d", ErrMalformedComplex, v)
			}
			cycle = append(cycle, v)
			visited[v] = true
			v = head
		}
		orbits = append(orbits, cycle)
		if firstOnly {
			break
		}
	}
	return orbits, nil
}

// unsignedWalk orders a face given as a vertex list by walking the edge
// incidences: from the current vertex, pick an unused incident edge whose
// other endpoint belongs to the face and has not been visited (unless it is
// the start, which closes the cycle). Ties break on the first edge in
// ascending edge order.
func unsignedWalk(ev *Op, face []int) ([]int, error) {
	if len(face) < 3 {
		return nil, fmt.Errorf("%w: face has %d vertices", ErrMalformedComplex, len(face))
	}
	g := newIncidenceGraph(ev)
	inFace := make(map[int]bool, len(face))
	for _, v := range face {
		inFace[v] = true
	}

	start := face[0]
	cycle := []int{start}
	visited := map[int]bool{start: true}
	usedEdge := make(map[int]bool)
	cur := start
	for {
		nextV := -1
		for _, e := range g.edgesAt(cur) {
			if usedEdge[e] {
				continue
			}
			lo, hi, err := edgeEndpoints(ev, e)
			if err != nil {
				return nil, err
			}
			other := lo
			if other == cur {
				other = hi
			}
			if !inFace[other] {
				continue
			}
			if visited[other] && !(other == start && len(cycle) == len(face)) {
				continue
			}
			usedEdge[e] = true
			nextV = other
			break
		}
		if nextV < 0 {
			return nil, fmt.Errorf("%w: no next edge at vertex %d", ErrAmbiguousTraversal, cur)
		}
		if nextV == start {
			return cycle, nil
		}
		cycle = append(cycle, nextV)
		visited[nextV] = true
		cur = nextV
	}
}

// structuralOrbits reconstructs boundary cycles from the nonzero pattern of
// an unsigned edge set. Each vertex of a simple cycle is incident to exactly
// two set edges; the walk leaves each vertex by the edge it did not arrive
// on.
func structuralOrbits(ev *Op, edges []int, firstOnly bool) ([][]int, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: empty edge set", ErrMalformedComplex)
	}
	// vertex -> incident set edges
	at := make(map[int][]int)
	for _, e := range edges {
		lo, hi, err := edgeEndpoints(ev, e)
		if err != nil {
			return nil, err
		}
		at[lo] = append(at[lo], e)
		at[hi] = append(at[hi], e)
	}
	for v, es := range at {
		if len(es) != 2 {
			return nil, fmt.Errorf("%w: vertex %d touches %d set edges", ErrMalformedComplex, v, len(es))
		}
	}

	var orbits [][]int
	usedEdge := make(map[int]bool, len(edges))
	for _, seedEdge := range edges {
		if usedEdge[seedEdge] {
			continue
		}
		start, _, _ := edgeEndpoints(ev, seedEdge)
		cycle := []int{start}
		cur := start
		e := seedEdge
		for {
			usedEdge[e] = true
			lo, hi, _ := edgeEndpoints(ev, e)
			other := lo
			if other == cur {
				other = hi
			}
			if other == start {
				break
			}
			cycle = append(cycle, other)
			es := at[other]
			if es[0] == e {
				e = es[1]
			} else {
				e = es[0]
			}
			cur = other
		}
		orbits = append(orbits, cycle)
		if firstOnly {
			break
		}
	}
	return orbits, nil
}
