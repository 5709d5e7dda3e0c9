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

// Merge1Skeletons stacks two 1-skeletons: vertex rows are concatenated and
// the edge operators merged block-diagonally with shifted indices. No vertex
// deduplication is performed; see MergeVertices.
func Merge1Skeletons(v1 Points, ev1 *Op, v2 Points, ev2 *Op) (Points, *Op) {
	v := make(Points, 0, len(v1)+len(v2))
	v = append(v, v1...)
	v = append(v, v2...)
	return v, BlockDiag(ev1, ev2)
}

// Merge2Skeletons stacks two 2-skeletons: vertices, edge operators and face
// operators. No vertex deduplication is performed.
func Merge2Skeletons(v1 Points, ev1, fe1 *Op, v2 Points, ev2, fe2 *Op) (Points, *Op, *Op) {
	v, ev := Merge1Skeletons(v1, ev1, v2, ev2)
	return v, ev, BlockDiag(fe1, fe2)
}

// DeleteEdges removes the edges listed in todel from the 1-skeleton, then
// removes every vertex left with no incident edge, renumbering the surviving
// columns. Vertex and edge order is otherwise preserved.
func DeleteEdges(todel []int, v Points, ev *Op) (Points, *Op) {
	keep := make([]bool, ev.Rows())
	for i := range keep {
		keep[i] = true
	}
	for _, e := range todel {
		if e >= 0 && e < len(keep) {
			keep[e] = false
		}
	}
	kept := ev.selectRows(keep)

	counts := kept.colCounts()
	colMap := make([]int, kept.Cols())
	nv := make(Points, 0, len(v))
	width := 0
	for j, c := range counts {
		if c == 0 {
			colMap[j] = -1
			continue
		}
		colMap[j] = width
		width++
		nv = append(nv, v[j])
	}
	return nv, kept.remapCols(colMap, width)
}
