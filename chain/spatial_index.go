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

	"github.com/dhconnelly/rtreego"
)

// SpatialIndexer maps each face of a 2-skeleton to the faces whose bounding
// boxes may interact with it. It is the spatial-index collaborator of the
// arrangement driver.
type SpatialIndexer func(v Points, ev, fe *Op) ([][]int, error)

// faceBox is one face's bounding box inside the R-tree.
type faceBox struct {
	rect rtreego.Rect
	face int
}

func (b *faceBox) Bounds() rtreego.Rect { return b.rect }

// BoxIndex is the default SpatialIndexer: an R-tree over per-face bounding
// boxes. Candidates of face σ are the other faces whose boxes intersect
// σ's box, in ascending face order.
func BoxIndex(v Points, ev, fe *Op) ([][]int, error) {
	dim := v.Dim()
	tree := rtreego.NewTree(dim, 8, 16)
	boxes := make([]*faceBox, fe.Rows())
	for f := 0; f < fe.Rows(); f++ {
		verts, err := faceVertexSet(ev, fe, f)
		if err != nil {
			return nil, err
		}
		pts := make(Points, len(verts))
		for i, idx := range verts {
			pts[i] = v[idx]
		}
		min, max := BBox(pts)
		p := make(rtreego.Point, dim)
		lengths := make([]float64, dim)
		for j := 0; j < dim; j++ {
			// R-tree rectangles need strictly positive extents and the
			// R-tree's intersection test is strict, so pad every box by the
			// vertex tolerance on both sides: axis-aligned faces get a
			// positive extent and boxes that merely touch still intersect.
			p[j] = min[j] - Epsilon
			lengths[j] = max[j] - min[j] + 2*Epsilon
		}
		rect, err := rtreego.NewRect(p, lengths)
		if err != nil {
			return nil, err
		}
		boxes[f] = &faceBox{rect: rect, face: f}
		tree.Insert(boxes[f])
	}

	out := make([][]int, fe.Rows())
	for f := range boxes {
		hits := tree.SearchIntersect(boxes[f].rect)
		cands := make([]int, 0, len(hits))
		for _, h := range hits {
			fb := h.(*faceBox)
			if fb.face != f {
				cands = append(cands, fb.face)
			}
		}
		sort.Ints(cands)
		out[f] = cands
	}
	return out, nil
}

// faceVertexSet returns the distinct vertex indices on the boundary of face
// f, ascending.
func faceVertexSet(ev, fe *Op, f int) ([]int, error) {
	set := make(map[int]bool)
	for _, e := range fe.RowCols(f) {
		lo, hi, err := edgeEndpoints(ev, e)
		if err != nil {
			return nil, err
		}
		set[lo] = true
		set[hi] = true
	}
	verts := make([]int, 0, len(set))
	for v := range set {
		verts = append(verts, v)
	}
	sort.Ints(verts)
	return verts, nil
}
