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
	"math"
)

// Triangulator is the constrained-triangulation collaborator. Triangulate
// receives the planar points of one face, the original vertex index of each
// point, and the boundary constraint edges as index pairs into points. It
// returns triangles as triples of the given labels, wound the same way as
// the boundary cycle: TriangulateFace repairs global orientation from the
// cycle's signed area, which is only sound when the triangles follow the
// input winding.
type Triangulator interface {
	Triangulate(points [][2]float64, labels []int, segments [][2]int) ([][3]int, error)
}

// TriangulateFace triangulates face f of a 2-skeleton: the boundary cycle is
// recovered from the signed incidences, the face is rotated onto its plane
// basis and projected to 2D, the constrained triangulation runs on the
// projection, and the triangle winding is repaired from the signed planar
// area of the cycle.
func TriangulateFace(v Points, ev, fe *Op, f int, tri Triangulator) ([][3]int, error) {
	cycle, err := CycleVertices(ev, FaceCell(fe, f))
	if err != nil {
		return nil, fmt.Errorf("face %d: %w", f, err)
	}
	if len(cycle) < 3 {
		return nil, fmt.Errorf("%w: face %d boundary has %d vertices", ErrMalformedComplex, f, len(cycle))
	}

	pts, err := projectCycle(v, cycle)
	if err != nil {
		return nil, fmt.Errorf("face %d: %w", f, err)
	}

	segments := make([][2]int, len(cycle))
	for i := range cycle {
		segments[i] = [2]int{i, (i + 1) % len(cycle)}
	}
	triangles, err := tri.Triangulate(pts, cycle, segments)
	if err != nil {
		return nil, fmt.Errorf("face %d: %w", f, err)
	}

	if polygonArea(pts) < 0 {
		for t := range triangles {
			triangles[t][1], triangles[t][2] = triangles[t][2], triangles[t][1]
		}
	}
	return triangles, nil
}

// TriangulateFaces triangulates every face of the 2-skeleton. The result
// holds one triangle list per face, triples of original vertex indices.
func TriangulateFaces(v Points, ev, fe *Op, tri Triangulator) ([][][3]int, error) {
	out := make([][][3]int, fe.Rows())
	for f := 0; f < fe.Rows(); f++ {
		triangles, err := TriangulateFace(v, ev, fe, f, tri)
		if err != nil {
			return nil, err
		}
		out[f] = triangles
	}
	return out, nil
}

// FaceArea returns the signed area of a planar face lying in the xy plane:
// the boundary cycle is reconstructed and the signed areas of the fan
// (v0, vi, vi+1) are summed. The sign reveals the boundary orientation.
func FaceArea(v Points, ev *Op, face Cell) (float64, error) {
	cycle, err := CycleVertices(ev, face)
	if err != nil {
		return 0, err
	}
	if len(cycle) < 3 {
		return 0, fmt.Errorf("%w: boundary has %d vertices", ErrMalformedComplex, len(cycle))
	}
	pts := make([][2]float64, len(cycle))
	for i, idx := range cycle {
		pts[i] = [2]float64{v[idx][0], v[idx][1]}
	}
	return polygonArea(pts), nil
}

// polygonArea sums the signed fan areas of a closed planar cycle using the
// batch 2D cross kernel.
func polygonArea(pts [][2]float64) float64 {
	n := len(pts) - 2
	if n <= 0 {
		return 0
	}
	ax := make([]float64, n)
	ay := make([]float64, n)
	bx := make([]float64, n)
	by := make([]float64, n)
	for i := 0; i < n; i++ {
		ax[i] = pts[i+1][0] - pts[0][0]
		ay[i] = pts[i+1][1] - pts[0][1]
		bx[i] = pts[i+2][0] - pts[0][0]
		by[i] = pts[i+2][1] - pts[0][1]
	}
	cross := make([]float64, n)
	BaseBatchCross2D(ax, ay, bx, by, cross)
	sum := 0.0
	for _, c := range cross {
		sum += c
	}
	return sum / 2
}

// projectCycle rotates the face vertices onto an orthonormal plane basis and
// drops the constant normal coordinate. 2D input is passed through.
func projectCycle(v Points, cycle []int) ([][2]float64, error) {
	pts := make([][2]float64, len(cycle))
	if v.Dim() == 2 {
		for i, idx := range cycle {
			pts[i] = [2]float64{v[idx][0], v[idx][1]}
		}
		return pts, nil
	}

	basis, err := planeBasis(v, cycle)
	if err != nil {
		return nil, err
	}

	n := len(cycle)
	srcX := make([]float64, n)
	srcY := make([]float64, n)
	srcZ := make([]float64, n)
	for i, idx := range cycle {
		srcX[i] = v[idx][0]
		srcY[i] = v[idx][1]
		srcZ[i] = v[idx][2]
	}
	dstX := make([]float64, n)
	dstY := make([]float64, n)
	dstZ := make([]float64, n)
	BaseMatrixMulBatch(basis, srcX, srcY, srcZ, dstX, dstY, dstZ)
	for i := range pts {
		pts[i] = [2]float64{dstX[i], dstY[i]}
	}
	return pts, nil
}

// planeBasis builds an orthonormal basis (v1, v2, v3) on the plane of the
// cycle: v1 along the first boundary direction, v3 the plane normal found by
// scanning for a non-parallel second direction, v2 completing the frame.
func planeBasis(v Points, cycle []int) ([3][3]float64, error) {
	var basis [3][3]float64
	origin := v[cycle[0]]
	v1, ok := normalize(sub3(v[cycle[1]], origin))
	if !ok {
		return basis, fmt.Errorf("%w: zero-length boundary edge", ErrDegenerateGeometry)
	}
	var v3 [3]float64
	found := false
	for i := 2; i < len(cycle); i++ {
		u, ok := normalize(sub3(v[cycle[i]], origin))
		if !ok {
			continue
		}
		w := cross3(v1, u)
		if norm3(w) > Epsilon {
			v3, _ = normalize(w[:])
			found = true
			break
		}
	}
	if !found {
		return basis, fmt.Errorf("%w: all boundary vertices collinear", ErrDegenerateGeometry)
	}
	v2 := cross3(v3, v1)

	basis[0] = v1
	basis[1] = v2
	basis[2] = v3
	return basis, nil
}

func sub3(a, b []float64) []float64 {
	return []float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func norm3(a [3]float64) float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}

func normalize(a []float64) ([3]float64, bool) {
	n := math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
	if n < Epsilon {
		return [3]float64{}, false
	}
	return [3]float64{a[0] / n, a[1] / n, a[2] / n}, true
}
