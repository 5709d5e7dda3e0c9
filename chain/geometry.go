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

import "math"

// Epsilon is the absolute per-coordinate tolerance used for vertex equality.
const Epsilon = 1e-8

// Points is an ordered vertex set: one row per point, 2 or 3 coordinates per
// row. Points are addressed by 0-based row index.
type Points [][]float64

// Dim returns the coordinate dimension, or 0 for an empty set.
func (p Points) Dim() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// column gathers coordinate axis j of every point into a fresh slice
// (structure-of-arrays layout for the batch kernels).
func (p Points) column(j int) []float64 {
	out := make([]float64, len(p))
	for i, row := range p {
		out[i] = row[j]
	}
	return out
}

// BBox returns the per-axis minimum and maximum over all points.
func BBox(p Points) (min, max []float64) {
	d := p.Dim()
	min = make([]float64, d)
	max = make([]float64, d)
	for j := 0; j < d; j++ {
		min[j], max[j] = BaseBatchMinMax(p.column(j))
	}
	return min, max
}

// BBoxContains reports whether the outer box contains the inner box
// componentwise: outer.min ≤ inner.min ≤ inner.max ≤ outer.max.
func BBoxContains(outerMin, outerMax, innerMin, innerMax []float64) bool {
	for j := range outerMin {
		if outerMin[j] > innerMin[j] || innerMax[j] > outerMax[j] || innerMin[j] > innerMax[j] {
			return false
		}
	}
	return true
}

// TriangleArea returns the signed area of the planar triangle (p1, p2, p3),
// half the determinant of the 3×3 matrix whose rows are (x, y, 1). Positive
// for counter-clockwise orientation. Only the first two coordinates are used.
func TriangleArea(p1, p2, p3 []float64) float64 {
	return ((p2[0]-p1[0])*(p3[1]-p1[1]) - (p3[0]-p1[0])*(p2[1]-p1[1])) / 2
}

// VEquals reports whether a and b agree in every coordinate within Epsilon.
func VEquals(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for j := range a {
		if math.Abs(a[j]-b[j]) >= Epsilon {
			return false
		}
	}
	return true
}

// VIn reports whether v matches some point of set within Epsilon.
func VIn(v []float64, set Points) bool {
	for _, w := range set {
		if VEquals(v, w) {
			return true
		}
	}
	return false
}
