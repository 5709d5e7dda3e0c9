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
	"testing"
)

func TestBBox(t *testing.T) {
	pts := Points{
		{1, -2, 3},
		{-4, 5, 0},
		{2, 2, 2},
		{0, 0, -1},
	}
	min, max := BBox(pts)
	wantMin := []float64{-4, -2, -1}
	wantMax := []float64{2, 5, 3}
	for j := range wantMin {
		if min[j] != wantMin[j] || max[j] != wantMax[j] {
			t.Errorf("BBox axis %d = [%v, %v], want [%v, %v]", j, min[j], max[j], wantMin[j], wantMax[j])
		}
	}
}

func TestBBoxContains(t *testing.T) {
	tests := []struct {
		outerMin, outerMax []float64
		innerMin, innerMax []float64
		want               bool
	}{
		{[]float64{0, 0}, []float64{10, 10}, []float64{1, 1}, []float64{2, 2}, true},
		{[]float64{0, 0}, []float64{10, 10}, []float64{0, 0}, []float64{10, 10}, true},
		{[]float64{0, 0}, []float64{10, 10}, []float64{-1, 1}, []float64{2, 2}, false},
		{[]float64{0, 0}, []float64{10, 10}, []float64{1, 1}, []float64{2, 11}, false},
	}
	for i, tc := range tests {
		if got := BBoxContains(tc.outerMin, tc.outerMax, tc.innerMin, tc.innerMax); got != tc.want {
			t.Errorf("case %d: BBoxContains = %v, want %v", i, got, tc.want)
		}
	}
}

func TestTriangleArea(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{1, 0}
	c := []float64{0, 1}
	if got := TriangleArea(a, b, c); got != 0.5 {
		t.Errorf("CCW area = %v, want 0.5", got)
	}
	if got := TriangleArea(a, c, b); got != -0.5 {
		t.Errorf("CW area = %v, want -0.5", got)
	}
	if got := TriangleArea(a, b, []float64{2, 0}); got != 0 {
		t.Errorf("collinear area = %v, want 0", got)
	}
}

func TestVEquals(t *testing.T) {
	if !VEquals([]float64{1, 2, 3}, []float64{1 + 1e-9, 2, 3 - 1e-9}) {
		t.Error("points within tolerance should be equal")
	}
	if VEquals([]float64{1, 2, 3}, []float64{1 + 1e-7, 2, 3}) {
		t.Error("points beyond tolerance should differ")
	}
	if VEquals([]float64{1, 2}, []float64{1, 2, 3}) {
		t.Error("dimension mismatch should differ")
	}
}

func TestVIn(t *testing.T) {
	set := Points{{0, 0}, {1, 1}, {2, 2}}
	if !VIn([]float64{1 + 1e-9, 1}, set) {
		t.Error("near-duplicate should be found")
	}
	if VIn([]float64{3, 3}, set) {
		t.Error("missing point should not be found")
	}
}
