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

	"github.com/google/go-cmp/cmp"
)

// twoSquares returns two unit squares sharing the edge x=1, each as an
// independent 2-skeleton with its own copy of the shared vertices.
func twoSquares(t *testing.T) (Points, *Op, *Op) {
	t.Helper()
	vA := Points{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	vB := Points{{1, 0}, {2, 0}, {2, 1}, {1, 1}}
	ev := [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	fv := [][]int{{0, 1, 2, 3}}
	evA, feA, err := BuildCops(ev, fv)
	if err != nil {
		t.Fatal(err)
	}
	evB, feB, err := BuildCops(ev, fv)
	if err != nil {
		t.Fatal(err)
	}
	v, ev2, fe2 := Merge2Skeletons(vA, evA, feA, vB, evB, feB)
	return v, ev2, fe2
}

func TestMergeVertices(t *testing.T) {
	v, ev, fe := twoSquares(t)
	nv, nev, nfe, err := MergeVertices(v, ev, fe)
	if err != nil {
		t.Fatal(err)
	}
	if len(nv) != 6 {
		t.Fatalf("vertex count = %d, want 6", len(nv))
	}
	if nev.Rows() != 7 {
		t.Fatalf("edge count = %d, want 7 (shared edge deduplicated)", nev.Rows())
	}
	if nfe.Rows() != 2 {
		t.Fatalf("face count = %d, want 2", nfe.Rows())
	}

	// Vertices come out in lexicographic coordinate order.
	want := Points{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}
	if diff := cmp.Diff(want, nv); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}

	// Every face row must still be a closed boundary.
	if !nfe.Mul(nev).IsZero() {
		t.Error("merged complex lost closedness")
	}
}

func TestMergeVerticesTolerance(t *testing.T) {
	// A vertex displaced by less than Epsilon merges with its twin.
	v := Points{{0, 0}, {1, 0}, {1 + 1e-9, 1e-10}, {2, 0}}
	ev, err := CopEV([][]int{{0, 1}, {2, 3}}, true)
	if err != nil {
		t.Fatal(err)
	}
	nv, nev, _, err := MergeVertices(v, ev, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(nv) != 3 {
		t.Fatalf("vertex count = %d, want 3", len(nv))
	}
	want := [][]int{{0, 1}, {1, 2}}
	if diff := cmp.Diff(want, ToCells(nev)); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeVerticesCollapsedEdge(t *testing.T) {
	// An edge whose endpoints merge disappears.
	v := Points{{0, 0}, {1e-9, 1e-9}, {1, 0}}
	ev, err := CopEV([][]int{{0, 1}, {1, 2}}, true)
	if err != nil {
		t.Fatal(err)
	}
	nv, nev, _, err := MergeVertices(v, ev, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(nv) != 2 || nev.Rows() != 1 {
		t.Fatalf("got (%d vertices, %d edges), want (2, 1)", len(nv), nev.Rows())
	}
}

func TestMergeVerticesDeterminism(t *testing.T) {
	// The normalized output must not depend on the stacking order of the
	// inputs.
	vA := Points{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	vB := Points{{1, 0}, {2, 0}, {2, 1}, {1, 1}}
	ev := [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	fv := [][]int{{0, 1, 2, 3}}
	evA, feA, err := BuildCops(ev, fv)
	if err != nil {
		t.Fatal(err)
	}
	evB, feB, err := BuildCops(ev, fv)
	if err != nil {
		t.Fatal(err)
	}

	v1, e1, f1 := Merge2Skeletons(vA, evA, feA, vB, evB, feB)
	v2, e2, f2 := Merge2Skeletons(vB, evB, feB, vA, evA, feA)

	nv1, nev1, nfe1, err := MergeVertices(v1, e1, f1)
	if err != nil {
		t.Fatal(err)
	}
	nv2, nev2, nfe2, err := MergeVertices(v2, e2, f2)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(nv1, nv2); diff != "" {
		t.Errorf("vertex order differs between stackings:\n%s", diff)
	}
	if !nev1.Equal(nev2) {
		t.Error("edge operators differ between stackings")
	}
	if !nfe1.Equal(nfe2) {
		t.Error("face operators differ between stackings")
	}
}
