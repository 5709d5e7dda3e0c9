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

func TestMerge1Skeletons(t *testing.T) {
	v1 := Points{{0, 0}, {1, 0}}
	ev1, err := CopEV([][]int{{0, 1}}, true)
	if err != nil {
		t.Fatal(err)
	}
	v2 := Points{{2, 0}, {3, 0}, {4, 0}}
	ev2, err := CopEV([][]int{{0, 1}, {1, 2}}, true)
	if err != nil {
		t.Fatal(err)
	}

	v, ev := Merge1Skeletons(v1, ev1, v2, ev2)
	if len(v) != 5 {
		t.Fatalf("merged vertex count = %d, want 5", len(v))
	}
	want := [][]int{{0, 1}, {2, 3}, {3, 4}}
	if diff := cmp.Diff(want, ToCells(ev)); diff != "" {
		t.Errorf("merged edges mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge2Skeletons(t *testing.T) {
	va, eva, fva := unitSquare(t)
	evA, feA, err := BuildCops(eva, fva)
	if err != nil {
		t.Fatal(err)
	}
	v, ev, fe := Merge2Skeletons(va, evA, feA, va, evA, feA)
	if len(v) != 8 || ev.Rows() != 8 || fe.Rows() != 2 {
		t.Fatalf("merged shape = (%d vertices, %d edges, %d faces), want (8, 8, 2)", len(v), ev.Rows(), fe.Rows())
	}
	want := [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}}
	if diff := cmp.Diff(want, ToCells(fe)); diff != "" {
		t.Errorf("merged faces mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteEdges(t *testing.T) {
	// Deleting the tail edges of a path 0-1-2-3 leaves vertices 2 and 3
	// dangling; both must be dropped and the columns renumbered.
	v := Points{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	ev, err := CopEV([][]int{{0, 1}, {1, 2}, {2, 3}}, true)
	if err != nil {
		t.Fatal(err)
	}
	nv, nev := DeleteEdges([]int{1, 2}, v, ev)
	if len(nv) != 2 {
		t.Fatalf("vertex count = %d, want 2", len(nv))
	}
	if nev.Rows() != 1 || nev.Cols() != 2 {
		t.Fatalf("edge operator shape = (%d,%d), want (1,2)", nev.Rows(), nev.Cols())
	}
	if diff := cmp.Diff([][]int{{0, 1}}, ToCells(nev)); diff != "" {
		t.Errorf("surviving edges mismatch (-want +got):\n%s", diff)
	}
	if nev.At(0, 0) != -1 || nev.At(0, 1) != 1 {
		t.Error("surviving edge lost its signs")
	}

	// A middle deletion keeps the endpoints of the surviving edges.
	nv, nev = DeleteEdges([]int{1}, v, ev)
	if len(nv) != 4 || nev.Rows() != 2 {
		t.Fatalf("got (%d vertices, %d edges), want (4, 2)", len(nv), nev.Rows())
	}
}
