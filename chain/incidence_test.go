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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// unitSquare is the running example: four vertices, four boundary edges,
// one counter-clockwise face.
func unitSquare(t *testing.T) (Points, [][]int, [][]int) {
	t.Helper()
	v := Points{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	ev := [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	fv := [][]int{{0, 1, 2, 3}}
	return v, ev, fv
}

func TestCopEVSigned(t *testing.T) {
	_, ev, _ := unitSquare(t)
	m, err := CopEV(ev, true)
	if err != nil {
		t.Fatal(err)
	}
	if m.Rows() != 4 || m.Cols() != 4 {
		t.Fatalf("shape = (%d,%d), want (4,4)", m.Rows(), m.Cols())
	}
	for e, pair := range ev {
		lo, hi := pair[0], pair[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		if m.At(e, lo) != -1 || m.At(e, hi) != 1 {
			t.Errorf("edge %d: got (%d at %d, %d at %d), want (-1, +1)", e, m.At(e, lo), lo, m.At(e, hi), hi)
		}
	}
}

func TestCopEVUnsigned(t *testing.T) {
	m, err := CopEV([][]int{{2, 0}}, false)
	if err != nil {
		t.Fatal(err)
	}
	if m.At(0, 0) != 1 || m.At(0, 2) != 1 {
		t.Error("unsigned operator should hold +1 at both endpoints")
	}
}

func TestCopEVMalformed(t *testing.T) {
	if _, err := CopEV([][]int{{1, 1}}, true); !errors.Is(err, ErrMalformedComplex) {
		t.Errorf("degenerate edge: got %v, want ErrMalformedComplex", err)
	}
	if _, err := CopEV([][]int{{0}}, true); !errors.Is(err, ErrMalformedComplex) {
		t.Errorf("short edge: got %v, want ErrMalformedComplex", err)
	}
}

func TestCopFESquare(t *testing.T) {
	_, ev, fv := unitSquare(t)
	fe, err := CopFE(fv, ev)
	if err != nil {
		t.Fatal(err)
	}
	if fe.Rows() != 1 || fe.Cols() != 4 {
		t.Fatalf("shape = (%d,%d), want (1,4)", fe.Rows(), fe.Cols())
	}
	// The face traverses edges 0..2 low→high and edge 3 high→low.
	want := []int{1, 1, 1, -1}
	for e, s := range want {
		if got := fe.At(0, e); got != s {
			t.Errorf("sign of edge %d = %d, want %d", e, got, s)
		}
	}
}

func TestCopFEMissingEdge(t *testing.T) {
	_, err := CopFE([][]int{{0, 1, 2}}, [][]int{{0, 1}, {1, 2}})
	if !errors.Is(err, ErrMalformedComplex) {
		t.Errorf("missing closing edge: got %v, want ErrMalformedComplex", err)
	}
}

func TestSignConsistency(t *testing.T) {
	// For every face and incident edge, the operator sign must match the
	// traversal direction of the recovered cycle.
	_, ev, fv := unitSquare(t)
	copEV, copFE, err := BuildCops(ev, fv)
	if err != nil {
		t.Fatal(err)
	}
	for f := 0; f < copFE.Rows(); f++ {
		cycle, err := CycleVertices(copEV, FaceCell(copFE, f))
		if err != nil {
			t.Fatal(err)
		}
		pos := make(map[int]int, len(cycle))
		for i, vtx := range cycle {
			pos[vtx] = i
		}
		edges, signs := copFE.Row(f)
		for t2, e := range edges {
			lo, hi, err := edgeEndpoints(copEV, e)
			if err != nil {
				t.Fatal(err)
			}
			forward := (pos[lo]+1)%len(cycle) == pos[hi]
			if forward != (signs[t2] > 0) {
				t.Errorf("face %d edge %d: sign %d disagrees with traversal", f, e, signs[t2])
			}
		}
	}
}

func TestClosedness(t *testing.T) {
	_, ev, fv := unitSquare(t)
	copEV, copFE, err := BuildCops(ev, fv)
	if err != nil {
		t.Fatal(err)
	}
	if !copFE.Mul(copEV).IsZero() {
		t.Error("boundary of boundary is nonzero for a closed face")
	}
}

func TestCellsRoundTrip(t *testing.T) {
	cells := [][]int{{0, 1}, {1, 2}, {0, 2}, {2, 3, 4}}
	if diff := cmp.Diff(cells, ToCells(FromCells(cells))); diff != "" {
		t.Errorf("cop2lar(lar2cop(C)) mismatch (-want +got):\n%s", diff)
	}

	m := FromCells(cells)
	if !m.Equal(FromCells(ToCells(m))) {
		t.Error("lar2cop(cop2lar(M)) differs from M for an unsigned operator")
	}
}
