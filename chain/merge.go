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
	"sort"
)

// MergeVertices deduplicates the vertices of a 2-skeleton with the Epsilon
// tolerance and remaps both operators onto the representatives. Because the
// tolerance is not transitive, clustering is done in a single lexicographic
// sweep: each vertex joins the most recently created representative within
// Epsilon, scanning backwards only through the window of representatives
// whose leading coordinate is close enough.
//
// The output is deterministic regardless of the input row order: vertices
// come out in lexicographic coordinate order, edges in canonical (low, high)
// order, faces in a canonical signature order with duplicates (equal up to
// orientation) removed. Each output face row is stored in canonical
// orientation, with its lowest-numbered edge at coefficient +1. fe may be nil
// when merging a bare 1-skeleton.
func MergeVertices(v Points, ev, fe *Op) (Points, *Op, *Op, error) {
	n := len(v)
	if n == 0 {
		return nil, nil, nil, fmt.Errorf("%w: empty vertex set", ErrMalformedComplex)
	}

	// Lexicographic sweep order.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return lexLess(v[order[a]], v[order[b]])
	})

	// Cluster into representatives. Representatives are created in sweep
	// order, so their leading coordinates are nondecreasing and the
	// backward scan can stop at the Epsilon window edge.
	repOf := make([]int, n)
	var reps []int // original row index of each representative
	for _, i := range order {
		found := -1
		for r := len(reps) - 1; r >= 0; r-- {
			if v[i][0]-v[reps[r]][0] >= Epsilon {
				break
			}
			if VEquals(v[i], v[reps[r]]) {
				found = r
				break
			}
		}
		if found < 0 {
			found = len(reps)
			reps = append(reps, i)
		}
		repOf[i] = found
	}

	// Remap edges onto representatives, dropping collapsed ones and
	// deduplicating on the canonical endpoint pair.
	type edgeRef struct {
		idx  int
		flip bool
	}
	pairSet := make(map[[2]int]bool)
	edgeOf := make([]edgeRef, ev.Rows())
	for e := 0; e < ev.Rows(); e++ {
		lo, hi, err := edgeEndpoints(ev, e)
		if err != nil {
			return nil, nil, nil, err
		}
		a, b := repOf[lo], repOf[hi]
		if a == b {
			edgeOf[e] = edgeRef{idx: -1}
			continue
		}
		flip := a > b
		if flip {
			a, b = b, a
		}
		pairSet[[2]int{a, b}] = true
		edgeOf[e] = edgeRef{flip: flip}
	}
	pairs := make([][2]int, 0, len(pairSet))
	for p := range pairSet {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a][0] != pairs[b][0] {
			return pairs[a][0] < pairs[b][0]
		}
		return pairs[a][1] < pairs[b][1]
	})

	// Drop representatives no surviving edge references, keeping lex order.
	used := make([]bool, len(reps))
	for _, p := range pairs {
		used[p[0]] = true
		used[p[1]] = true
	}
	repMap := make([]int, len(reps))
	nv := make(Points, 0, len(reps))
	for r := range reps {
		if !used[r] {
			repMap[r] = -1
			continue
		}
		repMap[r] = len(nv)
		nv = append(nv, v[reps[r]])
	}

	pairIdx := make(map[[2]int]int, len(pairs))
	evList := make([][]int, len(pairs))
	for k, p := range pairs {
		pairIdx[p] = k
		evList[k] = []int{repMap[p[0]], repMap[p[1]]}
	}
	for e := 0; e < ev.Rows(); e++ {
		if edgeOf[e].idx < 0 {
			continue
		}
		lo, hi, _ := edgeEndpoints(ev, e)
		a, b := repOf[lo], repOf[hi]
		if a > b {
			a, b = b, a
		}
		edgeOf[e].idx = pairIdx[[2]int{a, b}]
	}
	nev, err := CopEV(evList, true)
	if err != nil {
		return nil, nil, nil, err
	}
	if fe == nil {
		return nv, nev, nil, nil
	}

	// Remap face rows, canonicalize orientation, and deduplicate.
	type faceRow struct {
		cols []int
		vals []int8
	}
	seen := make(map[string]bool)
	var rows []faceRow
	for f := 0; f < fe.Rows(); f++ {
		cols, vals := fe.Row(f)
		acc := make(map[int]int)
		for t, e := range cols {
			ref := edgeOf[e]
			if ref.idx < 0 {
				continue
			}
			c := int(vals[t])
			if ref.flip {
				c = -c
			}
			acc[ref.idx] += c
		}
		nc := make([]int, 0, len(acc))
		for e, c := range acc {
			if c != 0 {
				nc = append(nc, e)
			}
		}
		if len(nc) == 0 {
			continue
		}
		sort.Ints(nc)
		nvals := make([]int8, len(nc))
		for t, e := range nc {
			nvals[t] = int8(acc[e])
		}
		// Canonical orientation, leading coefficient +1: used both for the
		// duplicate comparison and as the orientation of the stored row.
		if nvals[0] < 0 {
			for t := range nvals {
				nvals[t] = -nvals[t]
			}
		}
		key := rowKey(nc, nvals)
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, faceRow{cols: nc, vals: nvals})
	}
	sort.Slice(rows, func(a, b int) bool {
		return rowKey(rows[a].cols, rows[a].vals) < rowKey(rows[b].cols, rows[b].vals)
	})
	fb := NewOpBuilder(nev.Rows())
	for _, r := range rows {
		fb.AddRow(r.cols, r.vals)
	}
	return nv, nev, fb.Build(), nil
}

func lexLess(a, b []float64) bool {
	for j := range a {
		if a[j] != b[j] {
			return a[j] < b[j]
		}
	}
	return false
}

func rowKey(cols []int, vals []int8) string {
	buf := make([]byte, 0, len(cols)*6)
	for t, c := range cols {
		buf = append(buf, byte(c>>24), byte(c>>16), byte(c>>8), byte(c))
		buf = append(buf, byte(vals[t]))
	}
	return string(buf)
}
