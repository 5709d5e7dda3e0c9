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

// Package cdt provides a pure-Go default for the constrained-triangulation
// collaborator: ear clipping of a simple polygon whose boundary is given by
// the constraint segments. It is sufficient for the face triangulator and
// the mesh writer; callers needing true constrained Delaunay quality or
// interior points plug in an external engine instead.
package cdt

import (
	"fmt"

	"github.com/akhenakh/chaingeo/chain"
)

// EarClipper implements chain.Triangulator by clipping ears off the simple
// polygon described by the constraint segments.
type EarClipper struct{}

// Triangulate triangulates the polygon whose boundary is the segment cycle.
// When no segments are given the points are taken to be in boundary order.
// Returns triangles as label triples, wound the same way as the boundary:
// a clockwise cycle yields clockwise triangles, so callers repairing global
// orientation from the cycle's signed area stay consistent.
func (EarClipper) Triangulate(points [][2]float64, labels []int, segments [][2]int) ([][3]int, error) {
	if len(points) != len(labels) {
		return nil, fmt.Errorf("%w: %d points but %d labels", chain.ErrMalformedComplex, len(points), len(labels))
	}
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: %d boundary points", chain.ErrDegenerateGeometry, len(points))
	}

	order, err := boundaryOrder(len(points), segments)
	if err != nil {
		return nil, err
	}

	// Work on indices into points, clipping in the given winding: a
	// clockwise ring flips the sign of every convexity and containment
	// test instead of being reversed, so the output keeps the input
	// orientation.
	ring := append([]int(nil), order...)
	orient := 1.0
	if ringArea(points, ring) < 0 {
		orient = -1
	}

	var out [][3]int
	for len(ring) > 3 {
		ear := findEar(points, ring, orient)
		if ear < 0 {
			return nil, fmt.Errorf("%w: no ear in %d-vertex ring", chain.ErrDegenerateGeometry, len(ring))
		}
		n := len(ring)
		a, b, c := ring[(ear+n-1)%n], ring[ear], ring[(ear+1)%n]
		out = append(out, [3]int{labels[a], labels[b], labels[c]})
		ring = append(ring[:ear], ring[ear+1:]...)
	}
	a, b, c := ring[0], ring[1], ring[2]
	if area2(points[a], points[b], points[c]) == 0 {
		return nil, fmt.Errorf("%w: zero-area polygon", chain.ErrDegenerateGeometry)
	}
	out = append(out, [3]int{labels[a], labels[b], labels[c]})
	return out, nil
}

// boundaryOrder chains the constraint segments into one closed traversal of
// all points. With no segments the natural order is used.
func boundaryOrder(n int, segments [][2]int) ([]int, error) {
	order := make([]int, 0, n)
	if len(segments) == 0 {
		for i := 0; i < n; i++ {
			order = append(order, i)
		}
		return order, nil
	}
	next := make(map[int]int, len(segments))
	for _, s := range segments {
		if _, dup := next[s[0]]; dup {
			return nil, fmt.Errorf("%w: point %d starts two segments", chain.ErrMalformedComplex, s[0])
		}
		next[s[0]] = s[1]
	}
	start := segments[0][0]
	order = append(order, start)
	for cur := next[start]; cur != start; {
		order = append(order, cur)
		nxt, ok := next[cur]
		if !ok {
			return nil, fmt.Errorf("%w: boundary does not close at point %d", chain.ErrMalformedComplex, cur)
		}
		cur = nxt
	}
	if len(order) != n {
		return nil, fmt.Errorf("%w: boundary covers %d of %d points", chain.ErrMalformedComplex, len(order), n)
	}
	return order, nil
}

// findEar returns the ring position of a convex vertex whose triangle
// contains no other ring vertex, or -1. orient is +1 for a
// counter-clockwise ring and -1 for a clockwise one.
func findEar(points [][2]float64, ring []int, orient float64) int {
	n := len(ring)
	for i := 0; i < n; i++ {
		a, b, c := ring[(i+n-1)%n], ring[i], ring[(i+1)%n]
		if orient*area2(points[a], points[b], points[c]) <= 0 {
			continue
		}
		blocked := false
		for _, r := range ring {
			if r == a || r == b || r == c {
				continue
			}
			if inTriangle(points[r], points[a], points[b], points[c], orient) {
				blocked = true
				break
			}
		}
		if !blocked {
			return i
		}
	}
	return -1
}

// ringArea is the signed area of the ring.
func ringArea(points [][2]float64, ring []int) float64 {
	sum := 0.0
	for i, r := range ring {
		s := ring[(i+1)%len(ring)]
		sum += points[r][0]*points[s][1] - points[s][0]*points[r][1]
	}
	return sum / 2
}

// area2 is twice the signed area of triangle (a, b, c).
func area2(a, b, c [2]float64) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])
}

// inTriangle reports whether p lies inside or on the triangle (a, b, c)
// wound in the direction given by orient.
func inTriangle(p, a, b, c [2]float64, orient float64) bool {
	return orient*area2(a, b, p) >= 0 && orient*area2(b, c, p) >= 0 && orient*area2(c, a, p) >= 0
}
