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

// Position classifies a point against a planar face.
type Position int

const (
	Outside Position = iota
	Inside
	OnBoundary
)

func (p Position) String() string {
	switch p {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	case OnBoundary:
		return "on-boundary"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// tileCode assigns the 4-bit region code of (x, y) relative to the query
// point: bit 0 above, bit 1 below, bit 2 right, bit 3 left. Code 0 means the
// point coincides with the query point in both coordinates. The codes lay
// out the 3×3 tile table of the Cohen–Sutherland scheme.
func tileCode(x, y, qx, qy float64) int {
	c := 0
	if y > qy {
		c |= 1
	}
	if y < qy {
		c |= 2
	}
	if x > qx {
		c |= 4
	}
	if x < qx {
		c |= 8
	}
	return c
}

// crossingTest consumes one half of a crossing that grazes the horizontal
// ray through the query point. The first graze arms the state with its side
// and contributes half a crossing; a second graze on the other side
// completes the crossing, while a graze on the same side is a bounce and
// cancels the half already counted.
func crossingTest(side, other int, status *int, count *float64) {
	if *status == 0 {
		*status = side
		*count += 0.5
		return
	}
	if *status == other {
		*count += 0.5
	} else {
		*count -= 0.5
	}
	*status = 0
}

// PointInFace classifies the point p against a planar face of the
// 2-skeleton using a tile-code crossing-number test over the face's edges.
// On-boundary conditions (point on an edge, on a vertex, or on a horizontal
// edge through its row) are detected exactly and reported immediately; the
// crossing count only decides strictly interior or exterior points.
func PointInFace(p []float64, v Points, ev *Op, face Cell) (Position, error) {
	edges, err := faceEdgePairs(ev, face)
	if err != nil {
		return Outside, err
	}
	qx, qy := p[0], p[1]

	count := 0.0
	status := 0
	for _, e := range edges {
		x1, y1 := v[e[0]][0], v[e[0]][1]
		x2, y2 := v[e[1]][0], v[e[1]][1]
		c1 := tileCode(x1, y1, qx, qy)
		c2 := tileCode(x2, y2, qx, qy)
		cEdge, cUn, cInt := c1^c2, c1|c2, c1&c2

		switch {
		case cEdge == 0 && cUn == 0:
			// Both endpoints coincide with the query point.
			return OnBoundary, nil
		case cEdge == 12 && cUn == cEdge:
			// Horizontal edge on the query row, point between endpoints.
			return OnBoundary, nil
		case cEdge == 3:
			if cInt == 0 {
				return OnBoundary, nil
			}
			if cInt == 4 {
				count++
			}
		case cEdge == 15:
			xInt := x2 + (qy-y2)*(x1-x2)/(y1-y2)
			if xInt > qx {
				count++
			} else if xInt == qx {
				return OnBoundary, nil
			}
		case cEdge == 13 && (c1 == 4 || c2 == 4):
			crossingTest(1, 2, &status, &count)
		case cEdge == 14 && (c1 == 4 || c2 == 4):
			crossingTest(2, 1, &status, &count)
		case cEdge == 7:
			count++
		case cEdge == 11:
			// Spans left and both vertical half-planes: no crossing.
		case cEdge == 1:
			if cInt == 0 {
				return OnBoundary, nil
			}
			if cInt == 4 {
				crossingTest(1, 2, &status, &count)
			}
		case cEdge == 2:
			if cInt == 0 {
				return OnBoundary, nil
			}
			if cInt == 4 {
				crossingTest(2, 1, &status, &count)
			}
		case cEdge == 4 || cEdge == 8:
			if cUn == cEdge {
				// Collinear on the ray with one endpoint at the query point.
				return OnBoundary, nil
			}
		case cEdge == 5:
			if c1 == 0 || c2 == 0 {
				return OnBoundary, nil
			}
			crossingTest(1, 2, &status, &count)
		case cEdge == 6:
			if c1 == 0 || c2 == 0 {
				return OnBoundary, nil
			}
			crossingTest(2, 1, &status, &count)
		case cEdge == 9 || cEdge == 10:
			if c1 == 0 || c2 == 0 {
				return OnBoundary, nil
			}
		}
	}

	if int(math.Round(count))%2 != 0 {
		return Inside, nil
	}
	return Outside, nil
}

// faceEdgePairs returns the endpoint index pairs of the face's edges,
// whichever shape the face is presented in.
func faceEdgePairs(ev *Op, face Cell) ([][2]int, error) {
	switch face.kind {
	case CellChain, CellEdgeSet:
		pairs := make([][2]int, 0, len(face.edges))
		for _, e := range face.edges {
			lo, hi, err := edgeEndpoints(ev, e)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, [2]int{lo, hi})
		}
		return pairs, nil
	case CellVertices:
		n := len(face.verts)
		if n < 3 {
			return nil, fmt.Errorf("%w: face has %d vertices", ErrMalformedComplex, n)
		}
		pairs := make([][2]int, 0, n)
		for i, a := range face.verts {
			pairs = append(pairs, [2]int{a, face.verts[(i+1)%n]})
		}
		return pairs, nil
	}
	return nil, fmt.Errorf("%w: unknown cell kind %d", ErrMalformedComplex, face.kind)
}
