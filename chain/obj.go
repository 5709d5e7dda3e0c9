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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadOBJ reads the minimal Wavefront subset: "v x y z" vertex lines and
// "f i j k ..." 1-based face lines, where index fields may carry ignored
// /texcoord/normal suffixes. Group and comment lines are skipped. Faces are
// decomposed into edges (sorted endpoint pairs, deduplicated, in order of
// first appearance) and the signed operators are rebuilt from the cells.
func ReadOBJ(r io.Reader) (Points, *Op, *Op, error) {
	var v Points
	var fv [][]int
	var ev [][]int
	seen := make(map[[2]int]bool)

	scanner := bufio.NewScanner(r)
	ln := 0
	for scanner.Scan() {
		ln++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, nil, errors.Wrapf(ErrFormat, "line %d: vertex needs 3 coordinates", ln)
			}
			row := make([]float64, 3)
			for j := 0; j < 3; j++ {
				x, err := strconv.ParseFloat(fields[j+1], 64)
				if err != nil {
					return nil, nil, nil, errors.Wrapf(ErrFormat, "line %d: bad coordinate %q", ln, fields[j+1])
				}
				row[j] = x
			}
			v = append(v, row)
		case "f":
			if len(fields) < 4 {
				return nil, nil, nil, errors.Wrapf(ErrFormat, "line %d: face needs 3 indices", ln)
			}
			face := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				if k := strings.IndexByte(tok, '/'); k >= 0 {
					tok = tok[:k]
				}
				idx, err := strconv.Atoi(tok)
				if err != nil || idx < 1 || idx > len(v) {
					return nil, nil, nil, errors.Wrapf(ErrFormat, "line %d: bad vertex index %q", ln, tok)
				}
				face = append(face, idx-1)
			}
			fv = append(fv, face)
			for i, a := range face {
				b := face[(i+1)%len(face)]
				lo, hi := a, b
				if lo > hi {
					lo, hi = hi, lo
				}
				if !seen[[2]int{lo, hi}] {
					seen[[2]int{lo, hi}] = true
					ev = append(ev, []int{lo, hi})
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, errors.Wrap(err, "obj read")
	}
	copEV, copFE, err := BuildCops(ev, fv)
	if err != nil {
		return nil, nil, nil, err
	}
	return v, copEV, copFE, nil
}

// WriteOBJ writes a 2-skeleton as a triangle mesh: every vertex, then every
// face triangulated through the given Triangulator, with 1-based indices
// and 6-decimal coordinates.
func WriteOBJ(w io.Writer, v Points, ev, fe *Op, tri Triangulator) error {
	bw := bufio.NewWriter(w)
	if err := writeVertices(bw, v); err != nil {
		return err
	}
	for f := 0; f < fe.Rows(); f++ {
		triangles, err := TriangulateFace(v, ev, fe, f, tri)
		if err != nil {
			return err
		}
		writeTriangles(bw, triangles, false)
	}
	return errors.Wrap(bw.Flush(), "obj write")
}

// WriteOBJCells writes a 3-complex as a triangle mesh grouped by 3-cell:
// one "g cellN" group per row of the cell operator, each listing its faces'
// triangles with the winding flipped where the face's orientation sign in
// the cell is negative.
func WriteOBJCells(w io.Writer, v Points, ev, fe, cf *Op, tri Triangulator) error {
	bw := bufio.NewWriter(w)
	if err := writeVertices(bw, v); err != nil {
		return err
	}
	cache := make([][][3]int, fe.Rows())
	for c := 0; c < cf.Rows(); c++ {
		fmt.Fprintf(bw, "g cell%d\n", c+1)
		faces, signs := cf.Row(c)
		for t, f := range faces {
			if cache[f] == nil {
				triangles, err := TriangulateFace(v, ev, fe, f, tri)
				if err != nil {
					return err
				}
				cache[f] = triangles
			}
			writeTriangles(bw, cache[f], signs[t] < 0)
		}
	}
	return errors.Wrap(bw.Flush(), "obj write")
}

func writeVertices(bw *bufio.Writer, v Points) error {
	for _, row := range v {
		x, y := row[0], row[1]
		z := 0.0
		if len(row) > 2 {
			z = row[2]
		}
		if _, err := fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", x, y, z); err != nil {
			return errors.Wrap(err, "obj write")
		}
	}
	return nil
}

func writeTriangles(bw *bufio.Writer, triangles [][3]int, flip bool) {
	for _, t := range triangles {
		a, b, c := t[0], t[1], t[2]
		if flip {
			b, c = c, b
		}
		fmt.Fprintf(bw, "f %d %d %d\n", a+1, b+1, c+1)
	}
}
