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
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Fragmenter fragments face σ of a 3D 2-skeleton against its candidate
// neighbor faces, returning the fragment's own 2-skeleton. It is the
// frag_face collaborator of the arrangement driver.
type Fragmenter func(v Points, ev, fe *Op, candidates [][]int, face int) (Points, *Op, *Op, error)

// CellExtractor computes the 3-cell operator (faces grouped into solids,
// signs giving outward orientation) of an arranged 2-skeleton. It is the
// minimal-3-cycles collaborator.
type CellExtractor func(v Points, ev, fe *Op) (*Op, error)

// PlanarArranger intersects the edges of a 2D 1-skeleton and returns the
// arranged 2-skeleton. Consumed by Fragmenter implementations.
type PlanarArranger func(v Points, ew *Op) (Points, *Op, *Op, error)

// BiconnectedComponents splits a 1-skeleton into its biconnected
// components, each a list of edge indices.
type BiconnectedComponents func(ev *Op) [][]int

// ArrangeOptions configures the arrangement driver.
type ArrangeOptions struct {
	// Workers is the number of fragmentation workers. Values below 2 run
	// the per-face loop sequentially.
	Workers int
	// Index is the spatial-index collaborator; BoxIndex when nil.
	Index SpatialIndexer
}

// fragment is one per-face fragmentation result.
type fragment struct {
	v   Points
	ev  *Op
	fe  *Op
	err error
}

// Arrange computes the spatial arrangement of a 3D 2-skeleton: every face
// is fragmented against its box-intersecting neighbors, the fragments are
// merged block-diagonally, the merged vertices are deduplicated with the
// Epsilon sweep, and the 3-cell operator is extracted.
//
// Fragmentation may be fanned across workers; result arrival order is
// nondeterministic, but the vertex-merge normalization renumbers all cells
// deterministically, so the output is identical for any worker count. A
// fragmenter failure aborts the whole arrangement.
func Arrange(v Points, ev, fe *Op, frag Fragmenter, extract CellExtractor, opts *ArrangeOptions) (Points, *Op, *Op, *Op, error) {
	var o ArrangeOptions
	if opts != nil {
		o = *opts
	}
	index := o.Index
	if index == nil {
		index = BoxIndex
	}
	candidates, err := index(v, ev, fe)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "arrange: spatial index")
	}

	nf := fe.Rows()
	glog.V(1).Infof("arranging %d faces with %d workers", nf, o.Workers)

	var rV Points
	var rEV, rFE *Op
	merge := func(fr fragment) {
		if rEV == nil {
			rV, rEV, rFE = fr.v, fr.ev, fr.fe
			return
		}
		rV, rEV, rFE = Merge2Skeletons(rV, rEV, rFE, fr.v, fr.ev, fr.fe)
	}

	if o.Workers < 2 {
		for f := 0; f < nf; f++ {
			nv, nev, nfe, err := frag(v, ev, fe, candidates, f)
			if err != nil {
				return nil, nil, nil, nil, errors.Wrapf(err, "arrange: face %d", f)
			}
			merge(fragment{v: nv, ev: nev, fe: nfe})
		}
	} else {
		// Rendezvous fan-out: the producer hands out face indices on an
		// unbuffered channel and a -1 sentinel per worker; the consumer
		// drains exactly one result per face, merging in arrival order.
		faces := make(chan int)
		results := make(chan fragment)
		go func() {
			for f := 0; f < nf; f++ {
				faces <- f
			}
			for w := 0; w < o.Workers; w++ {
				faces <- -1
			}
		}()
		for w := 0; w < o.Workers; w++ {
			go func() {
				for {
					f := <-faces
					if f < 0 {
						return
					}
					nv, nev, nfe, err := frag(v, ev, fe, candidates, f)
					if err != nil {
						results <- fragment{err: errors.Wrapf(err, "arrange: face %d", f)}
						continue
					}
					results <- fragment{v: nv, ev: nev, fe: nfe}
				}
			}()
		}
		var firstErr error
		for i := 0; i < nf; i++ {
			fr := <-results
			if fr.err != nil {
				if firstErr == nil {
					firstErr = fr.err
				}
				continue
			}
			if firstErr == nil {
				merge(fr)
			}
		}
		if firstErr != nil {
			return nil, nil, nil, nil, firstErr
		}
	}
	if rEV == nil {
		return nil, nil, nil, nil, errors.Wrap(ErrMalformedComplex, "arrange: no faces")
	}
	glog.V(2).Infof("merged fragments: %d vertices, %d edges, %d faces", len(rV), rEV.Rows(), rFE.Rows())

	mv, mev, mfe, err := MergeVertices(rV, rEV, rFE)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "arrange: merge vertices")
	}
	glog.V(1).Infof("arranged skeleton: %d vertices, %d edges, %d faces", len(mv), mev.Rows(), mfe.Rows())

	cf, err := extract(mv, mev, mfe)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "arrange: 3-cell extraction")
	}
	return mv, mev, mfe, cf, nil
}
