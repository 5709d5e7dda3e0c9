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

/*
Package chain operates on cellular complexes described by sparse signed
incidence operators between cells of successive dimensions (vertices →
edges → faces → solids).

A complex is a vertex set (Points) plus one Op per dimension step: the
edge→vertex operator, the face→edge operator, and for 3-complexes the
cell→face operator. Nonzero entries are ±1 and encode the orientation of
the lower cell within the higher one. Operators are immutable: every stage
takes operators plus vertices and produces new ones.

On top of the algebra the package provides boundary-cycle recovery, planar
projection and constrained triangulation of faces, a robust tile-code
point-in-face classifier, skeleton merging and edge deletion, a minimal
Wavefront mesh reader and writer, and a driver that arranges a 3D
2-skeleton by fragmenting faces against their spatial neighbors.

The heavy collaborators — the face fragmenter, the planar arrangement, the
3-cell extractor and the constrained-triangulation engine — are consumed
through narrow function and interface types; defaults are provided where a
pure-Go implementation is practical (BoxIndex, package cdt).
*/
package chain
