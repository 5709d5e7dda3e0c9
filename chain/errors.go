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

import "errors"

// Sentinel errors returned by this package. Call sites wrap them with context
// (the offending cell index via fmt.Errorf and %w, or the line number via
// errors.Wrapf in the mesh reader); match with errors.Is.
var (
	// ErrMalformedComplex indicates a face boundary that cannot close, or a
	// face referencing an edge absent from the edge operator.
	ErrMalformedComplex = errors.New("chain: malformed complex")

	// ErrDegenerateGeometry indicates a face whose vertices are collinear or
	// whose area is zero, so no planar basis can be built.
	ErrDegenerateGeometry = errors.New("chain: degenerate geometry")

	// ErrAmbiguousTraversal indicates a boundary walk that found no valid
	// next edge.
	ErrAmbiguousTraversal = errors.New("chain: ambiguous traversal")

	// ErrFormat indicates an unreadable mesh line or a non-numeric field.
	ErrFormat = errors.New("chain: mesh format error")
)
