// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package listdiff computes the changes between two ordered collections of identifiable elements
// and packages them so they can be applied to an order-sensitive consumer in a single batch.
//
// The two main functions are [Diff], which compares two flat sequences and reports deletions,
// insertions, matches and moves, and [Sections], which compares two sectioned snapshots (see
// [znkr.io/listdiff/snapshot]) and returns a [Changeset] that is safe to apply simultaneously:
// deletions refer to positions in the old snapshot, insertions and move destinations to positions
// in the new snapshot, and no operation refers to a position invalidated by another operation in
// the same changeset.
//
// Performance: [Diff] uses Paul Heckel's symbol table technique and runs in O(N) expected time;
// determining the minimal set of moves adds O(N log N). Neither recurses, so very large inputs
// are fine.
//
// Computing a changeset is a pure function. Callers that compute changesets against whatever is
// currently displayed must serialize those computations themselves, e.g. by letting a newer
// request supersede an older one that hasn't been applied yet.
//
// [znkr.io/listdiff/snapshot]: https://pkg.go.dev/znkr.io/listdiff/snapshot
package listdiff
