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

package listdiff

import (
	"cmp"
	"slices"
	"strings"
)

// Position identifies an item by the index of its section and its offset within that section.
type Position struct {
	Section, Item int
}

// Compare returns -1, 0, or +1 depending on whether p sorts before, with, or after q. Positions
// are ordered by section first and by item second.
func (p Position) Compare(q Position) int {
	if c := cmp.Compare(p.Section, q.Section); c != 0 {
		return c
	}
	return cmp.Compare(p.Item, q.Item)
}

// PositionMove describes an item that moves from a position in the old snapshot to a position in
// the new snapshot.
type PositionMove struct {
	From, To Position
}

// Changeset describes the operations necessary to transform an old snapshot into a new snapshot.
//
// Deletions refer to indices and positions in the old snapshot. Insertions, reloads and
// reconfigurations refer to indices and positions in the new snapshot. Moves go from the old to
// the new snapshot.
//
// A changeset is meant to be applied in a single batch: deletions first, insertions second and
// moves last (see [Changeset.Steps]). No item deletion refers to a deleted section, no item
// insertion refers to an inserted section, and no index appears twice within one list.
type Changeset struct {
	SectionDeletes []int  // Old section indices, ascending.
	SectionInserts []int  // New section indices, ascending.
	SectionMoves   []Move // Ascending by To.
	SectionReloads []int  // New section indices, ascending.

	ItemDeletes      []Position     // Old positions, descending.
	ItemInserts      []Position     // New positions, ascending.
	ItemMoves        []PositionMove // Ascending by To.
	ItemReloads      []Position     // New positions, ascending.
	ItemReconfigures []Position     // New positions, ascending.
}

// IsEmpty reports whether the changeset contains no operation at all.
func (c Changeset) IsEmpty() bool {
	return !c.HasStructuralChanges() &&
		len(c.SectionReloads) == 0 &&
		len(c.ItemReloads) == 0 &&
		len(c.ItemReconfigures) == 0
}

// HasStructuralChanges reports whether the changeset contains any deletion, insertion or move. It
// ignores reloads and reconfigurations, that is, it's false if only the content of elements
// changed.
func (c Changeset) HasStructuralChanges() bool {
	return len(c.SectionDeletes) > 0 ||
		len(c.SectionInserts) > 0 ||
		len(c.SectionMoves) > 0 ||
		len(c.ItemDeletes) > 0 ||
		len(c.ItemInserts) > 0 ||
		len(c.ItemMoves) > 0
}

// Equal reports whether c and d describe the same operations. The order of the operations within
// a list is not significant.
func (c Changeset) Equal(d Changeset) bool {
	return sameInts(c.SectionDeletes, d.SectionDeletes) &&
		sameInts(c.SectionInserts, d.SectionInserts) &&
		sameSet(c.SectionMoves, d.SectionMoves, compareMoves) &&
		sameInts(c.SectionReloads, d.SectionReloads) &&
		sameSet(c.ItemDeletes, d.ItemDeletes, Position.Compare) &&
		sameSet(c.ItemInserts, d.ItemInserts, Position.Compare) &&
		sameSet(c.ItemMoves, d.ItemMoves, comparePositionMoves) &&
		sameSet(c.ItemReloads, d.ItemReloads, Position.Compare) &&
		sameSet(c.ItemReconfigures, d.ItemReconfigures, Position.Compare)
}

// String returns a textual representation of the changeset with one operation per line in the
// order returned by [Changeset.Steps].
func (c Changeset) String() string {
	var sb strings.Builder
	for step := range c.Steps() {
		sb.WriteString(step.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func sameInts(a, b []int) bool {
	return sameSet(a, b, cmp.Compare[int])
}

func sameSet[E comparable](a, b []E, compare func(a, b E) int) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = slices.Clone(a), slices.Clone(b)
	slices.SortFunc(a, compare)
	slices.SortFunc(b, compare)
	return slices.Equal(a, b)
}

func compareMoves(a, b Move) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}
	return cmp.Compare(a.To, b.To)
}

func comparePositionMoves(a, b PositionMove) int {
	if c := a.From.Compare(b.From); c != 0 {
		return c
	}
	return a.To.Compare(b.To)
}
