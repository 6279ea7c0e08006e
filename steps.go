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
	"fmt"
	"iter"
	"slices"
)

// Op describes an operation of a changeset.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	DeleteSection   Op = iota // Delete the section at Old.Section
	DeleteItem                // Delete the item at Old
	InsertSection             // Insert a section at New.Section
	InsertItem                // Insert an item at New
	MoveSection               // Move the section at Old.Section to New.Section
	MoveItem                  // Move the item at Old to New
	ReloadSection             // Reload the section at New.Section
	ReloadItem                // Reload the item at New
	ReconfigureItem           // Reconfigure the item at New
)

// Step describes a single operation of a changeset.
//
//   - For DeleteItem, Old is the position in the old snapshot and New is unset (zero value).
//   - For InsertItem, ReloadItem and ReconfigureItem, New is the position in the new snapshot and
//     Old is unset.
//   - For MoveItem, both Old and New are set.
//   - For section operations, only the Section field of Old and New is meaningful.
type Step struct {
	Op       Op
	Old, New Position
}

func (s Step) String() string {
	switch s.Op {
	case DeleteSection:
		return fmt.Sprintf("%v %d", s.Op, s.Old.Section)
	case InsertSection, ReloadSection:
		return fmt.Sprintf("%v %d", s.Op, s.New.Section)
	case MoveSection:
		return fmt.Sprintf("%v %d -> %d", s.Op, s.Old.Section, s.New.Section)
	case DeleteItem:
		return fmt.Sprintf("%v %d.%d", s.Op, s.Old.Section, s.Old.Item)
	case InsertItem, ReloadItem, ReconfigureItem:
		return fmt.Sprintf("%v %d.%d", s.Op, s.New.Section, s.New.Item)
	case MoveItem:
		return fmt.Sprintf("%v %d.%d -> %d.%d", s.Op, s.Old.Section, s.Old.Item, s.New.Section, s.New.Item)
	default:
		return fmt.Sprintf("%v", s.Op)
	}
}

// Steps returns the operations of the changeset in the following order:
//
//  1. Section deletions, descending.
//  2. Item deletions, descending.
//  3. Section insertions, ascending.
//  4. Item insertions, ascending.
//  5. Section moves.
//  6. Item moves.
//  7. Section reloads, item reloads and item reconfigurations.
//
// The steps form a single batch. Positions are not rebased between steps: deletions and move
// sources refer to the old snapshot, everything else refers to the new snapshot. In particular,
// an item deletion keeps its old section index even after an earlier section deletion, and
// insertions only land at their final position once the moves of the same batch are applied.
func (c Changeset) Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, i := range slices.Backward(c.SectionDeletes) {
			if !yield(Step{Op: DeleteSection, Old: Position{Section: i}}) {
				return
			}
		}
		for _, p := range c.ItemDeletes {
			if !yield(Step{Op: DeleteItem, Old: p}) {
				return
			}
		}
		for _, i := range c.SectionInserts {
			if !yield(Step{Op: InsertSection, New: Position{Section: i}}) {
				return
			}
		}
		for _, p := range c.ItemInserts {
			if !yield(Step{Op: InsertItem, New: p}) {
				return
			}
		}
		for _, m := range c.SectionMoves {
			if !yield(Step{Op: MoveSection, Old: Position{Section: m.From}, New: Position{Section: m.To}}) {
				return
			}
		}
		for _, m := range c.ItemMoves {
			if !yield(Step{Op: MoveItem, Old: m.From, New: m.To}) {
				return
			}
		}
		for _, i := range c.SectionReloads {
			if !yield(Step{Op: ReloadSection, New: Position{Section: i}}) {
				return
			}
		}
		for _, p := range c.ItemReloads {
			if !yield(Step{Op: ReloadItem, New: p}) {
				return
			}
		}
		for _, p := range c.ItemReconfigures {
			if !yield(Step{Op: ReconfigureItem, New: p}) {
				return
			}
		}
	}
}
