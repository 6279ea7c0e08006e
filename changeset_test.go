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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var fullChangeset = Changeset{
	SectionDeletes:   []int{1, 3},
	SectionInserts:   []int{0},
	SectionMoves:     []Move{{From: 0, To: 2}},
	SectionReloads:   []int{1},
	ItemDeletes:      []Position{{2, 1}, {0, 0}},
	ItemInserts:      []Position{{1, 0}, {2, 3}},
	ItemMoves:        []PositionMove{{From: Position{0, 2}, To: Position{2, 0}}},
	ItemReloads:      []Position{{2, 1}},
	ItemReconfigures: []Position{{2, 2}},
}

func TestChangesetIsEmpty(t *testing.T) {
	tests := []struct {
		name           string
		cs             Changeset
		wantEmpty      bool
		wantStructural bool
	}{
		{
			name:      "zero",
			wantEmpty: true,
		},
		{
			name:           "full",
			cs:             fullChangeset,
			wantStructural: true,
		},
		{
			name: "reloads-only",
			cs: Changeset{
				SectionReloads: []int{0},
				ItemReloads:    []Position{{1, 1}},
			},
		},
		{
			name: "reconfigures-only",
			cs:   Changeset{ItemReconfigures: []Position{{0, 0}}},
		},
		{
			name:           "item-move-only",
			cs:             Changeset{ItemMoves: []PositionMove{{From: Position{0, 0}, To: Position{0, 1}}}},
			wantStructural: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cs.IsEmpty(); got != tt.wantEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.wantEmpty)
			}
			if got := tt.cs.HasStructuralChanges(); got != tt.wantStructural {
				t.Errorf("HasStructuralChanges() = %v, want %v", got, tt.wantStructural)
			}
		})
	}
}

func TestChangesetEqual(t *testing.T) {
	reordered := Changeset{
		SectionDeletes:   []int{3, 1},
		SectionInserts:   []int{0},
		SectionMoves:     []Move{{From: 0, To: 2}},
		SectionReloads:   []int{1},
		ItemDeletes:      []Position{{0, 0}, {2, 1}},
		ItemInserts:      []Position{{2, 3}, {1, 0}},
		ItemMoves:        []PositionMove{{From: Position{0, 2}, To: Position{2, 0}}},
		ItemReloads:      []Position{{2, 1}},
		ItemReconfigures: []Position{{2, 2}},
	}
	if !fullChangeset.Equal(reordered) {
		t.Errorf("Equal() = false for changesets that only differ in order")
	}
	// cmp picks up the Equal method.
	if diff := cmp.Diff(fullChangeset, reordered); diff != "" {
		t.Errorf("changesets are different [-want,+got]:\n%s", diff)
	}

	different := reordered
	different.ItemReloads = []Position{{2, 2}}
	if fullChangeset.Equal(different) {
		t.Errorf("Equal() = true for changesets with different reloads")
	}
	different = reordered
	different.ItemMoves = nil
	if fullChangeset.Equal(different) {
		t.Errorf("Equal() = true for changesets with different moves")
	}
	if !(Changeset{}).Equal(Changeset{SectionDeletes: []int{}}) {
		t.Errorf("Equal() = false for nil and empty lists")
	}
}

func TestChangesetSteps(t *testing.T) {
	want := []Step{
		{Op: DeleteSection, Old: Position{Section: 3}},
		{Op: DeleteSection, Old: Position{Section: 1}},
		{Op: DeleteItem, Old: Position{2, 1}},
		{Op: DeleteItem, Old: Position{0, 0}},
		{Op: InsertSection, New: Position{Section: 0}},
		{Op: InsertItem, New: Position{1, 0}},
		{Op: InsertItem, New: Position{2, 3}},
		{Op: MoveSection, Old: Position{Section: 0}, New: Position{Section: 2}},
		{Op: MoveItem, Old: Position{0, 2}, New: Position{2, 0}},
		{Op: ReloadSection, New: Position{Section: 1}},
		{Op: ReloadItem, New: Position{2, 1}},
		{Op: ReconfigureItem, New: Position{2, 2}},
	}
	var got []Step
	for step := range fullChangeset.Steps() {
		got = append(got, step)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Steps() result is different [-want,+got]:\n%s", diff)
	}

	// Stopping early.
	for n := range len(want) {
		var got []Step
		for step := range fullChangeset.Steps() {
			if len(got) == n {
				break
			}
			got = append(got, step)
		}
		if diff := cmp.Diff(want[:n], got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Steps() stopped after %d steps is different [-want,+got]:\n%s", n, diff)
		}
	}
}

func TestChangesetStepsUseBatchCoordinates(t *testing.T) {
	old, new := build("A:1 B:2 C:3,4"), build("A:1 C:4")
	want := "DeleteSection 1\nDeleteItem 2.0\n"
	if diff := cmp.Diff(want, Sections(old, new).String()); diff != "" {
		t.Errorf("item deletion must refer to the old section index [-want,+got]:\n%s", diff)
	}
}

func TestChangesetString(t *testing.T) {
	want := `DeleteSection 3
DeleteSection 1
DeleteItem 2.1
DeleteItem 0.0
InsertSection 0
InsertItem 1.0
InsertItem 2.3
MoveSection 0 -> 2
MoveItem 0.2 -> 2.0
ReloadSection 1
ReloadItem 2.1
ReconfigureItem 2.2
`
	if diff := cmp.Diff(want, fullChangeset.String()); diff != "" {
		t.Errorf("String() result is different [-want,+got]:\n%s", diff)
	}
	if got := (Changeset{}).String(); got != "" {
		t.Errorf("String() of empty changeset = %q, want %q", got, "")
	}
}

func TestOpString(t *testing.T) {
	for op, want := range map[Op]string{
		DeleteSection:   "DeleteSection",
		MoveItem:        "MoveItem",
		ReconfigureItem: "ReconfigureItem",
		Op(42):          "Op(42)",
	} {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String() = %q, want %q", int(op), got, want)
		}
	}
}

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		p, q Position
		want int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 5}, Position{1, 0}, -1},
		{Position{1, 0}, Position{0, 5}, +1},
		{Position{1, 2}, Position{1, 3}, -1},
	}
	for _, tt := range tests {
		if got := tt.p.Compare(tt.q); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.p, tt.q, got, tt.want)
		}
	}
}
