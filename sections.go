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
	"slices"

	"znkr.io/listdiff/internal/config"
	"znkr.io/listdiff/snapshot"
)

// itemOp is an item deletion or insertion before it's published in a changeset.
type itemOp[I comparable] struct {
	item I
	pos  Position
}

// itemMove is an item move before it's published in a changeset.
type itemMove[I comparable] struct {
	item     I
	from, to Position
}

// Sections compares the old and new snapshot and returns the changeset that transforms old into
// new.
//
// Sections are compared by their IDs first. Then, for every section that is part of both
// snapshots, the items of that section are compared. An item that disappears from one section and
// appears in another is reported as a single move. Operations that are already covered by a
// section operation are dropped: no item operation refers to a section that is deleted, inserted
// or reloaded. If an item moves between such a section and a surviving section, the move is
// reported as a deletion from or insertion into the surviving section.
//
// Reload and reconfigure marks are taken from new:
//   - A section reload is only reported for sections that are neither deleted nor inserted. If
//     the section moved, the reload refers to the new index.
//   - An item reload is only reported for items that are part of both snapshots and are not
//     inserted. An item that is reloaded and moved is reported as deletion and insertion instead.
//   - An item reconfiguration follows the same rules as a reload, except that moved items are
//     kept as moves. Reconfiguring an item that is also reloaded has no effect.
//
// Both snapshots must satisfy the snapshot invariants, in particular every item must appear only
// once. This is guaranteed for snapshots built using the methods of [snapshot.Snapshot].
//
// The following options are supported: [NoMoves], [NoCrossSectionMoves]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Sections[S, I comparable](old, new *snapshot.Snapshot[S, I], opts ...Option) Changeset {
	cfg := config.FromOptions(opts, config.NoMoves|config.NoCrossSectionMoves)
	oldIDs, newIDs := old.SectionIDs(), new.SectionIDs()

	// Without sections on one side, there's nothing to compare.
	if len(oldIDs) == 0 || len(newIDs) == 0 {
		return Changeset{
			SectionDeletes: indices(len(oldIDs)),
			SectionInserts: indices(len(newIDs)),
		}
	}

	var cs Changeset

	// Step 1: Compare sections.
	sr := diff(oldIDs, newIDs, cfg)
	cs.SectionDeletes, cs.SectionInserts, cs.SectionMoves = sr.Deletes, sr.Inserts, sr.Moves

	deleted := make([]bool, len(oldIDs))
	for _, i := range sr.Deletes {
		deleted[i] = true
	}
	inserted := make([]bool, len(newIDs))
	for _, j := range sr.Inserts {
		inserted[j] = true
	}

	// Step 2: Reload sections that survive. A reloaded section is replaced as a whole, which makes
	// it unavailable for item operations just like a deleted or inserted section.
	oldGone, newGone := slices.Clone(deleted), slices.Clone(inserted)
	for _, id := range new.ReloadedSections() {
		i, j := old.IndexOfSection(id), new.IndexOfSection(id)
		if i < 0 || deleted[i] || inserted[j] {
			continue
		}
		cs.SectionReloads = append(cs.SectionReloads, j) // new snapshot order, ascending
		oldGone[i], newGone[j] = true, true
	}

	// Step 3: Compare the items of every section that appears in both snapshots.
	var (
		dels  []itemOp[I]
		inss  []itemOp[I]
		moves []itemMove[I]
	)
	for i, id := range oldIDs {
		j := new.IndexOfSection(id)
		if j < 0 {
			continue
		}
		x, y := old.ItemIDsInSection(id), new.ItemIDsInSection(id)
		r := diff(x, y, cfg)
		for _, s := range r.Deletes {
			dels = append(dels, itemOp[I]{x[s], Position{i, s}})
		}
		for _, t := range r.Inserts {
			inss = append(inss, itemOp[I]{y[t], Position{j, t}})
		}
		for _, m := range r.Moves {
			moves = append(moves, itemMove[I]{y[m.To], Position{i, m.From}, Position{j, m.To}})
		}
	}

	// Step 4: Turn a deletion and an insertion of the same item into a move. This has to happen
	// before dropping operations covered by section operations, because the move may connect a
	// surviving section with one that's replaced.
	single := len(oldIDs) == 1 && len(newIDs) == 1
	if !single && !cfg.NoMoves && !cfg.NoCrossSectionMoves {
		dels, inss, moves = reconcile(dels, inss, moves)
	}

	// Step 5: Drop everything that's covered by section operations.
	dels = slices.DeleteFunc(dels, func(op itemOp[I]) bool { return oldGone[op.pos.Section] })
	inss = slices.DeleteFunc(inss, func(op itemOp[I]) bool { return newGone[op.pos.Section] })
	k := 0
	for _, m := range moves {
		fromGone, toGone := oldGone[m.from.Section], newGone[m.to.Section]
		switch {
		case fromGone && toGone:
			// Both ends are covered.
		case fromGone:
			inss = append(inss, itemOp[I]{m.item, m.to})
		case toGone:
			dels = append(dels, itemOp[I]{m.item, m.from})
		default:
			moves[k] = m
			k++
		}
	}
	moves = moves[:k]

	// Step 6: Item reloads and reconfigurations.
	dels, inss, moves = reloadItems(&cs, old, new, newGone, dels, inss, moves)

	// Step 7: Publish in application order.
	slices.SortFunc(dels, func(a, b itemOp[I]) int { return b.pos.Compare(a.pos) })
	slices.SortFunc(inss, func(a, b itemOp[I]) int { return a.pos.Compare(b.pos) })
	slices.SortFunc(moves, func(a, b itemMove[I]) int { return a.to.Compare(b.to) })
	for _, op := range dels {
		cs.ItemDeletes = append(cs.ItemDeletes, op.pos)
	}
	for _, op := range inss {
		cs.ItemInserts = append(cs.ItemInserts, op.pos)
	}
	for _, m := range moves {
		cs.ItemMoves = append(cs.ItemMoves, PositionMove{m.from, m.to})
	}
	return cs
}

// reconcile pairs deletions and insertions of the same item and turns them into moves.
func reconcile[I comparable](dels, inss []itemOp[I], moves []itemMove[I]) ([]itemOp[I], []itemOp[I], []itemMove[I]) {
	if len(dels) == 0 || len(inss) == 0 {
		return dels, inss, moves
	}
	at := make(map[I]int, len(dels))
	for k, op := range dels {
		at[op.item] = k
	}
	moved := make([]bool, len(dels))
	k := 0
	for _, op := range inss {
		if d, ok := at[op.item]; ok {
			moves = append(moves, itemMove[I]{op.item, dels[d].pos, op.pos})
			moved[d] = true
			continue
		}
		inss[k] = op
		k++
	}
	inss = inss[:k]
	k = 0
	for d, op := range dels {
		if !moved[d] {
			dels[k] = op
			k++
		}
	}
	dels = dels[:k]
	return dels, inss, moves
}

// reloadItems adds the item reloads and reconfigurations marked in new to cs. Moved items that
// are reloaded are turned into a deletion and an insertion.
func reloadItems[S, I comparable](cs *Changeset, old, new *snapshot.Snapshot[S, I], newGone []bool, dels, inss []itemOp[I], moves []itemMove[I]) ([]itemOp[I], []itemOp[I], []itemMove[I]) {
	reload, reconfigure := new.ReloadedItems(), new.ReconfiguredItems()
	if len(reload) == 0 && len(reconfigure) == 0 {
		return dels, inss, moves
	}

	isInserted := make(map[I]bool, len(inss))
	for _, op := range inss {
		isInserted[op.item] = true
	}
	movedAt := make(map[I]int, len(moves))
	for k, m := range moves {
		movedAt[m.item] = k
	}

	// eligible reports the position of item in new if an update to item can be reported.
	eligible := func(item I) (Position, bool) {
		if !old.ContainsItem(item) || isInserted[item] {
			return Position{}, false
		}
		j, t, _ := new.Locate(item)
		if newGone[j] {
			return Position{}, false
		}
		return Position{j, t}, true
	}

	isReloaded := make(map[I]bool, len(reload))
	replaced := make([]bool, len(moves))
	for _, item := range reload {
		isReloaded[item] = true
		pos, ok := eligible(item)
		if !ok {
			continue
		}
		if k, ok := movedAt[item]; ok {
			dels = append(dels, itemOp[I]{item, moves[k].from})
			inss = append(inss, itemOp[I]{item, moves[k].to})
			replaced[k] = true
			continue
		}
		cs.ItemReloads = append(cs.ItemReloads, pos) // new snapshot order, ascending
	}
	for _, item := range reconfigure {
		if isReloaded[item] {
			continue
		}
		if pos, ok := eligible(item); ok {
			cs.ItemReconfigures = append(cs.ItemReconfigures, pos) // new snapshot order, ascending
		}
	}

	k := 0
	for i, m := range moves {
		if !replaced[i] {
			moves[k] = m
			k++
		}
	}
	return dels, inss, moves[:k]
}

func indices(n int) []int {
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
