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

// Package snapshot provides a sectioned snapshot of identifiable items.
//
// A [Snapshot] is an ordered list of sections, each holding an ordered list of items. Section
// identifiers are unique within a snapshot and every item belongs to exactly one section. Besides
// the structure, a snapshot carries reload and reconfigure marks that are consumed by the next
// diff computed against it.
//
// Operations that refer to a section or item that doesn't exist, or that would add an identifier
// that already exists, are programming errors and panic.
package snapshot

import (
	"fmt"
	"maps"
	"slices"
)

type section[S, I comparable] struct {
	id    S
	items []I
}

type location[S comparable] struct {
	section S
	offset  int
}

// Snapshot is an ordered collection of sections of items. The zero value is an empty snapshot
// ready to use.
//
// A Snapshot may be read from multiple goroutines, but must not be modified concurrently. Use
// [Snapshot.Clone] to hand a copy to another goroutine.
type Snapshot[S, I comparable] struct {
	sections []section[S, I]
	index    map[S]int         // section ID -> index in sections
	items    map[I]location[S] // item -> section and offset within the section

	reloadedItems     map[I]struct{}
	reconfiguredItems map[I]struct{}
	reloadedSections  map[S]struct{}
}

// New returns an empty snapshot.
func New[S, I comparable]() *Snapshot[S, I] {
	return &Snapshot[S, I]{}
}

// Clone returns a copy of the structure of s. Reload and reconfigure marks are not copied.
func (s *Snapshot[S, I]) Clone() *Snapshot[S, I] {
	c := &Snapshot[S, I]{
		sections: make([]section[S, I], len(s.sections)),
		index:    maps.Clone(s.index),
		items:    maps.Clone(s.items),
	}
	for i, sec := range s.sections {
		c.sections[i] = section[S, I]{id: sec.id, items: slices.Clone(sec.items)}
	}
	return c
}

func (s *Snapshot[S, I]) init() {
	if s.index == nil {
		s.index = make(map[S]int)
	}
	if s.items == nil {
		s.items = make(map[I]location[S])
	}
}

// reindexSections updates the section index for all sections starting at i.
func (s *Snapshot[S, I]) reindexSections(i int) {
	for ; i < len(s.sections); i++ {
		s.index[s.sections[i].id] = i
	}
}

// reindexItems updates the item locations in section i starting at offset off.
func (s *Snapshot[S, I]) reindexItems(i, off int) {
	sec := &s.sections[i]
	for ; off < len(sec.items); off++ {
		s.items[sec.items[off]] = location[S]{sec.id, off}
	}
}

func (s *Snapshot[S, I]) mustSection(id S) int {
	i, ok := s.index[id]
	if !ok {
		panic(fmt.Sprintf("snapshot: section %v does not exist", id))
	}
	return i
}

func (s *Snapshot[S, I]) mustItem(item I) (sec, off int) {
	loc, ok := s.items[item]
	if !ok {
		panic(fmt.Sprintf("snapshot: item %v does not exist", item))
	}
	return s.index[loc.section], loc.offset
}

func (s *Snapshot[S, I]) checkNewSections(ids []S) {
	seen := make(map[S]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			panic(fmt.Sprintf("snapshot: section %v already exists", id))
		}
		if _, ok := seen[id]; ok {
			panic(fmt.Sprintf("snapshot: duplicate section %v", id))
		}
		seen[id] = struct{}{}
	}
}

func (s *Snapshot[S, I]) checkNewItems(items []I) {
	seen := make(map[I]struct{}, len(items))
	for _, item := range items {
		if _, ok := s.items[item]; ok {
			panic(fmt.Sprintf("snapshot: item %v already exists", item))
		}
		if _, ok := seen[item]; ok {
			panic(fmt.Sprintf("snapshot: duplicate item %v", item))
		}
		seen[item] = struct{}{}
	}
}

// AppendSections adds sections to the end of the snapshot.
func (s *Snapshot[S, I]) AppendSections(ids ...S) {
	s.insertSections(len(s.sections), ids)
}

// InsertSectionsBefore inserts sections before the section before.
func (s *Snapshot[S, I]) InsertSectionsBefore(ids []S, before S) {
	s.insertSections(s.mustSection(before), ids)
}

// InsertSectionsAfter inserts sections after the section after.
func (s *Snapshot[S, I]) InsertSectionsAfter(ids []S, after S) {
	s.insertSections(s.mustSection(after)+1, ids)
}

func (s *Snapshot[S, I]) insertSections(i int, ids []S) {
	s.init()
	s.checkNewSections(ids)
	secs := make([]section[S, I], len(ids))
	for k, id := range ids {
		secs[k].id = id
	}
	s.sections = slices.Insert(s.sections, i, secs...)
	s.reindexSections(i)
}

// DeleteSections removes sections and all items they contain.
func (s *Snapshot[S, I]) DeleteSections(ids ...S) {
	del := make(map[S]struct{}, len(ids))
	for _, id := range ids {
		s.mustSection(id)
		del[id] = struct{}{}
	}
	for id := range del {
		for _, item := range s.sections[s.index[id]].items {
			s.forgetItem(item)
		}
		delete(s.index, id)
		delete(s.reloadedSections, id)
	}
	s.sections = slices.DeleteFunc(s.sections, func(sec section[S, I]) bool {
		_, ok := del[sec.id]
		return ok
	})
	s.reindexSections(0)
}

// MoveSectionBefore moves the section id before the section before.
func (s *Snapshot[S, I]) MoveSectionBefore(id, before S) {
	s.moveSection(id, before, 0)
}

// MoveSectionAfter moves the section id after the section after.
func (s *Snapshot[S, I]) MoveSectionAfter(id, after S) {
	s.moveSection(id, after, 1)
}

func (s *Snapshot[S, I]) moveSection(id, anchor S, delta int) {
	i := s.mustSection(id)
	s.mustSection(anchor)
	if id == anchor {
		return
	}
	sec := s.sections[i]
	s.sections = slices.Delete(s.sections, i, i+1)
	s.reindexSections(i)
	j := s.index[anchor] + delta
	s.sections = slices.Insert(s.sections, j, sec)
	s.reindexSections(min(i, j))
}

// AppendItems adds items to the end of the last section. It panics if the snapshot has no
// sections.
func (s *Snapshot[S, I]) AppendItems(items ...I) {
	if len(s.sections) == 0 {
		panic("snapshot: no section to append items to")
	}
	s.insertItems(len(s.sections)-1, len(s.sections[len(s.sections)-1].items), items)
}

// AppendItemsToSection adds items to the end of a section.
func (s *Snapshot[S, I]) AppendItemsToSection(id S, items ...I) {
	i := s.mustSection(id)
	s.insertItems(i, len(s.sections[i].items), items)
}

// InsertItemsBefore inserts items before the item before, in the same section.
func (s *Snapshot[S, I]) InsertItemsBefore(items []I, before I) {
	i, off := s.mustItem(before)
	s.insertItems(i, off, items)
}

// InsertItemsAfter inserts items after the item after, in the same section.
func (s *Snapshot[S, I]) InsertItemsAfter(items []I, after I) {
	i, off := s.mustItem(after)
	s.insertItems(i, off+1, items)
}

func (s *Snapshot[S, I]) insertItems(i, off int, items []I) {
	s.init()
	s.checkNewItems(items)
	sec := &s.sections[i]
	sec.items = slices.Insert(sec.items, off, items...)
	s.reindexItems(i, off)
}

// DeleteItems removes items from the snapshot.
func (s *Snapshot[S, I]) DeleteItems(items ...I) {
	del := make(map[I]struct{}, len(items))
	affected := make(map[int]struct{})
	for _, item := range items {
		i, _ := s.mustItem(item)
		del[item] = struct{}{}
		affected[i] = struct{}{}
	}
	for i := range affected {
		sec := &s.sections[i]
		sec.items = slices.DeleteFunc(sec.items, func(item I) bool {
			_, ok := del[item]
			return ok
		})
	}
	for item := range del {
		s.forgetItem(item)
	}
	for i := range affected {
		s.reindexItems(i, 0)
	}
}

// DeleteAllItems removes all items but keeps the sections.
func (s *Snapshot[S, I]) DeleteAllItems() {
	for i := range s.sections {
		s.sections[i].items = nil
	}
	clear(s.items)
	clear(s.reloadedItems)
	clear(s.reconfiguredItems)
}

func (s *Snapshot[S, I]) forgetItem(item I) {
	delete(s.items, item)
	delete(s.reloadedItems, item)
	delete(s.reconfiguredItems, item)
}

// MoveItemBefore moves item before the item before. The item may change its section.
func (s *Snapshot[S, I]) MoveItemBefore(item, before I) {
	s.moveItem(item, before, 0)
}

// MoveItemAfter moves item after the item after. The item may change its section.
func (s *Snapshot[S, I]) MoveItemAfter(item, after I) {
	s.moveItem(item, after, 1)
}

func (s *Snapshot[S, I]) moveItem(item, anchor I, delta int) {
	s.mustItem(item)
	s.mustItem(anchor)
	if item == anchor {
		return
	}
	s.removeItem(item)
	i, off := s.mustItem(anchor)
	s.placeItem(item, i, off+delta)
}

// MoveItemToSection moves item to the end of a section.
func (s *Snapshot[S, I]) MoveItemToSection(item I, id S) {
	s.mustItem(item)
	s.mustSection(id)
	s.removeItem(item)
	i := s.index[id]
	s.placeItem(item, i, len(s.sections[i].items))
}

// removeItem removes item from its section but keeps its marks.
func (s *Snapshot[S, I]) removeItem(item I) {
	i, off := s.mustItem(item)
	sec := &s.sections[i]
	sec.items = slices.Delete(sec.items, off, off+1)
	delete(s.items, item)
	s.reindexItems(i, off)
}

func (s *Snapshot[S, I]) placeItem(item I, i, off int) {
	sec := &s.sections[i]
	sec.items = slices.Insert(sec.items, off, item)
	s.reindexItems(i, off)
}

// ReplaceSectionItems replaces the items of a section. Items that are already in the section may
// be part of items, all other items must not exist in the snapshot yet. Marks of items that remain
// in the section are kept.
func (s *Snapshot[S, I]) ReplaceSectionItems(id S, items []I) {
	i := s.mustSection(id)
	seen := make(map[I]struct{}, len(items))
	for _, item := range items {
		if loc, ok := s.items[item]; ok && loc.section != id {
			panic(fmt.Sprintf("snapshot: item %v already exists in section %v", item, loc.section))
		}
		if _, ok := seen[item]; ok {
			panic(fmt.Sprintf("snapshot: duplicate item %v", item))
		}
		seen[item] = struct{}{}
	}
	sec := &s.sections[i]
	for _, item := range sec.items {
		if _, ok := seen[item]; !ok {
			s.forgetItem(item)
		}
	}
	sec.items = slices.Clone(items)
	s.init()
	s.reindexItems(i, 0)
}

// ReloadItems marks items to be reloaded by the next diff.
func (s *Snapshot[S, I]) ReloadItems(items ...I) {
	for _, item := range items {
		s.mustItem(item)
	}
	if s.reloadedItems == nil {
		s.reloadedItems = make(map[I]struct{}, len(items))
	}
	for _, item := range items {
		s.reloadedItems[item] = struct{}{}
	}
}

// ReconfigureItems marks items to be reconfigured by the next diff. Reconfiguring updates the
// content of an item in place, without replacing it like a reload does.
func (s *Snapshot[S, I]) ReconfigureItems(items ...I) {
	for _, item := range items {
		s.mustItem(item)
	}
	if s.reconfiguredItems == nil {
		s.reconfiguredItems = make(map[I]struct{}, len(items))
	}
	for _, item := range items {
		s.reconfiguredItems[item] = struct{}{}
	}
}

// ReloadSections marks sections to be reloaded by the next diff.
func (s *Snapshot[S, I]) ReloadSections(ids ...S) {
	for _, id := range ids {
		s.mustSection(id)
	}
	if s.reloadedSections == nil {
		s.reloadedSections = make(map[S]struct{}, len(ids))
	}
	for _, id := range ids {
		s.reloadedSections[id] = struct{}{}
	}
}
