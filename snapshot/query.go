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

package snapshot

import "slices"

// NumSections returns the number of sections.
func (s *Snapshot[S, I]) NumSections() int { return len(s.sections) }

// NumItems returns the number of items in all sections.
func (s *Snapshot[S, I]) NumItems() int { return len(s.items) }

// NumItemsInSection returns the number of items in a section.
func (s *Snapshot[S, I]) NumItemsInSection(id S) int {
	return len(s.sections[s.mustSection(id)].items)
}

// SectionIDs returns the IDs of all sections in order.
func (s *Snapshot[S, I]) SectionIDs() []S {
	ids := make([]S, len(s.sections))
	for i, sec := range s.sections {
		ids[i] = sec.id
	}
	return ids
}

// ItemIDs returns all items in order, section by section.
func (s *Snapshot[S, I]) ItemIDs() []I {
	items := make([]I, 0, len(s.items))
	for _, sec := range s.sections {
		items = append(items, sec.items...)
	}
	return items
}

// ItemIDsInSection returns the items of a section in order.
func (s *Snapshot[S, I]) ItemIDsInSection(id S) []I {
	return slices.Clone(s.sections[s.mustSection(id)].items)
}

// ContainsSection reports whether the snapshot contains a section.
func (s *Snapshot[S, I]) ContainsSection(id S) bool {
	_, ok := s.index[id]
	return ok
}

// ContainsItem reports whether the snapshot contains an item.
func (s *Snapshot[S, I]) ContainsItem(item I) bool {
	_, ok := s.items[item]
	return ok
}

// SectionOf returns the section containing item.
func (s *Snapshot[S, I]) SectionOf(item I) (id S, ok bool) {
	loc, ok := s.items[item]
	return loc.section, ok
}

// IndexOfSection returns the index of a section or -1 if the section doesn't exist.
func (s *Snapshot[S, I]) IndexOfSection(id S) int {
	if i, ok := s.index[id]; ok {
		return i
	}
	return -1
}

// IndexOfItem returns the index of item across all sections or -1 if the item doesn't exist.
func (s *Snapshot[S, I]) IndexOfItem(item I) int {
	i, off, ok := s.Locate(item)
	if !ok {
		return -1
	}
	for _, sec := range s.sections[:i] {
		off += len(sec.items)
	}
	return off
}

// Locate returns the index of the section containing item and the offset of item in that
// section.
func (s *Snapshot[S, I]) Locate(item I) (section, offset int, ok bool) {
	loc, ok := s.items[item]
	if !ok {
		return -1, -1, false
	}
	return s.index[loc.section], loc.offset, true
}

// SectionID returns the ID of the section at index i.
func (s *Snapshot[S, I]) SectionID(i int) S {
	return s.sections[i].id
}

// ItemID returns the item at offset off in the section at index i.
func (s *Snapshot[S, I]) ItemID(i, off int) I {
	return s.sections[i].items[off]
}

// ReloadedItems returns the items marked for reloading in snapshot order.
func (s *Snapshot[S, I]) ReloadedItems() []I {
	return s.marked(s.reloadedItems)
}

// ReconfiguredItems returns the items marked for reconfiguration in snapshot order.
func (s *Snapshot[S, I]) ReconfiguredItems() []I {
	return s.marked(s.reconfiguredItems)
}

// ReloadedSections returns the sections marked for reloading in snapshot order.
func (s *Snapshot[S, I]) ReloadedSections() []S {
	if len(s.reloadedSections) == 0 {
		return nil
	}
	var ids []S
	for _, sec := range s.sections {
		if _, ok := s.reloadedSections[sec.id]; ok {
			ids = append(ids, sec.id)
		}
	}
	return ids
}

func (s *Snapshot[S, I]) marked(set map[I]struct{}) []I {
	if len(set) == 0 {
		return nil
	}
	var items []I
	for _, sec := range s.sections {
		for _, item := range sec.items {
			if _, ok := set[item]; ok {
				items = append(items, item)
			}
		}
	}
	return items
}
