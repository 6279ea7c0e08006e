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

// Package hierarchy provides a tree shaped snapshot of the items of a single section.
//
// A [Snapshot] is a forest: every item has at most one parent and an ordered list of children.
// Items can be expanded or collapsed. The visible items of a snapshot are all items whose
// ancestors are expanded, in pre-order. They are meant to be published as the items of a section
// using [snapshot.Snapshot.ReplaceSectionItems] before computing a diff.
//
// Operations that refer to an item that doesn't exist, or that would add an item that already
// exists, are programming errors and panic.
package hierarchy

import (
	"fmt"
	"slices"
)

// Snapshot is a forest of items. The zero value is an empty snapshot ready to use.
type Snapshot[I comparable] struct {
	roots []I
	nodes map[I]*node[I]
}

type node[I comparable] struct {
	parent    I
	hasParent bool
	children  []I
	expanded  bool
}

// New returns an empty snapshot.
func New[I comparable]() *Snapshot[I] {
	return &Snapshot[I]{}
}

// Clone returns an independent copy of s.
func (s *Snapshot[I]) Clone() *Snapshot[I] {
	c := &Snapshot[I]{roots: slices.Clone(s.roots)}
	if len(s.nodes) > 0 {
		c.nodes = make(map[I]*node[I], len(s.nodes))
		for item, n := range s.nodes {
			cn := *n
			cn.children = slices.Clone(n.children)
			c.nodes[item] = &cn
		}
	}
	return c
}

func (s *Snapshot[I]) mustNode(item I) *node[I] {
	n, ok := s.nodes[item]
	if !ok {
		panic(fmt.Sprintf("hierarchy: item %v does not exist", item))
	}
	return n
}

func (s *Snapshot[I]) checkNewItems(items []I) {
	seen := make(map[I]struct{}, len(items))
	for _, item := range items {
		if _, ok := s.nodes[item]; ok {
			panic(fmt.Sprintf("hierarchy: item %v already exists", item))
		}
		if _, ok := seen[item]; ok {
			panic(fmt.Sprintf("hierarchy: duplicate item %v", item))
		}
		seen[item] = struct{}{}
	}
}

// siblings returns the list that contains item: its parent's children or the roots.
func (s *Snapshot[I]) siblings(n *node[I]) *[]I {
	if n.hasParent {
		return &s.nodes[n.parent].children
	}
	return &s.roots
}

func (s *Snapshot[I]) add(items []I, parent I, hasParent bool) {
	if s.nodes == nil {
		s.nodes = make(map[I]*node[I], len(items))
	}
	for _, item := range items {
		s.nodes[item] = &node[I]{parent: parent, hasParent: hasParent}
	}
}

// Append adds items as root items at the end of the snapshot.
func (s *Snapshot[I]) Append(items ...I) {
	s.checkNewItems(items)
	var zero I
	s.add(items, zero, false)
	s.roots = append(s.roots, items...)
}

// AppendTo adds items as the last children of parent.
func (s *Snapshot[I]) AppendTo(parent I, items ...I) {
	p := s.mustNode(parent)
	s.checkNewItems(items)
	s.add(items, parent, true)
	p.children = append(p.children, items...)
}

// InsertBefore inserts items right before the anchor item, as siblings of the anchor.
func (s *Snapshot[I]) InsertBefore(items []I, before I) {
	s.insert(items, before, 0)
}

// InsertAfter inserts items right after the anchor item, as siblings of the anchor.
func (s *Snapshot[I]) InsertAfter(items []I, after I) {
	s.insert(items, after, 1)
}

func (s *Snapshot[I]) insert(items []I, anchor I, delta int) {
	a := s.mustNode(anchor)
	s.checkNewItems(items)
	s.add(items, a.parent, a.hasParent)
	list := s.siblings(a)
	i := slices.Index(*list, anchor)
	*list = slices.Insert(*list, i+delta, items...)
}

// Delete removes items together with all their descendants.
func (s *Snapshot[I]) Delete(items ...I) {
	for _, item := range items {
		s.mustNode(item)
	}
	for _, item := range items {
		n, ok := s.nodes[item]
		if !ok {
			continue // Already deleted as part of an ancestor.
		}
		list := s.siblings(n)
		*list = slices.DeleteFunc(*list, func(x I) bool { return x == item })
		s.forget(item)
	}
}

func (s *Snapshot[I]) forget(item I) {
	stack := []I{item}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = append(stack, s.nodes[item].children...)
		delete(s.nodes, item)
	}
}

// DeleteAll removes all items.
func (s *Snapshot[I]) DeleteAll() {
	s.roots = nil
	s.nodes = nil
}

// Expand expands items. Expanding a leaf item has no effect.
func (s *Snapshot[I]) Expand(items ...I) {
	s.setExpanded(items, true)
}

// Collapse collapses items. Collapsing a leaf item has no effect.
func (s *Snapshot[I]) Collapse(items ...I) {
	s.setExpanded(items, false)
}

func (s *Snapshot[I]) setExpanded(items []I, expanded bool) {
	for _, item := range items {
		s.mustNode(item)
	}
	for _, item := range items {
		if n := s.nodes[item]; !expanded || len(n.children) > 0 {
			n.expanded = expanded
		}
	}
}

// IsExpanded reports whether item is expanded.
func (s *Snapshot[I]) IsExpanded(item I) bool {
	return s.mustNode(item).expanded
}

// Len returns the number of items.
func (s *Snapshot[I]) Len() int { return len(s.nodes) }

// Contains reports whether item is part of the snapshot.
func (s *Snapshot[I]) Contains(item I) bool {
	_, ok := s.nodes[item]
	return ok
}

// RootItems returns the items without parent.
func (s *Snapshot[I]) RootItems() []I {
	return slices.Clone(s.roots)
}

// Children returns the direct children of item.
func (s *Snapshot[I]) Children(item I) []I {
	return slices.Clone(s.mustNode(item).children)
}

// Parent returns the parent of item. The boolean is false for root items.
func (s *Snapshot[I]) Parent(item I) (I, bool) {
	n := s.mustNode(item)
	return n.parent, n.hasParent
}

// Level returns the depth of item; root items are at level 0.
func (s *Snapshot[I]) Level(item I) int {
	level := 0
	for n := s.mustNode(item); n.hasParent; n = s.nodes[n.parent] {
		level++
	}
	return level
}

// IsVisible reports whether all ancestors of item are expanded.
func (s *Snapshot[I]) IsVisible(item I) bool {
	for n := s.mustNode(item); n.hasParent; {
		n = s.nodes[n.parent]
		if !n.expanded {
			return false
		}
	}
	return true
}

// Items returns all items in pre-order.
func (s *Snapshot[I]) Items() []I {
	return s.walk(false)
}

// VisibleItems returns the visible items in pre-order. The children of a collapsed item are
// skipped.
func (s *Snapshot[I]) VisibleItems() []I {
	return s.walk(true)
}

// Index returns the index of item in [Snapshot.Items] or -1 if item isn't part of the snapshot.
func (s *Snapshot[I]) Index(item I) int {
	if !s.Contains(item) {
		return -1
	}
	return slices.Index(s.Items(), item)
}

func (s *Snapshot[I]) walk(visibleOnly bool) []I {
	if len(s.nodes) == 0 {
		return nil
	}
	out := make([]I, 0, len(s.nodes))
	stack := slices.Clone(s.roots)
	slices.Reverse(stack)
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, item)
		n := s.nodes[item]
		if visibleOnly && !n.expanded {
			continue
		}
		for _, c := range slices.Backward(n.children) {
			stack = append(stack, c)
		}
	}
	return out
}

// Subtree returns a new snapshot with the subtree rooted at item. If includingParent is false,
// the children of item become the root items of the new snapshot. Expansion state is kept.
func (s *Snapshot[I]) Subtree(item I, includingParent bool) *Snapshot[I] {
	root := s.mustNode(item)
	sub := New[I]()
	if includingParent {
		sub.roots = []I{item}
	} else {
		sub.roots = slices.Clone(root.children)
	}
	sub.nodes = make(map[I]*node[I])
	stack := slices.Clone(sub.roots)
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := *s.nodes[x]
		n.children = slices.Clone(n.children)
		if x == item || (!includingParent && n.parent == item) {
			var zero I
			n.parent, n.hasParent = zero, false
		}
		sub.nodes[x] = &n
		stack = append(stack, n.children...)
	}
	return sub
}
