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

// Package heckel implements Paul Heckel's algorithm to isolate differences between two sequences,
// as described in "A technique for isolating differences between files", Communications of the
// ACM 21(4), 1978.
//
// The result is represented as two index vectors: ox[s] is the index in y that x[s] is matched
// with and ny[t] is the index in x that y[t] is matched with; unmatched elements are -1. An
// unmatched element of x is a deletion, an unmatched element of y is an insertion. Matched pairs
// are not necessarily in the same relative order in x and y, the caller is responsible for
// deriving moves from them.
package heckel

// count is the number of occurrences of a symbol in one of the inputs. Once a symbol has been seen
// twice, its index is no longer tracked.
type count uint8

const (
	zero count = iota
	one
	many
)

// occurrence is a tri-state occurrence counter: zero, one(index) or many.
type occurrence struct {
	count count
	index int // only valid if count == one
}

func (o occurrence) inc(index int) occurrence {
	switch o.count {
	case zero:
		return occurrence{count: one, index: index}
	default:
		return occurrence{count: many}
	}
}

// entry is a symbol table entry.
type entry struct {
	old, new occurrence
}

// Diff compares x and y and returns the index vectors describing matches between them.
func Diff[T comparable](x, y []T) (ox, ny []int) {
	ox, ny = make([]int, len(x)), make([]int, len(y))
	for s := range ox {
		ox[s] = -1
	}
	for t := range ny {
		ny[t] = -1
	}

	smin, smax, tmin, tmax := findChangeBounds(x, y)

	// The common prefix and suffix match trivially.
	for s, t := 0, 0; s < smin; s, t = s+1, t+1 {
		ox[s], ny[t] = t, s
	}
	for s, t := smax, tmax; s < len(x); s, t = s+1, t+1 {
		ox[s], ny[t] = t, s
	}

	if smin == smax || tmin == tmax {
		// Only deletions or only insertions remain, they are already marked as such.
		return ox, ny
	}

	symbols(x[smin:smax], y[tmin:tmax], ox[smin:smax], ny[tmin:tmax], smin, tmin)
	return ox, ny
}

// findChangeBounds returns the upper and lower bounds for the changed portion of the inputs.
func findChangeBounds[T comparable](x, y []T) (smin, smax, tmin, tmax int) {
	smin, tmin = 0, 0
	smax, tmax = len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	return
}

// symbols runs the symbol table passes on x and y. The index vectors ox and ny are windows into
// the full vectors, offsets smin and tmin translate window positions to positions in the full
// inputs.
func symbols[T comparable](x, y []T, ox, ny []int, smin, tmin int) {
	n, m := len(x), len(y)

	// Assign a dense ID to every distinct element. This allows us to use a slice for the symbol
	// table and to compare elements by ID in the expansion passes, which keeps the number of map
	// lookups to one per element.
	idx := make(map[T]int, m)
	table := make([]entry, 0, m)
	xs, ys := make([]int, n), make([]int, m)

	// Pass 1: Count occurrences in y.
	for t, e := range y {
		id, ok := idx[e]
		if !ok {
			id = len(table)
			idx[e] = id
			table = append(table, entry{})
		}
		table[id].new = table[id].new.inc(t)
		ys[t] = id
	}

	// Pass 2: Count occurrences in x. Elements that don't appear in y are always deletions and
	// don't need a symbol table entry.
	for s, e := range x {
		id, ok := idx[e]
		if !ok {
			xs[s] = -1
			continue
		}
		table[id].old = table[id].old.inc(s)
		xs[s] = id
	}

	// Pass 3: Elements that appear exactly once in both x and y are anchors.
	for t, id := range ys {
		en := table[id]
		if en.old.count == one && en.new.count == one {
			s := en.old.index
			ny[t] = s + smin
			ox[s] = t + tmin
		}
	}

	// Pass 4: Expand matches forward to equal, unmatched neighbors.
	for t := 0; t < m-1; t++ {
		if ny[t] < 0 {
			continue
		}
		s := ny[t] - smin
		if s+1 < n && ny[t+1] < 0 && ox[s+1] < 0 && xs[s+1] == ys[t+1] {
			ny[t+1] = s + 1 + smin
			ox[s+1] = t + 1 + tmin
		}
	}

	// Pass 5: Expand matches backward.
	for t := m - 1; t > 0; t-- {
		if ny[t] < 0 {
			continue
		}
		s := ny[t] - smin
		if s > 0 && ny[t-1] < 0 && ox[s-1] < 0 && xs[s-1] == ys[t-1] {
			ny[t-1] = s - 1 + smin
			ox[s-1] = t - 1 + tmin
		}
	}

	// Pass 6 is implicit: everything still set to -1 is a deletion or an insertion.
}
