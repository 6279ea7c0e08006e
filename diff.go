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
	"znkr.io/listdiff/internal/heckel"
	"znkr.io/listdiff/internal/lis"
)

// Match describes an element that appears in both inputs.
type Match struct {
	Old, New int // Index in x and y.
}

// Move describes a matched element whose order relative to the other matched elements changed.
type Move struct {
	From, To int // Index in x and y.
}

// Result describes the changes necessary to convert one sequence into another.
type Result struct {
	Deletes []int   // Indices into x that are deleted, ascending.
	Inserts []int   // Indices into y that are inserted, ascending.
	Moves   []Move  // Matched elements that need to move, ascending by To.
	Matched []Match // All matched elements including moved ones, ascending by New.
}

// Diff compares the contents of x and y and returns the changes necessary to convert from one to
// the other.
//
// Every index of x is either deleted or matched and every index of y is either inserted or
// matched. A matched element only needs to move if its order relative to the other matched
// elements changed; the set of moves is minimal.
//
// Elements that appear multiple times in the inputs can only be matched if they are adjacent to a
// match or part of the common prefix or suffix. Otherwise they are reported as deletions and
// insertions. Which duplicate is matched with which is unspecified, but the number of deletions
// minus the number of insertions always equals len(x) - len(y).
//
// The following option is supported: [NoMoves]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Diff[T comparable](x, y []T, opts ...Option) Result {
	cfg := config.FromOptions(opts, config.NoMoves)
	return diff(x, y, cfg)
}

// DiffFunc compares the contents of x and y by the identity that key returns for each element and
// returns the changes necessary to convert from one to the other.
//
// See [Diff] for a description of the result.
//
// The following option is supported: [NoMoves]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func DiffFunc[T any, K comparable](x, y []T, key func(T) K, opts ...Option) Result {
	cfg := config.FromOptions(opts, config.NoMoves)
	kx, ky := make([]K, len(x)), make([]K, len(y))
	for i, e := range x {
		kx[i] = key(e)
	}
	for i, e := range y {
		ky[i] = key(e)
	}
	return diff(kx, ky, cfg)
}

func diff[T comparable](x, y []T, cfg config.Config) Result {
	ox, ny := heckel.Diff(x, y)

	// Determine the matches that stay in place: the longest increasing subsequence of indices
	// into x, taken in the order of y. Everything else needs to move.
	var seq []int
	for _, s := range ny {
		if s >= 0 {
			seq = append(seq, s)
		}
	}
	stay := lis.Mark(seq)

	if cfg.NoMoves {
		k, kept := 0, 0
		for t, s := range ny {
			if s < 0 {
				continue
			}
			if stay[k] {
				kept++
			} else {
				ox[s], ny[t] = -1, -1
			}
			k++
		}
		stay = slices.Repeat([]bool{true}, kept)
	}

	return result(ox, ny, stay)
}

// result translates the index vectors into a Result. stay reports for every match in the order of
// y if it stays in place; it's ignored for unmatched elements.
func result(ox, ny []int, stay []bool) Result {
	// Count first, this is cheap and allows us to preallocate the result.
	var ndel, nins, nmatch, nmove int
	for _, t := range ox {
		if t < 0 {
			ndel++
		}
	}
	k := 0
	for _, s := range ny {
		if s < 0 {
			nins++
			continue
		}
		nmatch++
		if !stay[k] {
			nmove++
		}
		k++
	}

	var r Result
	if ndel > 0 {
		r.Deletes = make([]int, 0, ndel)
	}
	if nins > 0 {
		r.Inserts = make([]int, 0, nins)
	}
	if nmatch > 0 {
		r.Matched = make([]Match, 0, nmatch)
	}
	if nmove > 0 {
		r.Moves = make([]Move, 0, nmove)
	}

	for s, t := range ox {
		if t < 0 {
			r.Deletes = append(r.Deletes, s)
		}
	}
	k = 0
	for t, s := range ny {
		if s < 0 {
			r.Inserts = append(r.Inserts, t)
			continue
		}
		r.Matched = append(r.Matched, Match{Old: s, New: t})
		if !stay[k] {
			r.Moves = append(r.Moves, Move{From: s, To: t})
		}
		k++
	}
	return r
}
