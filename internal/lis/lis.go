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

// Package lis computes longest increasing subsequences.
package lis

import "sort"

// Longest returns the positions in seq of a longest strictly increasing subsequence of seq. The
// returned positions are ascending.
//
// The algorithm is patience sorting with back pointers, see e.g. Thomas G. Szymanski, “A Special
// Case of the Maximal Common Subsequence Problem,” Princeton TR #170 (January 1975), available at
// https://research.swtch.com/tgs170.pdf. It runs in O(n log n) time and O(n) space.
func Longest(seq []int) []int {
	if len(seq) == 0 {
		return nil
	}

	// tails[k] is the position of the smallest value in seq that ends an increasing subsequence
	// of length k+1. prev[i] is the position preceding i in the subsequence ending at i.
	tails := make([]int, 0, len(seq))
	prev := make([]int, len(seq))
	for i, v := range seq {
		k := sort.Search(len(tails), func(k int) bool {
			return seq[tails[k]] >= v
		})
		if k > 0 {
			prev[i] = tails[k-1]
		} else {
			prev[i] = -1
		}
		if k == len(tails) {
			tails = append(tails, i)
		} else {
			tails[k] = i
		}
	}

	out := make([]int, len(tails))
	for k, i := len(tails)-1, tails[len(tails)-1]; k >= 0; k, i = k-1, prev[i] {
		out[k] = i
	}
	return out
}

// Mark returns a slice that reports for every position in seq if it's part of the longest
// increasing subsequence returned by [Longest].
func Mark(seq []int) []bool {
	marks := make([]bool, len(seq))
	for _, i := range Longest(seq) {
		marks[i] = true
	}
	return marks
}
