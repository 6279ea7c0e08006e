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

import "znkr.io/listdiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// NoMoves reports elements whose relative order changed as a deletion and an insertion instead of
// a move. This is useful for consumers that can't animate moves.
//
// For [Sections], this applies to sections and items alike. A section that moved is replaced, that
// is, deleted and inserted again, and no item operation refers to it.
func NoMoves() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.NoMoves = true
		return config.NoMoves
	}
}

// NoCrossSectionMoves reports items that change their section as a deletion from the old section
// and an insertion into the new section. Moves within a section are unaffected.
//
// This option is only supported by [Sections].
func NoCrossSectionMoves() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.NoCrossSectionMoves = true
		return config.NoCrossSectionMoves
	}
}
