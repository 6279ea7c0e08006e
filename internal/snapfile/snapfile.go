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

// Package snapfile reads snapshots from TOML files.
//
// A snapshot file lists the sections of a snapshot in order, together with the reload and
// reconfigure marks:
//
//	reload = ["2"]
//	reconfigure = ["3"]
//
//	[[section]]
//	id = "A"
//	items = ["1", "2"]
//
//	[[section]]
//	id = "B"
//	items = ["3"]
//	reload = true
package snapfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"znkr.io/listdiff/snapshot"
)

type file struct {
	Reload      []string  `toml:"reload"`
	Reconfigure []string  `toml:"reconfigure"`
	Sections    []section `toml:"section"`
}

type section struct {
	ID     string   `toml:"id"`
	Items  []string `toml:"items"`
	Reload bool     `toml:"reload"`
}

// Load reads the snapshot file at path.
func Load(path string) (*snapshot.Snapshot[string, string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse parses a snapshot file.
func Parse(data []byte) (*snapshot.Snapshot[string, string], error) {
	return Read(bytes.NewReader(data))
}

// Read reads a snapshot file from r.
func Read(r io.Reader) (*snapshot.Snapshot[string, string], error) {
	var f file
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("unknown fields:\n%s", serr.String())
		}
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return f.build()
}

func (f *file) build() (*snapshot.Snapshot[string, string], error) {
	s := snapshot.New[string, string]()
	for i, sec := range f.Sections {
		if sec.ID == "" {
			return nil, fmt.Errorf("section #%d: missing id", i+1)
		}
		if s.ContainsSection(sec.ID) {
			return nil, fmt.Errorf("section #%d: duplicate section %q", i+1, sec.ID)
		}
		s.AppendSections(sec.ID)
		for _, item := range sec.Items {
			if id, ok := s.SectionOf(item); ok {
				return nil, fmt.Errorf("section %q: item %q already exists in section %q", sec.ID, item, id)
			}
			s.AppendItemsToSection(sec.ID, item)
		}
		if sec.Reload {
			s.ReloadSections(sec.ID)
		}
	}
	for _, item := range f.Reload {
		if !s.ContainsItem(item) {
			return nil, fmt.Errorf("reload: unknown item %q", item)
		}
		s.ReloadItems(item)
	}
	for _, item := range f.Reconfigure {
		if !s.ContainsItem(item) {
			return nil, fmt.Errorf("reconfigure: unknown item %q", item)
		}
		s.ReconfigureItems(item)
	}
	return s, nil
}
