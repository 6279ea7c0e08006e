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

package snapfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`
reload = ["2"]
reconfigure = ["3", "1"]

[[section]]
id = "A"
items = ["1", "2"]

[[section]]
id = "B"
items = ["3"]
reload = true

[[section]]
id = "C"
`))
	if err != nil {
		t.Fatalf("Parse(...) failed: %v", err)
	}

	if diff := cmp.Diff([]string{"A", "B", "C"}, s.SectionIDs()); diff != "" {
		t.Errorf("sections are different [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, s.ItemIDs()); diff != "" {
		t.Errorf("items are different [-want,+got]:\n%s", diff)
	}
	if got := s.NumItemsInSection("C"); got != 0 {
		t.Errorf("NumItemsInSection(C) = %d, want 0", got)
	}
	if diff := cmp.Diff([]string{"2"}, s.ReloadedItems()); diff != "" {
		t.Errorf("reloaded items are different [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "3"}, s.ReconfiguredItems()); diff != "" {
		t.Errorf("reconfigured items are different [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"B"}, s.ReloadedSections()); diff != "" {
		t.Errorf("reloaded sections are different [-want,+got]:\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if n := s.NumSections(); n != 0 {
		t.Errorf("NumSections() = %d, want 0", n)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "syntax",
			input:   "[[section]\n",
			wantErr: "parsing snapshot",
		},
		{
			name:    "unknown-field",
			input:   "[[section]]\nid = \"A\"\ncolor = \"red\"\n",
			wantErr: "unknown fields",
		},
		{
			name:    "missing-id",
			input:   "[[section]]\nitems = [\"1\"]\n",
			wantErr: "section #1: missing id",
		},
		{
			name:    "duplicate-section",
			input:   "[[section]]\nid = \"A\"\n[[section]]\nid = \"A\"\n",
			wantErr: `section #2: duplicate section "A"`,
		},
		{
			name:    "duplicate-item",
			input:   "[[section]]\nid = \"A\"\nitems = [\"1\"]\n[[section]]\nid = \"B\"\nitems = [\"1\"]\n",
			wantErr: `section "B": item "1" already exists in section "A"`,
		},
		{
			name:    "duplicate-item-in-section",
			input:   "[[section]]\nid = \"A\"\nitems = [\"1\", \"1\"]\n",
			wantErr: `section "A": item "1" already exists in section "A"`,
		},
		{
			name:    "reload-unknown",
			input:   "reload = [\"1\"]\n",
			wantErr: `reload: unknown item "1"`,
		},
		{
			name:    "reconfigure-unknown",
			input:   "reconfigure = [\"1\"]\n",
			wantErr: `reconfigure: unknown item "1"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatalf("Parse(...) succeeded, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse(...) error = %q, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.toml")
	if err := os.WriteFile(path, []byte("[[section]]\nid = \"A\"\nitems = [\"1\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}
	if diff := cmp.Diff([]string{"1"}, s.ItemIDsInSection("A")); diff != "" {
		t.Errorf("items are different [-want,+got]:\n%s", diff)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("Load(missing.toml) succeeded, want error")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("reload = [\"x\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	if err == nil || !strings.HasPrefix(err.Error(), bad+": ") {
		t.Errorf("Load(bad.toml) error = %v, want error prefixed with the path", err)
	}
}
