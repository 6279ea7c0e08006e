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
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
	"znkr.io/listdiff/internal/snapfile"
	"znkr.io/listdiff/snapshot"
)

var update = flag.Bool("update", false, "update golden files")

type test struct {
	name     string
	filename string
	comment  []byte
	x, y     []byte
	old, new *snapshot.Snapshot[string, string]
	subtests []subtest
}

type subtest struct {
	name    string
	opts    []Option
	pragmas []byte
	want    []byte
}

func TestSectionsGolden(t *testing.T) {
	for _, tt := range parseTests(t) {
		t.Run(tt.name, func(t *testing.T) {
			for sti, st := range tt.subtests {
				t.Run(st.name, func(t *testing.T) {
					cs := Sections(tt.old, tt.new, st.opts...)
					checkChangeset(t, tt.old, tt.new, cs)
					got := []byte(cs.String())
					if diff := cmp.Diff(string(st.want), string(got)); diff != "" {
						t.Errorf("Sections(...) result is different:\ngot:\n%s\nwant:\n%s\ndiff [-want,+got]:\n%s", got, st.want, diff)
					}
					if *update {
						tt.subtests[sti].want = got
					}
				})
			}

			// Run in a cleanup to make sure it runs after the subtests have finished.
			t.Cleanup(func() {
				if !*update {
					return
				}
				var buf bytes.Buffer
				buf.Write(tt.comment)
				buf.WriteString("-- old --\n")
				buf.Write(tt.x)
				buf.WriteString("-- new --\n")
				buf.Write(tt.y)
				for _, st := range tt.subtests {
					buf.WriteString("-- changeset --\n")
					buf.Write(st.pragmas)
					buf.Write(st.want)
				}
				if err := os.WriteFile(tt.filename, buf.Bytes(), 0o644); err != nil {
					t.Fatalf("error writing golden file: %v", err)
				}
			})
		})
	}
}

func BenchmarkSectionsGolden(b *testing.B) {
	for _, tt := range parseTests(b) {
		b.Run(tt.name, func(b *testing.B) {
			for _, st := range tt.subtests {
				b.Run(st.name, func(b *testing.B) {
					b.ReportAllocs()
					for b.Loop() {
						_ = Sections(tt.old, tt.new, st.opts...)
					}
				})
			}
		})
	}
}

func parseTests(t testing.TB) []test {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []test
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		test := test{
			name:     strings.TrimSuffix(strings.TrimPrefix(filename, "testdata/"), ".test"),
			filename: filename,
			comment:  ar.Comment,
		}

		for _, f := range ar.Files {
			switch f.Name {
			case "old":
				test.x = f.Data
				test.old, err = snapfile.Parse(f.Data)
			case "new":
				test.y = f.Data
				test.new, err = snapfile.Parse(f.Data)
			case "changeset":
				test.subtests = append(test.subtests, parseSubtest(t, f.Data))
			default:
				t.Fatalf("unknown file in archive: %v", f.Name)
			}
			if err != nil {
				t.Fatalf("%s: %v", filename, err)
			}
		}
		if test.old == nil || test.new == nil {
			t.Fatalf("%s: missing old or new snapshot", filename)
		}
		tests = append(tests, test)
	}
	return tests
}

// parseSubtest parses the pragma lines at the start of a changeset file. Pragma lines have the
// form "# key: value".
func parseSubtest(t testing.TB, data []byte) subtest {
	t.Helper()
	var st subtest
	var name []string
	i := 0
	for i < len(data) && data[i] == '#' {
		eol := bytes.IndexByte(data[i:], '\n')
		if eol < 0 {
			t.Fatal("failed to parse test case: missing newline after pragma line")
		}
		k, v, found := strings.Cut(string(data[i+1:i+eol]), ":")
		if !found {
			t.Fatal("failed to parse test case: missing ':' in pragma line")
		}
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		var opt Option
		switch k {
		case "no-moves":
			opt = NoMoves()
		case "no-cross-section-moves":
			opt = NoCrossSectionMoves()
		default:
			t.Fatalf("unknown option: %q", k)
		}
		switch v {
		case "true":
			st.opts = append(st.opts, opt)
			name = append(name, k)
		case "false":
			// do nothing
		default:
			t.Fatalf("invalid value for %s: %q", k, v)
		}
		i += eol + 1
	}
	if len(name) == 0 {
		name = append(name, "default")
	}
	st.name = strings.Join(name, ":")
	st.pragmas = data[:i]
	st.want = data[i:]
	return st
}
