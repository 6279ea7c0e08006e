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

// listdiff is a small CLI to compute the changeset between two snapshot files.
//
// Usage:
//
//	listdiff [-nomoves] [-nocross] <old.toml> <new.toml>
//	listdiff [-nomoves] [-nocross] -txtar <file>
//
// The txtar form reads the "old" and "new" files of a golden test case.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/tools/txtar"
	"znkr.io/listdiff"
	"znkr.io/listdiff/internal/snapfile"
	"znkr.io/listdiff/snapshot"
)

type config struct {
	nomoves  bool
	nocross  bool
	old, new string
	txtar    string
}

func main() {
	var cfg config
	flag.BoolVar(&cfg.nomoves, "nomoves", false, "report moves as deletions and insertions")
	flag.BoolVar(&cfg.nocross, "nocross", false, "report moves between sections as deletions and insertions")
	flag.StringVar(&cfg.txtar, "txtar", "", "use testdata txtar file instead of two snapshot files")
	flag.Parse()

	if cfg.txtar != "" {
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: listdiff -txtar <file>\n")
			os.Exit(1)
		}
	} else {
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: listdiff <old.toml> <new.toml>\n")
			os.Exit(1)
		}
		cfg.old = flag.CommandLine.Arg(0)
		cfg.new = flag.CommandLine.Arg(1)
	}

	if err := run(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config) error {
	old, new, err := load(cfg)
	if err != nil {
		return err
	}

	var opts []listdiff.Option
	if cfg.nomoves {
		opts = append(opts, listdiff.NoMoves())
	}
	if cfg.nocross {
		opts = append(opts, listdiff.NoCrossSectionMoves())
	}

	fmt.Print(listdiff.Sections(old, new, opts...))
	return nil
}

func load(cfg *config) (old, new *snapshot.Snapshot[string, string], err error) {
	if cfg.txtar == "" {
		old, err = snapfile.Load(cfg.old)
		if err != nil {
			return nil, nil, err
		}
		new, err = snapfile.Load(cfg.new)
		if err != nil {
			return nil, nil, err
		}
		return old, new, nil
	}

	ar, err := txtar.ParseFile(cfg.txtar)
	if err != nil {
		return nil, nil, err
	}
	for _, f := range ar.Files {
		switch f.Name {
		case "old":
			old, err = snapfile.Parse(f.Data)
		case "new":
			new, err = snapfile.Parse(f.Data)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %s: %w", cfg.txtar, f.Name, err)
		}
	}
	if old == nil || new == nil {
		return nil, nil, fmt.Errorf("%s: missing old or new snapshot", cfg.txtar)
	}
	return old, new, nil
}
