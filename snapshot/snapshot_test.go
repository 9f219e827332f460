// Package snapshot_test provides golden snapshot tests for the generated
// C++ artifacts.
//
// Each testdata/*.txtar archive holds one case. The input files are:
//
//	feed.yaml     canonical field list (required)
//	table.yaml    setter command table (default: builtin table)
//	options.yaml  overrides applied to cpp.DefaultOptions()
//
// Every other file in the archive is an artifact name; its content is the
// expected output of generating that artifact.
//
// To regenerate golden files after intentional changes:
//
//	UPDATE_GOLDEN=1 go test ./snapshot/...
package snapshot_test

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
	"sigs.k8s.io/yaml"

	"github.com/gogpu/dynstate/cbstate"
	"github.com/gogpu/dynstate/cpp"
	"github.com/gogpu/dynstate/registry"
	"github.com/gogpu/dynstate/table"
)

// Archive members that are inputs rather than artifacts.
const (
	feedFile    = "feed.yaml"
	tableFile   = "table.yaml"
	optionsFile = "options.yaml"
)

// snapshotCase is one golden archive loaded from disk.
type snapshotCase struct {
	name    string // base name without extension (e.g., "three_states")
	path    string
	archive *txtar.Archive
}

// TestSnapshots loads every archive, generates each artifact it names and
// compares the result with the archived text.
func TestSnapshots(t *testing.T) {
	cases := loadCases(t, "testdata")
	if len(cases) == 0 {
		t.Fatal("no golden archives found in testdata/")
	}

	for i := range cases {
		c := &cases[i]
		t.Run(c.name, func(t *testing.T) {
			e := buildEnumeration(t, c.archive)
			opts := buildOptions(t, c.archive)

			changed := false
			for j := range c.archive.Files {
				f := &c.archive.Files[j]
				if isInput(f.Name) {
					continue
				}
				t.Run(f.Name, func(t *testing.T) {
					got, _, err := cpp.Compile(e, f.Name, opts)
					if err != nil {
						t.Fatalf("compile failed: %v", err)
					}
					if os.Getenv("UPDATE_GOLDEN") != "" {
						if string(f.Data) != got {
							f.Data = []byte(got)
							changed = true
						}
						return
					}
					want := strings.ReplaceAll(string(f.Data), "\r\n", "\n")
					if diff := cmp.Diff(want, got); diff != "" {
						t.Errorf("output differs from golden %s (-want +got):\n%s", c.path, diff)
					}
				})
			}

			if changed {
				if err := os.WriteFile(c.path, txtar.Format(c.archive), 0o644); err != nil {
					t.Fatalf("write golden archive: %v", err)
				}
				t.Logf("updated golden archive: %s", c.path)
			}
		})
	}
}

// TestSnapshotsCoverArtifacts makes sure some archive pins each artifact.
func TestSnapshotsCoverArtifacts(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range loadCases(t, "testdata") {
		for _, f := range c.archive.Files {
			seen[f.Name] = true
		}
	}
	for _, name := range cpp.Filenames() {
		if !seen[name] {
			t.Errorf("no golden archive covers %s", name)
		}
	}
}

// ---------------------------------------------------------------------------
// Archive Loading
// ---------------------------------------------------------------------------

// loadCases reads all .txtar files from the given directory.
func loadCases(t *testing.T, dir string) []snapshotCase {
	t.Helper()

	paths, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatalf("glob %q: %v", dir, err)
	}

	cases := make([]snapshotCase, 0, len(paths))
	for _, path := range paths {
		a, parseErr := txtar.ParseFile(path)
		if parseErr != nil {
			t.Fatalf("parse archive %q: %v", path, parseErr)
		}
		name := strings.TrimSuffix(filepath.Base(path), ".txtar")
		cases = append(cases, snapshotCase{name: name, path: path, archive: a})
	}

	// Sort for deterministic test order
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].name < cases[j].name
	})

	return cases
}

func isInput(name string) bool {
	return name == feedFile || name == tableFile || name == optionsFile
}

func member(a *txtar.Archive, name string) ([]byte, bool) {
	for _, f := range a.Files {
		if f.Name == name {
			return f.Data, true
		}
	}
	return nil, false
}

// buildEnumeration renumbers the archived feed against the archived or
// builtin table.
func buildEnumeration(t *testing.T, a *txtar.Archive) *cbstate.Enumeration {
	t.Helper()

	data, ok := member(a, feedFile)
	if !ok {
		t.Fatalf("archive has no %s", feedFile)
	}
	feed, err := registry.ParseList(data)
	if err != nil {
		t.Fatalf("parse feed: %v", err)
	}

	tbl := table.Default()
	if data, ok := member(a, tableFile); ok {
		tbl, err = table.Parse(data)
		if err != nil {
			t.Fatalf("parse table: %v", err)
		}
	}

	e, err := cbstate.New(feed.Names(), tbl)
	if err != nil {
		t.Fatalf("renumber feed: %v", err)
	}
	return e
}

// buildOptions applies the archived overrides to the default options.
func buildOptions(t *testing.T, a *txtar.Archive) cpp.Options {
	t.Helper()

	opts := cpp.DefaultOptions()
	if data, ok := member(a, optionsFile); ok {
		if err := yaml.Unmarshal(data, &opts); err != nil {
			t.Fatalf("parse options: %v", err)
		}
	}
	return opts
}
