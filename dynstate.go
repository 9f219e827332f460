// Package dynstate generates the Vulkan validation layer dynamic state
// helpers.
//
// dynstate reads the canonical VkDynamicState field list, renumbers it into
// a dense range usable as bitset indices and writes two C++ artifacts:
//   - dynamic_state_helper.h: the CBDynamicState enum and declarations
//   - dynamic_state_helper.cpp: conversions, stringifiers and the setter
//     command descriptor
//
// The package provides a simple, high-level API as well as lower-level
// access to the individual stages.
//
// Example usage:
//
//	opts := dynstate.DefaultOptions()
//	opts.Registry = "vk.xml"
//	paths, err := dynstate.GenerateAll("layers/vulkan/generated", opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For a single artifact, build the model and use the cpp package:
//
//	e, _ := dynstate.Build(opts)
//	header, info, err := cpp.Compile(e, cpp.HeaderFile, cpp.DefaultOptions())
package dynstate

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/gogpu/dynstate/cbstate"
	"github.com/gogpu/dynstate/cpp"
	"github.com/gogpu/dynstate/registry"
	"github.com/gogpu/dynstate/table"
)

// Options configures generation.
type Options struct {
	// Registry is a vk.xml or field list file. Empty uses the builtin feed.
	Registry string

	// Table is a setter command table file. Empty uses the builtin table.
	Table string

	// Enum is the registry enum to read (default: VkDynamicState).
	Enum string

	// Emit configures the C++ output.
	Emit cpp.Options
}

// DefaultOptions returns options that generate from the builtin feed and
// table.
func DefaultOptions() Options {
	return Options{
		Enum: registry.DynamicState,
		Emit: cpp.DefaultOptions(),
	}
}

// Feed loads the canonical field list named by opts.
func Feed(opts Options) (*registry.Enum, error) {
	if opts.Registry == "" {
		return registry.Builtin(), nil
	}
	enum := opts.Enum
	if enum == "" {
		enum = registry.DynamicState
	}
	e, err := registry.Load(opts.Registry, enum)
	if err != nil {
		return nil, fmt.Errorf("registry error: %w", err)
	}
	return e, nil
}

// Table loads the setter command table named by opts.
func Table(opts Options) (*table.Table, error) {
	if opts.Table == "" {
		return table.Default(), nil
	}
	t, err := table.Load(opts.Table)
	if err != nil {
		return nil, fmt.Errorf("table error: %w", err)
	}
	return t, nil
}

// Build loads the feed and table and renumbers the feed.
func Build(opts Options) (*cbstate.Enumeration, error) {
	feed, err := Feed(opts)
	if err != nil {
		return nil, err
	}
	tbl, err := Table(opts)
	if err != nil {
		return nil, err
	}
	e, err := cbstate.New(feed.Names(), tbl)
	if err != nil {
		return nil, fmt.Errorf("renumbering error: %w", err)
	}
	return e, nil
}

// Generate returns the text of one artifact.
//
// The pipeline is:
//  1. Load the canonical feed (builtin or file)
//  2. Load the setter command table (builtin or file)
//  3. Renumber the feed and resolve each state against the table
//  4. Emit the artifact named by filename
func Generate(filename string, opts Options) (string, error) {
	e, err := Build(opts)
	if err != nil {
		return "", err
	}
	out, _, err := cpp.Compile(e, filename, opts.Emit)
	if err != nil {
		return "", fmt.Errorf("code generation error: %w", err)
	}
	return out, nil
}

// GenerateAll writes each named artifact into dir and returns the paths
// written. Without filenames it writes every artifact the emitter knows.
// The feed and table are loaded once for all artifacts.
func GenerateAll(dir string, opts Options, filenames ...string) ([]string, error) {
	if len(filenames) == 0 {
		filenames = cpp.Filenames()
	}

	e, err := Build(opts)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(filenames))
	for _, name := range filenames {
		out, info, err := cpp.Compile(e, name, opts.Emit)
		if err != nil {
			return paths, fmt.Errorf("code generation error: %w", err)
		}

		path := filepath.Join(dir, filepath.Base(name))
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)

		Logger().Info("wrote artifact",
			zap.String("path", path),
			zap.Stringer("kind", info.Kind),
			zap.Int("states", e.Len()))
	}
	return paths, nil
}
