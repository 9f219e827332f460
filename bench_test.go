package dynstate

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/gogpu/dynstate/cbstate"
	"github.com/gogpu/dynstate/cpp"
	"github.com/gogpu/dynstate/registry"
)

// ---------------------------------------------------------------------------
// Feeds at different sizes
// ---------------------------------------------------------------------------

// syntheticFeed returns n canonical names, the first of which is the depth
// bias state.
func syntheticFeed(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("VK_DYNAMIC_STATE_SYNTHETIC_%d_EXT", i)
	}
	if n > 0 {
		names[0] = "VK_DYNAMIC_STATE_DEPTH_BIAS"
	}
	return names
}

var feedsBySize = []struct {
	name  string
	names []string
}{
	{"small", syntheticFeed(8)},
	{"builtin", registry.Builtin().Names()},
	{"large", syntheticFeed(1024)},
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

// BenchmarkRenumber measures building the renumbered model.
func BenchmarkRenumber(b *testing.B) {
	for _, fc := range feedsBySize {
		b.Run(fc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			var result *cbstate.Enumeration
			for i := 0; i < b.N; i++ {
				var err error
				result, err = cbstate.New(fc.names, nil)
				if err != nil {
					b.Fatalf("renumber failed: %v", err)
				}
			}
			runtime.KeepAlive(result)
		})
	}
}

// BenchmarkCompile measures emitting each artifact from a prepared model.
func BenchmarkCompile(b *testing.B) {
	for _, fc := range feedsBySize {
		e, err := cbstate.New(fc.names, nil)
		if err != nil {
			b.Fatalf("renumber failed: %v", err)
		}
		for _, file := range cpp.Filenames() {
			b.Run(fc.name+"/"+file, func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()

				var result string
				for i := 0; i < b.N; i++ {
					result, _, err = cpp.Compile(e, file, cpp.DefaultOptions())
					if err != nil {
						b.Fatalf("compile failed: %v", err)
					}
				}
				b.SetBytes(int64(len(result)))
				runtime.KeepAlive(result)
			})
		}
	}
}

// BenchmarkCommandsString measures the Go mirror of
// DynamicStatesCommandsToString with every bit set.
func BenchmarkCommandsString(b *testing.B) {
	e, err := Build(DefaultOptions())
	if err != nil {
		b.Fatalf("build failed: %v", err)
	}
	flags := e.NewFlags(e.States()...)

	b.ReportAllocs()
	b.ResetTimer()

	var result string
	for i := 0; i < b.N; i++ {
		result = e.CommandsString(flags)
	}
	runtime.KeepAlive(result)
}

// BenchmarkFullPipeline measures the complete builtin pipeline:
// feed + table -> model -> source text.
func BenchmarkFullPipeline(b *testing.B) {
	opts := DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()

	var result string
	for i := 0; i < b.N; i++ {
		var err error
		result, err = Generate(cpp.SourceFile, opts)
		if err != nil {
			b.Fatalf("generate failed: %v", err)
		}
	}
	runtime.KeepAlive(result)
}
