package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opencv-codegen/internal/clsrc"
)

// The commands install the default slog logger, so these tests do not run
// in parallel.

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, path string, data []byte) string {
	t.Helper()

	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func TestCLMake(t *testing.T) {
	dir := t.TempDir()
	add := writeFile(t, filepath.Join(dir, "add.cl"), []byte("AB"))
	header := filepath.Join(dir, "opencl_kernels_core.hpp")
	source := filepath.Join(dir, "opencl_kernels_core.cpp")

	out, err := execute(t, NewCLMakeCommand(),
		"--module", "core", "--header", header, "--source", source, add)
	require.NoError(t, err)
	assert.Empty(t, out)

	h, err := os.ReadFile(header)
	require.NoError(t, err)
	assert.Contains(t, string(h), "namespace core\n{")
	assert.Contains(t, string(h), "extern struct cv::ocl::internal::ProgramEntry add_oclsrc;")

	s, err := os.ReadFile(source)
	require.NoError(t, err)
	assert.Contains(t, string(s), `#include "opencl_kernels_core.hpp"`)
	assert.Contains(t, string(s), `unhexify("41:42"), "`+clsrc.Digest([]byte("AB"))+`"`)
}

func TestCLMake_Deterministic(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "a.cl"), []byte("__kernel void a() {}\n"))
	b := writeFile(t, filepath.Join(dir, "b.cl"), []byte("__kernel void b() {}\n"))

	header := filepath.Join(dir, "k.hpp")
	source := filepath.Join(dir, "k.cpp")

	run := func() ([]byte, []byte) {
		_, err := execute(t, NewCLMakeCommand(),
			"--module", "imgproc", "--header", header, "--source", source, a, b)
		require.NoError(t, err)

		h, err := os.ReadFile(header)
		require.NoError(t, err)

		s, err := os.ReadFile(source)
		require.NoError(t, err)

		return h, s
	}

	h1, s1 := run()
	h2, s2 := run()

	assert.Equal(t, h1, h2)
	assert.Equal(t, s1, s2)
}

func TestCLMake_ArgumentErrors(t *testing.T) {
	dir := t.TempDir()
	add := writeFile(t, filepath.Join(dir, "add.cl"), []byte("x"))

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing module", []string{"--header", "h", "--source", "s", add}, `"module"`},
		{"missing header", []string{"--module", "core", "--source", "s", add}, `"header"`},
		{"missing inputs", []string{"--module", "core", "--header", "h", "--source", "s"}, "at least 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, NewCLMakeCommand(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, out, "Usage:")
		})
	}
}

func TestCLMake_IOErrors(t *testing.T) {
	dir := t.TempDir()
	add := writeFile(t, filepath.Join(dir, "add.cl"), []byte("x"))

	t.Run("missing input", func(t *testing.T) {
		out, err := execute(t, NewCLMakeCommand(),
			"--module", "core",
			"--header", filepath.Join(dir, "h.hpp"),
			"--source", filepath.Join(dir, "s.cpp"),
			filepath.Join(dir, "nope.cl"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.NotContains(t, out, "Usage:")
	})

	t.Run("unwritable output", func(t *testing.T) {
		_, err := execute(t, NewCLMakeCommand(),
			"--module", "core",
			"--header", filepath.Join(dir, "missing", "h.hpp"),
			"--source", filepath.Join(dir, "s.cpp"),
			add)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "writing file")
	})
}

func TestCLMake_WarnsOnDuplicateKernel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0o755))
	first := writeFile(t, filepath.Join(dir, "a", "add.cl"), []byte("1"))
	second := writeFile(t, filepath.Join(dir, "b", "add.cl"), []byte("2"))

	out, err := execute(t, NewCLMakeCommand(),
		"--module", "core",
		"--header", filepath.Join(dir, "h.hpp"),
		"--source", filepath.Join(dir, "s.cpp"),
		first, second)
	require.NoError(t, err)
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "code=duplicate-kernel")
}

func TestOptimizations(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, NewOptimizationsCommand(),
		"--filename", "arithm", "--outdir", filepath.Join(dir, "marker"), "SSE4_2", "AVX2")
	require.NoError(t, err)
	assert.Empty(t, out)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}

	assert.ElementsMatch(t, []string{
		"arithm.sse4_2.cpp",
		"arithm.avx2.cpp",
		"arithm.simd_declarations.hpp",
	}, names)

	decls, err := os.ReadFile(filepath.Join(dir, "arithm.simd_declarations.hpp"))
	require.NoError(t, err)
	assert.Contains(t, string(decls), "#define CV_CPU_DISPATCH_MODES_ALL AVX2, SSE4_2, BASELINE\n")

	stub, err := os.ReadFile(filepath.Join(dir, "arithm.avx2.cpp"))
	require.NoError(t, err)
	assert.Equal(t, "#include \"precomp.hpp\"\n#include \"arithm.simd.hpp\"\n", string(stub))
}

func TestOptimizations_UnknownMode(t *testing.T) {
	t.Run("lenient", func(t *testing.T) {
		dir := t.TempDir()

		out, err := execute(t, NewOptimizationsCommand(),
			"--filename", "f", "--outdir", filepath.Join(dir, "x"), "AVX9")
		require.NoError(t, err)
		assert.Contains(t, out, "code=unknown-mode")

		_, statErr := os.Stat(filepath.Join(dir, "f.avx9.cpp"))
		assert.NoError(t, statErr)
	})

	t.Run("strict", func(t *testing.T) {
		dir := t.TempDir()

		_, err := execute(t, NewOptimizationsCommand(),
			"--filename", "f", "--outdir", filepath.Join(dir, "x"), "--strict", "AVX9")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validating inputs")

		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})
}

func TestOptimizations_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing filename", []string{"--outdir", "x", "AVX2"}, `"filename"`},
		{"missing outdir", []string{"--filename", "f", "AVX2"}, `"outdir"`},
		{"missing modes", []string{"--filename", "f", "--outdir", "x"}, "at least 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, NewOptimizationsCommand(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, out, "Usage:")
		})
	}
}

func TestOptimizations_UnwritableDir(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, NewOptimizationsCommand(),
		"--filename", "f", "--outdir", filepath.Join(dir, "missing", "x"), "AVX2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing file")
}

func TestOptimizations_Verbose(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, NewOptimizationsCommand(),
		"-v", "--filename", "f", "--outdir", filepath.Join(dir, "x"), "NEON")
	require.NoError(t, err)
	assert.Contains(t, out, "msg=\"wrote file\"")
	assert.Contains(t, out, "\"NEON, BASELINE\"")
}
