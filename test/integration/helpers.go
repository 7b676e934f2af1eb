// Package integration exercises the documentation build end to end:
// real files on disk in, one rendered page out.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const coreSource = `#include "lattice.h"

/// @builtin print(value: Any)
/// @category Core
/// Writes value to standard output followed by a newline.
/// @example print("hello")  // hello
void lat_print(LatValue value);

/// @builtin len(value: Any) -> Int
/// @category Core
/// Returns the number of elements in a collection or the length of a string.
LatValue lat_len(LatValue value);
`

const mathSource = `#include "lattice.h"

/// @builtin sqrt(x: Float) -> Float
/// @category Math
/// Returns the square root of x.
/// @example sqrt(16.0)  // 4.0
double lat_sqrt(double x);

/// @method push(value: Any) -> Array
/// @category Array Methods
/// Appends value and returns the array for chaining.
LatValue lat_array_push(LatArray *arr, LatValue value);
`

// writeTree creates a temporary source tree from name to file content.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

// readOutput reads the generated page as a string.
func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
