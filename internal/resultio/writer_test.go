// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package resultio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/momentics/ipidbench/internal/methods"
)

func TestFileNameWithAndWithoutArg(t *testing.T) {
	if got, want := FileName(methods.NamePerBucketL, 4096, 8), "perbucketl4096_8.csv"; got != want {
		t.Errorf("FileName(perbucketl) = %q, want %q", got, want)
	}
	if got, want := FileName(methods.NameGlobal, 0, 4), "global_4.csv"; got != want {
		t.Errorf("FileName(global) = %q, want %q", got, want)
	}
}

func TestWriteCSVCreatesDirAndRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")
	rows := [][]uint64{
		{100, 200, 300},
		{110, 210, 310},
	}
	name := FileName(methods.NameGlobal, 0, 3)
	if err := WriteCSV(dir, name, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	want := "100,200,300\n110,210,310\n"
	if string(data) != want {
		t.Errorf("file contents = %q, want %q", string(data), want)
	}
}
