// File: internal/resultio/writer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Result writing: one CSV file per method x CPU count, one row per
// trial, one column per worker thread. There is no third-party CSV
// library anywhere in the retrieved corpus, so this stays on
// encoding/csv; see DESIGN.md.

package resultio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/momentics/ipidbench/internal/methods"
)

// FileName builds the result file's base name for method run with
// numeric argument arg (ignored when the method takes none) against n
// worker threads, e.g. "perbucketl4096_8.csv" or "global_4.csv".
func FileName(method string, arg, n int) string {
	if methods.HasNumericArg(method) {
		return fmt.Sprintf("%s%d_%d.csv", method, arg, n)
	}
	return fmt.Sprintf("%s_%d.csv", method, n)
}

// WriteCSV writes rows (one per trial, one column per thread) to
// dir/name, creating dir if necessary and overwriting any existing
// file at that path.
func WriteCSV(dir, name string, rows [][]uint64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("resultio: creating results dir %q: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("resultio: creating %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = strconv.FormatUint(v, 10)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("resultio: writing row to %q: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("resultio: flushing %q: %w", path, err)
	}
	return nil
}
