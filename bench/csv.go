package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteCSV writes the rows of e with the header
// <param>,Variant,ConstructionTime(ns),QueryTime(ns),FinalSize.
func WriteCSV(w io.Writer, e Experiment, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{e.Param, "Variant", "ConstructionTime(ns)", "QueryTime(ns)", "FinalSize"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Param,
			r.Variant.String(),
			strconv.FormatInt(r.Construction.Nanoseconds(), 10),
			strconv.FormatInt(r.Query.Nanoseconds(), 10),
			strconv.Itoa(r.FinalSize),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes e's rows to dir/e.File and returns the path.
func SaveCSV(dir string, e Experiment, rows []Row) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, e.File)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, e, rows); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, f.Close()
}
