// Package export serializes filtered result rows as CSV. Column sets are
// fixed: criteria files carry id,value,criteria,context and requirement
// files carry id,value,description. encoding/csv quoting guarantees the
// output round-trips through any standard parser.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/klauspost/compress/gzip"

	"github.com/sensmetry/detect/internal/filter"
)

// Default output file names.
const (
	CriteriaFileName     = "criteria.csv"
	RequirementsFileName = "requirements.csv"
)

// OutputWriteError indicates the output destination was not writable.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("writing output %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }

// WriteCriteria writes criteria rows as CSV, header first.
func WriteCriteria(w io.Writer, rows []filter.CriterionRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "value", "criteria", "context"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.ID, formatWeight(row.Value), row.Criteria, row.Context}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRequirements writes requirement rows as CSV, header first.
func WriteRequirements(w io.Writer, rows []filter.RequirementRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "value", "description"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.ID, formatWeight(row.Value), row.Description}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCriteriaFile writes criteria rows to dir, optionally gzipped, and
// returns the full path of the written file.
func WriteCriteriaFile(dir string, rows []filter.CriterionRow, compress bool) (string, error) {
	return writeFile(dir, CriteriaFileName, compress, func(w io.Writer) error {
		return WriteCriteria(w, rows)
	})
}

// WriteRequirementsFile writes requirement rows to dir, optionally
// gzipped, and returns the full path of the written file.
func WriteRequirementsFile(dir string, rows []filter.RequirementRow, compress bool) (string, error) {
	return writeFile(dir, RequirementsFileName, compress, func(w io.Writer) error {
		return WriteRequirements(w, rows)
	})
}

func writeFile(dir, name string, compress bool, write func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &OutputWriteError{Path: dir, Err: err}
	}

	path := filepath.Join(dir, name)
	if compress {
		path += ".gz"
	}

	f, err := os.Create(path)
	if err != nil {
		return "", &OutputWriteError{Path: path, Err: err}
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(f)
		w = gz
	}

	if err := write(w); err != nil {
		f.Close() //nolint:errcheck
		return "", &OutputWriteError{Path: path, Err: err}
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			f.Close() //nolint:errcheck
			return "", &OutputWriteError{Path: path, Err: err}
		}
	}
	if err := f.Close(); err != nil {
		return "", &OutputWriteError{Path: path, Err: err}
	}
	return path, nil
}

// formatWeight renders a weight without trailing zeros: 5 not 5.000000,
// 2.5 stays 2.5.
func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
