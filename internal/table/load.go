package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const bom = "\ufeff"

// Load reads a comma-separated file with a header row. Cells are kept as text.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("open csv: %w", err)}
	}
	defer f.Close()
	t, err := Read(f, filepath.Base(path))
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return t, nil
}

// Read parses comma-separated data from r. name labels the table in errors and reports.
func Read(r io.Reader, name string) (*Table, error) {
	fail := func(err error) (*Table, error) {
		return nil, &LoadError{Path: name, Err: err}
	}
	cr := csv.NewReader(r)
	cr.Comma = ','
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fail(errors.New("no header row"))
		}
		return fail(fmt.Errorf("read header: %w", err))
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}
	if err := checkUTF8(header, 0); err != nil {
		return fail(err)
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fail(fmt.Errorf("read row %d: %w", len(records)+1, err))
		}
		if err := checkUTF8(rec, len(records)+1); err != nil {
			return fail(err)
		}
		records = append(records, rec)
	}
	t, err := New(name, header, records)
	if err != nil {
		return fail(err)
	}
	return t, nil
}

func checkUTF8(rec []string, row int) error {
	for j, v := range rec {
		if !utf8.ValidString(v) {
			if row == 0 {
				return fmt.Errorf("header field %d: invalid UTF-8", j+1)
			}
			return fmt.Errorf("row %d field %d: invalid UTF-8", row, j+1)
		}
	}
	return nil
}
