// Package table holds sample data as typed columns with normalized names.
package table

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/contamstat/internal/sample"
)

// Kind is the semantic type of a column.
type Kind int

const (
	// Text columns hold cells exactly as read from the file.
	Text Kind = iota
	// Numeric columns hold coerced readings.
	Numeric
)

func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "text"
}

// Column is one named column. Exactly one of raw or nums is populated, per kind.
type Column struct {
	name string
	kind Kind
	raw  []string
	nums []sample.Reading
}

func (c *Column) Name() string { return c.name }
func (c *Column) Kind() Kind   { return c.kind }

// Cell returns the textual form of row i.
func (c *Column) Cell(i int) string {
	if c.kind == Numeric {
		r := c.nums[i]
		if !r.Valid() {
			return ""
		}
		return r.String()
	}
	return c.raw[i]
}

// Table is an ordered collection of rows over named columns.
type Table struct {
	Name  string
	cols  []*Column
	index map[string]int
	rows  int
}

// NormalizeName trims and lower-cases a column name.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// New builds a table from a header and row-major records. Headers are
// normalized; short records are padded with empty cells.
func New(name string, header []string, records [][]string) (*Table, error) {
	t := &Table{Name: name, index: make(map[string]int, len(header))}
	for i, h := range header {
		n := NormalizeName(h)
		if n == "" {
			return nil, fmt.Errorf("column %d has an empty name", i+1)
		}
		if _, dup := t.index[n]; dup {
			return nil, fmt.Errorf("duplicate column %q", n)
		}
		t.index[n] = i
		t.cols = append(t.cols, &Column{name: n, kind: Text, raw: make([]string, 0, len(records))})
	}
	for r, rec := range records {
		if len(rec) > len(header) {
			return nil, fmt.Errorf("row %d: expected %d fields, saw %d", r+1, len(header), len(rec))
		}
		for j, c := range t.cols {
			v := ""
			if j < len(rec) {
				v = rec[j]
			}
			c.raw = append(c.raw, v)
		}
	}
	t.rows = len(records)
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Names returns column names in file order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.name
	}
	return out
}

// Column looks up a column by name, normalizing the name first.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[NormalizeName(name)]
	if !ok {
		return nil, &MissingColumnError{Name: NormalizeName(name), Available: t.Names()}
	}
	return t.cols[i], nil
}

// Readings coerces a column without modifying the table. Numeric columns are
// returned as they are, so coercing twice changes nothing.
func (t *Table) Readings(name string, c sample.Coercer) ([]sample.Reading, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if col.kind == Numeric {
		out := make([]sample.Reading, len(col.nums))
		copy(out, col.nums)
		return out, nil
	}
	return c.CoerceAll(col.raw), nil
}

// SetNumeric replaces a column with coerced readings in place.
func (t *Table) SetNumeric(name string, rs []sample.Reading) error {
	col, err := t.Column(name)
	if err != nil {
		return err
	}
	if len(rs) != t.rows {
		return fmt.Errorf("column %q: %d readings for %d rows", col.Name(), len(rs), t.rows)
	}
	col.kind = Numeric
	col.raw = nil
	col.nums = rs
	return nil
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	return t.Filter(func(int) bool { return true })
}

// Filter returns a new table with the rows for which keep returns true.
// The receiver is not modified.
func (t *Table) Filter(keep func(row int) bool) *Table {
	var rows []int
	for i := 0; i < t.rows; i++ {
		if keep(i) {
			rows = append(rows, i)
		}
	}
	out := &Table{Name: t.Name, index: make(map[string]int, len(t.index)), rows: len(rows)}
	for k, v := range t.index {
		out.index[k] = v
	}
	for _, c := range t.cols {
		nc := &Column{name: c.name, kind: c.kind}
		if c.kind == Numeric {
			nc.nums = make([]sample.Reading, 0, len(rows))
			for _, i := range rows {
				nc.nums = append(nc.nums, c.nums[i])
			}
		} else {
			nc.raw = make([]string, 0, len(rows))
			for _, i := range rows {
				nc.raw = append(nc.raw, c.raw[i])
			}
		}
		out.cols = append(out.cols, nc)
	}
	return out
}
