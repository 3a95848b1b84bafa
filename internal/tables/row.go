package tables

import "sort"

// Column positions in an element table row.
const (
	ColCode = iota
	ColShortName
	ColType
	ColName
	ColUnits
	ColScale
	ColReference
	ColWidth

	// MinColumns is the number of columns a complete element row carries.
	MinColumns
)

// Row is the ordered column values of one table line.
type Row []string

// Column returns column i, or "" and false when the row is short.
func (r Row) Column(i int) (string, bool) {
	if i < 0 || i >= len(r) {
		return "", false
	}
	return r[i], true
}

// Dictionary maps a zero-padded code to its row.
type Dictionary struct {
	rows map[string]Row
}

func NewDictionary() *Dictionary {
	return &Dictionary{rows: make(map[string]Row)}
}

// Get returns the row for code.
func (d *Dictionary) Get(code string) (Row, bool) {
	row, ok := d.rows[code]
	return row, ok
}

// Len returns the number of distinct codes.
func (d *Dictionary) Len() int {
	return len(d.rows)
}

// Codes returns all keys in ascending order.
func (d *Dictionary) Codes() []string {
	out := make([]string, 0, len(d.rows))
	for code := range d.rows {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// put inserts or replaces; the previous row, if any, is dropped.
func (d *Dictionary) put(row Row) (replaced bool) {
	key := row[ColCode]
	_, replaced = d.rows[key]
	d.rows[key] = row
	return replaced
}
