package tables

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danmuck/bufrkit/internal/codes"
	"github.com/rs/zerolog/log"
)

const (
	CommentMarker = "#"
	Delimiter     = "|"
)

// RowPolicy decides what happens to rows with fewer than MinColumns columns.
type RowPolicy int

const (
	// RowsStrict rejects the whole file on the first short row.
	RowsStrict RowPolicy = iota
	// RowsTolerant pads short rows with empty columns; lookups of such a
	// code fail when the missing column is parsed.
	RowsTolerant
)

func (p RowPolicy) String() string {
	if p == RowsTolerant {
		return "tolerant"
	}
	return "strict"
}

// ParseRowPolicy maps a config value to a policy.
func ParseRowPolicy(raw string) (RowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "strict":
		return RowsStrict, nil
	case "tolerant":
		return RowsTolerant, nil
	default:
		return RowsStrict, fmt.Errorf("%w: unknown row policy %q", codes.ErrInvalidArgument, raw)
	}
}

// OpenFunc opens a table file for reading.
type OpenFunc func(path string) (io.ReadCloser, error)

// Loader parses table files into dictionaries.
type Loader struct {
	Open   OpenFunc
	Policy RowPolicy
}

func NewLoader(policy RowPolicy) *Loader {
	return &Loader{
		Open: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
		Policy: policy,
	}
}

// LoadFile parses path into d. Rows whose code already exists in d replace
// the earlier row.
func (l *Loader) LoadFile(path string, d *Dictionary) error {
	open := l.Open
	if open == nil {
		open = func(p string) (io.ReadCloser, error) { return os.Open(p) }
	}
	f, err := open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("tables: open failed")
		return fmt.Errorf("%w: open %s: %v", codes.ErrIOProblem, path, err)
	}
	defer f.Close()
	return l.Parse(f, path, d)
}

// Parse reads rows from r into d. name is used in diagnostics only.
func (l *Loader) Parse(r io.Reader, name string, d *Dictionary) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	replaced := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, CommentMarker) {
			continue
		}
		row, err := l.splitRow(line, name, lineNo)
		if err != nil {
			return err
		}
		if d.put(row) {
			replaced++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: read %s: %v", codes.ErrIOProblem, name, err)
	}
	log.Debug().
		Str("file", name).
		Int("lines", lineNo).
		Int("replaced", replaced).
		Int("rows", d.Len()).
		Msg("tables: parsed")
	return nil
}

func (l *Loader) splitRow(line, name string, lineNo int) (Row, error) {
	cols := strings.Split(line, Delimiter)
	if len(cols) >= MinColumns {
		return Row(cols), nil
	}
	if l.Policy == RowsTolerant {
		log.Warn().Str("file", name).Int("line", lineNo).Int("columns", len(cols)).Msg("tables: short row padded")
		padded := make(Row, MinColumns)
		copy(padded, cols)
		return padded, nil
	}
	return nil, fmt.Errorf("%w: %s:%d has %d columns, want at least %d",
		codes.ErrInvalidArgument, name, lineNo, len(cols), MinColumns)
}
