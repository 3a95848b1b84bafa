package tables

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/danmuck/bufrkit/internal/codes"
)

// Context supplies string values of message fields by name.
type Context interface {
	String(name string) (string, error)
}

// PathResolver turns a table identifier into a concrete file path.
type PathResolver interface {
	// Recompose builds "<dir>/<identifier>" where dir is the value of the
	// dirField field, with [key] placeholders substituted from ctx. It
	// returns identifier unchanged when dirField is unset or empty.
	Recompose(ctx Context, dirField, identifier string) (string, error)
	// Find locates rel on the definitions search path.
	Find(rel string) (string, bool)
}

// DefsPath resolves table files against an ordered list of roots.
type DefsPath struct {
	Roots []string
}

func NewDefsPath(roots ...string) *DefsPath {
	out := make([]string, 0, len(roots))
	for _, r := range roots {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return &DefsPath{Roots: out}
}

func (p *DefsPath) Recompose(ctx Context, dirField, identifier string) (string, error) {
	dir, err := fieldValue(ctx, dirField)
	if err != nil {
		return "", err
	}
	name := identifier
	if dir != "" {
		name = path.Join(dir, identifier)
	}
	return Recompose(ctx, name)
}

func (p *DefsPath) Find(rel string) (string, bool) {
	if rel == "" {
		return "", false
	}
	if filepath.IsAbs(rel) {
		return rel, isFile(rel)
	}
	for _, root := range p.Roots {
		candidate := filepath.Join(root, filepath.FromSlash(rel))
		if isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Recompose substitutes every [key] (or [key:format]) placeholder in template
// with the string value of key from ctx.
func Recompose(ctx Context, template string) (string, error) {
	if !strings.Contains(template, "[") {
		return template, nil
	}
	var b strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[open:], ']')
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated placeholder in %q", codes.ErrInvalidArgument, template)
		}
		b.WriteString(rest[:open])
		key := rest[open+1 : open+end]
		if i := strings.IndexByte(key, ':'); i >= 0 {
			key = key[:i]
		}
		if ctx == nil {
			return "", fmt.Errorf("%w: no context for placeholder %q", codes.ErrNotFound, key)
		}
		val, err := ctx.String(key)
		if err != nil {
			return "", fmt.Errorf("recompose %q: %w", template, err)
		}
		b.WriteString(val)
		rest = rest[open+end+1:]
	}
}

// fieldValue reads an optional directory field. A missing field counts as unset.
func fieldValue(ctx Context, field string) (string, error) {
	field = strings.TrimSpace(field)
	if field == "" || ctx == nil {
		return "", nil
	}
	val, err := ctx.String(field)
	if errors.Is(err, codes.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(val), nil
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
