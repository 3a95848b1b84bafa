package accessor

import (
	"fmt"
	"io"
	"strings"
)

// Dumper receives accessor values for display.
type Dumper interface {
	DumpValue(a Accessor, value any, err error)
}

// TextDumper writes one line per accessor.
type TextDumper struct {
	W io.Writer
}

func (d TextDumper) DumpValue(a Accessor, value any, err error) {
	name := a.Name()
	lineage := strings.Join(a.Kind().Lineage(), "<")
	if err != nil {
		fmt.Fprintf(d.W, "%s [%s] error: %v\n", name, lineage, err)
		return
	}
	fmt.Fprintf(d.W, "%s [%s] = %v\n", name, lineage, value)
}
