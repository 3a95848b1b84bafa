package accessor

import (
	"fmt"

	"github.com/danmuck/bufrkit/internal/codes"
)

// Gen is the root kind. Every operation it provides is the fallback for
// kinds that do not override it.
type Gen struct {
	self    Accessor
	kind    *Kind
	name    string
	flags   Flags
	length  int64
	handle  Handle
	creator Creator
}

// bind wires the concrete accessor back into its embedded root so that
// inherited operations can call overrides further down the chain.
func (g *Gen) bind(self Accessor, kind *Kind, b Binding) {
	g.self = self
	g.kind = kind
	g.name = b.Name
	g.handle = b.Handle
	g.creator = b.Creator
}

func (g *Gen) Name() string   { return g.name }
func (g *Gen) Kind() *Kind    { return g.kind }
func (g *Gen) Flags() Flags   { return g.flags }
func (g *Gen) Length() int64  { return g.length }
func (g *Gen) Handle() Handle { return g.handle }

func (g *Gen) Init(length int64) error {
	if length < 0 {
		return fmt.Errorf("%w: negative length %d for %q", codes.ErrInvalidArgument, length, g.name)
	}
	g.length = length
	return nil
}

func (g *Gen) PackLong(vals []int64) error             { return g.notImplemented("pack_long") }
func (g *Gen) UnpackLong(dst []int64) (int, error)     { return 0, g.notImplemented("unpack_long") }
func (g *Gen) PackDouble(vals []float64) error         { return g.notImplemented("pack_double") }
func (g *Gen) UnpackDouble(dst []float64) (int, error) { return 0, g.notImplemented("unpack_double") }
func (g *Gen) PackString(val string) error             { return g.notImplemented("pack_string") }
func (g *Gen) UnpackString() (string, error)           { return "", g.notImplemented("unpack_string") }
func (g *Gen) PackBytes(val []byte) error              { return g.notImplemented("pack_bytes") }
func (g *Gen) UnpackBytes(dst []byte) (int, error)     { return 0, g.notImplemented("unpack_bytes") }

func (g *Gen) ValueCount() (int64, error) {
	return 1, nil
}

func (g *Gen) NativeType() NativeType {
	return TypeUndefined
}

func (g *Gen) NotifyChange(changed Accessor) error {
	return g.notImplemented("notify_change")
}

// Dump reads the accessor through its native type and hands the value to d.
func (g *Gen) Dump(d Dumper) {
	if d == nil {
		return
	}
	self := g.target()
	switch self.NativeType() {
	case TypeLong:
		buf := make([]int64, 1)
		n, err := self.UnpackLong(buf)
		d.DumpValue(self, buf[:n], err)
	case TypeDouble:
		buf := make([]float64, 1)
		n, err := self.UnpackDouble(buf)
		d.DumpValue(self, buf[:n], err)
	case TypeString:
		s, err := self.UnpackString()
		d.DumpValue(self, s, err)
	default:
		d.DumpValue(self, nil, g.notImplemented("dump"))
	}
}

func (g *Gen) target() Accessor {
	if g.self != nil {
		return g.self
	}
	return g
}

func (g *Gen) notImplemented(op string) error {
	return fmt.Errorf("%w: %s on %s %q", codes.ErrNotImplemented, op, g.kind, g.name)
}
