package accessor

import (
	"github.com/danmuck/bufrkit/internal/tables"
)

// Flags describe accessor visibility and mutability.
type Flags uint32

const (
	FlagReadOnly Flags = 1 << iota
	FlagHidden
)

func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// NativeType is the representation an accessor prefers to be read as.
type NativeType int

const (
	TypeUndefined NativeType = iota
	TypeLong
	TypeDouble
	TypeString
	TypeBytes
)

func (t NativeType) String() string {
	switch t {
	case TypeLong:
		return "long"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeBytes:
		return "bytes"
	default:
		return "undefined"
	}
}

// Accessor is a handle bound to one field occurrence in a message.
type Accessor interface {
	Name() string
	Kind() *Kind
	Flags() Flags
	Length() int64

	Init(length int64) error

	PackLong(vals []int64) error
	UnpackLong(dst []int64) (int, error)
	PackDouble(vals []float64) error
	UnpackDouble(dst []float64) (int, error)
	PackString(val string) error
	UnpackString() (string, error)
	PackBytes(val []byte) error
	UnpackBytes(dst []byte) (int, error)

	ValueCount() (int64, error)
	NativeType() NativeType
	NotifyChange(changed Accessor) error
	Dump(d Dumper)
}

// Handle is the owning message as seen from an accessor.
type Handle interface {
	tables.Context
	Size(name string) (int, error)
	LongArray(name string, dst []int64) (int, error)
	SetLongArray(name string, vals []int64) error
}

// Creator receives change notifications forwarded by observer accessors.
type Creator interface {
	NotifyChange(observer, changed Accessor) error
}

// Binding carries what every accessor needs regardless of kind.
type Binding struct {
	Name    string
	Length  int64
	Handle  Handle
	Creator Creator
}
