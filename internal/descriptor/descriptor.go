// Package descriptor resolves element codes into descriptor metadata.
package descriptor

import "fmt"

// MaxCode is the largest six digit element code.
const MaxCode = 999999

// Type classifies a descriptor.
type Type int

const (
	TypeUnknown Type = iota
	TypeString
	TypeLong
	TypeDouble
	TypeTable
	TypeFlag
	TypeReplication
	TypeOperator
	TypeSequence
)

var typeNames = map[Type]string{
	TypeUnknown:     "unknown",
	TypeString:      "string",
	TypeLong:        "long",
	TypeDouble:      "double",
	TypeTable:       "table",
	TypeFlag:        "flag",
	TypeReplication: "replication",
	TypeOperator:    "operator",
	TypeSequence:    "sequence",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return typeNames[TypeUnknown]
}

// MarshalText renders the type by name.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseType maps a table type token. Unrecognized tokens are TypeUnknown.
func ParseType(token string) Type {
	switch token {
	case "string":
		return TypeString
	case "long":
		return TypeLong
	case "double":
		return TypeDouble
	case "table":
		return TypeTable
	case "flag":
		return TypeFlag
	default:
		return TypeUnknown
	}
}

// Descriptor is the resolved metadata for one code.
type Descriptor struct {
	Code      int     `json:"code"`
	F         int     `json:"f"`
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Type      Type    `json:"type"`
	ShortName string  `json:"shortName,omitempty"`
	Units     string  `json:"units,omitempty"`
	Scale     int64   `json:"scale"`
	Factor    float64 `json:"factor"`
	Reference int64   `json:"reference"`
	Width     int64   `json:"width"`
}

// Decompose splits code into category, class and index.
func Decompose(code int) (f, x, y int) {
	f = code / 100000
	x = (code - f*100000) / 1000
	y = (code - f*100000) % 1000
	return f, x, y
}

// FormatCode renders code as the zero-padded table key.
func FormatCode(code int) string {
	return fmt.Sprintf("%06d", code)
}

var markerCodes = map[int]struct{}{
	223255: {},
	224255: {},
	225255: {},
	232255: {},
}

// IsMarker reports whether d is a marker operator: one of the fixed marker
// codes, or any 2-05-YYY descriptor.
func IsMarker(d *Descriptor) bool {
	if d == nil {
		return false
	}
	if _, ok := markerCodes[d.Code]; ok {
		return true
	}
	return d.F == 2 && d.X == 5
}

func (d *Descriptor) String() string {
	if d.ShortName != "" {
		return fmt.Sprintf("%06d %s (%s)", d.Code, d.ShortName, d.Type)
	}
	return fmt.Sprintf("%06d (%s)", d.Code, d.Type)
}
