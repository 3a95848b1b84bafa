package accessor

// Kind names a field type and its fallback parent.
type Kind struct {
	Name   string
	Parent *Kind
}

var (
	KindGen           = &Kind{Name: "gen"}
	KindLong          = &Kind{Name: "long", Parent: KindGen}
	KindElement       = &Kind{Name: "element", Parent: KindLong}
	KindWhen          = &Kind{Name: "when", Parent: KindGen}
	KindElementsTable = &Kind{Name: "bufr_elements_table", Parent: KindGen}
)

// Lineage lists kind names from k up to the root.
func (k *Kind) Lineage() []string {
	out := make([]string, 0, 4)
	for cur := k; cur != nil; cur = cur.Parent {
		out = append(out, cur.Name)
	}
	return out
}

// Is reports whether k is other or descends from it.
func (k *Kind) Is(other *Kind) bool {
	for cur := k; cur != nil; cur = cur.Parent {
		if cur == other {
			return true
		}
	}
	return false
}

func (k *Kind) String() string {
	if k == nil {
		return "<nil>"
	}
	return k.Name
}
