package filter

import "strings"

// SortSpec is the caller's sort wire shape: parallel arrays of field
// paths and order tokens. Order entries are optional per position and
// matched case-insensitively.
type SortSpec struct {
	Fields []string
	Order  []string
}

// SortKey is one compiled sort pair.
type SortKey struct {
	Path string
	Desc bool
}

// CompileSort converts a sort spec into an ordered key sequence. The
// primary sort key comes first; missing order entries default to
// ascending.
func CompileSort(s SortSpec) []SortKey {
	keys := make([]SortKey, 0, len(s.Fields))
	for i, field := range s.Fields {
		desc := i < len(s.Order) && strings.EqualFold(s.Order[i], "desc")
		keys = append(keys, SortKey{Path: field, Desc: desc})
	}
	return keys
}
