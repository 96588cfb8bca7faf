package store

import (
	"math"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// pathIndex is an inverted index over one dotted path: value key to the
// roaring bitmap of row positions holding that value. Only present
// values are indexed; absence checks always go through evaluation.
type pathIndex struct {
	values map[string]*roaring.Bitmap
}

func newPathIndex() *pathIndex {
	return &pathIndex{values: make(map[string]*roaring.Bitmap)}
}

func (ix *pathIndex) add(row uint32, v any) {
	key := valueKey(v)
	bm, ok := ix.values[key]
	if !ok {
		bm = roaring.New()
		ix.values[key] = bm
	}
	bm.Add(row)
}

// rows returns the row set holding the value, or nil when no row does.
func (ix *pathIndex) rows(v any) *roaring.Bitmap {
	return ix.values[valueKey(v)]
}

// valueKey renders a document value into a stable map key. Numeric
// values share one representation so int 5 and float64 5 land in the
// same posting list, mirroring equal().
func valueKey(v any) string {
	if v == nil {
		return "null"
	}
	if f, ok := toFloat(v); ok {
		return "n:" + strconv.FormatUint(math.Float64bits(f), 16)
	}
	switch x := v.(type) {
	case string:
		return "s:" + x
	case bool:
		if x {
			return "b:1"
		}
		return "b:0"
	case []any:
		parts := make([]string, len(x))
		for i := range x {
			parts[i] = valueKey(x[i])
		}
		return "a:" + strings.Join(parts, "\x1f")
	default:
		return "invalid"
	}
}
