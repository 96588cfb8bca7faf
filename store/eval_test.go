package store

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/filter"
)

func TestValueAt(t *testing.T) {
	doc := Document{
		"title": "x",
		"author": map[string]any{
			"name":    "Ada",
			"contact": map[string]any{"email": "ada@example.com"},
		},
		"tags": []any{"go"},
	}

	v, ok := valueAt(doc, "title")
	require.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = valueAt(doc, "author.contact.email")
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", v)

	_, ok = valueAt(doc, "author.missing")
	assert.False(t, ok)

	_, ok = valueAt(doc, "missing.deep")
	assert.False(t, ok)

	// Lists terminate descent; element access goes through $elemMatch.
	_, ok = valueAt(doc, "tags.0")
	assert.False(t, ok)
}

func TestClauseEqNeIn(t *testing.T) {
	tests := []struct {
		name    string
		clause  filter.Clause
		value   any
		present bool
		want    bool
	}{
		{"eq match", filter.Clause{Op: filter.TargetEq, Value: "x"}, "x", true, true},
		{"eq mismatch", filter.Clause{Op: filter.TargetEq, Value: "x"}, "y", true, false},
		{"eq absent never matches", filter.Clause{Op: filter.TargetEq, Value: "x"}, nil, false, false},
		{"eq numeric cross-type", filter.Clause{Op: filter.TargetEq, Value: 5}, 5.0, true, true},

		{"ne mismatch matches", filter.Clause{Op: filter.TargetNe, Value: "x"}, "y", true, true},
		{"ne absent matches", filter.Clause{Op: filter.TargetNe, Value: "x"}, nil, false, true},
		{"ne undefined needs presence", filter.Clause{Op: filter.TargetNe, Value: filter.Undefined}, nil, true, true},
		{"ne undefined rejects absent", filter.Clause{Op: filter.TargetNe, Value: filter.Undefined}, nil, false, false},

		{"in match", filter.Clause{Op: filter.TargetIn, Value: []any{"a", "b"}}, "b", true, true},
		{"in no match", filter.Clause{Op: filter.TargetIn, Value: []any{"a"}}, "b", true, false},
		{"in undefined catches absent", filter.Clause{Op: filter.TargetIn, Value: []any{nil, filter.Undefined}}, nil, false, true},
		{"in null catches stored null", filter.Clause{Op: filter.TargetIn, Value: []any{nil, filter.Undefined}}, nil, true, true},
		{"in null rejects value", filter.Clause{Op: filter.TargetIn, Value: []any{nil, filter.Undefined}}, "x", true, false},

		{"nin excludes member", filter.Clause{Op: filter.TargetNin, Value: []any{1, 2}}, 2, true, false},
		{"nin admits outsider", filter.Clause{Op: filter.TargetNin, Value: []any{1, 2}}, 3, true, true},
		{"nin with undefined excludes absent", filter.Clause{Op: filter.TargetNin, Value: []any{true, filter.Undefined}}, nil, false, false},
		{"nin with undefined admits false", filter.Clause{Op: filter.TargetNin, Value: []any{true, filter.Undefined}}, false, true, true},

		{"gt", filter.Clause{Op: filter.TargetGt, Value: 3}, 4, true, true},
		{"gt absent", filter.Clause{Op: filter.TargetGt, Value: 3}, nil, false, false},
		{"lte equal", filter.Clause{Op: filter.TargetLte, Value: 3}, 3, true, true},
		{"lt string order", filter.Clause{Op: filter.TargetLt, Value: "b"}, "a", true, true},
		{"gt incomparable", filter.Clause{Op: filter.TargetGt, Value: 3}, "a", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clauseMatches(tt.clause, tt.value, tt.present))
		})
	}
}

func TestClauseContainment(t *testing.T) {
	tags := []any{"go", "perf"}
	tests := []struct {
		name    string
		clause  filter.Clause
		value   any
		present bool
		want    bool
	}{
		{"contains hit", filter.Clause{Op: filter.TargetContains, Value: "go"}, tags, true, true},
		{"contains miss", filter.Clause{Op: filter.TargetContains, Value: "rust"}, tags, true, false},
		{"contains absent", filter.Clause{Op: filter.TargetContains, Value: "go"}, nil, false, false},

		{"containsAny hit", filter.Clause{Op: filter.TargetContainsAny, Value: []any{"rust", "perf"}}, tags, true, true},
		{"containsAny miss", filter.Clause{Op: filter.TargetContainsAny, Value: []any{"rust"}}, tags, true, false},

		{"containsNone holds", filter.Clause{Op: filter.TargetContainsNone, Value: []any{"rust"}}, tags, true, true},
		{"containsNone violated", filter.Clause{Op: filter.TargetContainsNone, Value: []any{"go"}}, tags, true, false},
		{"containsNone scalar operand", filter.Clause{Op: filter.TargetContainsNone, Value: "go"}, tags, true, false},
		{"containsNone vacuous on absent", filter.Clause{Op: filter.TargetContainsNone, Value: []any{"go"}}, nil, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clauseMatches(tt.clause, tt.value, tt.present))
		})
	}
}

func TestClauseRegexAndWhere(t *testing.T) {
	re := regexp.MustCompile(`^go-`)
	cl := filter.Clause{Op: filter.TargetRegex, Value: re}
	assert.True(t, clauseMatches(cl, "go-slug", true))
	assert.False(t, clauseMatches(cl, "slug", true))
	assert.False(t, clauseMatches(cl, nil, false))
	assert.False(t, clauseMatches(cl, 42, true))

	where := filter.Clause{Op: filter.TargetWhere, Where: func(v any, present bool) bool {
		return !present
	}}
	assert.True(t, clauseMatches(where, nil, false))
	assert.False(t, clauseMatches(where, "x", true))
}

func TestClauseElemMatch(t *testing.T) {
	cl := filter.Clause{
		Op: filter.TargetElemMatch,
		Elem: filter.Compiled{
			"level":   {Op: filter.TargetGt, Value: 1},
			"heading": {Op: filter.TargetEq, Value: "Select"},
		},
	}

	sections := []any{
		map[string]any{"heading": "Channels", "level": 1},
		map[string]any{"heading": "Select", "level": 2},
	}
	assert.True(t, clauseMatches(cl, sections, true))

	// Both clauses must hold on one element, not across elements.
	split := []any{
		map[string]any{"heading": "Select", "level": 1},
		map[string]any{"heading": "Channels", "level": 2},
	}
	assert.False(t, clauseMatches(cl, split, true))

	assert.False(t, clauseMatches(cl, nil, false))
	assert.False(t, clauseMatches(cl, []any{"scalar"}, true))
}

func TestMatchesAllClauses(t *testing.T) {
	doc := Document{"title": "x", "rating": 5}
	f := filter.Compiled{
		"title":  {Op: filter.TargetEq, Value: "x"},
		"rating": {Op: filter.TargetGte, Value: 4},
	}
	assert.True(t, matches(doc, f))

	f["rating"] = filter.Clause{Op: filter.TargetGte, Value: 6}
	assert.False(t, matches(doc, f))
}
