package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileRewritesNeTrue(t *testing.T) {
	c := Compiled{
		"foo.bar": {Op: TargetNe, Value: true},
		"title":   {Op: TargetEq, Value: "x"},
	}
	Reconcile(c)

	require.Len(t, c, 2)
	assert.NotContains(t, c, "foo.bar")

	cl, ok := c["foo"]
	require.True(t, ok, "clause moves to its top-level field")
	require.Equal(t, TargetWhere, cl.Op)
	require.NotNil(t, cl.Where)

	// Unrelated clauses stay untouched.
	assert.Equal(t, TargetEq, c["title"].Op)
}

func TestReconcilePredicateSemantics(t *testing.T) {
	c := Compiled{"foo.bar": {Op: TargetNe, Value: true}}
	Reconcile(c)
	pred := c["foo"].Where
	require.NotNil(t, pred)

	tests := []struct {
		name    string
		value   any
		present bool
		want    bool
	}{
		{"foo absent", nil, false, true},
		{"foo null", nil, true, true},
		{"foo.bar absent", map[string]any{}, true, true},
		{"foo.bar null", map[string]any{"bar": nil}, true, true},
		{"foo.bar false", map[string]any{"bar": false}, true, true},
		{"foo.bar non-bool", map[string]any{"bar": "yes"}, true, true},
		{"foo scalar blocks descent", 7, true, true},
		{"foo.bar true", map[string]any{"bar": true}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pred(tt.value, tt.present))
		})
	}
}

func TestReconcileTopLevelPath(t *testing.T) {
	c := Compiled{"draft": {Op: TargetNe, Value: true}}
	Reconcile(c)

	pred := c["draft"].Where
	require.NotNil(t, pred)
	assert.True(t, pred(nil, false))
	assert.True(t, pred(nil, true))
	assert.True(t, pred(false, true))
	assert.False(t, pred(true, true))
}

func TestReconcileIgnoresOtherNe(t *testing.T) {
	c := Compiled{
		"draft": {Op: TargetNe, Value: false},
		"slug":  {Op: TargetNe, Value: "x"},
	}
	Reconcile(c)
	assert.Equal(t, TargetNe, c["draft"].Op)
	assert.Equal(t, TargetNe, c["slug"].Op)
}
