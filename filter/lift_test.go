package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiftRenamesResolvedKeys(t *testing.T) {
	c := Compiled{
		"wordCount": {Op: TargetGt, Value: 100},
		"title":     {Op: TargetEq, Value: "x"},
	}
	Lift(c, map[string]struct{}{"wordCount": {}})

	require.Len(t, c, 2)
	assert.NotContains(t, c, "wordCount")
	assert.Equal(t, TargetGt, c["$resolved.wordCount"].Op)
	assert.Contains(t, c, "title")
}

func TestLiftExactPathOnly(t *testing.T) {
	c := Compiled{"author.name": {Op: TargetEq, Value: "Ada"}}
	Lift(c, map[string]struct{}{"author": {}})
	assert.Contains(t, c, "author.name", "prefix overlap is not a match")
}

func TestLiftNoResolvedFields(t *testing.T) {
	c := Compiled{"title": {Op: TargetEq, Value: "x"}}
	Lift(c, nil)
	assert.Contains(t, c, "title")
}
