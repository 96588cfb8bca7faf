package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/filter"
)

func TestViewMergesCollections(t *testing.T) {
	ctx := context.Background()
	s := New()

	articles := s.Collection("Article")
	articles.Insert(Document{"title": "a1", "draft": false})
	articles.Insert(Document{"title": "a2", "draft": true})
	videos := s.Collection("Video")
	videos.Insert(Document{"title": "v1", "draft": false})

	docs, err := s.View([]string{"Article", "Video"}).Chain().
		Find(filter.Compiled{"draft": {Op: filter.TargetEq, Value: false}}, false).
		Data(ctx)
	require.NoError(t, err)

	titles := make([]string, len(docs))
	for i, d := range docs {
		titles[i] = d["title"].(string)
	}
	assert.ElementsMatch(t, []string{"a1", "v1"}, titles)
}

func TestViewSortsAcrossCollections(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.Collection("Article").Insert(Document{"title": "b", "rating": 2})
	s.Collection("Video").Insert(Document{"title": "a", "rating": 9})
	s.Collection("Video").Insert(Document{"title": "c", "rating": 5})

	docs, err := s.View([]string{"Article", "Video"}).Chain().
		Find(filter.Compiled{}, false).
		CompoundSort([]filter.SortKey{{Path: "rating", Desc: true}}).
		Data(ctx)
	require.NoError(t, err)

	ratings := make([]int, len(docs))
	for i, d := range docs {
		ratings[i] = d["rating"].(int)
	}
	assert.Equal(t, []int{9, 5, 2}, ratings)
}

func TestViewFirstOnly(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.Collection("Article").Insert(Document{"title": "a"})
	s.Collection("Video").Insert(Document{"title": "v"})

	docs, err := s.View([]string{"Article", "Video"}).Chain().
		Find(filter.Compiled{}, true).
		Data(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestViewCollections(t *testing.T) {
	s := New()
	v := s.View([]string{"Article", "Video"})
	require.Len(t, v.Collections(), 2)
	assert.Equal(t, "Article", v.Collections()[0].Name())
}
