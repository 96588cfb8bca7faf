package testutil

import (
	"github.com/docsift/docsift/schema"
	"github.com/docsift/docsift/store"
)

// Content is the fixture interface type implemented by Article and Video.
const Content = "Content"

// NewSchema builds the fixture schema: two concrete content types behind
// one interface, with scalar, boolean, list and nested-object fields.
func NewSchema() *schema.Schema {
	contentFields := map[string]schema.Field{
		"title":     {Type: "String"},
		"draft":     {Type: "Boolean", Nullable: true},
		"rating":    {Type: "Int", Nullable: true},
		"tags":      {Type: "String", List: true},
		"author":    {Type: "Author", Nullable: true},
		"slug":      {Type: "String"},
		"wordCount": {Type: "Int", Nullable: true},
	}

	articleFields := make(map[string]schema.Field, len(contentFields)+1)
	for k, v := range contentFields {
		articleFields[k] = v
	}
	articleFields["sections"] = schema.Field{Type: "Section", List: true}

	videoFields := make(map[string]schema.Field, len(contentFields)+1)
	for k, v := range contentFields {
		videoFields[k] = v
	}
	videoFields["duration"] = schema.Field{Type: "Int"}

	return schema.New(
		schema.Object("Author", map[string]schema.Field{
			"name":     {Type: "String"},
			"verified": {Type: "Boolean", Nullable: true},
		}),
		schema.Object("Section", map[string]schema.Field{
			"heading": {Type: "String"},
			"level":   {Type: "Int"},
		}),
		schema.Object("Article", articleFields),
		schema.Object("Video", videoFields),
		schema.Interface(Content, contentFields, "Article", "Video"),
	)
}

// SeedArticles inserts a small, deterministic article set and returns
// the collection.
func SeedArticles(st *store.Store) *store.Collection {
	col := st.Collection("Article")
	for _, doc := range Articles() {
		col.Insert(doc)
	}
	return col
}

// Articles returns fresh copies of the article fixtures.
func Articles() []store.Document {
	return []store.Document{
		{
			"title":  "Go Concurrency Patterns",
			"slug":   "go-concurrency",
			"draft":  false,
			"rating": 5,
			"tags":   []any{"go", "concurrency"},
			"author": map[string]any{"name": "Ada", "verified": true},
			"sections": []any{
				map[string]any{"heading": "Channels", "level": 1},
				map[string]any{"heading": "Select", "level": 2},
			},
		},
		{
			"title":  "Profiling Basics",
			"slug":   "profiling-basics",
			"draft":  true,
			"rating": 3,
			"tags":   []any{"go", "perf"},
			"author": map[string]any{"name": "Brin"},
		},
		{
			"title":  "Untitled Draft",
			"slug":   "untitled",
			"draft":  nil,
			"rating": nil,
			"tags":   []any{},
		},
		{
			"title":  "Release Notes",
			"slug":   "release-notes",
			"rating": 4,
			"tags":   []any{"meta"},
			"author": map[string]any{"name": "Ada", "verified": false},
		},
	}
}

// SeedVideos inserts the video fixtures and returns the collection.
func SeedVideos(st *store.Store) *store.Collection {
	col := st.Collection("Video")
	for _, doc := range Videos() {
		col.Insert(doc)
	}
	return col
}

// Videos returns fresh copies of the video fixtures.
func Videos() []store.Document {
	return []store.Document{
		{
			"title":    "Intro to Generics",
			"slug":     "intro-generics",
			"draft":    false,
			"rating":   4,
			"tags":     []any{"go", "generics"},
			"duration": 620,
		},
		{
			"title":    "Live Debugging",
			"slug":     "live-debugging",
			"draft":    true,
			"rating":   2,
			"tags":     []any{"debugging"},
			"duration": 1800,
		},
	}
}
