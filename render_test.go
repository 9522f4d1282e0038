package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mickamy/ormrel/internal/loader"
	"github.com/mickamy/ormrel/relation"
)

func testResults(t *testing.T) []result {
	t.Helper()

	models := []loader.Model{
		{Name: "User", Declaration: relation.Declaration{
			Table:   "users",
			Members: []relation.Member{{Name: "posts", Body: "return this.hasMany(Post)"}},
		}},
		{Name: "Post", Declaration: relation.Declaration{
			Table:   "posts",
			Members: []relation.Member{{Name: "user", Body: "return this.belongsTo(User)"}},
		}},
	}
	results, err := resolveAll(context.Background(), models, nil)
	require.NoError(t, err)
	return results
}

func TestResolveAllKeepsOrder(t *testing.T) {
	t.Parallel()

	results := testResults(t)

	require.Len(t, results, 2)
	assert.Equal(t, "User", results[0].Model)
	assert.Equal(t, "Post", results[1].Model)
	assert.Equal(t, []string{"posts"}, results[0].Relations.Names())
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	out, err := render(testResults(t), "json")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"User": {"posts": {"name":"posts","type":"hasMany","modelFrom":"User","modelTo":"Post","keyFrom":"id","keyTo":"user_id","modelThrough":null,"keyThrough":null,"multiple":true}},
		"Post": {"user": {"name":"user","type":"belongsTo","modelFrom":"Post","modelTo":"User","keyFrom":"user_id","keyTo":"id","modelThrough":null,"keyThrough":null,"multiple":false}}
	}`, string(out))
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()

	out, err := render(testResults(t), "yaml")
	require.NoError(t, err)

	assert.Contains(t, string(out), "User:\n    posts:\n        name: posts\n")
	assert.Contains(t, string(out), "keyThrough: null")
}

func TestRenderDump(t *testing.T) {
	t.Parallel()

	out, err := render(testResults(t), "dump")
	require.NoError(t, err)

	assert.Contains(t, string(out), "User: ")
	assert.Contains(t, string(out), `KeyTo: (string) (len=7) "user_id"`)
}

func TestRenderUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := render(nil, "xml")
	require.Error(t, err)
}
