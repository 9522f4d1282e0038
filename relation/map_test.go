package relation_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mickamy/ormrel/relation"
)

func TestMapMarshalJSON(t *testing.T) {
	t.Parallel()

	got, err := json.Marshal(relation.Resolve(post))
	require.NoError(t, err)

	want := `{
		"user": {"name":"user","type":"belongsTo","modelFrom":"Post","modelTo":"User","keyFrom":"userid","keyTo":"id","modelThrough":null,"keyThrough":null,"multiple":false},
		"comments": {"name":"comments","type":"hasMany","modelFrom":"Post","modelTo":"Comment","keyFrom":"id","keyTo":"post_id","modelThrough":null,"keyThrough":null,"multiple":true}
	}`
	assert.JSONEq(t, want, string(got))
	assert.Less(t, strings.Index(string(got), `"user"`), strings.Index(string(got), `"comments"`))
}

func TestMapMarshalYAML(t *testing.T) {
	t.Parallel()

	got, err := yaml.Marshal(relation.Resolve(post))
	require.NoError(t, err)

	want := `user:
    name: user
    type: belongsTo
    modelFrom: Post
    modelTo: User
    keyFrom: userid
    keyTo: id
    modelThrough: null
    keyThrough: null
    multiple: false
comments:
    name: comments
    type: hasMany
    modelFrom: Post
    modelTo: Comment
    keyFrom: id
    keyTo: post_id
    modelThrough: null
    keyThrough: null
    multiple: true
`
	assert.Equal(t, want, string(got))
}

func TestMapAll(t *testing.T) {
	t.Parallel()

	m := relation.Resolve(post)

	var names []string
	for name, d := range m.All() {
		assert.Equal(t, name, d.Name)
		names = append(names, name)
	}
	assert.Equal(t, []string{"user", "comments"}, names)

	for range m.All() {
		break
	}

	_, ok := m.Get("missing")
	assert.False(t, ok)
}

func TestMapDuplicateMemberKeepsPosition(t *testing.T) {
	t.Parallel()

	decl := relation.Declaration{
		Table: "posts",
		Members: []relation.Member{
			{Name: "user", Body: "return this.belongsTo(User)"},
			{Name: "comments", Body: "return this.hasMany(Comment)"},
			{Name: "user", Body: "return this.belongsTo(Author)"},
		},
	}

	m := relation.Resolve(decl)

	assert.Equal(t, []string{"user", "comments"}, m.Names())
	assert.Equal(t, "Author", mustGet(t, m, "user").ModelTo)
}
