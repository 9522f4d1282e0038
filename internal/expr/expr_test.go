package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mickamy/ormrel/internal/expr"
)

func ident(s string) expr.Token { return expr.Token{Kind: expr.TokenIdent, Text: s} }
func str(s string) expr.Token   { return expr.Token{Kind: expr.TokenString, Text: s} }

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want expr.Call
	}{
		{
			name: "bookshelf belongsTo",
			body: "user () {\n  return this.belongsTo(User)\n}",
			want: expr.Call{Verb: "belongsTo", Target: ident("User")},
		},
		{
			name: "explicit key list",
			body: `return this.belongsTo(User, ["userid"])`,
			want: expr.Call{Verb: "belongsTo", Target: ident("User"), Key: "userid"},
		},
		{
			name: "single quoted key list",
			body: `return this.belongsTo(User, ['userid'])`,
			want: expr.Call{Verb: "belongsTo", Target: ident("User"), Key: "userid"},
		},
		{
			name: "go slice key",
			body: `return m.BelongsTo(User, []string{"userid"})`,
			want: expr.Call{Verb: "belongsTo", Target: ident("User"), Key: "userid"},
		},
		{
			name: "chained through",
			body: `return this.hasMany(Paragraph).through(Chapter)`,
			want: expr.Call{Verb: "hasMany", Target: ident("Paragraph"), Through: ident("Chapter")},
		},
		{
			name: "go style chained through",
			body: `return m.HasMany(Patient).Through(Appointment)`,
			want: expr.Call{Verb: "hasMany", Target: ident("Patient"), Through: ident("Appointment")},
		},
		{
			name: "options object",
			body: `Physician.hasMany(Patient, {through: Appointment, foreignKey: 'doctor_id'})`,
			want: expr.Call{Verb: "hasMany", Target: ident("Patient"), Through: ident("Appointment"), Key: "doctor_id"},
		},
		{
			name: "foreign key then target key",
			body: `return this.hasMany(Post, 'author_id', 'id')`,
			want: expr.Call{Verb: "hasMany", Target: ident("Post"), Key: "author_id"},
		},
		{
			name: "belongsTo foreign key then target key",
			body: `return this.belongsTo(User, 'owner_id', 'uid')`,
			want: expr.Call{Verb: "belongsTo", Target: ident("User"), Key: "owner_id"},
		},
		{
			name: "non literal foreign key keeps later literals out",
			body: `return this.hasMany(Post, fk, 'id')`,
			want: expr.Call{Verb: "hasMany", Target: ident("Post")},
		},
		{
			name: "positional key wins over options foreignKey",
			body: `return this.hasMany(Post, 'author_id', {foreignKey: 'writer_id'})`,
			want: expr.Call{Verb: "hasMany", Target: ident("Post"), Key: "author_id"},
		},
		{
			name: "quoted target",
			body: `return this.hasOne('Account')`,
			want: expr.Call{Verb: "hasOne", Target: str("Account")},
		},
		{
			name: "qualified target",
			body: `return relation.BelongsToMany(model.Assembly)`,
			want: expr.Call{Verb: "belongsToMany", Target: ident("Assembly")},
		},
		{
			name: "composite literal target",
			body: `{ return p.HasOne(&Profile{}, "owner_id") }`,
			want: expr.Call{Verb: "hasOne", Target: ident("Profile"), Key: "owner_id"},
		},
		{
			name: "qualified composite literal target",
			body: `{ return p.HasMany(model.Comment{}).Through(model.Thread{}) }`,
			want: expr.Call{Verb: "hasMany", Target: ident("Comment"), Through: ident("Thread")},
		},
		{
			name: "unresolvable target",
			body: `return this.morphMany(lookup("Photo"))`,
			want: expr.Call{Verb: "morphMany", Target: expr.Token{Kind: expr.TokenUnresolved}},
		},
		{
			name: "no target",
			body: `return this.morphTo()`,
			want: expr.Call{Verb: "morphTo"},
		},
		{
			name: "verb inside comment is ignored",
			body: "// return this.hasMany(Ghost)\nreturn this.hasOne(Profile)",
			want: expr.Call{Verb: "hasOne", Target: ident("Profile")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := expr.Parse(tt.body)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNoCall(t *testing.T) {
	t.Parallel()

	bodies := []string{
		"",
		`console.log('hasMany')`,
		`return this.hasMany`,
		`/* return this.belongsTo(User) */ return null`,
		`fmt.Println("belongsTo(User)")`,
	}

	for _, body := range bodies {
		_, ok := expr.Parse(body)
		assert.False(t, ok, "body %q", body)
	}
}
