package testdata

// Relation is returned by relation-declaring methods.
type Relation struct {
	through any
}

func (r Relation) Through(model any) Relation {
	r.through = model
	return r
}

type Base struct{}

func (Base) BelongsTo(model any, key ...string) Relation { return Relation{} }
func (Base) BelongsToMany(model any) Relation            { return Relation{} }
func (Base) HasOne(model any, key ...string) Relation    { return Relation{} }
func (Base) HasMany(model any, key ...string) Relation   { return Relation{} }

type Person struct{ Base }

func (Person) TableName() string { return "people" }

func (p Person) Posts() Relation { return p.HasMany(Post{}) }

func (p *Person) Profile() Relation { return p.HasOne(&Profile{}, "owner_id") }

// String is not a relation.
func (p Person) String() string { return "person" }

type Post struct{ Base }

func (Post) TableName() string   { return "posts" }
func (Post) IDAttribute() string { return "_id" }

func (p Post) Author() Relation { return p.BelongsTo(Person{}, "author_id") }

func (p Post) Tags() Relation { return p.BelongsToMany(Tag{}) }

// @relation
// type: hasMany
// modelTo: Comment
// keyTo: article_id
func (p Post) Comments() Relation { return p.HasMany(Comment{}) }

type Comment struct{ Base }

func (c Comment) Post() Relation { return c.BelongsTo(Post{}) }

type Profile struct{ Base }

func (Profile) TableName() string { return "profiles" }

type Tag struct{ Base }
