package model

import "github.com/mickamy/ormrel/relation"

type Post struct {
	ID       int
	AuthorID int
	Title    string
	Body     string
}

func (Post) TableName() string { return "posts" }

func (Post) RelationMembers() []relation.Member {
	return []relation.Member{
		relation.Rel("Author", relation.BelongsTo("User", "author_id")),
		{
			Name: "Comments",
			Body: `
			// @relation
			//   type: hasMany
			//   modelTo: Comment
			//   keyTo: article_id`,
		},
		{Name: "Cover", Body: `return p.MorphOne(Image{})`},
	}
}

func (Post) RelationOverrides() []relation.Override {
	return []relation.Override{
		{Name: "Cover", Type: relation.MorphOneType, ModelFrom: "Post", ModelTo: "Image", KeyTo: "imageable_id"},
	}
}
