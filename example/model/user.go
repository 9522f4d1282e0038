package model

import (
	"time"

	"github.com/mickamy/ormrel/relation"
)

//go:generate go tool ormrel -file=$GOFILE,post.go -type=User -format=yaml

type User struct {
	ID        int
	Name      string
	Email     string
	CreatedAt time.Time
}

func (User) TableName() string { return "users" }

func (User) RelationMembers() []relation.Member {
	return []relation.Member{
		relation.Rel("Posts", relation.HasMany("Post")),
		relation.Rel("Tags", relation.BelongsToMany("Tag")),
		relation.Rel("Followers", relation.HasMany("User", "followee_id").Through("Follow")),
	}
}
