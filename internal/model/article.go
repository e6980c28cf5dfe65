package model

import "time"

const (
	StatusPublish = "publish"
	TypePost      = "post"
	TypeCategory  = "category"

	// DefaultAuthorID is assigned to articles created over the push endpoint.
	DefaultAuthorID = 1
)

type Article struct {
	ID       int64
	Title    string
	Text     string
	Created  time.Time
	Modified time.Time
	AuthorID int64
	Status   string
	Type     string
}

type Author struct {
	ID   int64
	Name string
}

type Category struct {
	ID   int64
	Name string
	Slug string
}

type CategoryMembership struct {
	ArticleID  int64
	CategoryID int64
}
