package models

import (
	"time"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Username               string    `json:"username" db:"username"`
	Email                  string    `json:"email" db:"email"`
	FirstName              string    `json:"firstName" db:"first_name"`
	LastName               string    `json:"lastName" db:"last_name"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	Role                   string    `json:"role" db:"role"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

type Group struct {
	Slug        string `json:"slug" db:"slug"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
}

// Post is ordered newest first everywhere it is listed.
// AuthorUsername and GroupTitle are read-side joins and never written.
type Post struct {
	PostID         string    `json:"postId" db:"post_id"`
	Text           string    `json:"text" db:"text"`
	PublishedAt    time.Time `json:"pubDate" db:"pub_date"`
	AuthorID       string    `json:"authorId" db:"author_id"`
	GroupSlug      *string   `json:"group" db:"group_slug"`
	AuthorUsername string    `json:"author" db:"author_username"`
	GroupTitle     *string   `json:"groupTitle,omitempty" db:"group_title"`
}

// PostFilter selects the record set for a listing. Empty fields do not filter.
type PostFilter struct {
	GroupSlug string
	AuthorID  string
}

type Page struct {
	Posts       []Post `json:"posts"`
	PageNumber  int    `json:"pageNumber"`
	PageSize    int    `json:"pageSize"`
	TotalPages  int    `json:"totalPages"`
	TotalCount  int    `json:"totalCount"`
	HasNext     bool   `json:"hasNext"`
	HasPrevious bool   `json:"hasPrevious"`
}
