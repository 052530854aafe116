package models

import (
	"strconv"
	"strings"
	"time"
)

// BlogStatus is the publication state of a blog post.
type BlogStatus int

const (
	// StatusDraft marks a post that is not visible to readers yet.
	StatusDraft BlogStatus = 0

	// StatusPublished marks a post that is publicly listed.
	StatusPublished BlogStatus = 1
)

// contentKeySuffix is appended to a post ID to build the object key of its
// markdown content in the bucket.
const contentKeySuffix = ".md"

// Blog is the persisted representation of a blog post (one row of the
// "blogs" table).
type Blog struct {
	// ID is the server-assigned primary key.
	ID int64 `json:"id"`

	// Title is the post headline; also the target of keyword search.
	Title string `json:"title"`

	// Desc is a short summary displayed in post listings.
	Desc string `json:"desc"`

	// Category is a free-form grouping label (e.g. "code", "life").
	Category string `json:"category"`

	// Date is set by the server on every create and update.
	Date time.Time `json:"date"`

	// ReadCount is the number of times the post content was requested.
	ReadCount int64 `json:"readCount"`

	// Tags holds the post tags encoded as a JSON array string
	// (e.g. `["go","sql"]`). Empty when the post has no tags.
	Tags string `json:"tags"`

	// Status is the publication state.
	Status BlogStatus `json:"status"`

	// Content is the object-storage key of the markdown body.
	Content string `json:"content"`
}

// TableName returns the name of the database table
// associated with the Blog model.
func (b Blog) TableName() string {
	return "blogs"
}

// PostBlogDTO is the request payload of POST /blogs.
type PostBlogDTO struct {
	Title    string     `json:"title" validate:"required,max=255"`
	Desc     string     `json:"desc" validate:"max=1024"`
	Category string     `json:"category" validate:"max=64"`
	Tags     []string   `json:"tags" validate:"max=32,dive,required,max=64"`
	Status   BlogStatus `json:"status" validate:"oneof=0 1"`
	Content  string     `json:"content" validate:"max=512"`
}

// PutBlogDTO is the request payload of PUT /blogs. The post is identified
// by ID; every other field replaces the stored value.
type PutBlogDTO struct {
	ID        int64      `json:"id" validate:"required,gt=0"`
	Title     string     `json:"title" validate:"required,max=255"`
	Desc      string     `json:"desc" validate:"max=1024"`
	Category  string     `json:"category" validate:"max=64"`
	ReadCount int64      `json:"readCount" validate:"gte=0"`
	Tags      []string   `json:"tags" validate:"max=32,dive,required,max=64"`
	Status    BlogStatus `json:"status" validate:"oneof=0 1"`
	Content   string     `json:"content" validate:"max=512"`
}

// BlogListVO is a single row of the GET /blogs response.
type BlogListVO struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Desc      string     `json:"desc"`
	Category  string     `json:"category"`
	Date      time.Time  `json:"date"`
	ReadCount int64      `json:"readCount"`
	Tags      []string   `json:"tags"`
	Status    BlogStatus `json:"status"`
}

// ContentKey returns the default object key of the markdown body of the post
// with the given ID.
func ContentKey(id int64) string {
	return strconv.FormatInt(id, 10) + contentKeySuffix
}

// ParseContentKey extracts the post ID from a key produced by [ContentKey].
// ok is false for keys that do not follow the "<id>.md" layout.
func ParseContentKey(key string) (int64, bool) {
	idPart, found := strings.CutSuffix(key, contentKeySuffix)
	if !found || idPart == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
