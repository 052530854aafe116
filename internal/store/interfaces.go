package store

import (
	"context"

	"github.com/asta/blog-keeper/internal/pagination"
	"github.com/asta/blog-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BlogRepository persists blog posts.
type BlogRepository interface {
	// List returns one page of posts matching the query filters, newest
	// first. The query is normalized before use.
	List(ctx context.Context, query models.BlogListQuery) (pagination.Page[models.Blog], error)
	// Get returns the post with the given ID or [ErrBlogNotFound].
	Get(ctx context.Context, id int64) (models.Blog, error)
	// Create inserts blog and returns it with the assigned ID.
	Create(ctx context.Context, blog models.Blog) (models.Blog, error)
	// Update overwrites every mutable column of the post with blog.ID.
	Update(ctx context.Context, blog models.Blog) error
	// Delete removes the post with the given ID.
	Delete(ctx context.Context, id int64) error
	// IncrementReadCount adds one to the read counter of the post.
	IncrementReadCount(ctx context.Context, id int64) error
}

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByName(ctx context.Context, userName string) (models.User, error)
}
