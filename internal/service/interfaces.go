package service

import (
	"context"

	"github.com/asta/blog-keeper/internal/pagination"
	"github.com/asta/blog-keeper/models"
)

// BlogService implements the blog use cases behind the HTTP API.
type BlogService interface {
	GetBlogList(ctx context.Context, query models.BlogListQuery) (pagination.PageResult[models.BlogListVO], error)
	GetBlogContent(ctx context.Context, key string) (models.SignedURL, error)
	PostBlog(ctx context.Context, dto models.PostBlogDTO) (models.Blog, error)
	PutBlog(ctx context.Context, dto models.PutBlogDTO) error
	DeleteBlog(ctx context.Context, id int64) error
	GetUploadToken(ctx context.Context, id int64) (models.UploadToken, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, userName, password string) (models.User, error)
	Authenticate(ctx context.Context, dto models.LoginDTO) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// BlogServiceWrapper defines middleware composition for BlogService.
// Implementations wrap an existing BlogService to add behavior such as
// logging or validating.
type BlogServiceWrapper interface {
	Wrap(BlogService) BlogService // returns a decorated BlogService applying additional behavior
}
