package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/asta/blog-keeper/internal/pagination"
	"github.com/asta/blog-keeper/internal/validators"
	"github.com/asta/blog-keeper/models"
)

// BlogValidationService rejects malformed requests before they reach the
// wrapped BlogService.
type BlogValidationService struct {
	inner     BlogService
	validator validators.Validator
}

func NewBlogValidationService(validator validators.Validator) BlogServiceWrapper {
	return &BlogValidationService{
		validator: validator,
	}
}

func (v *BlogValidationService) GetBlogList(ctx context.Context, query models.BlogListQuery) (pagination.PageResult[models.BlogListVO], error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return pagination.PageResult[models.BlogListVO]{}, fmt.Errorf("error during blog list query validation: %w", err)
	}

	return v.inner.GetBlogList(ctx, query)
}

func (v *BlogValidationService) GetBlogContent(ctx context.Context, key string) (models.SignedURL, error) {
	if strings.TrimSpace(key) == "" {
		return models.SignedURL{}, fmt.Errorf("%w: empty content key", validators.ErrValidation)
	}

	return v.inner.GetBlogContent(ctx, key)
}

func (v *BlogValidationService) PostBlog(ctx context.Context, dto models.PostBlogDTO) (models.Blog, error) {
	if err := v.validator.Validate(ctx, dto); err != nil {
		return models.Blog{}, fmt.Errorf("error during blog validation before saving: %w", err)
	}

	return v.inner.PostBlog(ctx, dto)
}

func (v *BlogValidationService) PutBlog(ctx context.Context, dto models.PutBlogDTO) error {
	if err := v.validator.Validate(ctx, dto); err != nil {
		return fmt.Errorf("error during blog validation before updating: %w", err)
	}

	return v.inner.PutBlog(ctx, dto)
}

func (v *BlogValidationService) DeleteBlog(ctx context.Context, id int64) error {
	if err := validators.ValidateID(id); err != nil {
		return err
	}

	return v.inner.DeleteBlog(ctx, id)
}

func (v *BlogValidationService) GetUploadToken(ctx context.Context, id int64) (models.UploadToken, error) {
	if err := validators.ValidateID(id); err != nil {
		return models.UploadToken{}, err
	}

	return v.inner.GetUploadToken(ctx, id)
}

func (v *BlogValidationService) Wrap(wrapper BlogService) BlogService {
	v.inner = wrapper
	return v
}
