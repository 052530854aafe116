package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asta/blog-keeper/internal/adapter"
	"github.com/asta/blog-keeper/internal/config"
	"github.com/asta/blog-keeper/internal/logger"
	"github.com/asta/blog-keeper/internal/pagination"
	"github.com/asta/blog-keeper/internal/store"
	"github.com/asta/blog-keeper/models"
)

// blogService implements BlogService over a BlogRepository for records and a
// ContentStorage for the markdown bodies.
type blogService struct {
	blogRepository store.BlogRepository
	contentStorage adapter.ContentStorage

	urlExpiry    time.Duration
	uploadExpiry time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewBlogService(blogRepository store.BlogRepository, contentStorage adapter.ContentStorage, cfg config.Objects, logger *logger.Logger) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		contentStorage: contentStorage,
		urlExpiry:      cfg.URLExpiry,
		uploadExpiry:   cfg.UploadExpiry,
		now:            time.Now,
		logger:         logger,
	}
}

// GetBlogList returns one page of list rows. Rows whose stored tags cannot
// be decoded are dropped and logged; the page metadata is unaffected.
func (s *blogService) GetBlogList(ctx context.Context, query models.BlogListQuery) (pagination.PageResult[models.BlogListVO], error) {
	page, err := s.blogRepository.List(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blogService.GetBlogList").Msg("error listing blogs")
		return pagination.PageResult[models.BlogListVO]{}, fmt.Errorf("error listing blogs: %w", err)
	}

	return pagination.Create(ctx, page, toBlogListVO), nil
}

// GetBlogContent signs a download URL for key. Keys of the "<id>.md" form
// also bump the read counter of that post; a failed bump is only logged.
func (s *blogService) GetBlogContent(ctx context.Context, key string) (models.SignedURL, error) {
	log := logger.FromContext(ctx)

	signed, err := s.contentStorage.SignedURL(ctx, key, s.urlExpiry)
	if err != nil {
		log.Err(err).Str("func", "*blogService.GetBlogContent").Str("key", key).Msg("error signing content url")
		return models.SignedURL{}, fmt.Errorf("error signing content url: %w", err)
	}

	if id, ok := models.ParseContentKey(key); ok {
		if err = s.blogRepository.IncrementReadCount(ctx, id); err != nil {
			log.Warn().Err(err).Str("func", "*blogService.GetBlogContent").Int64("id", id).Msg("read count not incremented")
		}
	}

	return signed, nil
}

// PostBlog stores a new post dated now with a zero read count. The content
// key defaults to "<id>.md".
func (s *blogService) PostBlog(ctx context.Context, dto models.PostBlogDTO) (models.Blog, error) {
	log := logger.FromContext(ctx)

	blog, err := postDTOToBlog(dto)
	if err != nil {
		log.Err(err).Str("func", "*blogService.PostBlog").Msg("error mapping blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	blog.Date = s.now()
	blog.ReadCount = 0

	created, err := s.blogRepository.Create(ctx, blog)
	if err != nil {
		log.Err(err).Str("func", "*blogService.PostBlog").Msg("error creating blog")
		return models.Blog{}, fmt.Errorf("error creating blog: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("content", created.Content).Msg("blog created")
	return created, nil
}

// PutBlog replaces the post identified by dto.ID and refreshes its date.
func (s *blogService) PutBlog(ctx context.Context, dto models.PutBlogDTO) error {
	log := logger.FromContext(ctx)

	blog, err := putDTOToBlog(dto)
	if err != nil {
		log.Err(err).Str("func", "*blogService.PutBlog").Msg("error mapping blog")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	blog.Date = s.now()
	if blog.Content == "" {
		blog.Content = models.ContentKey(blog.ID)
	}

	if err = s.blogRepository.Update(ctx, blog); err != nil {
		log.Err(err).Str("func", "*blogService.PutBlog").Int64("id", blog.ID).Msg("error updating blog")
		return fmt.Errorf("error updating blog: %w", err)
	}

	return nil
}

// DeleteBlog removes the record and then, best-effort, its content object.
// A storage failure never fails the call once the record is gone.
func (s *blogService) DeleteBlog(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	blog, err := s.blogRepository.Get(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*blogService.DeleteBlog").Int64("id", id).Msg("error loading blog")
		return fmt.Errorf("error loading blog: %w", err)
	}

	if err = s.blogRepository.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*blogService.DeleteBlog").Int64("id", id).Msg("error deleting blog")
		return fmt.Errorf("error deleting blog: %w", err)
	}

	key := contentKeyOf(blog)
	err = s.contentStorage.Delete(ctx, key)
	switch {
	case err == nil:
	case errors.Is(err, adapter.ErrObjectNotFound):
		log.Info().Int64("id", id).Str("key", key).Msg("blog had no content object")
	default:
		log.Warn().Err(err).Int64("id", id).Str("key", key).Msg("content object not deleted")
	}

	return nil
}

// GetUploadToken issues an upload token for the content object of an
// existing post.
func (s *blogService) GetUploadToken(ctx context.Context, id int64) (models.UploadToken, error) {
	log := logger.FromContext(ctx)

	blog, err := s.blogRepository.Get(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*blogService.GetUploadToken").Int64("id", id).Msg("error loading blog")
		return models.UploadToken{}, fmt.Errorf("error loading blog: %w", err)
	}

	token, err := s.contentStorage.UploadToken(ctx, contentKeyOf(blog), s.uploadExpiry)
	if err != nil {
		log.Err(err).Str("func", "*blogService.GetUploadToken").Int64("id", id).Msg("error issuing upload token")
		return models.UploadToken{}, fmt.Errorf("error issuing upload token: %w", err)
	}

	return token, nil
}

func contentKeyOf(blog models.Blog) string {
	if blog.Content != "" {
		return blog.Content
	}
	return models.ContentKey(blog.ID)
}
