// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/asta/blog-keeper/internal/logger"
	"github.com/asta/blog-keeper/internal/pagination"
	"github.com/asta/blog-keeper/models"
)

// blogRepository is the SQL implementation of [BlogRepository] over the
// "blogs" table. Queries are built with the dialect-aware statement builder
// of the embedded [*DB].
type blogRepository struct {
	*DB
	logger *logger.Logger
}

// NewBlogRepository constructs a [BlogRepository] backed by db.
func NewBlogRepository(db *DB, logger *logger.Logger) BlogRepository {
	logger.Debug().Msg("creating blog repository")
	return &blogRepository{
		DB:     db,
		logger: logger,
	}
}

// List runs a COUNT and a page SELECT with identical filters. An empty
// result is a page with no rows, never an error.
func (r *blogRepository) List(ctx context.Context, query models.BlogListQuery) (pagination.Page[models.Blog], error) {
	log := logger.FromContext(ctx)
	query = query.Normalize()

	countQuery, countArgs, err := r.buildCountBlogsQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.List").Msg("failed to build count query")
		return pagination.Page[models.Blog]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*blogRepository.List").Msg("failed to count blogs")
		return pagination.Page[models.Blog]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if total == 0 || query.Offset() >= uint64(total) {
		return pagination.NewPage(query.PageIndex, query.PageSize, total, []models.Blog{}), nil
	}

	listQuery, listArgs, err := r.buildListBlogsQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.List").Msg("failed to build list query")
		return pagination.Page[models.Blog]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.List").Msg("failed to list blogs")
		return pagination.Page[models.Blog]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	blogs := make([]models.Blog, 0, query.PageSize)
	for rows.Next() {
		blog, scanErr := scanBlog(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*blogRepository.List").Msg("failed to scan blog row")
			return pagination.Page[models.Blog]{}, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		blogs = append(blogs, blog)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*blogRepository.List").Msg("error iterating blog rows")
		return pagination.Page[models.Blog]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return pagination.NewPage(query.PageIndex, query.PageSize, total, blogs), nil
}

func (r *blogRepository) Get(ctx context.Context, id int64) (models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildGetBlogQuery(id)
	if err != nil {
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	blog, err := scanBlog(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Blog{}, ErrBlogNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.Get").Int64("blog_id", id).Msg("failed to get blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blog, nil
}

// Create inserts blog in a transaction. When blog.Content is empty the
// content key is set to models.ContentKey of the new ID.
func (r *blogRepository) Create(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	insertQuery, insertArgs, err := r.buildCreateBlogQuery(blog)
	if err != nil {
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.Create").Msg("failed to begin transaction")
		return models.Blog{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "*blogRepository.Create").Msg("failed to rollback transaction")
		}
	}()

	if err = tx.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&blog.ID); err != nil {
		log.Err(err).Str("func", "*blogRepository.Create").Msg("failed to insert blog")
		return models.Blog{}, r.writeError(err)
	}

	if blog.Content == "" {
		blog.Content = models.ContentKey(blog.ID)

		updateQuery, updateArgs, buildErr := r.buildSetContentQuery(blog.ID, blog.Content)
		if buildErr != nil {
			return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
			log.Err(err).Str("func", "*blogRepository.Create").Int64("blog_id", blog.ID).Msg("failed to set content key")
			return models.Blog{}, r.writeError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*blogRepository.Create").Msg("failed to commit transaction")
		return models.Blog{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Debug().Str("func", "*blogRepository.Create").Int64("blog_id", blog.ID).Msg("blog created")
	return blog, nil
}

func (r *blogRepository) Update(ctx context.Context, blog models.Blog) error {
	query, args, err := r.buildUpdateBlogQuery(blog)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*blogRepository.Update", blog.ID, query, args)
}

func (r *blogRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.buildDeleteBlogQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*blogRepository.Delete", id, query, args)
}

func (r *blogRepository) IncrementReadCount(ctx context.Context, id int64) error {
	query, args, err := r.buildIncrementReadCountQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*blogRepository.IncrementReadCount", id, query, args)
}

// execAffectingOne executes a statement targeting a single post and reports
// [ErrBlogNotFound] when no row was affected.
func (r *blogRepository) execAffectingOne(ctx context.Context, funcName string, id int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("blog_id", id).Msg("failed to execute statement")
		return r.writeError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("blog_id", id).Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBlogNotFound
	}

	return nil
}

// writeError maps a failed write onto the store sentinels.
func (r *blogRepository) writeError(err error) error {
	switch r.classify(err) {
	case UniqueViolation, ConstraintViolation:
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlog(row rowScanner) (models.Blog, error) {
	var blog models.Blog
	err := row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Desc,
		&blog.Category,
		&blog.Date,
		&blog.ReadCount,
		&blog.Tags,
		&blog.Status,
		&blog.Content,
	)
	return blog, err
}

// compile-time check
var _ BlogRepository = (*blogRepository)(nil)
