// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagination

import (
	"context"

	"github.com/asta/blog-keeper/internal/logger"
)

// Create converts page into a [PageResult] by applying transform to every
// row in order, exactly once per row. transform converts one raw record into
// a response item; a non-nil error drops the record.
//
// Rows whose transform fails are logged with the logger stored in ctx and
// left out of the result; the remaining rows keep their relative order.
// The page metadata is copied verbatim. Create never fails.
func Create[D, T any](ctx context.Context, page Page[D], transform func(D) (T, error)) PageResult[T] {
	result := PageResult[T]{
		PageIndex: page.PageIndex,
		PageSize:  page.PageSize,
		Total:     page.Total,
		Pages:     page.Pages,
		Rows:      make([]T, 0, len(page.Rows)),
	}

	for i, row := range page.Rows {
		item, err := transform(row)
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Int("row", i).
				Int64("page_index", page.PageIndex).
				Msg("row skipped: transform failed")
			result.Dropped++
			continue
		}
		result.Rows = append(result.Rows, item)
	}

	return result
}

// CreateCopy is [Create] with [Copy] as the transform: every row is copied
// field by field into a new T. Rows that cannot be copied are dropped the
// same way a failing transform drops them.
func CreateCopy[T, D any](ctx context.Context, page Page[D]) PageResult[T] {
	return Create[D, T](ctx, page, Copy[T, D])
}
