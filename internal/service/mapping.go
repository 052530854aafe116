package service

import (
	"encoding/json"
	"fmt"

	"github.com/asta/blog-keeper/models"
)

// toBlogListVO maps a stored post to a list row. Malformed tag JSON fails
// the row so the page converter can drop it.
func toBlogListVO(blog models.Blog) (models.BlogListVO, error) {
	tags, err := decodeTags(blog.Tags)
	if err != nil {
		return models.BlogListVO{}, fmt.Errorf("blog %d: %w", blog.ID, err)
	}

	return models.BlogListVO{
		ID:        blog.ID,
		Title:     blog.Title,
		Desc:      blog.Desc,
		Category:  blog.Category,
		Date:      blog.Date,
		ReadCount: blog.ReadCount,
		Tags:      tags,
		Status:    blog.Status,
	}, nil
}

func postDTOToBlog(dto models.PostBlogDTO) (models.Blog, error) {
	tags, err := encodeTags(dto.Tags)
	if err != nil {
		return models.Blog{}, err
	}

	return models.Blog{
		Title:    dto.Title,
		Desc:     dto.Desc,
		Category: dto.Category,
		Tags:     tags,
		Status:   dto.Status,
		Content:  dto.Content,
	}, nil
}

func putDTOToBlog(dto models.PutBlogDTO) (models.Blog, error) {
	tags, err := encodeTags(dto.Tags)
	if err != nil {
		return models.Blog{}, err
	}

	return models.Blog{
		ID:        dto.ID,
		Title:     dto.Title,
		Desc:      dto.Desc,
		Category:  dto.Category,
		ReadCount: dto.ReadCount,
		Tags:      tags,
		Status:    dto.Status,
		Content:   dto.Content,
	}, nil
}

// encodeTags stores an empty list as "".
func encodeTags(tags []string) (string, error) {
	if len(tags) == 0 {
		return "", nil
	}

	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedTags, err)
	}
	return string(raw), nil
}

func decodeTags(raw string) ([]string, error) {
	tags := []string{}
	if raw == "" {
		return tags, nil
	}

	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTags, err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
