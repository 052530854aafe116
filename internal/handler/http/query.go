package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/asta/blog-keeper/models"
	"github.com/go-chi/chi/v5"
)

// parseBlogListQuery reads the GET /blogs filters. Missing parameters stay
// zero so the service applies its defaults; malformed numbers are rejected.
func parseBlogListQuery(r *http.Request) (models.BlogListQuery, error) {
	values := r.URL.Query()
	var (
		query models.BlogListQuery
		err   error
	)

	pageIndex := firstNonEmpty(values.Get("pageIndex"), values.Get("page"))
	if query.PageIndex, err = parseOptionalInt(pageIndex, "pageIndex"); err != nil {
		return models.BlogListQuery{}, err
	}
	if query.PageSize, err = parseOptionalInt(values.Get("pageSize"), "pageSize"); err != nil {
		return models.BlogListQuery{}, err
	}

	query.Category = strings.TrimSpace(values.Get("category"))
	query.Keyword = strings.TrimSpace(values.Get("keyword"))
	query.Tags = collectTags(values)

	if raw := strings.TrimSpace(values.Get("status")); raw != "" {
		status, err := strconv.Atoi(raw)
		if err != nil {
			return models.BlogListQuery{}, fmt.Errorf("%w: status=%q", ErrInvalidQueryParam, raw)
		}
		blogStatus := models.BlogStatus(status)
		query.Status = &blogStatus
	}

	return query, nil
}

// collectTags merges repeated "tag" and "tags" parameters; each value may
// also be a comma-separated list. Blanks and duplicates are dropped.
func collectTags(values url.Values) []string {
	var tags []string
	seen := make(map[string]struct{})

	for _, name := range []string{"tag", "tags"} {
		for _, value := range values[name] {
			for _, tag := range strings.Split(value, ",") {
				tag = strings.TrimSpace(tag)
				if tag == "" {
					continue
				}
				if _, dup := seen[tag]; dup {
					continue
				}
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

func parseOptionalInt(raw, name string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, name, raw)
	}
	return v, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// blogKey returns the decoded {key} path segment.
func blogKey(r *http.Request) (string, error) {
	key := chi.URLParam(r, blogKeyParam)
	// chi matches on RawPath when it is set, so only then is the segment
	// still escaped.
	if r.URL.RawPath == "" {
		return key, nil
	}

	key, err := url.PathUnescape(key)
	if err != nil {
		return "", fmt.Errorf("%w: key: %w", ErrInvalidQueryParam, err)
	}
	return key, nil
}

// blogID parses the {key} path segment as a blog ID.
func blogID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, blogKeyParam)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id=%q", ErrInvalidQueryParam, raw)
	}
	return id, nil
}
