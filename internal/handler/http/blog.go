package http

import (
	"fmt"
	"net/http"

	"github.com/asta/blog-keeper/internal/app"
	"github.com/asta/blog-keeper/internal/logger"
	"github.com/asta/blog-keeper/internal/utils"
	"github.com/asta/blog-keeper/models"
)

func (h *Handler) getBlogList(w http.ResponseWriter, r *http.Request) {
	query, err := parseBlogListQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.BlogService.GetBlogList(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if page.Dropped > 0 {
		logger.FromRequest(r).Warn().Int("dropped", page.Dropped).Msg("blog list page returned with dropped rows")
	}

	writeSuccess(w, r, page)
}

func (h *Handler) getBlogContent(w http.ResponseWriter, r *http.Request) {
	key, err := blogKey(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	signed, err := h.services.BlogService.GetBlogContent(r.Context(), key)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, signed)
}

func (h *Handler) postBlog(w http.ResponseWriter, r *http.Request) {
	var dto models.PostBlogDTO
	if err := utils.ReadJSON(r, &dto); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	blog, err := h.services.BlogService.PostBlog(r.Context(), dto)
	if err != nil {
		writeError(w, r, err)
		return
	}

	userName, _ := utils.GetUserNameFromContext(r.Context())
	logger.FromRequest(r).Info().Int64("id", blog.ID).Str("user_name", userName).Msg("blog posted")

	writeResponse(w, r, http.StatusCreated, app.MsgCreated, blog)
}

func (h *Handler) putBlog(w http.ResponseWriter, r *http.Request) {
	var dto models.PutBlogDTO
	if err := utils.ReadJSON(r, &dto); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	if err := h.services.BlogService.PutBlog(r.Context(), dto); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, nil)
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.BlogService.DeleteBlog(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	userName, _ := utils.GetUserNameFromContext(r.Context())
	logger.FromRequest(r).Info().Int64("id", id).Str("user_name", userName).Msg("blog deleted")

	writeSuccess(w, r, nil)
}

func (h *Handler) getUploadToken(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.BlogService.GetUploadToken(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, token)
}
