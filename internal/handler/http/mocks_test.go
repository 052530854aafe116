package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/asta/blog-keeper/internal/config"
	"github.com/asta/blog-keeper/internal/logger"
	"github.com/asta/blog-keeper/internal/pagination"
	"github.com/asta/blog-keeper/internal/service"
	"github.com/asta/blog-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, userName, password string) (models.User, error)
	authenticateFn func(ctx context.Context, dto models.LoginDTO) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, userName, password string) (models.User, error) {
	return m.registerUserFn(ctx, userName, password)
}

func (m *mockAuthService) Authenticate(ctx context.Context, dto models.LoginDTO) (models.User, error) {
	return m.authenticateFn(ctx, dto)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockBlogService implements service.BlogService for unit tests.
type mockBlogService struct {
	getBlogListFn    func(ctx context.Context, query models.BlogListQuery) (pagination.PageResult[models.BlogListVO], error)
	getBlogContentFn func(ctx context.Context, key string) (models.SignedURL, error)
	postBlogFn       func(ctx context.Context, dto models.PostBlogDTO) (models.Blog, error)
	putBlogFn        func(ctx context.Context, dto models.PutBlogDTO) error
	deleteBlogFn     func(ctx context.Context, id int64) error
	getUploadTokenFn func(ctx context.Context, id int64) (models.UploadToken, error)
}

func (m *mockBlogService) GetBlogList(ctx context.Context, query models.BlogListQuery) (pagination.PageResult[models.BlogListVO], error) {
	return m.getBlogListFn(ctx, query)
}

func (m *mockBlogService) GetBlogContent(ctx context.Context, key string) (models.SignedURL, error) {
	return m.getBlogContentFn(ctx, key)
}

func (m *mockBlogService) PostBlog(ctx context.Context, dto models.PostBlogDTO) (models.Blog, error) {
	return m.postBlogFn(ctx, dto)
}

func (m *mockBlogService) PutBlog(ctx context.Context, dto models.PutBlogDTO) error {
	return m.putBlogFn(ctx, dto)
}

func (m *mockBlogService) DeleteBlog(ctx context.Context, id int64) error {
	return m.deleteBlogFn(ctx, id)
}

func (m *mockBlogService) GetUploadToken(ctx context.Context, id int64) (models.UploadToken, error) {
	return m.getUploadTokenFn(ctx, id)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const validToken = "valid-token"

// acceptingAuth accepts validToken as user 1 "asta" and rejects the rest.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != validToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: 1, UserName: "asta", SignedString: tokenString}, nil
		},
	}
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	if services.AuthService == nil {
		services.AuthService = acceptingAuth()
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test-version"}
	}

	buildInfo := models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123")
	return NewHandler(services, buildInfo, config.Server{}, logger.Nop()).Init()
}

// do performs a request against handler; a non-empty token is sent as a
// bearer token.
func do(t *testing.T, handler http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// envelope is models.Response with a raw payload for per-test decoding.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.Equal(t, rec.Code, env.Status, "envelope status must equal HTTP status")
	return env
}
