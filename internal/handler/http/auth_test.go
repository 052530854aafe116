// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/asta/blog-keeper/internal/app"
	"github.com/asta/blog-keeper/internal/service"
	"github.com/asta/blog-keeper/internal/store"
	"github.com/asta/blog-keeper/internal/validators"
	"github.com/asta/blog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginAuth(authErr error) *mockAuthService {
	m := acceptingAuth()
	m.authenticateFn = func(_ context.Context, dto models.LoginDTO) (models.User, error) {
		if authErr != nil {
			return models.User{}, authErr
		}
		return models.User{UserID: 1, UserName: dto.UserName}, nil
	}
	m.createTokenFn = func(_ context.Context, user models.User) (models.Token, error) {
		return models.Token{SignedString: "jwt-for-" + user.UserName, UserID: user.UserID}, nil
	}
	return m
}

func TestLogin_Success(t *testing.T) {
	router := newTestRouter(t, &service.Services{AuthService: loginAuth(nil)})

	rec := do(t, router, http.MethodPost, "/authenticate/login", `{"userName":"asta","userPassword":"pw"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer jwt-for-asta", rec.Header().Get("Authorization"))

	env := decodeEnvelope(t, rec)
	var vo models.LoginVO
	require.NoError(t, json.Unmarshal(env.Data, &vo))
	assert.Equal(t, models.LoginVO{Token: "jwt-for-asta", UserName: "asta"}, vo)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		authErr    error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "bad credentials",
			body:       `{"userName":"asta","userPassword":"nope"}`,
			authErr:    service.ErrBadCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    app.MsgInvalidLoginPassword,
		},
		{
			name:       "storage failure is hidden",
			body:       `{"userName":"asta","userPassword":"pw"}`,
			authErr:    errors.New("pq: connection refused on 10.0.0.5"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
		{
			name:       "known storage sentinel still a server error",
			body:       `{"userName":"asta","userPassword":"pw"}`,
			authErr:    store.ErrConflict,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
		{
			name:       "missing password",
			body:       `{"userName":"asta"}`,
			authErr:    service.ErrBadCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    app.MsgInvalidLoginPassword,
		},
		{
			name:       "validation error never leaks as bad request",
			body:       `{"userName":"","userPassword":""}`,
			authErr:    errors.Join(service.ErrInvalidDataProvided, validators.ErrValidation),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
		{
			name:       "malformed json",
			body:       `{"userName":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
		{
			name:       "empty body",
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, &service.Services{AuthService: loginAuth(tt.authErr)})

			rec := do(t, router, http.MethodPost, "/authenticate/login", tt.body, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, "null", string(env.Data))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, env.Message)
			}
			assert.NotContains(t, rec.Body.String(), "10.0.0.5")
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

func TestLogin_TokenCreationFailure(t *testing.T) {
	auth := loginAuth(nil)
	auth.createTokenFn = func(context.Context, models.User) (models.Token, error) {
		return models.Token{}, service.ErrTokenCreationFailed
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := do(t, router, http.MethodPost, "/authenticate/login", `{"userName":"asta","userPassword":"pw"}`, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeEnvelope(t, rec).Message)
}
