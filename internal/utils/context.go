// Package utils holds small helpers shared by the transport and service
// layers: request identity in context, JSON bodies, bearer tokens, JWT
// signing, password hashing and the outbound HTTP client.
package utils

import (
	"context"
)

type userCtxKey struct{}

type ctxUser struct {
	id   int64
	name string
}

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, userID int64, userName string) context.Context {
	return context.WithValue(ctx, userCtxKey{}, ctxUser{id: userID, name: userName})
}

// GetUserIDFromContext returns the user ID stored by [WithUser].
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	u, ok := ctx.Value(userCtxKey{}).(ctxUser)
	return u.id, ok
}

// GetUserNameFromContext returns the user name stored by [WithUser].
func GetUserNameFromContext(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(userCtxKey{}).(ctxUser)
	return u.name, ok
}
