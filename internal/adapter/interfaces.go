// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter contains clients for external systems. The only one today
// is the object storage bucket holding the markdown content of blog posts.
package adapter

import (
	"context"
	"time"

	"github.com/asta/blog-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ContentStorage grants time-limited access to post content objects and
// manages their lifecycle. Content bytes never pass through the server:
// clients download through a signed URL and upload with an upload token.
type ContentStorage interface {
	// SignedURL returns a private download URL for key valid for expiry.
	SignedURL(ctx context.Context, key string, expiry time.Duration) (models.SignedURL, error)
	// UploadToken returns a token allowing a client to upload exactly key
	// until expiry elapses. Existing objects under key are overwritten.
	UploadToken(ctx context.Context, key string, expiry time.Duration) (models.UploadToken, error)
	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
}
