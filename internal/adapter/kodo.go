package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/asta/blog-keeper/internal/config"
	"github.com/asta/blog-keeper/internal/logger"
	"github.com/asta/blog-keeper/internal/utils"
	"github.com/asta/blog-keeper/models"
	"github.com/qiniu/go-sdk/v7/auth"
	"github.com/qiniu/go-sdk/v7/storage"
)

// kodoStorage implements [ContentStorage] for a Qiniu Kodo bucket.
// Download URLs and upload tokens are signed locally with the SDK
// credentials; deletion is sent to the configured management host.
type kodoStorage struct {
	client      *utils.HTTPClient
	credentials *auth.Credentials
	bucket      string
	domain      string
	now         func() time.Time
	logger      *logger.Logger
}

// NewKodoStorage builds a [ContentStorage] from the bucket configuration.
func NewKodoStorage(cfg config.Objects, log *logger.Logger) ContentStorage {
	log.Debug().Str("bucket", cfg.Bucket).Msg("creating object storage adapter")
	return newKodoStorage(cfg, time.Now, log)
}

func newKodoStorage(cfg config.Objects, now func() time.Time, log *logger.Logger) *kodoStorage {
	return &kodoStorage{
		client:      utils.NewHTTPClient(strings.TrimRight(cfg.RSHost, "/"), cfg.RequestTimeout),
		credentials: auth.New(cfg.AccessKey, cfg.SecretKey),
		bucket:      cfg.Bucket,
		domain:      normalizeDomain(cfg.Domain),
		now:         now,
		logger:      log,
	}
}

// SignedURL returns a private download URL valid until now+expiry.
func (k *kodoStorage) SignedURL(ctx context.Context, key string, expiry time.Duration) (models.SignedURL, error) {
	if key == "" {
		return models.SignedURL{}, ErrEmptyObjectKey
	}
	if expiry <= 0 {
		return models.SignedURL{}, ErrInvalidExpiry
	}

	deadline := k.now().Add(expiry).Unix()
	privateURL := storage.MakePrivateURLv2(k.credentials, k.domain, key, deadline)

	logger.FromContext(ctx).Debug().
		Str("func", "*kodoStorage.SignedURL").
		Str("key", key).
		Int64("deadline", deadline).
		Msg("signed download url")

	return models.SignedURL{URL: privateURL, Expires: deadline}, nil
}

// UploadToken returns <AK>:<sign>:<encodedPolicy> for a policy scoped to
// bucket:key, so the uploader may overwrite that key only.
// The deadline comes from k.now, not from PutPolicy.UploadToken.
func (k *kodoStorage) UploadToken(ctx context.Context, key string, expiry time.Duration) (models.UploadToken, error) {
	if key == "" {
		return models.UploadToken{}, ErrEmptyObjectKey
	}
	if expiry <= 0 {
		return models.UploadToken{}, ErrInvalidExpiry
	}

	deadline := k.now().Add(expiry).Unix()
	policy, err := json.Marshal(storage.PutPolicy{
		Scope:   k.bucket + ":" + key,
		Expires: uint64(deadline),
	})
	if err != nil {
		return models.UploadToken{}, fmt.Errorf("error encoding put policy: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*kodoStorage.UploadToken").
		Str("key", key).
		Int64("deadline", deadline).
		Msg("issued upload token")

	return models.UploadToken{
		Token:   k.credentials.SignWithData(policy),
		Key:     key,
		Expires: deadline,
	}, nil
}

// Delete calls POST /delete/<base64url(bucket:key)> on the configured
// management host, authorized with "QBox <AK>:<sign(path\n)>".
func (k *kodoStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyObjectKey
	}
	log := logger.FromContext(ctx)

	path := storage.URIDelete(k.bucket, key)
	authorization := "QBox " + k.credentials.Sign([]byte(path+"\n"))

	resp, err := k.client.R().
		SetContext(ctx).
		SetHeader("Authorization", authorization).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		Post(path)
	if err != nil {
		log.Err(err).Str("func", "*kodoStorage.Delete").Str("key", key).Msg("delete request failed")
		return fmt.Errorf("%w: %w", ErrObjectStorageRequest, err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", "*kodoStorage.Delete").Str("key", key).Int("status", resp.StatusCode()).Msg("delete rejected")
		return err
	}

	log.Info().Str("func", "*kodoStorage.Delete").Str("key", key).Msg("object deleted")
	return nil
}

// normalizeDomain trims trailing slashes and defaults the scheme to https.
func normalizeDomain(domain string) string {
	domain = strings.TrimRight(domain, "/")
	if domain == "" || strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return domain
	}
	return "https://" + domain
}
