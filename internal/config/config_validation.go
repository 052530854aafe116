// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and positive token duration are required", ErrInvalidAppConfigs)
	}

	if cfg.App.BootstrapUser != "" {
		name, password, ok := strings.Cut(cfg.App.BootstrapUser, ":")
		if !ok || name == "" || password == "" {
			return fmt.Errorf("%w: bootstrap user must look like name:password", ErrInvalidAppConfigs)
		}
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	objects := cfg.Storage.Objects
	if objects.AccessKey == "" || objects.SecretKey == "" || objects.Bucket == "" || objects.Domain == "" {
		return fmt.Errorf("%w: access key, secret key, bucket and domain are required", ErrInvalidObjectStorageConfigs)
	}

	if objects.URLExpiry <= 0 || objects.UploadExpiry <= 0 {
		return fmt.Errorf("%w: expiry must be positive", ErrInvalidObjectStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}

	return nil
}

// BootstrapCredentials splits [App.BootstrapUser] into name and password.
// ok is false when no bootstrap user is configured.
func (a App) BootstrapCredentials() (name, password string, ok bool) {
	if a.BootstrapUser == "" {
		return "", "", false
	}
	return strings.Cut(a.BootstrapUser, ":")
}
