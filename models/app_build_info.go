// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries immutable build-time metadata injected through
// linker flags. It is reported by GET /version next to the configured
// application version.
type AppBuildInfo struct {
	Version string `json:"version"`
	Build   string `json:"build"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing empty values with
// "N/A" so the version endpoint never reports blanks.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Build:  orNA(buildVersion),
		Date:   orNA(buildDate),
		Commit: orNA(buildCommit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
