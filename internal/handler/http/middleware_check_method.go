// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/asta/blog-keeper/internal/app"
)

// notFound answers unknown paths and unsupported methods on known paths
// alike with a 404 envelope. It is registered for both chi.Mux.NotFound and
// chi.Mux.MethodNotAllowed so callers cannot probe which methods exist.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, http.StatusNotFound, app.MsgNotFound, nil)
}
