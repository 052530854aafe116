// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// blog-keeper HTTP handlers and middleware.
//
// All Msg* constants are human-readable strings written into the "message"
// field of the response envelope. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgSuccess accompanies every successful response without a more
	// specific message.
	MsgSuccess = "success"

	// MsgCreated accompanies a successful POST /blogs.
	MsgCreated = "created"

	// MsgInvalidDataProvided is returned when the request body or query
	// cannot be decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied credentials do
	// not match any user.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgUnauthorized is returned when a protected route is called without a
	// usable bearer token.
	MsgUnauthorized = "unauthorized"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgNotFound = "not found"

	MsgConflict = "conflict"

	// MsgInternalServerError is returned for every unexpected failure. The
	// cause is logged, never sent.
	MsgInternalServerError = "server error"
)
