// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pagination converts a page of persisted records into a page of
// response items.
//
// A [Page] is what the store returns for one paginated query: the rows of
// the requested window plus the page metadata. [Create] turns it into a
// [PageResult] by applying a per-row transform. A failing transform never
// fails the page: the row is logged and skipped, and every surviving row
// keeps its relative order. [CreateCopy] does the same with a structural
// field copy instead of a hand-written transform.
//
// Both functions are pure with respect to the page: they run synchronously,
// perform no I/O of their own and share no state between calls.
package pagination
