// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/asta/blog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusPtr(s models.BlogStatus) *models.BlogStatus { return &s }

// ── list / count ──────────────────────────────────────────────────────────────

// TestBuildListBlogsQuery_NoFilters verifies the bare page query: all columns,
// newest first, limit and offset from the normalized query.
func TestBuildListBlogsQuery_NoFilters(t *testing.T) {
	db, _ := newMockPostgresDB(t)

	query, args, err := db.buildListBlogsQuery(models.BlogListQuery{PageIndex: 3, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, title, description, category, date, read_count, tags, status, content FROM blogs ORDER BY id DESC LIMIT 10 OFFSET 20",
		query)
	assert.Empty(t, args)
}

// TestBuildCountBlogsQuery_AllFilters verifies every filter and its argument
// for postgres.
func TestBuildCountBlogsQuery_AllFilters(t *testing.T) {
	db, _ := newMockPostgresDB(t)

	query, args, err := db.buildCountBlogsQuery(models.BlogListQuery{
		Category: "go",
		Tags:     []string{"web", "db"},
		Keyword:  "chi",
		Status:   statusPtr(models.StatusPublished),
	})
	require.NoError(t, err)

	assert.Equal(t,
		`SELECT COUNT(*) FROM blogs WHERE category ILIKE $1 ESCAPE '\' AND tags ILIKE $2 ESCAPE '\' AND tags ILIKE $3 ESCAPE '\' AND title ILIKE $4 ESCAPE '\' AND status = $5`,
		query)
	assert.Equal(t, []any{"%go%", `%"web"%`, `%"db"%`, "%chi%", 1}, args)
}

// TestBuildCountBlogsQuery_SQLite verifies the sqlite placeholder and LIKE.
func TestBuildCountBlogsQuery_SQLite(t *testing.T) {
	db := newSQLiteFlavouredDB()

	query, args, err := db.buildCountBlogsQuery(models.BlogListQuery{Keyword: "chi"})
	require.NoError(t, err)

	assert.Equal(t, `SELECT COUNT(*) FROM blogs WHERE title LIKE ? ESCAPE '\'`, query)
	assert.Equal(t, []any{"%chi%"}, args)
}

// TestBuildCountBlogsQuery_SkipsEmptyTags verifies that blank tags add no
// condition.
func TestBuildCountBlogsQuery_SkipsEmptyTags(t *testing.T) {
	db := newSQLiteFlavouredDB()

	query, args, err := db.buildCountBlogsQuery(models.BlogListQuery{Tags: []string{"", "go"}})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(query, "tags LIKE"))
	assert.Equal(t, []any{`%"go"%`}, args)
}

// TestBuildCountBlogsQuery_DraftStatus verifies that status 0 is a filter,
// not an absent value.
func TestBuildCountBlogsQuery_DraftStatus(t *testing.T) {
	db := newSQLiteFlavouredDB()

	query, args, err := db.buildCountBlogsQuery(models.BlogListQuery{Status: statusPtr(models.StatusDraft)})
	require.NoError(t, err)

	assert.Contains(t, query, "status = ?")
	assert.Equal(t, []any{0}, args)
}

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `%50\%\_off\\%`, containsPattern(`50%_off\`))
}

func TestTagPattern_MatchesJSONEncoding(t *testing.T) {
	assert.Equal(t, `%"c++"%`, tagPattern("c++"))
	assert.Equal(t, `%"a\\"b"%`, tagPattern(`a"b`))
}

// ── writes ────────────────────────────────────────────────────────────────────

func TestBuildCreateBlogQuery(t *testing.T) {
	db, _ := newMockPostgresDB(t)
	date := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := db.buildCreateBlogQuery(models.Blog{
		Title: "t", Desc: "d", Category: "c", Date: date, Tags: `["x"]`, Status: models.StatusPublished, Content: "k.md",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO blogs (title,description,category,date,read_count,tags,status,content) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id",
		query)
	assert.Equal(t, []any{"t", "d", "c", date, int64(0), `["x"]`, 1, "k.md"}, args)
}

func TestBuildUpdateBlogQuery(t *testing.T) {
	db := newSQLiteFlavouredDB()

	query, args, err := db.buildUpdateBlogQuery(models.Blog{ID: 9, Title: "t"})
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE blogs SET title = ?, description = ?, category = ?, date = ?, read_count = ?, tags = ?, status = ?, content = ? WHERE id = ?",
		query)
	require.Len(t, args, 9)
	assert.Equal(t, int64(9), args[8])
}

func TestBuildIncrementReadCountQuery(t *testing.T) {
	db, _ := newMockPostgresDB(t)

	query, args, err := db.buildIncrementReadCountQuery(4)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE blogs SET read_count = read_count + 1 WHERE id = $1", query)
	assert.Equal(t, []any{int64(4)}, args)
}

func TestBuildUserQueries(t *testing.T) {
	db, _ := newMockPostgresDB(t)

	query, args, err := db.buildCreateUserQuery(models.User{UserName: "asta", PasswordHash: "h"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (user_name,password_hash) VALUES ($1,$2) RETURNING user_id", query)
	assert.Equal(t, []any{"asta", "h"}, args)

	query, args, err = db.buildFindUserByNameQuery("asta")
	require.NoError(t, err)
	assert.Equal(t, "SELECT user_id, user_name, password_hash FROM users WHERE user_name = $1", query)
	assert.Equal(t, []any{"asta"}, args)
}
