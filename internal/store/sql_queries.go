// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/asta/blog-keeper/models"
)

const (
	blogsTable = "blogs"
	usersTable = "users"
)

// blogColumns is the scan order used by every blog SELECT.
var blogColumns = []string{
	"id",
	"title",
	"description",
	"category",
	"date",
	"read_count",
	"tags",
	"status",
	"content",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns a LIKE pattern matching s anywhere, with LIKE
// wildcards in s escaped.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// tagPattern matches tag as a whole element of the stored JSON array. The
// tag is encoded the same way the array was, so escaped characters line up.
func tagPattern(tag string) string {
	encoded, err := json.Marshal(tag)
	if err != nil {
		return containsPattern(tag)
	}
	return containsPattern(string(encoded))
}

// applyBlogFilters adds a WHERE clause per non-empty filter of query.
func (db *DB) applyBlogFilters(builder sq.SelectBuilder, query models.BlogListQuery) sq.SelectBuilder {
	like := func(column, pattern string) sq.Sqlizer {
		return sq.Expr(column+" "+db.likeOperator+` ? ESCAPE '\'`, pattern)
	}

	if query.Category != "" {
		builder = builder.Where(like("category", containsPattern(query.Category)))
	}

	for _, tag := range query.Tags {
		if tag == "" {
			continue
		}
		builder = builder.Where(like("tags", tagPattern(tag)))
	}

	if query.Keyword != "" {
		builder = builder.Where(like("title", containsPattern(query.Keyword)))
	}

	if query.Status != nil {
		builder = builder.Where(sq.Eq{"status": int(*query.Status)})
	}

	return builder
}

// buildCountBlogsQuery counts all posts matching query.
func (db *DB) buildCountBlogsQuery(query models.BlogListQuery) (string, []any, error) {
	builder := db.builder.Select("COUNT(*)").From(blogsTable)
	return db.applyBlogFilters(builder, query).ToSql()
}

// buildListBlogsQuery selects one page of posts matching query, newest first.
// query must be normalized.
func (db *DB) buildListBlogsQuery(query models.BlogListQuery) (string, []any, error) {
	builder := db.builder.Select(blogColumns...).From(blogsTable)
	return db.applyBlogFilters(builder, query).
		OrderBy("id DESC").
		Limit(uint64(query.PageSize)).
		Offset(query.Offset()).
		ToSql()
}

func (db *DB) buildGetBlogQuery(id int64) (string, []any, error) {
	return db.builder.Select(blogColumns...).
		From(blogsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildCreateBlogQuery(blog models.Blog) (string, []any, error) {
	return db.builder.Insert(blogsTable).
		Columns("title", "description", "category", "date", "read_count", "tags", "status", "content").
		Values(blog.Title, blog.Desc, blog.Category, blog.Date, blog.ReadCount, blog.Tags, int(blog.Status), blog.Content).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildUpdateBlogQuery(blog models.Blog) (string, []any, error) {
	return db.builder.Update(blogsTable).
		Set("title", blog.Title).
		Set("description", blog.Desc).
		Set("category", blog.Category).
		Set("date", blog.Date).
		Set("read_count", blog.ReadCount).
		Set("tags", blog.Tags).
		Set("status", int(blog.Status)).
		Set("content", blog.Content).
		Where(sq.Eq{"id": blog.ID}).
		ToSql()
}

func (db *DB) buildSetContentQuery(id int64, content string) (string, []any, error) {
	return db.builder.Update(blogsTable).
		Set("content", content).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildDeleteBlogQuery(id int64) (string, []any, error) {
	return db.builder.Delete(blogsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildIncrementReadCountQuery(id int64) (string, []any, error) {
	return db.builder.Update(blogsTable).
		Set("read_count", sq.Expr("read_count + 1")).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	return db.builder.Insert(usersTable).
		Columns("user_name", "password_hash").
		Values(user.UserName, user.PasswordHash).
		Suffix("RETURNING user_id").
		ToSql()
}

func (db *DB) buildFindUserByNameQuery(userName string) (string, []any, error) {
	return db.builder.Select("user_id", "user_name", "password_hash").
		From(usersTable).
		Where(sq.Eq{"user_name": userName}).
		ToSql()
}
