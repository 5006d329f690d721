package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortClause(t *testing.T) {
	assert.Equal(t, "word_count ASC", sortClause("word_count", articleSortFields, "created_at", "ASC"))
	assert.Equal(t, "updated_at DESC", sortClause("updated_at", articleSortFields, "created_at", "DESC"))
	assert.Equal(t, "hotness_score ASC", sortClause("hotness_score", hotTopicSortFields, "hotness_score", "ASC"))

	// 白名单外的字段静默回落到默认字段
	assert.Equal(t, "created_at DESC", sortClause("password_hash", articleSortFields, "created_at", "DESC"))
	assert.Equal(t, "created_at DESC", sortClause("", articleSortFields, "created_at", ""))
	assert.Equal(t, "hotness_score DESC", sortClause("id; DROP TABLE users", hotTopicSortFields, "hotness_score", "DESC"))

	// 方向只认 ASC，其余一律 DESC
	assert.Equal(t, "title DESC", sortClause("title", hotTopicSortFields, "hotness_score", "ascending"))
	assert.Equal(t, "title DESC", sortClause("title", hotTopicSortFields, "hotness_score", "asc"))
}

func TestPageOffset(t *testing.T) {
	// limit=10 时第 2 页从第 11 条开始
	assert.Equal(t, 10, pageOffset(2, 10))
	assert.Equal(t, 0, pageOffset(1, 10))
	assert.Equal(t, 40, pageOffset(3, 20))
}
