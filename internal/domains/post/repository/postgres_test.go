package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"blog-backend/internal/domains/post/model"
)

func TestBuildWhere(t *testing.T) {
	where, args := buildWhere(model.Filter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	groupID := int64(3)
	author := uuid.New()
	follower := uuid.New()

	where, args = buildWhere(model.Filter{GroupID: &groupID, AuthorID: &author, FollowerID: &follower})
	assert.Equal(t,
		" WHERE p.group_id = $1 AND p.author_id = $2 AND EXISTS (SELECT 1 FROM follows fl WHERE fl.author_id = p.author_id AND fl.user_id = $3)",
		where)
	assert.Equal(t, []interface{}{groupID, author, follower}, args)

	where, args = buildWhere(model.Filter{FollowerID: &follower})
	assert.Contains(t, where, "fl.user_id = $1")
	assert.Len(t, args, 1)
}
