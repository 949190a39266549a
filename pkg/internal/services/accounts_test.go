package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yatube/server/pkg/internal/database"
	"github.com/yatube/server/pkg/internal/models"
	"github.com/yatube/server/pkg/internal/security"
	"github.com/yatube/server/pkg/internal/services"
)

func TestNewAccount(t *testing.T) {
	account, err := services.NewAccount("alice", "alice@x.com", "pw1")
	require.NoError(t, err)
	assert.NotZero(t, account.ID)
	assert.True(t, account.IsActive)
	assert.True(t, security.VerifyPassword("pw1", account.Password))

	// Same username, different email
	_, err = services.NewAccount("alice", "alice2@x.com", "pw1")
	assert.ErrorIs(t, err, services.ErrAccountExists)

	// Different username, same email
	_, err = services.NewAccount("alice2", "alice@x.com", "pw1")
	assert.ErrorIs(t, err, services.ErrAccountExists)
}

func TestDeleteAccountCascades(t *testing.T) {
	doomed, err := services.NewAccount("doomed", "doomed@x.com", "pw1")
	require.NoError(t, err)
	bystander, err := services.NewAccount("bystander", "bystander@x.com", "pw1")
	require.NoError(t, err)

	post, err := services.NewPost(doomed, models.Post{Body: "soon gone"})
	require.NoError(t, err)
	otherPost, err := services.NewPost(bystander, models.Post{Body: "stays"})
	require.NoError(t, err)

	// Comment by the doomed user on a surviving post, and a comment by
	// the bystander on the doomed post.
	_, err = services.NewComment(doomed, otherPost, models.Comment{Body: "mine"})
	require.NoError(t, err)
	_, err = services.NewComment(bystander, post, models.Comment{Body: "on doomed post"})
	require.NoError(t, err)

	_, err = services.NewFollow(doomed, "bystander")
	require.NoError(t, err)
	_, err = services.NewFollow(bystander, "doomed")
	require.NoError(t, err)

	require.NoError(t, services.DeleteAccount(doomed))

	var count int64
	database.C.Model(&models.Post{}).Where("author_id = ?", doomed.ID).Count(&count)
	assert.Zero(t, count)

	database.C.Model(&models.Comment{}).
		Where("author_id = ? OR post_id = ?", doomed.ID, post.ID).
		Count(&count)
	assert.Zero(t, count)

	database.C.Model(&models.Follow{}).
		Where("follower_id = ? OR following_id = ?", doomed.ID, doomed.ID).
		Count(&count)
	assert.Zero(t, count)

	// The bystander's own post survives.
	database.C.Model(&models.Post{}).Where("id = ?", otherPost.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}
