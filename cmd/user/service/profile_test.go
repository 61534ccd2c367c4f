package service

import (
	"context"
	"testing"

	"ClipFlow.com/cmd/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	svc, _, follows, videos := newTestUserService()
	ctx := context.Background()

	user, _, err := svc.CreateUser(ctx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	follows.followers[user.UserId] = 3
	follows.following[user.UserId] = 7
	videos.videos[user.UserId] = []model.Video{
		{VideoId: 1, UserId: user.UserId, Title: "first"},
		{VideoId: 2, UserId: user.UserId, Title: "second"},
	}
	videos.stats[user.UserId] = &model.UserVideoStats{
		TotalVideos:   2,
		TotalLikes:    5,
		TotalViews:    40,
		TotalComments: 9,
	}

	info, err := svc.GetProfile(ctx, user, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, user.UserId, info.User.UserId)
	assert.Equal(t, int64(3), info.FollowersCount)
	assert.Equal(t, int64(7), info.FollowingCount)
	assert.Len(t, info.Videos, 2)
	assert.Equal(t, int64(5), info.Stats.TotalLikes)
	assert.Equal(t, int64(40), info.Stats.TotalViews)
}

func TestGetProfileEmpty(t *testing.T) {
	svc, _, _, _ := newTestUserService()
	ctx := context.Background()

	user, _, err := svc.CreateUser(ctx, "bob", "bob@example.com", "secret123")
	require.NoError(t, err)

	info, err := svc.GetProfile(ctx, user, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, info.FollowersCount)
	assert.Zero(t, info.FollowingCount)
	assert.Empty(t, info.Videos)
	assert.Zero(t, info.Stats.TotalVideos)
}
