package service

import (
	"context"
	"testing"
	"time"

	"ClipFlow.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndListComments(t *testing.T) {
	svc, repo, _, _, _ := newTestVideoService()
	video := seedVideo(repo, 2, "v", false, time.Now())
	ctx := context.Background()

	first, err := svc.AddComment(ctx, 1, video.VideoId, "first!")
	require.NoError(t, err)
	assert.Equal(t, "first!", first.Content)

	_, err = svc.AddComment(ctx, 3, video.VideoId, "second")
	require.NoError(t, err)

	comments, err := svc.ListComments(ctx, video.VideoId)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	// 存储顺序即创建顺序
	assert.Equal(t, "first!", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
}

func TestAddCommentVideoNotFound(t *testing.T) {
	svc, _, _, _, _ := newTestVideoService()
	_, err := svc.AddComment(context.Background(), 1, 999, "text")
	assert.ErrorIs(t, err, errno.VideoNotFoundErr)
}

func TestListCommentsVideoNotFound(t *testing.T) {
	svc, _, _, _, _ := newTestVideoService()
	_, err := svc.ListComments(context.Background(), 999)
	assert.ErrorIs(t, err, errno.VideoNotFoundErr)
}
