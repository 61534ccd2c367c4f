package service

import (
	"context"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/constants"
	"github.com/pkg/errors"
)

func normalizePage(skip, limit int64) (int64, int64) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxFeedLimit {
		limit = constants.MaxFeedLimit
	}
	return skip, limit
}

// FeedForYou 按发布时间倒序的公共feed
func (s *VideoService) FeedForYou(ctx context.Context, skip, limit int64) ([]model.Video, error) {
	skip, limit = normalizePage(skip, limit)
	return s.repo.ListVideosByTime(ctx, skip, limit)
}

func (s *VideoService) FeedPodcasts(ctx context.Context, skip, limit int64) ([]model.Video, error) {
	skip, limit = normalizePage(skip, limit)
	return s.repo.ListPodcasts(ctx, skip, limit)
}

// FeedFollowing 关注作者的视频 关注集为空时直接返回空列表 不查视频表
func (s *VideoService) FeedFollowing(ctx context.Context, userId, skip, limit int64) ([]model.Video, error) {
	skip, limit = normalizePage(skip, limit)

	authorIds, err := s.follows.ListFollowing(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListFollowing failed")
	}
	if len(authorIds) == 0 {
		return []model.Video{}, nil
	}
	return s.repo.ListVideosByAuthors(ctx, authorIds, skip, limit)
}
