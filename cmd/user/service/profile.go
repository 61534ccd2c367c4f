package service

import (
	"context"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/constants"
	"github.com/pkg/errors"
)

type ProfileInfo struct {
	User           *model.User           `json:"user"`
	FollowersCount int64                 `json:"followersCount"`
	FollowingCount int64                 `json:"followingCount"`
	Videos         []model.Video         `json:"videos"`
	Stats          *model.UserVideoStats `json:"stats"`
}

// GetProfile 个人主页 用户信息+作品列表+统计数据
func (s *UserService) GetProfile(ctx context.Context, user *model.User, skip, limit int64) (*ProfileInfo, error) {
	if limit <= 0 {
		limit = constants.DefaultLimit
	}

	videos, err := s.videos.ListVideosByUser(ctx, user.UserId, skip, limit)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListVideosByUser failed")
	}
	stats, err := s.videos.GetUserVideoStats(ctx, user.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserVideoStats failed")
	}
	followers, err := s.follows.GetFollowerCount(ctx, user.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetFollowerCount failed")
	}
	following, err := s.follows.GetFollowingCount(ctx, user.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetFollowingCount failed")
	}

	return &ProfileInfo{
		User:           user,
		FollowersCount: followers,
		FollowingCount: following,
		Videos:         videos,
		Stats:          stats,
	}, nil
}
