package service

import (
	"context"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/jwt"
)

// UserRepo 用户存储的查询接口 由dal/db提供gorm实现
type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserById(ctx context.Context, userId int64) (*model.User, error)
}

// FollowCounter 个人主页需要的关注关系基数查询
type FollowCounter interface {
	GetFollowerCount(ctx context.Context, userId int64) (int64, error)
	GetFollowingCount(ctx context.Context, userId int64) (int64, error)
}

// VideoStatsRepo 个人主页需要的内容统计
type VideoStatsRepo interface {
	ListVideosByUser(ctx context.Context, userId, skip, limit int64) ([]model.Video, error)
	GetUserVideoStats(ctx context.Context, userId int64) (*model.UserVideoStats, error)
}

type UserService struct {
	repo    UserRepo
	follows FollowCounter
	videos  VideoStatsRepo
	token   *jwt.TokenService
}

func NewUserService(repo UserRepo, follows FollowCounter, videos VideoStatsRepo, token *jwt.TokenService) *UserService {
	return &UserService{repo: repo, follows: follows, videos: videos, token: token}
}
