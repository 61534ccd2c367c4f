package service

import (
	"context"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/oss"
)

// VideoRepo 视频存储接口 由dal/db提供gorm实现
type VideoRepo interface {
	CreateVideo(ctx context.Context, video *model.Video) error
	GetVideoById(ctx context.Context, videoId int64) (*model.Video, error)
	ListVideosByTime(ctx context.Context, skip, limit int64) ([]model.Video, error)
	ListPodcasts(ctx context.Context, skip, limit int64) ([]model.Video, error)
	ListVideosByAuthors(ctx context.Context, authorIds []int64, skip, limit int64) ([]model.Video, error)
	AddVisitCount(ctx context.Context, videoId int64) (int64, error)
}

// InteractionRepo 点赞与评论存储接口
type InteractionRepo interface {
	ToggleLike(ctx context.Context, userId, videoId int64) (liked bool, likeCount int64, err error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	ListComments(ctx context.Context, videoId int64) ([]model.Comment, error)
}

// FollowingLister 关注feed需要的关注列表查询
type FollowingLister interface {
	ListFollowing(ctx context.Context, userId int64) ([]int64, error)
}

type VideoService struct {
	repo         VideoRepo
	interactions InteractionRepo
	follows      FollowingLister
	storage      oss.Storage
}

func NewVideoService(repo VideoRepo, interactions InteractionRepo, follows FollowingLister, storage oss.Storage) *VideoService {
	return &VideoService{repo: repo, interactions: interactions, follows: follows, storage: storage}
}
