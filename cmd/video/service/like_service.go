package service

import (
	"context"

	"ClipFlow.com/pkg/errno"
	"github.com/pkg/errors"
)

// ToggleLike 已点赞则取消 未点赞则点赞 返回最新的点赞数
func (s *VideoService) ToggleLike(ctx context.Context, userId, videoId int64) (liked bool, likeCount int64, err error) {
	video, err := s.repo.GetVideoById(ctx, videoId)
	if err != nil {
		return false, 0, errors.WithMessage(err, "dao.GetVideoById failed")
	}
	if video == nil {
		return false, 0, errno.VideoNotFoundErr
	}

	liked, likeCount, err = s.interactions.ToggleLike(ctx, userId, videoId)
	if err != nil {
		return false, 0, errors.WithMessage(err, "dao.ToggleLike failed")
	}
	return liked, likeCount, nil
}

// Visit 浏览计数 视频不存在时返回VideoNotFoundErr
func (s *VideoService) Visit(ctx context.Context, videoId int64) error {
	affected, err := s.repo.AddVisitCount(ctx, videoId)
	if err != nil {
		return errors.WithMessage(err, "dao.AddVisitCount failed")
	}
	if affected == 0 {
		return errno.VideoNotFoundErr
	}
	return nil
}
