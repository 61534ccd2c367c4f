package service

import (
	"context"
	"time"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/errno"
	"github.com/pkg/errors"
)

func (s *VideoService) AddComment(ctx context.Context, userId, videoId int64, text string) (*model.Comment, error) {
	video, err := s.repo.GetVideoById(ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoById failed")
	}
	if video == nil {
		return nil, errno.VideoNotFoundErr
	}

	comment := &model.Comment{
		VideoId:   videoId,
		UserId:    userId,
		Content:   text,
		CreatedAt: time.Now(),
	}
	if err := s.interactions.CreateComment(ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}
	return comment, nil
}

func (s *VideoService) ListComments(ctx context.Context, videoId int64) ([]model.Comment, error) {
	video, err := s.repo.GetVideoById(ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoById failed")
	}
	if video == nil {
		return nil, errno.VideoNotFoundErr
	}
	return s.interactions.ListComments(ctx, videoId)
}
