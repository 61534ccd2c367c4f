package service

import (
	"context"
	"time"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/errno"
	"github.com/pkg/errors"
)

// StreamRepo 直播场次存储接口 由dal/db提供gorm实现
type StreamRepo interface {
	CreateIfNoneActive(ctx context.Context, stream *model.LiveStream) (bool, error)
	StopActive(ctx context.Context, userId int64) (*model.LiveStream, error)
	ListActive(ctx context.Context) ([]model.LiveStream, error)
}

type StreamService struct {
	repo StreamRepo
}

func NewStreamService(repo StreamRepo) *StreamService {
	return &StreamService{repo: repo}
}

// StartStream 同一用户已有活跃直播时拒绝再开
func (s *StreamService) StartStream(ctx context.Context, userId int64, title, description string) (*model.LiveStream, error) {
	stream := &model.LiveStream{
		UserId:      userId,
		Title:       title,
		Description: description,
		IsActive:    true,
		StartedAt:   time.Now(),
	}
	created, err := s.repo.CreateIfNoneActive(ctx, stream)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CreateIfNoneActive failed")
	}
	if !created {
		return nil, errno.AlreadyLiveErr
	}
	return stream, nil
}

func (s *StreamService) StopStream(ctx context.Context, userId int64) (*model.LiveStream, error) {
	stream, err := s.repo.StopActive(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.StopActive failed")
	}
	if stream == nil {
		return nil, errno.NoActiveStreamErr
	}
	return stream, nil
}

func (s *StreamService) ListActive(ctx context.Context) ([]model.LiveStream, error) {
	return s.repo.ListActive(ctx)
}
