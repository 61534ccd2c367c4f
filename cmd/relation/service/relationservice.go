package service

import (
	"context"

	"ClipFlow.com/cmd/relation/dal/db"
	"ClipFlow.com/pkg/errno"
	"github.com/pkg/errors"
)

// FollowRepo 关注边存储接口 由dal/db提供gorm实现
type FollowRepo interface {
	CreateFollow(ctx context.Context, followerId, followedId int64) error
	DeleteFollow(ctx context.Context, followerId, followedId int64) (int64, error)
	CheckFollowExist(ctx context.Context, followerId, followedId int64) (bool, error)
	GetFollowerCount(ctx context.Context, userId int64) (int64, error)
	GetFollowingCount(ctx context.Context, userId int64) (int64, error)
	ListFollowing(ctx context.Context, userId int64) ([]int64, error)
}

// UserChecker 校验被关注用户是否存在
type UserChecker interface {
	CheckUserExistById(ctx context.Context, userId int64) (bool, error)
}

type RelationService struct {
	repo  FollowRepo
	users UserChecker
}

func NewRelationService(repo FollowRepo, users UserChecker) *RelationService {
	return &RelationService{repo: repo, users: users}
}

// Follow 重复关注返回错误而非静默成功 与既有契约保持一致
func (s *RelationService) Follow(ctx context.Context, actorId, targetId int64) error {
	if actorId == targetId {
		return errno.SelfFollowErr
	}
	exist, err := s.users.CheckUserExistById(ctx, targetId)
	if err != nil {
		return errors.WithMessage(err, "dao.CheckUserExistById failed")
	}
	if !exist {
		return errno.UserNotFoundErr
	}

	following, err := s.repo.CheckFollowExist(ctx, actorId, targetId)
	if err != nil {
		return errors.WithMessage(err, "dao.CheckFollowExist failed")
	}
	if following {
		return errno.AlreadyFollowErr
	}
	if err := s.repo.CreateFollow(ctx, actorId, targetId); err != nil {
		// 并发下唯一索引兜底
		if errors.Is(err, db.ErrDuplicateFollow) {
			return errno.AlreadyFollowErr
		}
		return errors.WithMessage(err, "dao.CreateFollow failed")
	}
	return nil
}

func (s *RelationService) Unfollow(ctx context.Context, actorId, targetId int64) error {
	if actorId == targetId {
		return errno.SelfUnfollowErr
	}
	exist, err := s.users.CheckUserExistById(ctx, targetId)
	if err != nil {
		return errors.WithMessage(err, "dao.CheckUserExistById failed")
	}
	if !exist {
		return errno.UserNotFoundErr
	}

	deleted, err := s.repo.DeleteFollow(ctx, actorId, targetId)
	if err != nil {
		return errors.WithMessage(err, "dao.DeleteFollow failed")
	}
	if deleted == 0 {
		return errno.NotFollowingErr
	}
	return nil
}

func (s *RelationService) FollowerCount(ctx context.Context, userId int64) (int64, error) {
	return s.repo.GetFollowerCount(ctx, userId)
}

func (s *RelationService) FollowingCount(ctx context.Context, userId int64) (int64, error) {
	return s.repo.GetFollowingCount(ctx, userId)
}
