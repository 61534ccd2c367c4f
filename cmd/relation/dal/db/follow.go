package db

import (
	"context"
	"time"

	"ClipFlow.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrDuplicateFollow 唯一索引拒绝重复边时返回 并发下的兜底
var ErrDuplicateFollow = errors.New("follow edge already exists")

type FollowRepo struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) *FollowRepo {
	return &FollowRepo{db: db}
}

func (r *FollowRepo) CreateFollow(ctx context.Context, followerId, followedId int64) error {
	err := r.db.WithContext(ctx).Create(&model.Follow{
		FollowerId: followerId,
		FollowedId: followedId,
		CreatedAt:  time.Now(),
	}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateFollow
	}
	if err != nil {
		return errors.Wrap(err, "CreateFollow failed")
	}
	return nil
}

// DeleteFollow 返回实际删除的边数 0表示本就不存在这条边
func (r *FollowRepo) DeleteFollow(ctx context.Context, followerId, followedId int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerId, followedId).
		Delete(&model.Follow{})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "DeleteFollow failed")
	}
	return res.RowsAffected, nil
}

func (r *FollowRepo) CheckFollowExist(ctx context.Context, followerId, followedId int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerId, followedId).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "CheckFollowExist failed")
	}
	return count > 0, nil
}

// GetFollowerCount 关注该用户的人数
func (r *FollowRepo) GetFollowerCount(ctx context.Context, userId int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("followed_id = ?", userId).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "GetFollowerCount failed")
	}
	return count, nil
}

// GetFollowingCount 该用户关注的人数
func (r *FollowRepo) GetFollowingCount(ctx context.Context, userId int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", userId).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "GetFollowingCount failed")
	}
	return count, nil
}

// ListFollowing 该用户关注的全部用户id
func (r *FollowRepo) ListFollowing(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", userId).Select("followed_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrap(err, "ListFollowing failed")
	}
	return list, nil
}
