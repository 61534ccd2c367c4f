package db

import (
	"context"
	"time"

	"ClipFlow.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StreamRepo struct {
	db *gorm.DB
}

func NewStreamRepo(db *gorm.DB) *StreamRepo {
	return &StreamRepo{db: db}
}

// CreateIfNoneActive 在同一事务内检查并创建 对该用户已有的活跃场次加行锁
// 避免并发start打破"至多一个活跃直播"的约束 已有活跃场次时返回created=false
func (r *StreamRepo) CreateIfNoneActive(ctx context.Context, stream *model.LiveStream) (created bool, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.LiveStream{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND is_active = ?", stream.UserId, true).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			created = false
			return nil
		}
		if err := tx.Create(stream).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, errors.Wrapf(err, "CreateIfNoneActive failed, userId: %d", stream.UserId)
	}
	return created, nil
}

// StopActive 关闭该用户的活跃场次 没有活跃场次时返回(nil, nil)
func (r *StreamRepo) StopActive(ctx context.Context, userId int64) (*model.LiveStream, error) {
	var stopped *model.LiveStream
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stream model.LiveStream
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND is_active = ?", userId, true).
			First(&stream).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		now := time.Now()
		if err := tx.Model(&model.LiveStream{}).
			Where("stream_id = ?", stream.StreamId).
			Updates(map[string]interface{}{"is_active": false, "ended_at": now}).Error; err != nil {
			return err
		}
		stream.IsActive = false
		stream.EndedAt = &now
		stopped = &stream
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "StopActive failed, userId: %d", userId)
	}
	return stopped, nil
}

func (r *StreamRepo) ListActive(ctx context.Context) ([]model.LiveStream, error) {
	list := make([]model.LiveStream, 0)
	if err := r.db.WithContext(ctx).Model(&model.LiveStream{}).
		Where("is_active = ?", true).Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "ListActive failed")
	}
	return list, nil
}
