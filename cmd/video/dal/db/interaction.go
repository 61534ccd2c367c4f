package db

import (
	"context"
	"time"

	"ClipFlow.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionRepo struct {
	db *gorm.DB
}

func NewInteractionRepo(db *gorm.DB) *InteractionRepo {
	return &InteractionRepo{db: db}
}

// ToggleLike 点赞/取消点赞 点赞记录与like_count在同一事务内变更
// 视频行加行锁 (user_id, video_id)的唯一索引兜底并发下的重复插入
func (r *InteractionRepo) ToggleLike(ctx context.Context, userId, videoId int64) (liked bool, likeCount int64, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var video model.Video
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("video_id = ?", videoId).First(&video).Error; err != nil {
			return err
		}

		var like model.VideoLike
		err := tx.Where("user_id = ? AND video_id = ?", userId, videoId).First(&like).Error
		switch {
		case err == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Video{}).Where("video_id = ?", videoId).
				UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
				return err
			}
			liked = false
			likeCount = video.LikeCount - 1
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&model.VideoLike{
				UserId:    userId,
				VideoId:   videoId,
				CreatedAt: time.Now(),
			}).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Video{}).Where("video_id = ?", videoId).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
				return err
			}
			liked = true
			likeCount = video.LikeCount + 1
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return false, 0, errors.Wrapf(err, "ToggleLike failed, userId: %d, videoId: %d", userId, videoId)
	}
	return liked, likeCount, nil
}

func (r *InteractionRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrap(err, "CreateComment failed")
	}
	return nil
}

// ListComments 按存储顺序返回 即创建顺序
func (r *InteractionRepo) ListComments(ctx context.Context, videoId int64) ([]model.Comment, error) {
	list := make([]model.Comment, 0)
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoId).Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "ListComments failed")
	}
	return list, nil
}
