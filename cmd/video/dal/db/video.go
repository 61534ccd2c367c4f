package db

import (
	"context"

	"ClipFlow.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VideoRepo struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

func (r *VideoRepo) CreateVideo(ctx context.Context, video *model.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrap(err, "CreateVideo failed")
	}
	return nil
}

// GetVideoById 视频不存在时返回(nil, nil)
func (r *VideoRepo) GetVideoById(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	err := r.db.WithContext(ctx).Where("video_id = ?", videoId).First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetVideoById failed, videoId: %d", videoId)
	}
	return &video, nil
}

// ListVideosByTime 按发布时间倒序取一页
func (r *VideoRepo) ListVideosByTime(ctx context.Context, skip, limit int64) ([]model.Video, error) {
	list := make([]model.Video, 0)
	if err := r.db.WithContext(ctx).Model(&model.Video{}).
		Order("created_at DESC").Offset(int(skip)).Limit(int(limit)).
		Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "ListVideosByTime failed")
	}
	return list, nil
}

func (r *VideoRepo) ListPodcasts(ctx context.Context, skip, limit int64) ([]model.Video, error) {
	list := make([]model.Video, 0)
	if err := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("is_podcast = ?", true).
		Order("created_at DESC").Offset(int(skip)).Limit(int(limit)).
		Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "ListPodcasts failed")
	}
	return list, nil
}

func (r *VideoRepo) ListVideosByAuthors(ctx context.Context, authorIds []int64, skip, limit int64) ([]model.Video, error) {
	list := make([]model.Video, 0)
	if err := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("user_id IN ?", authorIds).
		Order("created_at DESC").Offset(int(skip)).Limit(int(limit)).
		Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "ListVideosByAuthors failed")
	}
	return list, nil
}

func (r *VideoRepo) ListVideosByUser(ctx context.Context, userId, skip, limit int64) ([]model.Video, error) {
	list := make([]model.Video, 0)
	if err := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", userId).
		Order("created_at DESC").Offset(int(skip)).Limit(int(limit)).
		Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "ListVideosByUser failed")
	}
	return list, nil
}

func (r *VideoRepo) AddVisitCount(ctx context.Context, videoId int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		UpdateColumn("visit_count", gorm.Expr("visit_count + 1"))
	if res.Error != nil {
		return 0, errors.Wrapf(res.Error, "AddVisitCount failed, videoId: %d", videoId)
	}
	return res.RowsAffected, nil
}

// GetUserVideoStats 个人主页的聚合数据
func (r *VideoRepo) GetUserVideoStats(ctx context.Context, userId int64) (*model.UserVideoStats, error) {
	stats := &model.UserVideoStats{}
	if err := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", userId).Count(&stats.TotalVideos).Error; err != nil {
		return nil, errors.Wrap(err, "count videos failed")
	}
	row := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", userId).
		Select("COALESCE(SUM(like_count), 0), COALESCE(SUM(visit_count), 0)").Row()
	if err := row.Scan(&stats.TotalLikes, &stats.TotalViews); err != nil {
		return nil, errors.Wrap(err, "sum like/visit failed")
	}
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Joins("JOIN videos ON videos.video_id = comments.video_id").
		Where("videos.user_id = ?", userId).
		Count(&stats.TotalComments).Error; err != nil {
		return nil, errors.Wrap(err, "count comments failed")
	}
	return stats, nil
}
