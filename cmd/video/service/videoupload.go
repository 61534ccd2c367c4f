package service

import (
	"context"
	"time"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// UploadVideo 先写存储再落库 存储失败时不会产生数据库行
// 落库失败时已写入的文件成为孤儿 只记录日志 不做回滚
func (s *VideoService) UploadVideo(ctx context.Context, userId int64, title, description string,
	isPodcast bool, data []byte, filename, contentType string) (*model.Video, error) {

	url, err := s.storage.UploadVideo(ctx, data, filename, contentType)
	if err != nil {
		hlog.Errorf("upload to storage failed, userId: %d, err: %v", userId, err)
		return nil, errno.StorageErr
	}

	video := &model.Video{
		UserId:      userId,
		Title:       title,
		Description: description,
		VideoUrl:    url,
		IsPodcast:   isPodcast,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateVideo(ctx, video); err != nil {
		hlog.Errorf("video row insert failed after storage write, orphaned object: %s", url)
		return nil, errors.WithMessage(err, "dao.CreateVideo failed")
	}
	return video, nil
}
