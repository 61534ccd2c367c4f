package oss

import (
	"context"
	"path/filepath"
)

// Storage 文件存储接口 上传成功后返回可持久化到视频行的访问地址
type Storage interface {
	UploadVideo(ctx context.Context, data []byte, filename, contentType string) (string, error)
}

// objectSuffix 优先沿用原始文件的后缀 否则根据content-type推断
func objectSuffix(filename, contentType string) string {
	if ext := filepath.Ext(filename); ext != "" {
		return ext
	}
	switch contentType {
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	case "audio/mpeg":
		return ".mp3"
	default:
		return ".mp4"
	}
}
