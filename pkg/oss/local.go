package oss

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// LocalStorage 把上传文件落到本地磁盘 返回相对URL 由静态路由对外提供
type LocalStorage struct {
	dir       string
	urlPrefix string
}

func NewLocalStorage(dir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create upload dir %s failed", dir)
	}
	return &LocalStorage{dir: dir, urlPrefix: urlPrefix}, nil
}

func (s *LocalStorage) UploadVideo(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	name := uuid.New().String() + objectSuffix(filename, contentType)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "write file %s failed", path)
	}
	return s.urlPrefix + "/" + name, nil
}
