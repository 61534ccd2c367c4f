package oss

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStorage struct {
	client   *minio.Client
	endpoint string
	bucket   string
	useSSL   bool
}

func NewMinioStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStorage, error) {
	hlog.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", endpoint, accessKey)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return nil, err
	}

	hlog.Info("Connect Minio Success")
	return &MinioStorage{
		client:   client,
		endpoint: endpoint,
		bucket:   bucket,
		useSSL:   useSSL,
	}, nil
}

func (s *MinioStorage) UploadVideo(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	location := "us-east-1" // MinIO默认区域

	// 检查存储桶是否存在，不存在则创建
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: location}); err != nil {
			return "", fmt.Errorf("create bucket error: %w", err)
		}
	}

	objectName := "video/" + uuid.New().String() + objectSuffix(filename, contentType)
	_, err = s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object error: %w", err)
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName), nil
}
