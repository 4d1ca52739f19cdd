package storage

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/exceptions"
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

// UploadBytes creates the bucket on first use and writes data under objectName.
func (m *minioStorage) UploadBytes(ctx context.Context, data []byte, bucketName, objectName, contentType string) (string, error) {
	exists, err := m.MinioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}
	if !exists {
		if err := m.MinioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return "", exceptions.ErrMinioCreateObject(err, bucketName)
		}
	}

	_, err = m.MinioClient.PutObject(
		ctx,
		bucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return objectName, nil
}
