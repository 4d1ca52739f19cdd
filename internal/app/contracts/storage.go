package contracts

import "context"

type Storage interface {
	UploadBytes(ctx context.Context, data []byte, bucketName, objectName, contentType string) (string, error)
}
