package storage

//go:generate mockgen -source=storage.go -destination=mock_storage.go -package=storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/config"
)

type Storage interface {
	Save(ctx context.Context, name, contentType string, body io.Reader) error
}

type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewStorage returns the bucket backed storage when a bucket is configured
// and the local disk storage otherwise.
func NewStorage(s3Client S3Client, uploadConfig *config.UploadConfig) Storage {
	if uploadConfig.S3Bucket != "" && s3Client != nil {
		return &bucketStorage{
			s3Client: s3Client,
			bucket:   uploadConfig.S3Bucket,
		}
	}

	return &diskStorage{
		path: uploadConfig.Path,
	}
}

type diskStorage struct {
	path string
}

func (d *diskStorage) Save(_ context.Context, name, _ string, body io.Reader) error {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return cerror.DependencyError("error occurred while create upload directory").
			WithFields(zap.Error(err))
	}

	file, err := os.Create(filepath.Join(d.path, filepath.Base(name)))
	if err != nil {
		return cerror.DependencyError("error occurred while create upload file").
			WithFields(zap.Error(err))
	}
	defer file.Close() //nolint:errcheck

	if _, err = io.Copy(file, body); err != nil {
		return cerror.DependencyError("error occurred while write upload file").
			WithFields(zap.Error(err))
	}

	return nil
}

type bucketStorage struct {
	s3Client S3Client
	bucket   string
}

func (b *bucketStorage) Save(ctx context.Context, name, contentType string, body io.Reader) error {
	_, err := b.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(filepath.Base(name)),
		ContentType: aws.String(contentType),
		Body:        body,
	})
	if err != nil {
		return cerror.DependencyError("error occurred while put object to bucket").
			WithFields(zap.Error(err), zap.String("bucket", b.bucket))
	}

	return nil
}
