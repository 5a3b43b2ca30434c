package service

import (
	"cloud-drive-server/config"
	"cloud-drive-server/internal/model"
	"cloud-drive-server/internal/util"
	"context"
	"fmt"
	"io"
	"log"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioService : BlobStore поверх MinIO
type MinioService struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinioService(ctx context.Context, cfg *config.S3Config) (*MinioService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, util.LogError("[MinioService] ошибка создания клиента", err)
	}

	if err := ensureBucket(ctx, client, cfg.Bucket); err != nil {
		return nil, util.LogError("[MinioService] ошибка создания бакета", err)
	}

	return &MinioService{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: objectBaseURL(cfg),
	}, nil
}

func ensureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return err
	}
	log.Printf("[MinioService] бакет %s успешно создан", bucket)
	return nil
}

func (s *MinioService) CreateBlob(ctx context.Context, blobID string, name string, content io.Reader, size int64) (*model.Blob, error) {
	info, err := s.client.PutObject(ctx, s.bucket, blobID, content, size, minio.PutObjectOptions{
		ContentType:  util.ContentType(name),
		UserMetadata: map[string]string{"filename": url.QueryEscape(name)},
	})
	if err != nil {
		return nil, util.LogErrorAs(model.ErrStoreFailure, "[MinioService] не удалось загрузить объект", err)
	}

	return &model.Blob{ID: blobID, Name: name, Size: info.Size}, nil
}

func (s *MinioService) DeleteBlob(ctx context.Context, blobID string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, blobID, minio.RemoveObjectOptions{}); err != nil {
		return util.LogErrorAs(model.ErrStoreFailure, "[MinioService] не удалось удалить объект", err)
	}
	return nil
}

// GetBlobDownloadStream : GetObject ленивый, поэтому наличие объекта проверяется через Stat
func (s *MinioService) GetBlobDownloadStream(ctx context.Context, blobID string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, blobID, minio.GetObjectOptions{})
	if err != nil {
		return nil, util.LogErrorAs(model.ErrStoreFailure, "[MinioService] не удалось получить объект", err)
	}

	if _, err := obj.Stat(); err != nil {
		obj.Close()
		if string(minio.ToErrorResponse(err).Code) == "NoSuchKey" {
			return nil, fmt.Errorf("[MinioService] объект %s: %w", blobID, model.ErrNotFound)
		}
		return nil, util.LogErrorAs(model.ErrStoreFailure, "[MinioService] не удалось получить объект", err)
	}

	return obj, nil
}

func (s *MinioService) ObjectURL(blobID string) string {
	return s.publicURL + "/" + url.PathEscape(blobID)
}
