package service

import (
	"cloud-drive-server/config"
	"cloud-drive-server/internal/model"
	"cloud-drive-server/internal/util"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Service : BlobStore поверх S3 (AWS или любое S3-совместимое хранилище)
type S3Service struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Service(ctx context.Context, cfg *config.S3Config) (*S3Service, error) {
	var client *s3.Client

	if cfg.Local {
		accessKey, secretKey := cfg.AccessKey, cfg.SecretKey
		if accessKey == "" {
			accessKey, secretKey = "minioadmin", "minioadmin"
		}

		client = s3.New(s3.Options{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				accessKey,
				secretKey,
				"",
			),
			BaseEndpoint: aws.String(cfg.Endpoint),
			UsePathStyle: true,
		})

		if err := createBucketIfNotExists(ctx, client, cfg.Bucket); err != nil {
			return nil, util.LogError("[S3Service] ошибка создания бакета", err)
		}
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, util.LogError("[S3Service] ошибка загрузки AWS config", err)
		}
		client = s3.NewFromConfig(awsCfg)
	}

	return &S3Service{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: objectBaseURL(cfg),
	}, nil
}

// createBucketIfNotExists создает бакет если он не существует
func createBucketIfNotExists(ctx context.Context, client *s3.Client, bucket string) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})

	if err == nil {
		return nil // Бакет уже существует
	}

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})

	if err != nil {
		return util.LogError("[S3Service] ошибка создания бакета", err)
	}

	log.Printf("[S3Service] бакет %s успешно создан", bucket)
	return nil
}

// CreateBlob : загружает содержимое под ключом blobID
func (s *S3Service) CreateBlob(ctx context.Context, blobID string, name string, content io.Reader, size int64) (*model.Blob, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(blobID),
		Body:          content,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(util.ContentType(name)),
		Metadata:      map[string]string{"filename": url.QueryEscape(name)},
	})
	if err != nil {
		return nil, util.LogErrorAs(model.ErrStoreFailure, "[S3Service] не удалось загрузить объект", err)
	}

	return &model.Blob{ID: blobID, Name: name, Size: size}, nil
}

// DeleteBlob : удаление объекта
func (s *S3Service) DeleteBlob(ctx context.Context, blobID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(blobID),
	})
	if err != nil {
		return util.LogErrorAs(model.ErrStoreFailure, "[S3Service] не удалось удалить объект", err)
	}
	return nil
}

// GetBlobDownloadStream : поток содержимого, закрывает вызывающий
func (s *S3Service) GetBlobDownloadStream(ctx context.Context, blobID string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(blobID),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound") {
			return nil, fmt.Errorf("[S3Service] объект %s: %w", blobID, model.ErrNotFound)
		}
		return nil, util.LogErrorAs(model.ErrStoreFailure, "[S3Service] не удалось получить объект", err)
	}
	return out.Body, nil
}

func (s *S3Service) ObjectURL(blobID string) string {
	return s.publicURL + "/" + url.PathEscape(blobID)
}

// objectBaseURL : адрес бакета без завершающего слэша
func objectBaseURL(cfg *config.S3Config) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	if cfg.Endpoint != "" {
		endpoint := strings.TrimRight(cfg.Endpoint, "/")
		if !strings.Contains(endpoint, "://") {
			scheme := "http"
			if cfg.UseSSL {
				scheme = "https"
			}
			endpoint = scheme + "://" + endpoint
		}
		return endpoint + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}
