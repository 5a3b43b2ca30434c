package ports

import (
	"cloud-drive-server/internal/model"
	"context"
	"io"
)

// BlobStore : объектное хранилище, ключ — непрозрачный идентификатор
type BlobStore interface {
	CreateBlob(ctx context.Context, blobID string, name string, content io.Reader, size int64) (*model.Blob, error)
	DeleteBlob(ctx context.Context, blobID string) error
	GetBlobDownloadStream(ctx context.Context, blobID string) (io.ReadCloser, error)
	ObjectURL(blobID string) string
}
