package ports

import (
	"cloud-drive-server/internal/model"
	"context"
	"io"
)

// FileDocumentStore : хранилище документов коллекции files
type FileDocumentStore interface {
	CreateDocument(ctx context.Context, file *model.FileRecord) (*model.FileRecord, error)
	GetDocument(ctx context.Context, fileUUID string) (*model.FileRecord, error)
	ListDocuments(ctx context.Context, queries ...model.Query) (*model.FileList, error)
	UpdateDocument(ctx context.Context, fileUUID string, patch model.FilePatch) (*model.FileRecord, error)
	DeleteDocument(ctx context.Context, fileUUID string) error
}

type FileService interface {
	ListFiles(ctx context.Context, filters model.ListFilesFilters) (*model.FileList, error)
	GetUsage(ctx context.Context) (*model.UsageSummary, error)
	UploadFile(ctx context.Context, file model.UploadFile, ownerUUID, accountID, path string) (*model.FileRecord, error)
	DownloadFile(ctx context.Context, fileUUID string) (*model.FileRecord, io.ReadCloser, error)
	RenameFile(ctx context.Context, fileUUID, name, extension, path string) (*model.FileRecord, error)
	ShareFile(ctx context.Context, fileUUID string, emails []string, path string) (*model.FileRecord, error)
	DeleteFile(ctx context.Context, fileUUID, bucketFileID, path string) (*model.FileRecord, error)
}
