package service

import (
	"cloud-drive-server/internal/model"
	"cloud-drive-server/internal/ports"
	"cloud-drive-server/internal/util"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// SearchPageSize : сколько документов выбирается из хранилища для фильтрации поиском
	SearchPageSize  = 100
	DefaultPageSize = 10
)

var (
	fileOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drive_file_operations_total",
			Help: "Количество операций над файлами",
		},
		[]string{"operation", "result"},
	)

	uploadedBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "drive_uploaded_bytes_total",
		Help: "Суммарный объём загруженных файлов в байтах",
	})
)

type FileService struct {
	documents ports.FileDocumentStore
	blobs     ports.BlobStore
	identity  ports.IdentityResolver
	views     ports.ViewRevalidator
	validate  *validator.Validate
}

func NewFileService(
	documents ports.FileDocumentStore,
	blobs ports.BlobStore,
	identity ports.IdentityResolver,
	views ports.ViewRevalidator,
) *FileService {
	return &FileService{
		documents: documents,
		blobs:     blobs,
		identity:  identity,
		views:     views,
		validate:  validator.New(),
	}
}

// ListFiles : файлы текущего аккаунта. При ошибке возвращается пустой список вместе с ошибкой.
func (s *FileService) ListFiles(ctx context.Context, filters model.ListFilesFilters) (*model.FileList, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		observe("list", err)
		return model.EmptyFileList(), err
	}

	pageSize := filters.Limit
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	searching := filters.SearchText != ""
	limit := pageSize
	if searching {
		limit = SearchPageSize
	}

	queries := []model.Query{model.Equal(model.AttributeAccountID, user.AccountID)}
	if len(filters.Types) > 0 {
		types := make([]string, 0, len(filters.Types))
		for _, t := range filters.Types {
			types = append(types, string(t))
		}
		queries = append(queries, model.Equal(model.AttributeType, types...))
	}
	if model.ParseSortOrder(filters.Sort) == model.SortCreatedAsc {
		queries = append(queries, model.OrderAsc(model.AttributeCreatedAt))
	} else {
		queries = append(queries, model.OrderDesc(model.AttributeCreatedAt))
	}
	queries = append(queries, model.Limit(limit))

	files, err := s.documents.ListDocuments(ctx, queries...)
	if err != nil {
		observe("list", err)
		return model.EmptyFileList(), fmt.Errorf("[FileService] не удалось получить файлы: %w", err)
	}

	if !searching {
		observe("list", nil)
		return files, nil
	}

	term := strings.ToLower(filters.SearchText)
	matched := make([]model.FileRecord, 0, len(files.Documents))
	for _, file := range files.Documents {
		if matchesSearch(&file, term) {
			matched = append(matched, file)
		}
	}

	result := &model.FileList{Total: len(matched), Documents: matched}
	if len(matched) > pageSize {
		result.Documents = matched[:pageSize]
	}

	observe("search", nil)
	return result, nil
}

// matchesSearch : подстрока без учёта регистра в имени, расширении, категории или имени владельца
func matchesSearch(file *model.FileRecord, term string) bool {
	fields := []string{file.Name, string(file.Type)}
	if file.Extension != nil {
		fields = append(fields, *file.Extension)
	}
	if file.OwnerFullName != nil {
		fields = append(fields, *file.OwnerFullName)
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// UploadFile : сначала blob, затем документ. Если документ не создан, blob удаляется.
func (s *FileService) UploadFile(ctx context.Context, file model.UploadFile, ownerUUID, accountID, path string) (*model.FileRecord, error) {
	if strings.TrimSpace(file.Name) == "" || file.Content == nil {
		observe("upload", model.ErrValidation)
		return nil, fmt.Errorf("[FileService] пустой файл: %w", model.ErrValidation)
	}
	if file.Size < 0 {
		observe("upload", model.ErrValidation)
		return nil, fmt.Errorf("[FileService] отрицательный размер файла: %w", model.ErrValidation)
	}

	user, err := s.currentUser(ctx)
	if err != nil {
		observe("upload", err)
		return nil, err
	}
	if user.UUID != ownerUUID || user.AccountID != accountID {
		observe("upload", model.ErrAuthenticationRequired)
		return nil, fmt.Errorf("[FileService] владелец файла не совпадает с текущим пользователем: %w", model.ErrAuthenticationRequired)
	}

	blob, err := s.blobs.CreateBlob(ctx, uuid.New().String(), file.Name, file.Content, file.Size)
	if err != nil {
		observe("upload", err)
		return nil, fmt.Errorf("[FileService] не удалось загрузить файл в хранилище: %w", err)
	}

	category, extension := util.GetFileType(blob.Name)
	record, err := s.documents.CreateDocument(ctx, &model.FileRecord{
		UUID:         uuid.New().String(),
		Name:         blob.Name,
		Type:         category,
		Extension:    extension,
		Size:         model.ByteSize(blob.Size),
		OwnerUUID:    ownerUUID,
		AccountID:    accountID,
		Users:        pq.StringArray{},
		BucketFileID: blob.ID,
		URL:          s.blobs.ObjectURL(blob.ID),
	})
	if err != nil {
		if delErr := s.blobs.DeleteBlob(ctx, blob.ID); delErr != nil {
			log.Printf("[FileService] не удалось удалить blob %s после ошибки создания документа: %v", blob.ID, delErr)
			observe("upload", model.ErrPartialFailure)
			return nil, fmt.Errorf("[FileService] документ не создан, blob %s остался в хранилище: %w: %w", blob.ID, model.ErrPartialFailure, err)
		}
		observe("upload", err)
		return nil, fmt.Errorf("[FileService] не удалось создать документ: %w", err)
	}

	uploadedBytesTotal.Add(float64(blob.Size))
	observe("upload", nil)
	s.revalidate(ctx, path)
	return record, nil
}

// DownloadFile : скачать может владелец аккаунта или пользователь из списка совместного доступа
func (s *FileService) DownloadFile(ctx context.Context, fileUUID string) (*model.FileRecord, io.ReadCloser, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		observe("download", err)
		return nil, nil, err
	}

	if _, err := uuid.Parse(fileUUID); err != nil {
		observe("download", model.ErrNotFound)
		return nil, nil, fmt.Errorf("[FileService] файл %s: %w", fileUUID, model.ErrNotFound)
	}

	file, err := s.documents.GetDocument(ctx, fileUUID)
	if err != nil {
		observe("download", err)
		return nil, nil, fmt.Errorf("[FileService] не удалось получить файл: %w", err)
	}
	if file.AccountID != user.AccountID && !file.HasCollaborator(user.Email) {
		observe("download", model.ErrNotFound)
		return nil, nil, fmt.Errorf("[FileService] файл %s: %w", fileUUID, model.ErrNotFound)
	}

	stream, err := s.blobs.GetBlobDownloadStream(ctx, file.BucketFileID)
	if err != nil {
		observe("download", err)
		return nil, nil, fmt.Errorf("[FileService] не удалось получить содержимое файла: %w", err)
	}

	observe("download", nil)
	return file, stream, nil
}

// RenameFile : меняется только имя, extension не сохраняется
func (s *FileService) RenameFile(ctx context.Context, fileUUID, name, extension, path string) (*model.FileRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		observe("rename", model.ErrValidation)
		return nil, fmt.Errorf("[FileService] имя файла не может быть пустым: %w", model.ErrValidation)
	}

	file, err := s.ownedFile(ctx, fileUUID)
	if err != nil {
		observe("rename", err)
		return nil, err
	}

	updated, err := s.documents.UpdateDocument(ctx, file.UUID, model.FilePatch{Name: &name})
	if err != nil {
		observe("rename", err)
		return nil, fmt.Errorf("[FileService] не удалось переименовать файл: %w", err)
	}

	log.Printf("[FileService] файл %s переименован в %s (расширение %q)", file.UUID, name, extension)
	observe("rename", nil)
	s.revalidate(ctx, path)
	return updated, nil
}

// ShareFile : объединяет текущий список пользователей с новыми email
func (s *FileService) ShareFile(ctx context.Context, fileUUID string, emails []string, path string) (*model.FileRecord, error) {
	if err := s.validate.Var(emails, "required,min=1,dive,required,email"); err != nil {
		observe("share", model.ErrValidation)
		return nil, fmt.Errorf("[FileService] некорректный список email: %w", model.ErrValidation)
	}

	file, err := s.ownedFile(ctx, fileUUID)
	if err != nil {
		observe("share", err)
		return nil, err
	}

	users := mergeUsers(file.Users, emails)
	updated, err := s.documents.UpdateDocument(ctx, file.UUID, model.FilePatch{Users: users})
	if err != nil {
		observe("share", err)
		return nil, fmt.Errorf("[FileService] не удалось обновить список пользователей: %w", err)
	}

	observe("share", nil)
	s.revalidate(ctx, path)
	return updated, nil
}

// mergeUsers : существующие email сохраняют порядок, новые добавляются в конец без повторов.
// Сравнение без учёта регистра, остаётся первое написание.
func mergeUsers(existing []string, emails []string) []string {
	merged := make([]string, 0, len(existing)+len(emails))
	seen := make(map[string]struct{}, len(existing)+len(emails))
	for _, list := range [][]string{existing, emails} {
		for _, email := range list {
			email = strings.TrimSpace(email)
			key := strings.ToLower(email)
			if _, ok := seen[key]; ok || email == "" {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, email)
		}
	}
	return merged
}

// DeleteFile : сначала документ, затем blob. Ошибка удаления blob после удаления документа не откатывается.
func (s *FileService) DeleteFile(ctx context.Context, fileUUID, bucketFileID, path string) (*model.FileRecord, error) {
	if strings.TrimSpace(bucketFileID) == "" {
		observe("delete", model.ErrValidation)
		return nil, fmt.Errorf("[FileService] не указан bucket_file_id: %w", model.ErrValidation)
	}

	file, err := s.ownedFile(ctx, fileUUID)
	if err != nil {
		observe("delete", err)
		return nil, err
	}
	if file.BucketFileID != bucketFileID {
		observe("delete", model.ErrValidation)
		return nil, fmt.Errorf("[FileService] bucket_file_id не совпадает с файлом %s: %w", file.UUID, model.ErrValidation)
	}

	if err := s.documents.DeleteDocument(ctx, file.UUID); err != nil {
		observe("delete", err)
		return nil, fmt.Errorf("[FileService] не удалось удалить документ: %w", err)
	}

	if err := s.blobs.DeleteBlob(ctx, file.BucketFileID); err != nil {
		log.Printf("[FileService] документ %s удалён, но blob %s остался: %v", file.UUID, file.BucketFileID, err)
		observe("delete", model.ErrPartialFailure)
		s.revalidate(ctx, path)
		return nil, fmt.Errorf("[FileService] blob %s не удалён: %w: %w", file.BucketFileID, model.ErrPartialFailure, err)
	}

	observe("delete", nil)
	s.revalidate(ctx, path)
	return file, nil
}

// currentUser : любая ошибка определения пользователя считается ошибкой авторизации
func (s *FileService) currentUser(ctx context.Context) (*model.User, error) {
	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, model.ErrAuthenticationRequired) {
			return nil, fmt.Errorf("[FileService] %w", err)
		}
		return nil, fmt.Errorf("[FileService] не удалось определить пользователя: %w: %w", model.ErrAuthenticationRequired, err)
	}
	if user == nil {
		return nil, fmt.Errorf("[FileService] %w", model.ErrAuthenticationRequired)
	}
	return user, nil
}

// ownedFile : документ должен принадлежать аккаунту текущего пользователя, иначе NotFound
func (s *FileService) ownedFile(ctx context.Context, fileUUID string) (*model.FileRecord, error) {
	if strings.TrimSpace(fileUUID) == "" {
		return nil, fmt.Errorf("[FileService] не указан идентификатор файла: %w", model.ErrValidation)
	}

	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(fileUUID); err != nil {
		return nil, fmt.Errorf("[FileService] файл %s: %w", fileUUID, model.ErrNotFound)
	}

	file, err := s.documents.GetDocument(ctx, fileUUID)
	if err != nil {
		return nil, fmt.Errorf("[FileService] не удалось получить файл: %w", err)
	}
	if file.AccountID != user.AccountID {
		return nil, fmt.Errorf("[FileService] файл %s: %w", fileUUID, model.ErrNotFound)
	}
	return file, nil
}

func (s *FileService) revalidate(ctx context.Context, path string) {
	if path == "" || s.views == nil {
		return
	}
	if err := s.views.Revalidate(ctx, path); err != nil {
		log.Printf("[FileService] не удалось ревалидировать %s: %v", path, err)
	}
}

func observe(operation string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, model.ErrAuthenticationRequired):
		result = "unauthorized"
	case errors.Is(err, model.ErrValidation):
		result = "invalid"
	case errors.Is(err, model.ErrNotFound):
		result = "not_found"
	case errors.Is(err, model.ErrPartialFailure):
		result = "partial"
	default:
		result = "error"
	}
	fileOperationsTotal.WithLabelValues(operation, result).Inc()
}
