package service_test

import (
	"bytes"
	"cloud-drive-server/internal/model"
	"cloud-drive-server/internal/security"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

// MockIdentity
type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) CurrentUser(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockDocumentStore
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) CreateDocument(ctx context.Context, file *model.FileRecord) (*model.FileRecord, error) {
	args := m.Called(ctx, file)
	if f, ok := args.Get(0).(*model.FileRecord); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentStore) GetDocument(ctx context.Context, fileUUID string) (*model.FileRecord, error) {
	args := m.Called(ctx, fileUUID)
	if f, ok := args.Get(0).(*model.FileRecord); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentStore) ListDocuments(ctx context.Context, queries ...model.Query) (*model.FileList, error) {
	args := m.Called(ctx, queries)
	if l, ok := args.Get(0).(*model.FileList); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentStore) UpdateDocument(ctx context.Context, fileUUID string, patch model.FilePatch) (*model.FileRecord, error) {
	args := m.Called(ctx, fileUUID, patch)
	if f, ok := args.Get(0).(*model.FileRecord); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentStore) DeleteDocument(ctx context.Context, fileUUID string) error {
	args := m.Called(ctx, fileUUID)
	return args.Error(0)
}

// MockBlobStore
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) CreateBlob(ctx context.Context, blobID string, name string, content io.Reader, size int64) (*model.Blob, error) {
	args := m.Called(ctx, blobID, name, content, size)
	if b, ok := args.Get(0).(*model.Blob); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBlobStore) DeleteBlob(ctx context.Context, blobID string) error {
	args := m.Called(ctx, blobID)
	return args.Error(0)
}

func (m *MockBlobStore) GetBlobDownloadStream(ctx context.Context, blobID string) (io.ReadCloser, error) {
	args := m.Called(ctx, blobID)
	if r, ok := args.Get(0).(io.ReadCloser); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBlobStore) ObjectURL(blobID string) string {
	return "http://storage.local/drive/" + blobID
}

// MockRevalidator
type MockRevalidator struct {
	mock.Mock
}

func (m *MockRevalidator) Revalidate(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockRevalidator) Revision(ctx context.Context, path string) (int64, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByAccountID(ctx context.Context, accountID string) (*model.User, error) {
	args := m.Called(ctx, accountID)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockJWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateAccessToken(user *model.User) (*model.AccessToken, error) {
	args := m.Called(user)
	if t, ok := args.Get(0).(*model.AccessToken); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) ValidateJWT(tokenString string) (*security.Claims, error) {
	args := m.Called(tokenString)
	if c, ok := args.Get(0).(*security.Claims); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// ===== FAKES =====

// memoryStore : документное и blob-хранилище в памяти для сквозных сценариев
type memoryStore struct {
	mu    sync.Mutex
	docs  map[string]model.FileRecord
	blobs map[string][]byte
	clock time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		docs:  map[string]model.FileRecord{},
		blobs: map[string][]byte{},
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memoryStore) CreateDocument(_ context.Context, file *model.FileRecord) (*model.FileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = s.clock.Add(time.Second)
	created := *file
	created.CreatedAt, created.UpdatedAt = s.clock, s.clock
	s.docs[created.UUID] = created
	return &created, nil
}

func (s *memoryStore) GetDocument(_ context.Context, fileUUID string) (*model.FileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	file, ok := s.docs[fileUUID]
	if !ok {
		return nil, fmt.Errorf("документ %s: %w", fileUUID, model.ErrNotFound)
	}
	return &file, nil
}

func (s *memoryStore) ListDocuments(_ context.Context, queries ...model.Query) (*model.FileList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []model.FileRecord{}
	limit := 0
	for _, file := range s.docs {
		ok := true
		for _, q := range queries {
			if q.Method == model.QueryMethodLimit {
				limit = q.Limit
				continue
			}
			if q.Method != model.QueryMethodEqual {
				continue
			}
			var value string
			switch q.Attribute {
			case model.AttributeAccountID:
				value = file.AccountID
			case model.AttributeType:
				value = string(file.Type)
			}
			if !contains(q.Values, value) {
				ok = false
			}
		}
		if ok {
			matched = append(matched, file)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	total := len(matched)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return &model.FileList{Total: total, Documents: matched}, nil
}

func (s *memoryStore) UpdateDocument(_ context.Context, fileUUID string, patch model.FilePatch) (*model.FileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	file, ok := s.docs[fileUUID]
	if !ok {
		return nil, fmt.Errorf("документ %s: %w", fileUUID, model.ErrNotFound)
	}
	if patch.Name != nil {
		file.Name = *patch.Name
	}
	if patch.Users != nil {
		file.Users = pq.StringArray(patch.Users)
	}
	s.clock = s.clock.Add(time.Second)
	file.UpdatedAt = s.clock
	s.docs[fileUUID] = file
	return &file, nil
}

func (s *memoryStore) DeleteDocument(_ context.Context, fileUUID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[fileUUID]; !ok {
		return fmt.Errorf("документ %s: %w", fileUUID, model.ErrNotFound)
	}
	delete(s.docs, fileUUID)
	return nil
}

func (s *memoryStore) CreateBlob(_ context.Context, blobID string, name string, content io.Reader, _ int64) (*model.Blob, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[blobID] = data
	return &model.Blob{ID: blobID, Name: name, Size: int64(len(data))}, nil
}

func (s *memoryStore) DeleteBlob(_ context.Context, blobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[blobID]; !ok {
		return fmt.Errorf("blob %s: %w", blobID, model.ErrNotFound)
	}
	delete(s.blobs, blobID)
	return nil
}

func (s *memoryStore) GetBlobDownloadStream(_ context.Context, blobID string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[blobID]
	if !ok {
		return nil, fmt.Errorf("blob %s: %w", blobID, model.ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memoryStore) ObjectURL(blobID string) string {
	return "memory://" + blobID
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

type staticIdentity struct {
	user *model.User
}

func (s staticIdentity) CurrentUser(context.Context) (*model.User, error) {
	return s.user, nil
}
