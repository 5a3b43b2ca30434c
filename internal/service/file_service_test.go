package service_test

import (
	"cloud-drive-server/internal/model"
	srv "cloud-drive-server/internal/service"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testUser = &model.User{
	UUID:      "user-1",
	AccountID: "acc-1",
	FullName:  "Ivan Petrov",
	Email:     "ivan@example.com",
}

const (
	fileOne     = "6f0c2d1e-8a4b-4c3d-9e2f-1a2b3c4d5e01"
	fileTwo     = "6f0c2d1e-8a4b-4c3d-9e2f-1a2b3c4d5e02"
	fileMissing = "6f0c2d1e-8a4b-4c3d-9e2f-1a2b3c4d5e09"
)

func strPtr(s string) *string { return &s }

func newFileService() (*srv.FileService, *MockDocumentStore, *MockBlobStore, *MockIdentity, *MockRevalidator) {
	docs := new(MockDocumentStore)
	blobs := new(MockBlobStore)
	identity := new(MockIdentity)
	views := new(MockRevalidator)
	return srv.NewFileService(docs, blobs, identity, views), docs, blobs, identity, views
}

func TestFileService_ListFiles_Queries(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		filters  model.ListFilesFilters
		expected []model.Query
	}{
		{
			name:    "defaults",
			filters: model.ListFilesFilters{},
			expected: []model.Query{
				model.Equal(model.AttributeAccountID, "acc-1"),
				model.OrderDesc(model.AttributeCreatedAt),
				model.Limit(srv.DefaultPageSize),
			},
		},
		{
			name:    "types and ascending sort",
			filters: model.ListFilesFilters{Types: []model.Category{model.CategoryVideo, model.CategoryAudio}, Sort: "$createdAt-asc", Limit: 5},
			expected: []model.Query{
				model.Equal(model.AttributeAccountID, "acc-1"),
				model.Equal(model.AttributeType, "video", "audio"),
				model.OrderAsc(model.AttributeCreatedAt),
				model.Limit(5),
			},
		},
		{
			name:    "unknown sort falls back to descending",
			filters: model.ListFilesFilters{Sort: "name-asc"},
			expected: []model.Query{
				model.Equal(model.AttributeAccountID, "acc-1"),
				model.OrderDesc(model.AttributeCreatedAt),
				model.Limit(srv.DefaultPageSize),
			},
		},
		{
			name:    "search uses wide page",
			filters: model.ListFilesFilters{SearchText: "x", Limit: 3},
			expected: []model.Query{
				model.Equal(model.AttributeAccountID, "acc-1"),
				model.OrderDesc(model.AttributeCreatedAt),
				model.Limit(srv.SearchPageSize),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, docs, _, identity, _ := newFileService()
			identity.On("CurrentUser", ctx).Return(testUser, nil)
			docs.On("ListDocuments", ctx, tt.expected).Return(model.EmptyFileList(), nil)

			list, err := service.ListFiles(ctx, tt.filters)
			require.NoError(t, err)
			assert.NotNil(t, list)

			docs.AssertExpectations(t)
		})
	}
}

func TestFileService_ListFiles_Search(t *testing.T) {
	ctx := context.Background()
	service, docs, _, identity, _ := newFileService()
	identity.On("CurrentUser", ctx).Return(testUser, nil)

	docs.On("ListDocuments", ctx, mock.Anything).Return(&model.FileList{
		Total: 3,
		Documents: []model.FileRecord{
			{UUID: "1", Name: "Report.pdf", Type: model.CategoryDocument, Extension: strPtr("pdf")},
			{UUID: "2", Name: "photo.png", Type: model.CategoryImage, Extension: strPtr("png")},
			{UUID: "3", Name: "Q1 report.docx", Type: model.CategoryDocument, Extension: strPtr("docx")},
		},
	}, nil)

	list, err := service.ListFiles(ctx, model.ListFilesFilters{SearchText: "report"})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Documents, 2)
	assert.Equal(t, "1", list.Documents[0].UUID)
	assert.Equal(t, "3", list.Documents[1].UUID)
}

func TestFileService_ListFiles_SearchFields(t *testing.T) {
	ctx := context.Background()
	service, docs, _, identity, _ := newFileService()
	identity.On("CurrentUser", ctx).Return(testUser, nil)

	docs.On("ListDocuments", ctx, mock.Anything).Return(&model.FileList{
		Documents: []model.FileRecord{
			{UUID: "ext", Name: "a", Type: model.CategoryOther, Extension: strPtr("ZIP")},
			{UUID: "type", Name: "b", Type: model.CategoryVideo},
			{UUID: "owner", Name: "c", Type: model.CategoryOther, OwnerFullName: strPtr("Zippy Owner")},
			{UUID: "none", Name: "d", Type: model.CategoryOther},
		},
	}, nil)

	list, err := service.ListFiles(ctx, model.ListFilesFilters{SearchText: "zip"})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)

	list, err = service.ListFiles(ctx, model.ListFilesFilters{SearchText: "VIDEO"})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "type", list.Documents[0].UUID)
}

func TestFileService_ListFiles_SearchTruncatesToLimit(t *testing.T) {
	ctx := context.Background()
	service, docs, _, identity, _ := newFileService()
	identity.On("CurrentUser", ctx).Return(testUser, nil)

	documents := make([]model.FileRecord, 0, 25)
	for i := 0; i < 25; i++ {
		documents = append(documents, model.FileRecord{UUID: string(rune('a' + i)), Name: "notes.txt", Type: model.CategoryDocument})
	}
	docs.On("ListDocuments", ctx, mock.Anything).Return(&model.FileList{Total: 25, Documents: documents}, nil)

	list, err := service.ListFiles(ctx, model.ListFilesFilters{SearchText: "notes"})
	require.NoError(t, err)
	assert.Equal(t, 25, list.Total)
	assert.Len(t, list.Documents, srv.DefaultPageSize)

	list, err = service.ListFiles(ctx, model.ListFilesFilters{SearchText: "notes", Limit: 4})
	require.NoError(t, err)
	assert.Equal(t, 25, list.Total)
	assert.Len(t, list.Documents, 4)
}

func TestFileService_ListFiles_Unauthenticated(t *testing.T) {
	ctx := context.Background()
	service, docs, _, identity, _ := newFileService()
	identity.On("CurrentUser", ctx).Return(nil, model.ErrAuthenticationRequired)

	list, err := service.ListFiles(ctx, model.ListFilesFilters{})
	assert.True(t, errors.Is(err, model.ErrAuthenticationRequired))
	require.NotNil(t, list)
	assert.Equal(t, 0, list.Total)
	assert.Empty(t, list.Documents)
	docs.AssertNotCalled(t, "ListDocuments", mock.Anything, mock.Anything)
}

func TestFileService_ListFiles_StoreFailure(t *testing.T) {
	ctx := context.Background()
	service, docs, _, identity, _ := newFileService()
	identity.On("CurrentUser", ctx).Return(testUser, nil)
	docs.On("ListDocuments", ctx, mock.Anything).Return(nil, model.ErrStoreFailure)

	list, err := service.ListFiles(ctx, model.ListFilesFilters{})
	assert.True(t, errors.Is(err, model.ErrStoreFailure))
	require.NotNil(t, list)
	assert.Empty(t, list.Documents)
}

func TestFileService_RenameFile(t *testing.T) {
	ctx := context.Background()
	owned := &model.FileRecord{UUID: fileOne, Name: "old.pdf", AccountID: "acc-1"}
	foreign := &model.FileRecord{UUID: fileTwo, Name: "other.pdf", AccountID: "acc-2"}

	tests := []struct {
		name        string
		fileUUID    string
		newName     string
		setupMocks  func(d *MockDocumentStore, v *MockRevalidator)
		expectError error
	}{
		{
			name:        "blank name",
			fileUUID:    fileOne,
			newName:     "   ",
			expectError: model.ErrValidation,
		},
		{
			name:     "missing file",
			fileUUID: fileMissing,
			newName:  "new.pdf",
			setupMocks: func(d *MockDocumentStore, v *MockRevalidator) {
				d.On("GetDocument", ctx, fileMissing).Return(nil, model.ErrNotFound)
			},
			expectError: model.ErrNotFound,
		},
		{
			name:        "malformed id",
			fileUUID:    "not-a-uuid",
			newName:     "new.pdf",
			expectError: model.ErrNotFound,
		},
		{
			name:     "file of another account",
			fileUUID: fileTwo,
			newName:  "new.pdf",
			setupMocks: func(d *MockDocumentStore, v *MockRevalidator) {
				d.On("GetDocument", ctx, fileTwo).Return(foreign, nil)
			},
			expectError: model.ErrNotFound,
		},
		{
			name:     "success",
			fileUUID: fileOne,
			newName:  "new.pdf",
			setupMocks: func(d *MockDocumentStore, v *MockRevalidator) {
				d.On("GetDocument", ctx, fileOne).Return(owned, nil)
				d.On("UpdateDocument", ctx, fileOne, mock.MatchedBy(func(p model.FilePatch) bool {
					return p.Name != nil && *p.Name == "new.pdf" && p.Users == nil
				})).Return(&model.FileRecord{UUID: fileOne, Name: "new.pdf", AccountID: "acc-1"}, nil)
				v.On("Revalidate", ctx, "/documents").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, docs, _, identity, views := newFileService()
			identity.On("CurrentUser", ctx).Return(testUser, nil)
			if tt.setupMocks != nil {
				tt.setupMocks(docs, views)
			}

			file, err := service.RenameFile(ctx, tt.fileUUID, tt.newName, "pdf", "/documents")

			if tt.expectError != nil {
				assert.True(t, errors.Is(err, tt.expectError), "got %v", err)
				assert.Nil(t, file)
				docs.AssertNotCalled(t, "UpdateDocument", mock.Anything, mock.Anything, mock.Anything)
				views.AssertNotCalled(t, "Revalidate", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "new.pdf", file.Name)
			}

			docs.AssertExpectations(t)
			views.AssertExpectations(t)
		})
	}
}

func TestFileService_RenameFile_RevalidationErrorIgnored(t *testing.T) {
	ctx := context.Background()
	service, docs, _, identity, views := newFileService()
	identity.On("CurrentUser", ctx).Return(testUser, nil)
	docs.On("GetDocument", ctx, fileOne).Return(&model.FileRecord{UUID: fileOne, AccountID: "acc-1"}, nil)
	docs.On("UpdateDocument", ctx, fileOne, mock.Anything).Return(&model.FileRecord{UUID: fileOne, Name: "n"}, nil)
	views.On("Revalidate", ctx, "/").Return(errors.New("redis down"))

	file, err := service.RenameFile(ctx, fileOne, "n", "", "/")
	require.NoError(t, err)
	assert.Equal(t, "n", file.Name)
}

func TestFileService_ShareFile(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid emails", func(t *testing.T) {
		service, docs, _, _, _ := newFileService()

		_, err := service.ShareFile(ctx, fileOne, []string{"not-an-email"}, "/")
		assert.True(t, errors.Is(err, model.ErrValidation))

		_, err = service.ShareFile(ctx, fileOne, nil, "/")
		assert.True(t, errors.Is(err, model.ErrValidation))
		docs.AssertNotCalled(t, "GetDocument", mock.Anything, mock.Anything)
	})

	t.Run("union keeps existing order", func(t *testing.T) {
		service, docs, _, identity, views := newFileService()
		identity.On("CurrentUser", ctx).Return(testUser, nil)
		docs.On("GetDocument", ctx, fileOne).Return(&model.FileRecord{
			UUID:      fileOne,
			AccountID: "acc-1",
			Users:     pq.StringArray{"a@x.com"},
		}, nil)
		docs.On("UpdateDocument", ctx, fileOne, model.FilePatch{Users: []string{"a@x.com", "b@x.com"}}).
			Return(&model.FileRecord{UUID: fileOne, Users: pq.StringArray{"a@x.com", "b@x.com"}}, nil)
		views.On("Revalidate", ctx, "/shared").Return(nil)

		file, err := service.ShareFile(ctx, fileOne, []string{"b@x.com", "a@x.com", "b@x.com"}, "/shared")
		require.NoError(t, err)
		assert.Equal(t, []string{"a@x.com", "b@x.com"}, []string(file.Users))
		docs.AssertExpectations(t)
	})
}

func TestFileService_ShareFile_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	service, docs, _, identity, views := newFileService()
	identity.On("CurrentUser", ctx).Return(testUser, nil)
	docs.On("GetDocument", ctx, fileOne).Return(&model.FileRecord{
		UUID:      fileOne,
		AccountID: "acc-1",
		Users:     pq.StringArray{"bob@example.com"},
	}, nil)
	docs.On("UpdateDocument", ctx, fileOne, model.FilePatch{Users: []string{"bob@example.com", "eve@example.com"}}).
		Return(&model.FileRecord{UUID: fileOne, Users: pq.StringArray{"bob@example.com", "eve@example.com"}}, nil)
	views.On("Revalidate", ctx, "/").Return(nil)

	_, err := service.ShareFile(ctx, fileOne, []string{"Bob@Example.com", "eve@example.com", "EVE@example.com"}, "/")
	require.NoError(t, err)
	docs.AssertExpectations(t)
}

func TestFileService_ShareFile_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	service := srv.NewFileService(store, store, staticIdentity{testUser}, nil)

	created, err := service.UploadFile(ctx, model.UploadFile{Name: "plan.md", Content: strings.NewReader("# plan"), Size: 6}, testUser.UUID, testUser.AccountID, "")
	require.NoError(t, err)

	emails := []string{"a@x.com", "b@x.com"}
	once, err := service.ShareFile(ctx, created.UUID, emails, "")
	require.NoError(t, err)
	twice, err := service.ShareFile(ctx, created.UUID, emails, "")
	require.NoError(t, err)

	assert.Equal(t, []string(once.Users), []string(twice.Users))
	assert.ElementsMatch(t, emails, []string(twice.Users))
}

func TestFileService_DeleteFile(t *testing.T) {
	ctx := context.Background()
	record := &model.FileRecord{UUID: fileOne, AccountID: "acc-1", BucketFileID: "b1"}

	t.Run("bucket id mismatch", func(t *testing.T) {
		service, docs, blobs, identity, _ := newFileService()
		identity.On("CurrentUser", ctx).Return(testUser, nil)
		docs.On("GetDocument", ctx, fileOne).Return(record, nil)

		_, err := service.DeleteFile(ctx, fileOne, "other", "/")
		assert.True(t, errors.Is(err, model.ErrValidation))
		docs.AssertNotCalled(t, "DeleteDocument", mock.Anything, mock.Anything)
		blobs.AssertNotCalled(t, "DeleteBlob", mock.Anything, mock.Anything)
	})

	t.Run("document delete failure keeps blob", func(t *testing.T) {
		service, docs, blobs, identity, views := newFileService()
		identity.On("CurrentUser", ctx).Return(testUser, nil)
		docs.On("GetDocument", ctx, fileOne).Return(record, nil)
		docs.On("DeleteDocument", ctx, fileOne).Return(model.ErrStoreFailure)

		_, err := service.DeleteFile(ctx, fileOne, "b1", "/")
		assert.True(t, errors.Is(err, model.ErrStoreFailure))
		blobs.AssertNotCalled(t, "DeleteBlob", mock.Anything, mock.Anything)
		views.AssertNotCalled(t, "Revalidate", mock.Anything, mock.Anything)
	})

	t.Run("blob delete failure is partial", func(t *testing.T) {
		service, docs, blobs, identity, views := newFileService()
		identity.On("CurrentUser", ctx).Return(testUser, nil)
		docs.On("GetDocument", ctx, fileOne).Return(record, nil)
		docs.On("DeleteDocument", ctx, fileOne).Return(nil)
		blobs.On("DeleteBlob", ctx, "b1").Return(errors.New("s3 unavailable"))
		views.On("Revalidate", ctx, "/").Return(nil)

		_, err := service.DeleteFile(ctx, fileOne, "b1", "/")
		assert.True(t, errors.Is(err, model.ErrPartialFailure))
	})

	t.Run("document first then blob", func(t *testing.T) {
		service, docs, blobs, identity, views := newFileService()
		identity.On("CurrentUser", ctx).Return(testUser, nil)
		docs.On("GetDocument", ctx, fileOne).Return(record, nil)

		var order []string
		docs.On("DeleteDocument", ctx, fileOne).Run(func(mock.Arguments) { order = append(order, "document") }).Return(nil)
		blobs.On("DeleteBlob", ctx, "b1").Run(func(mock.Arguments) { order = append(order, "blob") }).Return(nil)
		views.On("Revalidate", ctx, "/").Return(nil)

		deleted, err := service.DeleteFile(ctx, fileOne, "b1", "/")
		require.NoError(t, err)
		assert.Equal(t, fileOne, deleted.UUID)
		assert.Equal(t, []string{"document", "blob"}, order)
		views.AssertExpectations(t)
	})
}

func TestFileService_DeleteFile_Terminal(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	service := srv.NewFileService(store, store, staticIdentity{testUser}, nil)

	created, err := service.UploadFile(ctx, model.UploadFile{Name: "song.mp3", Content: strings.NewReader("ID3"), Size: 3}, testUser.UUID, testUser.AccountID, "")
	require.NoError(t, err)

	_, err = service.DeleteFile(ctx, created.UUID, created.BucketFileID, "")
	require.NoError(t, err)

	_, err = store.GetDocument(ctx, created.UUID)
	assert.True(t, errors.Is(err, model.ErrNotFound))
	_, err = store.GetBlobDownloadStream(ctx, created.BucketFileID)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestFileService_UploadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("document failure deletes blob", func(t *testing.T) {
		service, docs, blobs, identity, views := newFileService()
		identity.On("CurrentUser", ctx).Return(testUser, nil)
		blobs.On("CreateBlob", ctx, mock.Anything, "a.png", mock.Anything, int64(4)).
			Return(&model.Blob{ID: "b1", Name: "a.png", Size: 4}, nil)
		docs.On("CreateDocument", ctx, mock.Anything).Return(nil, model.ErrStoreFailure)
		blobs.On("DeleteBlob", ctx, "b1").Return(nil).Once()

		_, err := service.UploadFile(ctx, model.UploadFile{Name: "a.png", Content: strings.NewReader("data"), Size: 4}, "user-1", "acc-1", "/images")
		assert.True(t, errors.Is(err, model.ErrStoreFailure))
		assert.False(t, errors.Is(err, model.ErrPartialFailure))
		blobs.AssertExpectations(t)
		views.AssertNotCalled(t, "Revalidate", mock.Anything, mock.Anything)
	})

	t.Run("compensation failure is partial", func(t *testing.T) {
		service, docs, blobs, identity, _ := newFileService()
		identity.On("CurrentUser", ctx).Return(testUser, nil)
		blobs.On("CreateBlob", ctx, mock.Anything, "a.png", mock.Anything, int64(4)).
			Return(&model.Blob{ID: "b1", Name: "a.png", Size: 4}, nil)
		docs.On("CreateDocument", ctx, mock.Anything).Return(nil, model.ErrStoreFailure)
		blobs.On("DeleteBlob", ctx, "b1").Return(errors.New("s3 unavailable"))

		_, err := service.UploadFile(ctx, model.UploadFile{Name: "a.png", Content: strings.NewReader("data"), Size: 4}, "user-1", "acc-1", "/images")
		assert.True(t, errors.Is(err, model.ErrPartialFailure))
	})

	t.Run("blob failure creates nothing", func(t *testing.T) {
		service, docs, blobs, identity, _ := newFileService()
		identity.On("CurrentUser", ctx).Return(testUser, nil)
		blobs.On("CreateBlob", ctx, mock.Anything, "a.png", mock.Anything, int64(4)).Return(nil, model.ErrStoreFailure)

		_, err := service.UploadFile(ctx, model.UploadFile{Name: "a.png", Content: strings.NewReader("data"), Size: 4}, "user-1", "acc-1", "/images")
		assert.True(t, errors.Is(err, model.ErrStoreFailure))
		docs.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything)
	})

	t.Run("owner must be current user", func(t *testing.T) {
		service, docs, blobs, identity, _ := newFileService()
		identity.On("CurrentUser", ctx).Return(testUser, nil)

		_, err := service.UploadFile(ctx, model.UploadFile{Name: "a.png", Content: strings.NewReader("data"), Size: 4}, "user-2", "acc-2", "/images")
		assert.True(t, errors.Is(err, model.ErrAuthenticationRequired))
		blobs.AssertNotCalled(t, "CreateBlob", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		docs.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything)
	})

	t.Run("record fields", func(t *testing.T) {
		service, docs, blobs, identity, views := newFileService()
		identity.On("CurrentUser", ctx).Return(testUser, nil)
		blobs.On("CreateBlob", ctx, mock.Anything, "Holiday.JPG", mock.Anything, int64(4)).
			Return(&model.Blob{ID: "b1", Name: "Holiday.JPG", Size: 4}, nil)
		docs.On("CreateDocument", ctx, mock.MatchedBy(func(f *model.FileRecord) bool {
			return f.Type == model.CategoryImage &&
				f.Extension != nil && *f.Extension == "jpg" &&
				f.BucketFileID == "b1" &&
				f.URL == "http://storage.local/drive/b1" &&
				f.OwnerUUID == "user-1" && f.AccountID == "acc-1" &&
				f.Users != nil && len(f.Users) == 0
		})).Return(&model.FileRecord{UUID: "f1"}, nil)
		views.On("Revalidate", ctx, "/images").Return(nil)

		file, err := service.UploadFile(ctx, model.UploadFile{Name: "Holiday.JPG", Content: strings.NewReader("data"), Size: 4}, "user-1", "acc-1", "/images")
		require.NoError(t, err)
		assert.Equal(t, "f1", file.UUID)
		docs.AssertExpectations(t)
		views.AssertExpectations(t)
	})
}

func TestFileService_UploadThenList(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	service := srv.NewFileService(store, store, staticIdentity{testUser}, nil)

	created, err := service.UploadFile(ctx, model.UploadFile{Name: "clip.mp4", Content: strings.NewReader("mp4"), Size: 3}, testUser.UUID, testUser.AccountID, "")
	require.NoError(t, err)
	_, err = service.UploadFile(ctx, model.UploadFile{Name: "notes.txt", Content: strings.NewReader("txt"), Size: 3}, testUser.UUID, testUser.AccountID, "")
	require.NoError(t, err)

	list, err := service.ListFiles(ctx, model.ListFilesFilters{Types: []model.Category{model.CategoryVideo}})
	require.NoError(t, err)

	count := 0
	for _, doc := range list.Documents {
		if doc.UUID == created.UUID {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, list.Total)
}

func TestFileService_DownloadFile(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	owner := srv.NewFileService(store, store, staticIdentity{testUser}, nil)

	created, err := owner.UploadFile(ctx, model.UploadFile{Name: "a.txt", Content: strings.NewReader("hello"), Size: 5}, testUser.UUID, testUser.AccountID, "")
	require.NoError(t, err)

	file, stream, err := owner.DownloadFile(ctx, created.UUID)
	require.NoError(t, err)
	defer stream.Close()
	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, created.UUID, file.UUID)

	guest := &model.User{UUID: "user-2", AccountID: "acc-2", Email: "guest@x.com"}
	guestService := srv.NewFileService(store, store, staticIdentity{guest}, nil)

	_, _, err = guestService.DownloadFile(ctx, created.UUID)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	_, err = owner.ShareFile(ctx, created.UUID, []string{"Guest@x.com"}, "")
	require.NoError(t, err)

	_, stream, err = guestService.DownloadFile(ctx, created.UUID)
	require.NoError(t, err)
	stream.Close()
}

func TestFileService_DownloadFile_MalformedID(t *testing.T) {
	ctx := context.Background()
	service, docs, blobs, identity, _ := newFileService()
	identity.On("CurrentUser", ctx).Return(testUser, nil)

	_, _, err := service.DownloadFile(ctx, "not-a-uuid")
	assert.True(t, errors.Is(err, model.ErrNotFound))
	docs.AssertNotCalled(t, "GetDocument", mock.Anything, mock.Anything)
	blobs.AssertNotCalled(t, "GetBlobDownloadStream", mock.Anything, mock.Anything)
}
