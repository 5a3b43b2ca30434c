package model

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
)

// Category : закрытый набор категорий файлов
type Category string

const (
	CategoryDocument Category = "document"
	CategoryImage    Category = "image"
	CategoryVideo    Category = "video"
	CategoryAudio    Category = "audio"
	CategoryOther    Category = "other"
)

// Categories : порядок совпадает с порядком полей UsageSummary
var Categories = []Category{CategoryImage, CategoryDocument, CategoryVideo, CategoryAudio, CategoryOther}

func (c Category) Valid() bool {
	switch c {
	case CategoryDocument, CategoryImage, CategoryVideo, CategoryAudio, CategoryOther:
		return true
	}
	return false
}

// ParseCategory : неизвестные значения превращаются в CategoryOther
func ParseCategory(value string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(value)))
	if c.Valid() {
		return c
	}
	return CategoryOther
}

// ByteSize : размер в байтах. В JSON принимает как число, так и строку с числом.
type ByteSize int64

func (b *ByteSize) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == "" {
		*b = 0
		return nil
	}

	raw = strings.Trim(raw, `"`)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*b = ByteSize(max(n, 0))
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		*b = clampFloat(f)
		return nil
	}

	*b = 0
	return nil
}

// clampFloat : NaN и отрицательные значения дают 0, слишком большие обрезаются до MaxInt64
func clampFloat(f float64) ByteSize {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxInt64:
		return ByteSize(math.MaxInt64)
	}
	return ByteSize(int64(f))
}

// NonNegative : отрицательные размеры считаются нулевыми
func (b ByteSize) NonNegative() int64 {
	if b < 0 {
		return 0
	}
	return int64(b)
}

// FileRecord : документ коллекции files
type FileRecord struct {
	UUID          string         `db:"uuid" json:"$id"`
	Name          string         `db:"name" json:"name"`
	Type          Category       `db:"type" json:"type"`
	Extension     *string        `db:"extension" json:"extension"`
	Size          ByteSize       `db:"size_bytes" json:"size"`
	OwnerUUID     string         `db:"owner_uuid" json:"owner"`
	OwnerFullName *string        `db:"full_name" json:"fullName,omitempty"`
	AccountID     string         `db:"account_id" json:"accountId"`
	Users         pq.StringArray `db:"users" json:"users"`
	BucketFileID  string         `db:"bucket_file_id" json:"bucketFileId"`
	URL           string         `db:"url" json:"url"`
	CreatedAt     time.Time      `db:"created_at" json:"$createdAt"`
	UpdatedAt     time.Time      `db:"updated_at" json:"$updatedAt"`
}

// HasCollaborator : email сравнивается без учёта регистра
func (f *FileRecord) HasCollaborator(email string) bool {
	for _, user := range f.Users {
		if strings.EqualFold(user, email) {
			return true
		}
	}
	return false
}

// FilePatch : nil-поля не изменяются
type FilePatch struct {
	Name  *string
	Users []string
}

func (p FilePatch) Empty() bool {
	return p.Name == nil && p.Users == nil
}

// FileList : страница документов и общее количество совпадений
type FileList struct {
	Total     int          `json:"total"`
	Documents []FileRecord `json:"documents"`
}

func EmptyFileList() *FileList {
	return &FileList{Total: 0, Documents: []FileRecord{}}
}

type SortOrder string

const (
	SortCreatedDesc SortOrder = "$createdAt-desc"
	SortCreatedAsc  SortOrder = "$createdAt-asc"
)

// ParseSortOrder : всё, кроме явного "$createdAt-asc", сортируется по убыванию
func ParseSortOrder(value string) SortOrder {
	if SortOrder(strings.TrimSpace(value)) == SortCreatedAsc {
		return SortCreatedAsc
	}
	return SortCreatedDesc
}

// ListFilesFilters : параметры выборки файлов текущего аккаунта
type ListFilesFilters struct {
	Types      []Category
	SearchText string
	Sort       string
	Limit      int
}

// UploadFile : содержимое и имя загружаемого файла
type UploadFile struct {
	Name    string
	Size    int64
	Content io.Reader
}

// Blob : объект в хранилище
type Blob struct {
	ID   string `json:"$id"`
	Name string `json:"name"`
	Size int64  `json:"sizeOriginal"`
}
