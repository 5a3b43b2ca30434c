package repository

import (
	"cloud-drive-server/config"
	"cloud-drive-server/internal/model"
	"cloud-drive-server/internal/util"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const selectFiles = `
	SELECT f.uuid, f.name, f.type, f.extension, f.size_bytes, f.owner_uuid, u.full_name,
	       f.account_id, f.users, f.bucket_file_id, f.url, f.created_at, f.updated_at
	FROM files f
	LEFT JOIN users u ON u.uuid = f.owner_uuid`

// fileColumns : атрибуты, по которым разрешено фильтровать и сортировать
var fileColumns = map[string]string{
	model.AttributeID:        "f.uuid",
	model.AttributeAccountID: "f.account_id",
	model.AttributeOwner:     "f.owner_uuid",
	model.AttributeType:      "f.type",
	model.AttributeName:      "f.name",
	model.AttributeCreatedAt: "f.created_at",
	model.AttributeUpdatedAt: "f.updated_at",
}

type FileRepository struct {
	*config.Database
}

func NewFileRepository(database *config.Database) *FileRepository {
	return &FileRepository{database}
}

// CreateDocument : сохраняет новый документ, created_at и updated_at проставляет БД
func (r *FileRepository) CreateDocument(ctx context.Context, file *model.FileRecord) (*model.FileRecord, error) {
	query := `
		INSERT INTO files (uuid, name, type, extension, size_bytes, owner_uuid, account_id, users, bucket_file_id, url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	users := file.Users
	if users == nil {
		users = pq.StringArray{}
	}

	created := *file
	created.Users = users
	err := r.DB.QueryRowxContext(ctx, query,
		file.UUID,
		file.Name,
		file.Type,
		file.Extension,
		file.Size.NonNegative(),
		file.OwnerUUID,
		file.AccountID,
		users,
		file.BucketFileID,
		file.URL,
	).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, util.LogErrorAs(model.ErrStoreFailure, "[FileRepo] ошибка вставки документа в БД", err)
	}

	return &created, nil
}

// GetDocument : ищет документ по UUID
func (r *FileRepository) GetDocument(ctx context.Context, fileUUID string) (*model.FileRecord, error) {
	var file model.FileRecord
	err := sqlx.GetContext(ctx, r.DB, &file, selectFiles+` WHERE f.uuid = $1`, fileUUID)
	if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
		return nil, fmt.Errorf("[FileRepo] документ %s: %w", fileUUID, model.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogErrorAs(model.ErrStoreFailure, "[FileRepo] не удалось получить документ", err)
	}
	return &file, nil
}

// ListDocuments : total считается без учёта limit
func (r *FileRepository) ListDocuments(ctx context.Context, queries ...model.Query) (*model.FileList, error) {
	where, order, limit, args, err := compileQueries(queries)
	if err != nil {
		return nil, err
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM files f` + where
	if err := sqlx.GetContext(ctx, r.DB, &total, countQuery, args...); err != nil {
		return nil, util.LogErrorAs(model.ErrStoreFailure, "[FileRepo] не удалось посчитать документы", err)
	}

	selectQuery := selectFiles + where + order
	if limit > 0 {
		args = append(args, limit)
		selectQuery += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	documents := []model.FileRecord{}
	if err := sqlx.SelectContext(ctx, r.DB, &documents, selectQuery, args...); err != nil {
		return nil, util.LogErrorAs(model.ErrStoreFailure, "[FileRepo] не удалось получить список документов", err)
	}

	return &model.FileList{Total: total, Documents: documents}, nil
}

// UpdateDocument : меняет только переданные поля, updated_at обновляется всегда
func (r *FileRepository) UpdateDocument(ctx context.Context, fileUUID string, patch model.FilePatch) (*model.FileRecord, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("[FileRepo] пустое обновление: %w", model.ErrValidation)
	}

	sets := make([]string, 0, 3)
	args := []interface{}{fileUUID}
	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Users != nil {
		args = append(args, pq.Array(patch.Users))
		sets = append(sets, fmt.Sprintf("users = $%d", len(args)))
	}
	sets = append(sets, "updated_at = NOW()")

	query := `UPDATE files SET ` + strings.Join(sets, ", ") + ` WHERE uuid = $1`
	result, err := r.DB.ExecContext(ctx, query, args...)
	if isInvalidUUID(err) {
		return nil, fmt.Errorf("[FileRepo] документ %s: %w", fileUUID, model.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogErrorAs(model.ErrStoreFailure, "[FileRepo] не удалось обновить документ", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, util.LogErrorAs(model.ErrStoreFailure, "[FileRepo] не удалось обновить документ", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("[FileRepo] документ %s: %w", fileUUID, model.ErrNotFound)
	}

	return r.GetDocument(ctx, fileUUID)
}

// DeleteDocument : удаляет документ по UUID
func (r *FileRepository) DeleteDocument(ctx context.Context, fileUUID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM files WHERE uuid = $1`, fileUUID)
	if isInvalidUUID(err) {
		return fmt.Errorf("[FileRepo] документ %s: %w", fileUUID, model.ErrNotFound)
	}
	if err != nil {
		return util.LogErrorAs(model.ErrStoreFailure, "[FileRepo] не удалось удалить документ", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogErrorAs(model.ErrStoreFailure, "[FileRepo] не удалось удалить документ", err)
	}
	if affected == 0 {
		return fmt.Errorf("[FileRepo] документ %s: %w", fileUUID, model.ErrNotFound)
	}
	return nil
}

// isInvalidUUID : Postgres не смог привести идентификатор к uuid (22P02), такого документа быть не может
func isInvalidUUID(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "22P02"
}

// compileQueries : переводит предикаты в WHERE / ORDER BY / LIMIT.
// Используются только колонки из fileColumns, значения передаются параметрами.
func compileQueries(queries []model.Query) (string, string, int, []interface{}, error) {
	var (
		conditions []string
		orders     []string
		args       []interface{}
		limit      int
	)

	for _, q := range queries {
		switch q.Method {
		case model.QueryMethodEqual:
			column, ok := fileColumns[q.Attribute]
			if !ok {
				return "", "", 0, nil, fmt.Errorf("[FileRepo] неизвестный атрибут %q: %w", q.Attribute, model.ErrValidation)
			}
			if len(q.Values) == 0 {
				return "", "", 0, nil, fmt.Errorf("[FileRepo] пустой список значений для %q: %w", q.Attribute, model.ErrValidation)
			}
			if len(q.Values) == 1 {
				args = append(args, q.Values[0])
				conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
			} else {
				args = append(args, pq.Array(q.Values))
				conditions = append(conditions, fmt.Sprintf("%s = ANY($%d)", column, len(args)))
			}
		case model.QueryMethodOrderAsc, model.QueryMethodOrderDesc:
			column, ok := fileColumns[q.Attribute]
			if !ok {
				return "", "", 0, nil, fmt.Errorf("[FileRepo] неизвестный атрибут %q: %w", q.Attribute, model.ErrValidation)
			}
			direction := "ASC"
			if q.Method == model.QueryMethodOrderDesc {
				direction = "DESC"
			}
			orders = append(orders, column+" "+direction)
		case model.QueryMethodLimit:
			if q.Limit <= 0 {
				return "", "", 0, nil, fmt.Errorf("[FileRepo] limit должен быть положительным: %w", model.ErrValidation)
			}
			limit = q.Limit
		default:
			return "", "", 0, nil, fmt.Errorf("[FileRepo] неизвестный метод запроса %q: %w", q.Method, model.ErrValidation)
		}
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}
	order := ""
	if len(orders) > 0 {
		order = " ORDER BY " + strings.Join(orders, ", ") + ", f.uuid"
	}

	return where, order, limit, args, nil
}
