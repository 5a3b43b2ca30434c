package repository

import (
	"cloud-drive-server/config"
	"cloud-drive-server/internal/model"
	"cloud-drive-server/internal/util"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const selectUsers = `SELECT uuid, account_id, full_name, email, avatar, created_at FROM users`

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, account_id, full_name, email, avatar)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING uuid, account_id, full_name, email, avatar, created_at
	`

	createdUser := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query, user.UUID, user.AccountID, user.FullName, user.Email, user.Avatar).
		StructScan(createdUser)
	if err != nil {
		return nil, util.LogErrorAs(model.ErrStoreFailure, "[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByAccountID : ищет пользователя по идентификатору аккаунта из токена
func (r *UserRepository) FindByAccountID(ctx context.Context, accountID string) (*model.User, error) {
	return r.findOne(ctx, selectUsers+` WHERE account_id = $1`, accountID)
}

// FindByEmail : email сравнивается без учёта регистра
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, selectUsers+` WHERE LOWER(email) = LOWER($1)`, email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg string) (*model.User, error) {
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("[UserRepo] пользователь %s: %w", arg, model.ErrNotFound)
	}
	if err != nil {
		return nil, util.LogErrorAs(model.ErrStoreFailure, "[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}
