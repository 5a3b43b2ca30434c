package ports

import (
	"cloud-drive-server/internal/model"
	"context"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByAccountID(ctx context.Context, accountID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// IdentityResolver : текущий пользователь запроса
type IdentityResolver interface {
	CurrentUser(ctx context.Context) (*model.User, error)
}

type UserService interface {
	IdentityResolver
	Register(ctx context.Context, adminToken, fullName, email string) (*model.User, *model.AccessToken, error)
}
