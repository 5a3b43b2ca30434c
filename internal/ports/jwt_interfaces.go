package ports

import (
	"cloud-drive-server/internal/model"
	"cloud-drive-server/internal/security"
)

type JWTServiceInterface interface {
	GenerateAccessToken(user *model.User) (*model.AccessToken, error)
	ValidateJWT(tokenString string) (*security.Claims, error)
}
