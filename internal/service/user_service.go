package service

import (
	"cloud-drive-server/config"
	"cloud-drive-server/internal/model"
	"cloud-drive-server/internal/ports"
	"cloud-drive-server/internal/security"
	"cloud-drive-server/internal/util"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService struct {
	userRepository ports.UserRepository
	jwtService     ports.JWTServiceInterface
	adminToken     *config.AdminConfig
	validate       *validator.Validate
}

func NewUserService(
	userRepository ports.UserRepository,
	jwtService ports.JWTServiceInterface,
	adminToken *config.AdminConfig,
) *UserService {
	return &UserService{
		userRepository: userRepository,
		jwtService:     jwtService,
		adminToken:     adminToken,
		validate:       validator.New(),
	}
}

// CurrentUser : профиль пользователя, которому принадлежит токен запроса
func (s *UserService) CurrentUser(ctx context.Context) (*model.User, error) {
	claims, err := security.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("[UserService] %w", err)
	}

	user, err := s.userRepository.FindByAccountID(ctx, claims.AccountID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("[UserService] аккаунт %s не найден: %w", claims.AccountID, model.ErrAuthenticationRequired)
	}
	if err != nil {
		return nil, fmt.Errorf("[UserService] не удалось получить пользователя: %w", err)
	}

	return user, nil
}

// Register : создаёт пользователя (или находит существующего по email) и выдаёт access токен
func (s *UserService) Register(ctx context.Context, adminToken, fullName, email string) (*model.User, *model.AccessToken, error) {
	if s.adminToken == nil || s.adminToken.AdminToken == "" || adminToken != s.adminToken.AdminToken {
		return nil, nil, fmt.Errorf("[UserService] неверный токен администратора: %w", model.ErrAuthenticationRequired)
	}

	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if err := s.validate.Var(fullName, "required,max=100"); err != nil {
		return nil, nil, fmt.Errorf("[UserService] некорректное имя: %w", model.ErrValidation)
	}
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, nil, fmt.Errorf("[UserService] некорректный email: %w", model.ErrValidation)
	}

	user, err := s.userRepository.FindByEmail(ctx, email)
	switch {
	case err == nil:
		log.Printf("[UserService] пользователь %s уже существует, выдаём новый токен", email)
	case errors.Is(err, model.ErrNotFound):
		user, err = s.userRepository.CreateUser(ctx, &model.User{
			UUID:      uuid.New().String(),
			AccountID: uuid.New().String(),
			FullName:  fullName,
			Email:     email,
			Avatar:    model.DefaultAvatarURL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("[UserService] ошибка создания пользователя: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("[UserService] ошибка поиска пользователя: %w", err)
	}

	token, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, nil, util.LogError("[UserService] ошибка генерации токена", err)
	}

	return user, token, nil
}
