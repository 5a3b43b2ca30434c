package security

import (
	"cloud-drive-server/config"
	"cloud-drive-server/internal/model"
	"cloud-drive-server/internal/util"
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UserContextKey contextKey = "user"

	defaultAccessTokenTTL = 7 * 24 * time.Hour
)

type Claims struct {
	UserUUID  string `json:"user_uuid"`
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	*config.JWTConfig
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg}
}

func (service *JWTService) GenerateAccessToken(user *model.User) (*model.AccessToken, error) {
	ttl := defaultAccessTokenTTL
	if service.AccessTokenTTL != "" {
		parsed, err := time.ParseDuration(service.AccessTokenTTL)
		if err != nil {
			return nil, util.LogError("ошибка парсинга", err)
		}
		ttl = parsed
	}

	issuer := service.Issuer
	if issuer == "" {
		issuer = "cloud-drive-server"
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := Claims{
		UserUUID:  user.UUID,
		AccountID: user.AccountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.AccountID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	accessToken, err := jwtToken.SignedString([]byte(service.SecretKey))
	if err != nil {
		return nil, util.LogError("ошибка подписи токена", err)
	}

	return &model.AccessToken{
		Token:     accessToken,
		ExpiresAt: expiresAt,
	}, nil
}

func (service *JWTService) ValidateJWT(jwtTokenStr string) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return []byte(service.SecretKey), nil
	})

	if err != nil || jwtToken.Valid == false {
		return nil, util.LogError("невалидный токен", err)
	}

	if claims.AccountID == "" {
		return nil, fmt.Errorf("невалидный токен: нет account_id")
	}

	return claims, nil
}

func JWTMiddleware(jwtService *JWTService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(jwtService, next))
	}
}

func handleAuthentication(jwtService *JWTService, next http.Handler) func(writer http.ResponseWriter, request *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		authorizationHeader := request.Header.Get("Authorization")
		if !strings.HasPrefix(authorizationHeader, "Bearer ") {
			util.HandleError(writer, "пользователь не авторизован", http.StatusUnauthorized)
			return
		}

		token := strings.TrimPrefix(authorizationHeader, "Bearer ")

		claims, err := jwtService.ValidateJWT(token)
		if err != nil {
			log.Printf("невалидный токен: %v", err)
			util.HandleError(writer, "невалидный токен", http.StatusUnauthorized)
			return
		}

		req := request.WithContext(WithClaims(request.Context(), claims))
		next.ServeHTTP(writer, req)
	}
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, UserContextKey, claims)
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("%w", model.ErrAuthenticationRequired)
	}
	return claims, nil
}
