package requestresponse

import "cloud-drive-server/internal/model"

// RegisterRequest : тело запроса регистрации, token — токен администратора
type RegisterRequest struct {
	Token    string `json:"token" example:"fixed_admin_token" validate:"required"`
	FullName string `json:"fullName" example:"Ivan Petrov" validate:"required,max=100"`
	Email    string `json:"email" example:"ivan@example.com" validate:"required,email"`
}

// RegisterResponse : успешный ответ
type RegisterResponse struct {
	Response RegisterData `json:"response"`
}

type RegisterData struct {
	User        *model.User        `json:"user"`
	AccessToken *model.AccessToken `json:"token"`
}

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Error   string `json:"error" example:"Bad Request"`
	Message string `json:"message" example:"имя файла не может быть пустым"`
	Code    int    `json:"code" example:"400"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse = ErrorDetail
