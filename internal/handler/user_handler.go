package handler

import (
	"cloud-drive-server/internal/model/requestresponse"
	"cloud-drive-server/internal/ports"
	"cloud-drive-server/internal/util"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	ports.UserService
	validate *validator.Validate
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService, validator.New()}
}

// RegisterUser godoc
// @Summary Регистрация нового пользователя
// @Description Создаёт пользователя (или находит существующего по email) и выдаёт access токен. Требуется токен администратора из config.yaml (admin.admin_token).
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 200 {object} requestresponse.RegisterResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		util.HandleError(w, "token, fullName и email обязательны", http.StatusBadRequest)
		return
	}

	user, token, err := h.UserService.Register(r.Context(), req.Token, req.FullName, req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.RegisterResponse{
		Response: requestresponse.RegisterData{
			User:        user,
			AccessToken: token,
		},
	})
}
