package handler

import (
	"cloud-drive-server/internal/model/requestresponse"
	"cloud-drive-server/internal/ports"
	"cloud-drive-server/internal/util"
	"net/http"
)

type AuthenticationHandler struct {
	ports.IdentityResolver
}

func NewAuthenticationHandler(identityResolver ports.IdentityResolver) *AuthenticationHandler {
	return &AuthenticationHandler{identityResolver}
}

// Me godoc
// @Summary Текущий пользователь
// @Description Профиль пользователя, которому выдан access токен.
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CurrentUserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthenticationHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.IdentityResolver.CurrentUser(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.CurrentUserResponse{Response: user})
}
