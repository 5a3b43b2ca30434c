package requestresponse

import "cloud-drive-server/internal/model"

// CurrentUserResponse : информация о текущем пользователе
type CurrentUserResponse struct {
	Response *model.User `json:"response"`
}
