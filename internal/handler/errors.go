package handler

import (
	"cloud-drive-server/internal/model"
	"cloud-drive-server/internal/util"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// writeServiceError : sentinel-ошибки сервисов переводятся в HTTP-статусы
func writeServiceError(w http.ResponseWriter, err error) {
	log.Println(err)
	switch {
	case errors.Is(err, model.ErrAuthenticationRequired):
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
	case errors.Is(err, model.ErrValidation):
		util.HandleError(w, "некорректные данные запроса", http.StatusBadRequest)
	case errors.Is(err, model.ErrNotFound):
		util.HandleError(w, "файл не найден", http.StatusNotFound)
	case errors.Is(err, model.ErrPartialFailure):
		util.HandleError(w, "операция выполнена частично", http.StatusInternalServerError)
	default:
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		util.HandleError(w, "некорректный JSON", http.StatusBadRequest)
		return err
	}
	return nil
}
