package requestresponse

import "cloud-drive-server/internal/model"

// RenameFileRequest : extension принимается, но не сохраняется
type RenameFileRequest struct {
	Name      string `json:"name" example:"report-final" validate:"required,max=255"`
	Extension string `json:"extension" example:"pdf"`
	Path      string `json:"path" example:"/documents"`
}

// ShareFileRequest : список email для совместного доступа
type ShareFileRequest struct {
	Emails []string `json:"emails" example:"user1@example.com,user2@example.com" validate:"required,min=1,dive,required,email"`
	Path   string   `json:"path" example:"/documents"`
}

// FileResponse : ответ с одним документом
type FileResponse struct {
	Data *model.FileRecord `json:"data"`
}

// ListFilesResponse : total — количество совпадений, documents — текущая страница
type ListFilesResponse struct {
	Total     int                `json:"total" example:"2"`
	Documents []model.FileRecord `json:"documents"`
}

// UsageResponse : суммарное использование хранилища
type UsageResponse struct {
	Data *model.UsageSummary `json:"data"`
}
