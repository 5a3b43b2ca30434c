package handler

import (
	"cloud-drive-server/config"
	"cloud-drive-server/internal/model"
	"cloud-drive-server/internal/model/requestresponse"
	"cloud-drive-server/internal/ports"
	"cloud-drive-server/internal/security"
	"cloud-drive-server/internal/util"
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// ViewRevisionHeader : ревизия представления path на момент ответа
const ViewRevisionHeader = "X-View-Revision"

type FileHandler struct {
	ports.FileService
	views    ports.ViewRevalidator
	cfg      *config.FilesConfig
	validate *validator.Validate
}

func NewFileHandler(fileService ports.FileService, views ports.ViewRevalidator, cfg *config.FilesConfig) *FileHandler {
	return &FileHandler{
		FileService: fileService,
		views:       views,
		cfg:         cfg,
		validate:    validator.New(),
	}
}

// ListFiles godoc
// @Summary Список файлов текущего аккаунта
// @Description Фильтр по категориям, поиск по имени, расширению, категории и имени владельца.
// При поиске total — количество совпадений, documents — первые limit из них.
// @Tags Files
// @Produce json
// @Param types query string false "Категории через запятую" example(document,image)
// @Param query query string false "Строка поиска"
// @Param sort query string false "$createdAt-desc (по умолчанию) или $createdAt-asc"
// @Param limit query int false "Размер страницы, по умолчанию 10"
// @Param path query string false "Путь представления для X-View-Revision"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListFilesResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/files [get]
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	types, err := parseCategories(query.Get("types"))
	if err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit, err := parseLimit(query.Get("limit"))
	if err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.renderList(w, r, model.ListFilesFilters{
		Types:      types,
		SearchText: query.Get("query"),
		Sort:       query.Get("sort"),
		Limit:      limit,
	})
}

// ListFilesByType godoc
// @Summary Страница категории
// @Description documents, images, media (video + audio), others; неизвестное значение — documents.
// Строка поиска учитывается только при files.typePageSearch = true.
// @Tags Files
// @Produce json
// @Param type path string true "documents | images | media | others"
// @Param query query string false "Строка поиска"
// @Param sort query string false "$createdAt-desc (по умолчанию) или $createdAt-asc"
// @Param limit query int false "Размер страницы"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListFilesResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/files/types/{type} [get]
func (h *FileHandler) ListFilesByType(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, err := parseLimit(query.Get("limit"))
	if err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}

	searchText := ""
	if h.cfg != nil && h.cfg.TypePageSearch {
		searchText = query.Get("query")
	}

	h.renderList(w, r, model.ListFilesFilters{
		Types:      util.FileTypesParams(chi.URLParam(r, "type")),
		SearchText: searchText,
		Sort:       query.Get("sort"),
		Limit:      limit,
	})
}

// renderList : ошибка чтения логируется, клиент получает пустой список со статусом 200
func (h *FileHandler) renderList(w http.ResponseWriter, r *http.Request, filters model.ListFilesFilters) {
	files, err := h.FileService.ListFiles(r.Context(), filters)
	if err != nil {
		log.Printf("[FileHandler] ошибка получения списка файлов: %v", err)
	}
	if files == nil {
		files = model.EmptyFileList()
	}

	h.setRevision(w, r)
	util.WriteJSON(w, http.StatusOK, requestresponse.ListFilesResponse{
		Total:     files.Total,
		Documents: files.Documents,
	})
}

// GetUsage godoc
// @Summary Использование хранилища
// @Description Размер и дата последнего изменения по каждой категории, used и квота all.
// @Tags Files
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UsageResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/files/usage [get]
func (h *FileHandler) GetUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := h.FileService.GetUsage(r.Context())
	if err != nil {
		log.Printf("[FileHandler] ошибка подсчёта использования хранилища: %v", err)
	}
	if usage == nil {
		usage = model.NewUsageSummary()
	}

	h.setRevision(w, r)
	util.WriteJSON(w, http.StatusOK, requestresponse.UsageResponse{Data: usage})
}

// UploadFile godoc
// @Summary Загрузка файла
// @Description Файл сохраняется в объектное хранилище, затем создаётся документ с метаданными.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл"
// @Param path formData string false "Путь представления для ревалидации"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.FileResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/files [post]
func (h *FileHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout())
	defer cancel()

	claims, err := security.GetClaimsFromContext(ctx)
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	if h.cfg != nil && h.cfg.UploadMaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.UploadMaxBytes)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		util.HandleError(w, "файл не найден в запросе", http.StatusBadRequest)
		return
	}
	defer file.Close()

	record, err := h.FileService.UploadFile(ctx, model.UploadFile{
		Name:    header.Filename,
		Size:    header.Size,
		Content: file,
	}, claims.UserUUID, claims.AccountID, r.FormValue("path"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, requestresponse.FileResponse{Data: record})
}

// DownloadFile godoc
// @Summary Скачивание файла
// @Description Доступно владельцу аккаунта и пользователям, с которыми файл расшарен.
// @Tags Files
// @Produce octet-stream
// @Param file_id path string true "UUID файла"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {file} file
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/files/{file_id}/download [get]
func (h *FileHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	file, stream, err := h.FileService.DownloadFile(r.Context(), chi.URLParam(r, "file_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Type", util.ContentType(file.Name))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	if size := file.Size.NonNegative(); size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, stream); err != nil {
		log.Printf("[FileHandler] ошибка отдачи файла %s: %v", file.UUID, err)
	}
}

// RenameFile godoc
// @Summary Переименование файла
// @Description Меняется только имя. extension принимается, но не сохраняется.
// @Tags Files
// @Accept json
// @Produce json
// @Param file_id path string true "UUID файла"
// @Param body body requestresponse.RenameFileRequest true "Новое имя"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.FileResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/files/{file_id} [patch]
func (h *FileHandler) RenameFile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout())
	defer cancel()

	var req requestresponse.RenameFileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	record, err := h.FileService.RenameFile(ctx, chi.URLParam(r, "file_id"), req.Name, req.Extension, req.Path)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.FileResponse{Data: record})
}

// ShareFile godoc
// @Summary Совместный доступ
// @Description Email добавляются к текущему списку пользователей файла без повторов.
// @Tags Files
// @Accept json
// @Produce json
// @Param file_id path string true "UUID файла"
// @Param body body requestresponse.ShareFileRequest true "Список email"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.FileResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/files/{file_id}/share [post]
func (h *FileHandler) ShareFile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout())
	defer cancel()

	var req requestresponse.ShareFileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		util.HandleError(w, "некорректный список email", http.StatusBadRequest)
		return
	}

	record, err := h.FileService.ShareFile(ctx, chi.URLParam(r, "file_id"), req.Emails, req.Path)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.FileResponse{Data: record})
}

// DeleteFile godoc
// @Summary Удаление файла
// @Description Сначала удаляется документ, затем объект в хранилище.
// @Tags Files
// @Produce json
// @Param file_id path string true "UUID файла"
// @Param bucket_file_id query string true "Идентификатор объекта в хранилище"
// @Param path query string false "Путь представления для ревалидации"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.FileResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/files/{file_id} [delete]
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout())
	defer cancel()

	query := r.URL.Query()
	record, err := h.FileService.DeleteFile(ctx, chi.URLParam(r, "file_id"), query.Get("bucket_file_id"), query.Get("path"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.FileResponse{Data: record})
}

func (h *FileHandler) timeout() time.Duration {
	if h.cfg == nil {
		return config.FilesConfig{}.Timeout()
	}
	return h.cfg.Timeout()
}

func (h *FileHandler) setRevision(w http.ResponseWriter, r *http.Request) {
	if h.views == nil {
		return
	}
	path := r.URL.Query().Get("path")
	if path == "" {
		path = r.URL.Path
	}
	rev, err := h.views.Revision(r.Context(), path)
	if err != nil {
		log.Printf("[FileHandler] не удалось получить ревизию %s: %v", path, err)
		return
	}
	w.Header().Set(ViewRevisionHeader, strconv.FormatInt(rev, 10))
}

func parseCategories(raw string) ([]model.Category, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var types []model.Category
	for _, part := range strings.Split(raw, ",") {
		category := model.Category(strings.ToLower(strings.TrimSpace(part)))
		if category == "" {
			continue
		}
		if !category.Valid() {
			return nil, fmt.Errorf("неизвестная категория %q", part)
		}
		types = append(types, category)
	}
	return types, nil
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("неверный формат limit")
	}
	return limit, nil
}
