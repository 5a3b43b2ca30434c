package util

import (
	"cloud-drive-server/internal/model"
	"mime"
	"path/filepath"
	"strings"
)

var (
	documentExtensions = setOf("pdf", "doc", "docx", "txt", "xls", "xlsx", "csv", "rtf", "ods", "ppt", "odp",
		"md", "html", "htm", "epub", "pages", "fig", "psd", "ai", "indd", "xd", "sketch", "afdesign", "afphoto")
	imageExtensions = setOf("jpg", "jpeg", "png", "gif", "bmp", "svg", "webp")
	videoExtensions = setOf("mp4", "avi", "mov", "mkv", "webm")
	audioExtensions = setOf("mp3", "wav", "ogg", "flac")
)

func setOf(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// GetFileType : категория по расширению после последней точки.
// Расширение возвращается в нижнем регистре, nil если его нет.
func GetFileType(filename string) (model.Category, *string) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return model.CategoryOther, nil
	}

	extension := strings.ToLower(filename[idx+1:])

	switch {
	case contains(documentExtensions, extension):
		return model.CategoryDocument, &extension
	case contains(imageExtensions, extension):
		return model.CategoryImage, &extension
	case contains(videoExtensions, extension):
		return model.CategoryVideo, &extension
	case contains(audioExtensions, extension):
		return model.CategoryAudio, &extension
	default:
		return model.CategoryOther, &extension
	}
}

func contains(set map[string]struct{}, value string) bool {
	_, ok := set[value]
	return ok
}

// FileTypesParams : категории для страницы /{type}
func FileTypesParams(routeType string) []model.Category {
	switch strings.ToLower(routeType) {
	case "documents":
		return []model.Category{model.CategoryDocument}
	case "images":
		return []model.Category{model.CategoryImage}
	case "media":
		return []model.Category{model.CategoryVideo, model.CategoryAudio}
	case "others":
		return []model.Category{model.CategoryOther}
	default:
		return []model.Category{model.CategoryDocument}
	}
}

// ContentType : MIME type для загрузки в хранилище
func ContentType(filename string) string {
	if contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}
