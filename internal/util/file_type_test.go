package util_test

import (
	"cloud-drive-server/internal/model"
	"cloud-drive-server/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFileType(t *testing.T) {
	tests := []struct {
		filename          string
		expectedCategory  model.Category
		expectedExtension string
		noExtension       bool
	}{
		{filename: "Report.pdf", expectedCategory: model.CategoryDocument, expectedExtension: "pdf"},
		{filename: "Q1 report.DOCX", expectedCategory: model.CategoryDocument, expectedExtension: "docx"},
		{filename: "photo.png", expectedCategory: model.CategoryImage, expectedExtension: "png"},
		{filename: "archive.tar.JPEG", expectedCategory: model.CategoryImage, expectedExtension: "jpeg"},
		{filename: "clip.mkv", expectedCategory: model.CategoryVideo, expectedExtension: "mkv"},
		{filename: "song.flac", expectedCategory: model.CategoryAudio, expectedExtension: "flac"},
		{filename: "backup.zip", expectedCategory: model.CategoryOther, expectedExtension: "zip"},
		{filename: "Makefile", expectedCategory: model.CategoryOther, noExtension: true},
		{filename: "trailing.", expectedCategory: model.CategoryOther, noExtension: true},
		{filename: "", expectedCategory: model.CategoryOther, noExtension: true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			category, extension := util.GetFileType(tt.filename)
			assert.Equal(t, tt.expectedCategory, category)
			if tt.noExtension {
				assert.Nil(t, extension)
				return
			}
			require.NotNil(t, extension)
			assert.Equal(t, tt.expectedExtension, *extension)
		})
	}
}

func TestGetFileType_Deterministic(t *testing.T) {
	for _, name := range []string{"a.pdf", "b.mp3", "c", "d.unknown"} {
		firstCategory, firstExt := util.GetFileType(name)
		secondCategory, secondExt := util.GetFileType(name)
		assert.Equal(t, firstCategory, secondCategory)
		assert.Equal(t, firstExt, secondExt)
	}
}

func TestFileTypesParams(t *testing.T) {
	assert.Equal(t, []model.Category{model.CategoryDocument}, util.FileTypesParams("documents"))
	assert.Equal(t, []model.Category{model.CategoryImage}, util.FileTypesParams("images"))
	assert.Equal(t, []model.Category{model.CategoryVideo, model.CategoryAudio}, util.FileTypesParams("media"))
	assert.Equal(t, []model.Category{model.CategoryOther}, util.FileTypesParams("others"))
	assert.Equal(t, []model.Category{model.CategoryDocument}, util.FileTypesParams("whatever"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", util.ContentType("Report.PDF"))
	assert.Equal(t, "application/octet-stream", util.ContentType("noext"))
}
