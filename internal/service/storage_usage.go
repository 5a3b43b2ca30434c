package service

import (
	"cloud-drive-server/internal/model"
	"context"
	"fmt"
	"log"
)

// GetUsage : использование хранилища по категориям. При ошибке возвращается нулевая сводка с квотой.
func (s *FileService) GetUsage(ctx context.Context) (*model.UsageSummary, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		observe("usage", err)
		return model.NewUsageSummary(), err
	}

	files, err := s.documents.ListDocuments(ctx, model.Equal(model.AttributeAccountID, user.AccountID))
	if err != nil {
		observe("usage", err)
		return model.NewUsageSummary(), fmt.Errorf("[FileService] не удалось получить файлы аккаунта: %w", err)
	}

	records := make([]*model.FileRecord, 0, len(files.Documents))
	for i := range files.Documents {
		records = append(records, &files.Documents[i])
	}

	summary, skipped := AggregateUsage(records)
	for _, skipErr := range skipped {
		log.Printf("[FileService] запись пропущена при подсчёте: %v", skipErr)
	}

	observe("usage", nil)
	return summary, nil
}

// AggregateUsage : размер каждой записи добавляется в её категорию и в used.
// latestDate категории — самый поздний updatedAt. Битые записи пропускаются и возвращаются как ошибки.
func AggregateUsage(files []*model.FileRecord) (*model.UsageSummary, []error) {
	summary := model.NewUsageSummary()
	var skipped []error

	for i, file := range files {
		if file == nil {
			skipped = append(skipped, fmt.Errorf("запись %d: пустой документ: %w", i, model.ErrValidation))
			continue
		}

		size := file.Size.NonNegative()
		bucket := summary.Bucket(model.ParseCategory(string(file.Type)))
		bucket.Size += size
		summary.Used += size

		if file.UpdatedAt.IsZero() {
			continue
		}
		if bucket.LatestDate == nil || file.UpdatedAt.After(*bucket.LatestDate) {
			updatedAt := file.UpdatedAt
			bucket.LatestDate = &updatedAt
		}
	}

	return summary, skipped
}
