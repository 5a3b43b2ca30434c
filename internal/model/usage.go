package model

import "time"

// StorageQuotaBytes : фиксированная квота 2 GiB, не связана с реальными лимитами хранилища
const StorageQuotaBytes int64 = 2 * 1024 * 1024 * 1024

type CategoryUsage struct {
	Size       int64      `json:"size"`
	LatestDate *time.Time `json:"latestDate"`
}

// UsageSummary : пересчитывается на каждый запрос
type UsageSummary struct {
	Image    CategoryUsage `json:"image"`
	Document CategoryUsage `json:"document"`
	Video    CategoryUsage `json:"video"`
	Audio    CategoryUsage `json:"audio"`
	Other    CategoryUsage `json:"other"`
	Used     int64         `json:"used"`
	All      int64         `json:"all"`
}

func NewUsageSummary() *UsageSummary {
	return &UsageSummary{All: StorageQuotaBytes}
}

// Bucket : неизвестная категория попадает в Other
func (u *UsageSummary) Bucket(c Category) *CategoryUsage {
	switch c {
	case CategoryImage:
		return &u.Image
	case CategoryDocument:
		return &u.Document
	case CategoryVideo:
		return &u.Video
	case CategoryAudio:
		return &u.Audio
	default:
		return &u.Other
	}
}

func (u *UsageSummary) CategoriesTotal() int64 {
	var total int64
	for _, c := range Categories {
		total += u.Bucket(c).Size
	}
	return total
}
