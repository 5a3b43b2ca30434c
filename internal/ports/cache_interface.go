package ports

import "context"

// ViewRevalidator : внешний слой кэширования представлений, path — инвалидируемое представление
type ViewRevalidator interface {
	Revalidate(ctx context.Context, path string) error
	Revision(ctx context.Context, path string) (int64, error)
}
