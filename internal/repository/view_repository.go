package repository

import (
	"cloud-drive-server/config"
	"cloud-drive-server/internal/util"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// ViewChannel : канал, в который публикуются инвалидированные пути
const ViewChannel = "views:revalidate"

// ViewRepository : ревизии представлений в Redis. Каждая ревалидация увеличивает ревизию пути
// и публикует путь в ViewChannel для внешних кэшей.
type ViewRepository struct {
	client *config.RedisClient
}

func NewViewRepository(rdb *config.RedisClient) *ViewRepository {
	return &ViewRepository{rdb}
}

func (r *ViewRepository) Revalidate(ctx context.Context, path string) error {
	pipe := r.client.Client.TxPipeline()
	pipe.Incr(ctx, r.key(path))
	pipe.Publish(ctx, ViewChannel, path)
	if _, err := pipe.Exec(ctx); err != nil {
		return util.LogError("[ViewRepo] ошибка ревалидации представления", err)
	}
	return nil
}

// Revision : 0, если путь ещё ни разу не ревалидировался
func (r *ViewRepository) Revision(ctx context.Context, path string) (int64, error) {
	rev, err := r.client.Client.Get(ctx, r.key(path)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		return 0, util.LogError("[ViewRepo] ошибка получения ревизии из Redis", err)
	}
	return rev, nil
}

func (r *ViewRepository) key(path string) string {
	return fmt.Sprintf("view:%s:rev", path)
}

// LogRevalidator : используется, когда Redis не настроен
type LogRevalidator struct{}

func (LogRevalidator) Revalidate(_ context.Context, path string) error {
	log.Printf("[ViewRepo] ревалидация представления %s", path)
	return nil
}

func (LogRevalidator) Revision(context.Context, string) (int64, error) {
	return 0, nil
}
