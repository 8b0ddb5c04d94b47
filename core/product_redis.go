package core

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	productHashKey  = "products"
	productIDSeqKey = "products:next_id"
)

// RedisProductRepository stores products as JSON documents in a Redis hash,
// keyed by an INCR-allocated ID.
type RedisProductRepository struct {
	client *redis.Client
}

func NewRedisProductRepository(client *redis.Client) *RedisProductRepository {
	return &RedisProductRepository{client: client}
}

func (r *RedisProductRepository) Add(ctx context.Context, name string, price float64, category string) (*Product, error) {
	id, err := r.client.Incr(ctx, productIDSeqKey).Result()
	if err != nil {
		return nil, err
	}

	p := Product{
		ID:        id,
		Name:      name,
		Price:     price,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
	doc, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	field := formatProductField(id)
	if err := r.client.HSet(ctx, productHashKey, field, doc).Err(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *RedisProductRepository) List(ctx context.Context) ([]Product, error) {
	docs, err := r.client.HVals(ctx, productHashKey).Result()
	if err != nil {
		return nil, err
	}

	items := make([]Product, 0, len(docs))
	for _, doc := range docs {
		var p Product
		if err := json.Unmarshal([]byte(doc), &p); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	// HVALS gives no ordering guarantee.
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func formatProductField(id int64) string {
	return "product:" + strconv.FormatInt(id, 10)
}
