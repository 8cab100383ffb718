package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"liveCrime/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// TicketCache keeps the first page of the admin ticket listing hot.
// It is invalidated on every ticket creation.
type TicketCache struct {
	client *goredis.Client
	key    string
}

func NewTicketCache(r *Redis) *TicketCache {
	return &TicketCache{
		client: r.Client,
		key:    "tickets:recent",
	}
}

func (c *TicketCache) GetRecent(ctx context.Context) (*domain.ListTicketsResponse, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var resp domain.ListTicketsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *TicketCache) SetRecent(ctx context.Context, resp *domain.ListTicketsResponse, ttl time.Duration) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *TicketCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
