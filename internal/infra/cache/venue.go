// Package cache holds the redis cache-aside layer for the venue directory.
// Venues change rarely and never on the reservation paths, so a short TTL is
// safe; reservation and claim reads always go straight to postgres.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"campus-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const venueKeyPrefix = "venue:"

// CachedVenueReads wraps a VenueReads with redis. Cache failures degrade to
// the underlying store, never to an error for the caller.
type CachedVenueReads struct {
	inner shared.VenueReads
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedVenueReads(inner shared.VenueReads, rdb *redis.Client, ttl time.Duration) *CachedVenueReads {
	return &CachedVenueReads{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *CachedVenueReads) ByID(ctx context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	key := venueKeyPrefix + id.String()

	cached, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var snap shared.VenueSnapshot
		if unmarshalErr := json.Unmarshal(cached, &snap); unmarshalErr == nil {
			return &snap, nil
		}
		// Stale or corrupt entry; fall through and repopulate.
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("venue cache read failed", "key", key, "error", err)
	}

	snap, err := c.inner.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, marshalErr := json.Marshal(snap); marshalErr == nil {
		if setErr := c.rdb.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			slog.Warn("venue cache write failed", "key", key, "error", setErr)
		}
	}

	return snap, nil
}

// List stays uncached: it is an admin-facing directory read, not on the
// booking hot path.
func (c *CachedVenueReads) List(ctx context.Context) ([]*shared.VenueSnapshot, error) {
	return c.inner.List(ctx)
}
