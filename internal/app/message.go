package app

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// MessageSource supplies the optional footer message. An empty string means
// no message is available.
type MessageSource interface {
	Message(ctx context.Context) (string, error)
}

// StaticMessage is a message fixed at start-up.
type StaticMessage string

// Message returns the configured value.
func (m StaticMessage) Message(context.Context) (string, error) {
	return string(m), nil
}

const (
	messageCacheKey = "site:message"
	messageFetchTTL = 10 * time.Second
)

// CachedMessageSource memoizes another source for a TTL. Concurrent misses
// share a single upstream call and failures are never stored. The shared call
// runs detached from any single caller's context.
type CachedMessageSource struct {
	next  MessageSource
	ttl   time.Duration
	cache *gocache.Cache
	group singleflight.Group
}

// NewCachedMessageSource wraps next with a cache holding values for ttl.
func NewCachedMessageSource(next MessageSource, ttl time.Duration) *CachedMessageSource {
	return &CachedMessageSource{
		next:  next,
		ttl:   ttl,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Message returns the cached value or fetches a fresh one.
func (c *CachedMessageSource) Message(ctx context.Context) (string, error) {
	if val, found := c.cache.Get(messageCacheKey); found {
		return val.(string), nil
	}

	ch := c.group.DoChan(messageCacheKey, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), messageFetchTTL)
		defer cancel()

		msg, err := c.next.Message(fetchCtx)
		if err != nil {
			return "", err
		}
		c.cache.Set(messageCacheKey, msg, c.ttl)
		return msg, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Invalidate drops the cached value.
func (c *CachedMessageSource) Invalidate() {
	c.cache.Delete(messageCacheKey)
}
