// Package msgcache is a TTL-aware in-memory cache of decoded DNS responses
// using an LRU eviction strategy, keyed by question name, type, and class.
package msgcache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// entry pairs a cached response with its expiry instant.
type entry struct {
	msg       domain.Message
	expiresAt time.Time
}

// Cache stores decoded responses until the smallest TTL of their answers
// has elapsed or the LRU evicts them.
type Cache struct {
	lru *lru.Cache[string, entry]
}

// New returns a Cache holding up to size question keys.
func New(size int) (*Cache, error) {
	backing, err := lru.New[string, entry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: backing}, nil
}

// Set stores a response under key for the given lifetime. Non-positive
// lifetimes are ignored.
func (c *Cache) Set(key string, m domain.Message, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.lru.Add(key, entry{msg: m, expiresAt: time.Now().Add(ttl)})
}

// Get retrieves the response for key if present and not expired. Expired
// entries are removed on access.
func (c *Cache) Get(key string) (domain.Message, bool) {
	e, found := c.lru.Get(key)
	if !found {
		return domain.Message{}, false
	}
	if time.Now().After(e.expiresAt) {
		c.lru.Remove(key)
		return domain.Message{}, false
	}
	return e.msg, true
}

// Len returns the number of question keys currently stored.
func (c *Cache) Len() int {
	return c.lru.Len()
}
