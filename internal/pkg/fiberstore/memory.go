package fiberstore

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
)

// Memory is a process-local fiber.Storage backed by go-cache. Expired entries are evicted by
// go-cache's janitor.
type Memory struct {
	c *cache.Cache
}

// Memory implements fiber.Storage
var _ fiber.Storage = &Memory{}

func NewMemory(cleanupInterval time.Duration) *Memory {
	return &Memory{
		c: cache.New(cache.NoExpiration, cleanupInterval),
	}
}

// Close implements fiber.Storage
func (m *Memory) Close() error {
	m.c.Flush()
	return nil
}

// Delete implements fiber.Storage
func (m *Memory) Delete(key string) error {
	m.c.Delete(key)
	return nil
}

// Get implements fiber.Storage. A missing key yields nil, nil.
func (m *Memory) Get(key string) ([]byte, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, nil
	}
	return v.([]byte), nil
}

// Reset implements fiber.Storage
func (m *Memory) Reset() error {
	m.c.Flush()
	return nil
}

// Set implements fiber.Storage. A zero exp keeps the entry until it is deleted.
func (m *Memory) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	if exp <= 0 {
		exp = cache.NoExpiration
	}
	// fiber may reuse val's backing array after Set returns
	b := make([]byte, len(val))
	copy(b, val)
	m.c.Set(key, b, exp)
	return nil
}
