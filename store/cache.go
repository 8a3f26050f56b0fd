package store

import (
	"slices"
)

type cacheEntry struct {
	value   []byte
	deleted bool
}

// CacheStore buffers writes and deletes on top of a parent store. Reads fall through
// to the parent for keys the cache has not touched. Nothing reaches the parent unless
// Write is called.
type CacheStore struct {
	parent  KVStore
	entries map[string]cacheEntry
}

var _ KVStore = (*CacheStore)(nil)

// NewCacheStore wraps parent in a fresh, empty overlay.
func NewCacheStore(parent KVStore) *CacheStore {
	return &CacheStore{
		parent:  parent,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the value for key, or nil if it does not exist.
func (c *CacheStore) Get(key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrKeyEmpty
	}

	if e, ok := c.entries[string(key)]; ok {
		if e.deleted {
			return nil, nil
		}

		return slices.Clone(e.value), nil
	}

	// parents may hand out their own backing slice
	v, err := c.parent.Get(key)
	if err != nil {
		return nil, err
	}

	return slices.Clone(v), nil
}

// Has reports whether key exists.
func (c *CacheStore) Has(key []byte) (bool, error) {
	if len(key) == 0 {
		return false, ErrKeyEmpty
	}

	if e, ok := c.entries[string(key)]; ok {
		return !e.deleted, nil
	}

	return c.parent.Has(key)
}

// Set buffers a write.
func (c *CacheStore) Set(key, value []byte) error {
	if len(key) == 0 {
		return ErrKeyEmpty
	}
	if value == nil {
		return ErrValueNil
	}

	c.entries[string(key)] = cacheEntry{value: slices.Clone(value)}

	return nil
}

// Delete buffers a delete.
func (c *CacheStore) Delete(key []byte) error {
	if len(key) == 0 {
		return ErrKeyEmpty
	}

	c.entries[string(key)] = cacheEntry{deleted: true}

	return nil
}

// Dirty returns the number of keys touched since the last Write or Discard.
func (c *CacheStore) Dirty() int {
	return len(c.entries)
}

// Write flushes the buffered changes to the parent in key order and resets the cache.
// It stops at the first parent error and keeps its entries; changes already applied to
// the parent are not undone.
func (c *CacheStore) Write() error {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		e := c.entries[k]
		var err error
		if e.deleted {
			err = c.parent.Delete([]byte(k))
		} else {
			err = c.parent.Set([]byte(k), e.value)
		}
		if err != nil {
			return err
		}
	}

	c.Discard()

	return nil
}

// Discard drops every buffered change.
func (c *CacheStore) Discard() {
	clear(c.entries)
}
