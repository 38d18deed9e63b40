// Copyright 2014 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lru is a size bounded cache evicting the least recently used entry.
package lru

import (
	"container/list"
	"sync"
)

// Cache is an LRU cache safe for concurrent use.
type Cache[V any] struct {
	mu       sync.Mutex
	entries  map[string]*list.Element
	priority *list.List
	maxSize  int
}

type entry[V any] struct {
	key   string
	value V
}

// New creates a cache holding at most size entries.
func New[V any](size int) *Cache[V] {
	return &Cache[V]{
		maxSize:  size,
		priority: list.New(),
		entries:  make(map[string]*list.Element),
	}
}

// Put stores value under key, replacing an older value.
func (c *Cache[V]) Put(key string, value V) {
	if c.maxSize <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.Value = entry[V]{key: key, value: value}
		c.priority.MoveToFront(e)
		return
	}
	if len(c.entries) >= c.maxSize {
		last := c.priority.Remove(c.priority.Back()).(entry[V])
		delete(c.entries, last.key)
	}
	c.entries[key] = c.priority.PushFront(entry[V]{key: key, value: value})
}

// Del removes key from the cache.
func (c *Cache[V]) Del(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.priority.Remove(e)
	}
}

// Get returns the value stored under key and marks it as recently used.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		c.priority.MoveToFront(e)
		return e.Value.(entry[V]).value, true
	}
	var zero V
	return zero, false
}

// Len returns the number of entries.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
