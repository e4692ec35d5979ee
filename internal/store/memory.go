// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

// memoryStorage keeps values in a map for the lifetime of the process. It
// is used by tests and by the "memory" driver. An optional quota emulates
// the per-origin limit of browser storage: the sum of key and value lengths
// may not exceed it.
type memoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
	quota int64
	used  int64
}

// NewMemoryStorage creates an empty in-memory [Persistence]. quota <= 0
// disables the size limit.
func NewMemoryStorage(quota int64) Persistence {
	return &memoryStorage{
		items: make(map[string]string),
		quota: quota,
	}
}

func (s *memoryStorage) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (s *memoryStorage) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	used := s.used + entrySize(key, value)
	if old, ok := s.items[key]; ok {
		used -= entrySize(key, old)
	}
	if s.quota > 0 && used > s.quota {
		return ErrQuotaExceeded
	}

	s.items[key] = value
	s.used = used
	return nil
}

func (s *memoryStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.items[key]; ok {
		s.used -= entrySize(key, old)
		delete(s.items, key)
	}
	return nil
}

func (s *memoryStorage) Close() error {
	return nil
}

func entrySize(key, value string) int64 {
	return int64(len(key) + len(value))
}
