// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/logger"
)

const fileSuffix = ".kv"

// fileStorage stores one file per key inside dir. A write goes to a temp
// file in the same directory, is synced and then renamed over the previous
// file, so a failed write leaves the old value intact. The directory is
// synced after the rename so the new entry survives a crash.
type fileStorage struct {
	dir     string
	quota   int64
	logger  *logger.Logger
	syncDir func(dir string) error

	mu sync.Mutex
}

// NewFileStorage creates a file-backed [Persistence] rooted at dir. The
// directory is created with 0700 permissions if missing. quota <= 0
// disables the size limit.
func NewFileStorage(dir string, quota int64, log *logger.Logger) (Persistence, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.Err(err).Str("func", "NewFileStorage").Str("dir", dir).Msg("error creating storage directory")
		return nil, fmt.Errorf("%w: create storage dir: %w", ErrStorageUnavailable, err)
	}

	return &fileStorage{dir: dir, quota: quota, logger: log, syncDir: syncDir}, nil
}

func (s *fileStorage) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("%w: read %q: %w", ErrStorageUnavailable, key, err)
	}

	return string(data), nil
}

func (s *fileStorage) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quota > 0 {
		used, err := s.usageExcluding(key)
		if err != nil {
			return err
		}
		if used+int64(len(value)) > s.quota {
			return ErrQuotaExceeded
		}
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return classifyFileError("create temp file", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err = tmp.WriteString(value); err != nil {
		tmp.Close()
		return classifyFileError("write temp file", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return classifyFileError("sync temp file", err)
	}
	if err = tmp.Close(); err != nil {
		return classifyFileError("close temp file", err)
	}
	if err = os.Rename(tmpName, s.path(key)); err != nil {
		return classifyFileError("replace value file", err)
	}
	if err = s.syncDir(s.dir); err != nil {
		return classifyFileError("sync storage dir", err)
	}

	s.logger.Debug().Str("func", "fileStorage.Set").Str("key", key).Int("bytes", len(value)).Msg("value written")
	return nil
}

func (s *fileStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: remove %q: %w", ErrStorageUnavailable, key, err)
	}
	return nil
}

func (s *fileStorage) Close() error {
	return nil
}

func (s *fileStorage) path(key string) string {
	return filepath.Join(s.dir, hex.EncodeToString([]byte(key))+fileSuffix)
}

// usageExcluding sums the sizes of all stored values except the one under
// key, which is about to be replaced.
func (s *fileStorage) usageExcluding(key string) (int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("%w: list storage dir: %w", ErrStorageUnavailable, err)
	}

	skip := filepath.Base(s.path(key))
	var used int64
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileSuffix) || e.Name() == skip {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		used += info.Size()
	}
	return used, nil
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	if err = d.Sync(); err != nil {
		d.Close()
		return err
	}
	return d.Close()
}

func classifyFileError(op string, err error) error {
	if errors.Is(err, syscall.ENOSPC) || errors.Is(err, syscall.EDQUOT) {
		return fmt.Errorf("%w: %s: %w", ErrQuotaExceeded, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}
