package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/allegro/bigcache/v3"

	"github.com/katalvlaran/mstrace/internal/config"
)

// traceMemo caches serialized trace results. Traces are deterministic, so a
// key derived from the canonical request is enough.
type traceMemo struct {
	cache *bigcache.BigCache
}

// newTraceMemo returns nil when caching is disabled.
func newTraceMemo(cfg config.CacheConfig) (*traceMemo, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	bc := bigcache.DefaultConfig(cfg.TTL)
	bc.HardMaxCacheSize = cfg.MaxMB
	bc.CleanWindow = cfg.TTL
	bc.Verbose = false

	cache, err := bigcache.New(context.Background(), bc)
	if err != nil {
		return nil, fmt.Errorf("server: init cache: %w", err)
	}

	return &traceMemo{cache: cache}, nil
}

// memoKey hashes the canonical JSON of v.
func memoKey(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:]), nil
}

// get decodes a cached value into out; ok is false on a miss and on an entry
// that no longer decodes, so the caller rebuilds it.
func (m *traceMemo) get(key string, out any) (bool, error) {
	if m == nil {
		return false, nil
	}
	data, err := m.cache.Get(key)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("server: decode memo entry: %w", err)
	}

	return true, nil
}

func (m *traceMemo) set(key string, v any) error {
	if m == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return m.cache.Set(key, data)
}

func (m *traceMemo) close() error {
	if m == nil {
		return nil
	}

	return m.cache.Close()
}
