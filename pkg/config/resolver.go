package config

import (
	"fmt"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/siyuan-infoblox/import-group-ordering/pkg/errors"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/utils"
)

const resolverCacheSize = 1024

// Resolver finds the configuration of source files. It is safe for concurrent use.
type Resolver struct {
	explicit  string // config file forced for every source file
	overrides Overrides
	cache     *lru.Cache[cacheKey, Config]
}

// cacheKey is a directory, or the explicit config path, and the file language
type cacheKey struct {
	dir string
	js  bool
}

// NewResolver creates a resolver. When explicit is set, that file configures every
// source file and no lookup happens.
func NewResolver(explicit string, overrides Overrides) (*Resolver, error) {
	cache, err := lru.New[cacheKey, Config](resolverCacheSize)
	if err != nil {
		return nil, err
	}
	return &Resolver{explicit: explicit, overrides: overrides, cache: cache}, nil
}

// ForFile returns the effective configuration of the source file at path
func (r *Resolver) ForFile(path string) (Config, error) {
	cfg, err := r.fileConfig(path)
	if err != nil {
		return Config{}, err
	}
	cfg.Options = r.overrides.Apply(cfg.Options)
	return cfg, nil
}

func (r *Resolver) fileConfig(path string) (Config, error) {
	key := cacheKey{dir: r.explicit, js: utils.IsJSFile(path)}
	if key.dir == "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", errors.ErrMsgFailedToResolveConfig, err)
		}
		key.dir = filepath.Dir(abs)
	}
	if cfg, ok := r.cache.Get(key); ok {
		return cfg, nil
	}

	cfg, err := r.lookup(key)
	if err != nil {
		return Config{}, err
	}
	r.cache.Add(key, cfg)
	return cfg, nil
}

func (r *Resolver) lookup(key cacheKey) (Config, error) {
	if r.explicit != "" {
		return Load(r.explicit, key.js)
	}
	configPath, ok, err := utils.FindUp(key.dir, FileNames...)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", errors.ErrMsgFailedToResolveConfig, err)
	}
	if !ok {
		return Default(), nil
	}
	return Load(configPath, key.js)
}
