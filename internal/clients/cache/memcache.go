package cache

import (
	"context"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

type MemcacheClient struct {
	client *memcache.Client
	prefix string
}

type config interface {
	Hosts() []string
	KeyPrefix() string
}

// NewMemcache connects a kv.Store to memcached. Keys are namespaced by the
// configured prefix so several devices can share one memcached.
func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{client: mc, prefix: config.KeyPrefix()}, mc.Ping()
}

func (mc *MemcacheClient) formatKey(key string) string {
	return mc.prefix + ":" + key
}

func (mc *MemcacheClient) Get(_ context.Context, key string) ([]byte, bool, error) {
	item, err := mc.client.Get(mc.formatKey(key))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "memcache get")
	}
	return item.Value, true, nil
}

func (mc *MemcacheClient) Set(_ context.Context, key string, value []byte) error {
	err := mc.client.Set(&memcache.Item{
		Key:   mc.formatKey(key),
		Value: value,
	})
	return errors.Wrap(err, "memcache set")
}

func (mc *MemcacheClient) Delete(_ context.Context, key string) error {
	err := mc.client.Delete(mc.formatKey(key))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return errors.Wrap(err, "memcache delete")
	}
	return nil
}
