package config

const (
	CacheMemory    = "memory"
	CacheSqlite    = "sqlite"
	CacheMemcached = "memcached"
)

// CacheConfig selects where the local reactive cache persists its values.
type CacheConfig struct {
	StoreBackend string `yaml:"backend"`
	File         string `yaml:"path"`
}

func (s *CacheConfig) Backend() string {
	return s.StoreBackend
}

func (s *CacheConfig) Path() string {
	return s.File
}
