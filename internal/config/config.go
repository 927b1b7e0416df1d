package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFile    = "data/config.yaml"
	configFileEnv = "CONFIG_FILE"
)

type config struct {
	App       AppConfig       `yaml:"app"`
	Gateway   GatewayConfig   `yaml:"gateway"`
	Auth      AuthConfig      `yaml:"auth"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Cache     CacheConfig     `yaml:"cache"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type Service struct {
	config config
}

// New reads data/config.yaml, or the file named by CONFIG_FILE.
func New() (*Service, error) {
	path := configFile
	if env := os.Getenv(configFileEnv); env != "" {
		path = env
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{config: defaults()}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	if err = s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			DataBackend:  BackendLocal,
			Language:     "en",
			Zone:         "Local",
			ToastTimeout: 5 * time.Second,
			DeviceName:   "default",
		},
		Gateway: GatewayConfig{
			Address: "127.0.0.1:9090",
			Port:    9090,
		},
		Auth: AuthConfig{
			Iss:             "expense-tracker",
			Access:          time.Hour,
			Refresh:         30 * 24 * time.Hour,
			Cost:            10,
			RefreshEvery:    time.Minute,
			RefreshBeforeBy: 5 * time.Minute,
		},
		Cache: CacheConfig{
			StoreBackend: CacheMemory,
			File:         "data/cache.db",
		},
		Kafka: KafkaConfig{
			Topic:    "expense-changes",
			Consumer: "expense-tracker",
		},
		Tracing: TracingConfig{
			Service: "expense-tracker",
		},
	}
}

func (s *Service) validate() error {
	switch s.config.App.DataBackend {
	case BackendLocal, BackendRemote:
	default:
		return errors.Errorf("unknown app backend %q", s.config.App.DataBackend)
	}
	switch s.config.Cache.StoreBackend {
	case CacheMemory, CacheSqlite, CacheMemcached:
	default:
		return errors.Errorf("unknown cache backend %q", s.config.Cache.StoreBackend)
	}
	if _, err := s.config.App.Location(); err != nil {
		return err
	}
	return nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Gateway() *GatewayConfig {
	return &s.config.Gateway
}

func (s *Service) Auth() *AuthConfig {
	return &s.config.Auth
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Cache() *CacheConfig {
	return &s.config.Cache
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
