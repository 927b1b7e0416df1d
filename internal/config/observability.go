package config

type MetricsConfig struct {
	Address string `yaml:"addr"`
}

// Addr of the prometheus endpoint, "" disables it.
func (s *MetricsConfig) Addr() string {
	return s.Address
}

type TracingConfig struct {
	Enable  bool   `yaml:"enabled"`
	Service string `yaml:"service"`
}

func (s *TracingConfig) Enabled() bool {
	return s.Enable
}

func (s *TracingConfig) ServiceName() string {
	return s.Service
}
