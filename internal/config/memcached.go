package config

type MemcachedConfig struct {
	NodeHosts []string `yaml:"hosts"`
	Prefix    string   `yaml:"key-prefix"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

func (s *MemcachedConfig) KeyPrefix() string {
	if s.Prefix == "" {
		return "expense-tracker"
	}
	return s.Prefix
}
