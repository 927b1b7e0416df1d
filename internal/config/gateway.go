package config

type GatewayConfig struct {
	Address string `yaml:"addr"`
	Port    int    `yaml:"port"`
}

// Addr is where the tracker dials the gateway.
func (s *GatewayConfig) Addr() string {
	return s.Address
}

// ListenPort is where the gateway server listens.
func (s *GatewayConfig) ListenPort() int {
	return s.Port
}
