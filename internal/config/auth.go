package config

import "time"

type AuthConfig struct {
	Secret          string        `yaml:"jwt-secret"`
	Iss             string        `yaml:"issuer"`
	Access          time.Duration `yaml:"access-ttl"`
	Refresh         time.Duration `yaml:"refresh-ttl"`
	Cost            int           `yaml:"bcrypt-cost"`
	RefreshEvery    time.Duration `yaml:"refresh-interval"`
	RefreshBeforeBy time.Duration `yaml:"refresh-margin"`
}

func (s *AuthConfig) JWTSecret() string {
	return s.Secret
}

func (s *AuthConfig) Issuer() string {
	return s.Iss
}

func (s *AuthConfig) AccessTTL() time.Duration {
	return s.Access
}

func (s *AuthConfig) RefreshTTL() time.Duration {
	return s.Refresh
}

func (s *AuthConfig) BcryptCost() int {
	return s.Cost
}

func (s *AuthConfig) RefreshInterval() time.Duration {
	return s.RefreshEvery
}

func (s *AuthConfig) RefreshMargin() time.Duration {
	return s.RefreshBeforeBy
}
