package config

import (
	"time"

	"github.com/pkg/errors"
)

const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

type AppConfig struct {
	DataBackend  string        `yaml:"backend"`
	Language     string        `yaml:"locale"`
	Zone         string        `yaml:"timezone"`
	ToastTimeout time.Duration `yaml:"toast-timeout"`
	DeviceName   string        `yaml:"device"`
}

func (s *AppConfig) Backend() string {
	return s.DataBackend
}

func (s *AppConfig) Locale() string {
	return s.Language
}

// Location resolves the configured timezone used for period windows.
func (s *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Zone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", s.Zone)
	}
	return loc, nil
}

func (s *AppConfig) DefaultToastTimeout() time.Duration {
	return s.ToastTimeout
}

func (s *AppConfig) Device() string {
	return s.DeviceName
}
