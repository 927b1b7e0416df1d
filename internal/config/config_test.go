package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnParseEmpty_ShouldApplyDefaults(t *testing.T) {
	conf, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, BackendLocal, conf.App().Backend())
	assert.Equal(t, "en", conf.App().Locale())
	assert.Equal(t, 5*time.Second, conf.App().DefaultToastTimeout())
	assert.Equal(t, CacheMemory, conf.Cache().Backend())
	assert.False(t, conf.Kafka().Enabled())
	assert.Equal(t, "expense-tracker", conf.Memcached().KeyPrefix())
}

func Test_OnParse_ShouldReadSections(t *testing.T) {
	raw := `
app:
  backend: remote
  locale: zh-CN
  timezone: Asia/Shanghai
  toast-timeout: 3s
  device: laptop
gateway:
  addr: gateway:9090
auth:
  jwt-secret: s3cret
  access-ttl: 15m
kafka:
  brokers: [kafka:9092]
  changes-topic: changes
postgres:
  host: db
  db: expenses
`
	conf, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, BackendRemote, conf.App().Backend())
	assert.Equal(t, "zh-CN", conf.App().Locale())
	assert.Equal(t, 3*time.Second, conf.App().DefaultToastTimeout())
	assert.Equal(t, "laptop", conf.App().Device())
	loc, err := conf.App().Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Shanghai", loc.String())
	assert.Equal(t, "gateway:9090", conf.Gateway().Addr())
	assert.Equal(t, 15*time.Minute, conf.Auth().AccessTTL())
	assert.Equal(t, 30*24*time.Hour, conf.Auth().RefreshTTL())
	assert.True(t, conf.Kafka().Enabled())
	assert.Equal(t, "changes", conf.Kafka().ChangesTopic())
	assert.Equal(t, "expenses", conf.Postgres().Database())
	assert.True(t, conf.Postgres().Enabled())
	assert.Equal(t, 5432, conf.Postgres().Port())
	assert.Equal(t, "disable", conf.Postgres().SSLMode())
}

func Test_OnParseUnknownBackend_ShouldFail(t *testing.T) {
	_, err := Parse([]byte("app:\n  backend: cloud\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("cache:\n  backend: redis\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("app:\n  timezone: Mars/Olympus\n"))
	assert.Error(t, err)
}
