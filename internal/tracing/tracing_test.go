package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tracingConfig struct{ enabled bool }

func (c tracingConfig) Enabled() bool       { return c.enabled }
func (c tracingConfig) ServiceName() string { return "expense-tracker-test" }

func Test_OnDisabledTracing_ShouldKeepNoopTracer(t *testing.T) {
	closer, err := Init(tracingConfig{})

	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}
