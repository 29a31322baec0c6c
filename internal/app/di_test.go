package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/oscli/internal/config"
	"github.com/allisson/oscli/internal/metrics"
	"github.com/allisson/oscli/internal/objectstorage/usecase/mocks"
)

func newTestContainer(t *testing.T, cfg *config.Config) *Container {
	t.Helper()
	return NewContainer(cfg, WithClient(mocks.NewMockClient(t)))
}

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := &config.Config{LogLevel: "info", BulkParallelism: 4}

	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainerLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		logDebug bool
		logWarn  bool
		wantJSON bool
	}{
		{"default level is warn", "", "", false, true, false},
		{"debug text", "debug", "text", true, true, false},
		{"error json", "ERROR", "json", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := NewContainer(&config.Config{LogLevel: tt.level, LogFormat: tt.format}, WithLogOutput(&buf))

			logger := c.Logger()
			require.NotNil(t, logger)
			assert.Same(t, logger, c.Logger())

			logger.Debug("debug message")
			logger.Warn("warn message")

			assert.Equal(t, tt.logDebug, bytes.Contains(buf.Bytes(), []byte("debug message")))
			assert.Equal(t, tt.logWarn, bytes.Contains(buf.Bytes(), []byte("warn message")))
			if tt.wantJSON {
				logger.Error("boom")
				assert.Contains(t, buf.String(), `"msg":"boom"`)
			}
		})
	}
}

func TestContainerClient_MissingConfigFile(t *testing.T) {
	c := NewContainer(&config.Config{
		OCIConfigFile:    filepath.Join(t.TempDir(), "missing-config"),
		OCIConfigProfile: "DEFAULT",
	})

	provider, err := c.ConfigurationProvider()
	require.NoError(t, err)
	assert.NotNil(t, provider)

	_, err = c.Client()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create object storage client")

	// The failure is remembered.
	_, err = c.Client()
	assert.Error(t, err)

	_, err = c.ObjectUseCase()
	assert.Error(t, err)
}

func TestContainerBusinessMetrics(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		c := NewContainer(&config.Config{MetricsEnabled: false})
		bm, err := c.BusinessMetrics()
		require.NoError(t, err)
		assert.IsType(t, &metrics.NoOpBusinessMetrics{}, bm)
	})

	t.Run("enabled", func(t *testing.T) {
		c := NewContainer(&config.Config{MetricsEnabled: true, MetricsNamespace: "oscli"})
		bm, err := c.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, bm)
		assert.NotNil(t, c.metricsProvider)
	})
}

func TestContainerUseCases(t *testing.T) {
	c := newTestContainer(t, &config.Config{BulkParallelism: 2, MetricsEnabled: true, MetricsNamespace: "oscli"})

	ns, err := c.NamespaceUseCase()
	require.NoError(t, err)
	assert.NotNil(t, ns)

	bucket, err := c.BucketUseCase()
	require.NoError(t, err)
	assert.NotNil(t, bucket)

	object, err := c.ObjectUseCase()
	require.NoError(t, err)
	assert.NotNil(t, object)

	again, err := c.ObjectUseCase()
	require.NoError(t, err)
	assert.Same(t, object, again)

	retention, err := c.RetentionRuleUseCase()
	require.NoError(t, err)
	assert.NotNil(t, retention)

	replication, err := c.ReplicationUseCase()
	require.NoError(t, err)
	assert.NotNil(t, replication)

	bulk, err := c.BulkUseCase()
	require.NoError(t, err)
	assert.NotNil(t, bulk)
}

func TestWithClient(t *testing.T) {
	client := mocks.NewMockClient(t)
	c := NewContainer(&config.Config{OCIConfigFile: filepath.Join(t.TempDir(), "missing")}, WithClient(client))

	got, err := c.Client()
	require.NoError(t, err)
	assert.Same(t, client, got)
}

func TestContainerShutdown(t *testing.T) {
	t.Run("nothing initialized", func(t *testing.T) {
		c := NewContainer(&config.Config{})
		assert.NoError(t, c.Shutdown(context.Background()))
	})

	t.Run("writes metrics textfile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "oscli.prom")
		c := NewContainer(&config.Config{
			MetricsEnabled:      true,
			MetricsNamespace:    "oscli",
			MetricsTextfilePath: path,
		})
		bm, err := c.BusinessMetrics()
		require.NoError(t, err)
		bm.RecordOperation(context.Background(), "object", "put", metrics.StatusSuccess)

		require.NoError(t, c.Shutdown(context.Background()))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "oscli_operations_total")
	})
}
