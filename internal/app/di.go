// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"

	"github.com/allisson/oscli/internal/config"
	"github.com/allisson/oscli/internal/metrics"
	objectStorageUseCase "github.com/allisson/oscli/internal/objectstorage/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	logOutput       io.Writer
	configProvider  common.ConfigurationProvider
	client          objectStorageUseCase.Client
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Use Cases
	namespaceUseCase     objectStorageUseCase.NamespaceUseCase
	bucketUseCase        objectStorageUseCase.BucketUseCase
	objectUseCase        objectStorageUseCase.ObjectUseCase
	retentionRuleUseCase objectStorageUseCase.RetentionRuleUseCase
	replicationUseCase   objectStorageUseCase.ReplicationUseCase
	bulkUseCase          objectStorageUseCase.BulkUseCase

	// Initialization flags and mutex for thread-safety
	mu                       sync.Mutex
	loggerInit               sync.Once
	configProviderInit       sync.Once
	clientInit               sync.Once
	metricsProviderInit      sync.Once
	businessMetricsInit      sync.Once
	namespaceUseCaseInit     sync.Once
	bucketUseCaseInit        sync.Once
	objectUseCaseInit        sync.Once
	retentionRuleUseCaseInit sync.Once
	replicationUseCaseInit   sync.Once
	bulkUseCaseInit          sync.Once
	initErrors               map[string]error
}

// Option customizes a Container before first use.
type Option func(*Container)

// WithClient makes the container use client instead of building one from the
// OCI configuration.
func WithClient(client objectStorageUseCase.Client) Option {
	return func(c *Container) {
		c.clientInit.Do(func() { c.client = client })
	}
}

// WithLogOutput redirects log output, stderr by default.
func WithLogOutput(w io.Writer) Option {
	return func(c *Container) {
		c.logOutput = w
	}
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config, opts ...Option) *Container {
	c := &Container{
		config:     cfg,
		logOutput:  os.Stderr,
		initErrors: make(map[string]error),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// Logs go to stderr so command output on stdout stays machine-readable.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// ConfigurationProvider returns the SDK credentials provider.
func (c *Container) ConfigurationProvider() (common.ConfigurationProvider, error) {
	var err error
	c.configProviderInit.Do(func() {
		c.configProvider, err = c.initConfigurationProvider()
		if err != nil {
			c.initErrors["configProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["configProvider"]; exists {
		return nil, storedErr
	}
	return c.configProvider, nil
}

// Client returns the object storage SDK client.
func (c *Container) Client() (objectStorageUseCase.Client, error) {
	var err error
	c.clientInit.Do(func() {
		c.client, err = c.initClient()
		if err != nil {
			c.initErrors["client"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["client"]; exists {
		return nil, storedErr
	}
	return c.client, nil
}

// MetricsProvider returns the OpenTelemetry metrics provider.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = metrics.NewProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder, a no-op one when
// metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Shutdown writes the metrics textfile and stops the meter provider.
// It should be called when the command has finished.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if c.config.MetricsTextfilePath != "" {
			if err := c.metricsProvider.WriteTextfile(c.config.MetricsTextfilePath); err != nil {
				shutdownErrors = append(shutdownErrors, err)
			}
		}
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level and format.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(c.config.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	var handler slog.Handler
	if strings.EqualFold(c.config.LogFormat, "json") {
		handler = slog.NewJSONHandler(c.logOutput, opts)
	} else {
		handler = slog.NewTextHandler(c.logOutput, opts)
	}

	return slog.New(handler)
}

// initConfigurationProvider selects the SDK credentials source. Without an
// explicit file the SDK default chain is used.
func (c *Container) initConfigurationProvider() (common.ConfigurationProvider, error) {
	profile := c.config.OCIConfigProfile
	if c.config.OCIConfigFile == "" {
		if profile == "" || profile == "DEFAULT" {
			return common.DefaultConfigProvider(), nil
		}
		return common.CustomProfileConfigProvider("", profile), nil
	}

	provider, err := common.ConfigurationProviderFromFileWithProfile(c.config.OCIConfigFile, profile, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load oci config file: %w", err)
	}
	return provider, nil
}

// initClient creates the object storage client, honouring the region override.
func (c *Container) initClient() (objectStorageUseCase.Client, error) {
	provider, err := c.ConfigurationProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration provider for client: %w", err)
	}

	client, err := objectstorage.NewObjectStorageClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}
	if c.config.OCIRegion != "" {
		client.SetRegion(c.config.OCIRegion)
	}

	c.Logger().Debug("object storage client created",
		slog.String("endpoint", client.Host),
		slog.String("profile", c.config.OCIConfigProfile),
	)
	return &client, nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}
