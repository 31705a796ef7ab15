package database

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/helix-ci/helix-ci-runner/pkg/api"
)

// NewMetricsClient returns a new instance of a metrics Client.
func NewMetricsClient(c Client, requestCount metrics.Counter, requestLatency metrics.Histogram) Client {
	return &metricsClient{c, requestCount, requestLatency}
}

type metricsClient struct {
	Client         Client
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (c *metricsClient) Connect(ctx context.Context) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "Connect", begin) }(time.Now())

	return c.Client.Connect(ctx)
}

func (c *metricsClient) Close() (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "Close", begin) }(time.Now())

	return c.Client.Close()
}

func (c *metricsClient) GenerateDatabaseName(prefix, buildSuffix string) (name string) {
	return c.Client.GenerateDatabaseName(prefix, buildSuffix)
}

func (c *metricsClient) CreateDatabase(ctx context.Context, name string) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "CreateDatabase", begin) }(time.Now())

	return c.Client.CreateDatabase(ctx, name)
}

func (c *metricsClient) DatabaseExists(ctx context.Context, name string) (exists bool, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "DatabaseExists", begin) }(time.Now())

	return c.Client.DatabaseExists(ctx, name)
}

func (c *metricsClient) CreateLogin(ctx context.Context, databaseName string) (username, passwd string, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "CreateLogin", begin) }(time.Now())

	return c.Client.CreateLogin(ctx, databaseName)
}

func (c *metricsClient) ApplyMigrations(ctx context.Context, databaseName, migrationsDir string) (applied int, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "ApplyMigrations", begin) }(time.Now())

	return c.Client.ApplyMigrations(ctx, databaseName, migrationsDir)
}

func (c *metricsClient) GetConnectionString(databaseName, username, passwd string) (connectionString string) {
	return c.Client.GetConnectionString(databaseName, username, passwd)
}
