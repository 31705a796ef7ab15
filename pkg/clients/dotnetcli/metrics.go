package dotnetcli

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

func (c *metricsClient) Build(ctx context.Context, solution string, verbosity api.Verbosity, versionSuffix string) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "Build", begin) }(time.Now())

	return c.Client.Build(ctx, solution, verbosity, versionSuffix)
}

func (c *metricsClient) Publish(ctx context.Context, projectPath, outputDir, versionSuffix string) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "Publish", begin) }(time.Now())

	return c.Client.Publish(ctx, projectPath, outputDir, versionSuffix)
}

func (c *metricsClient) Test(ctx context.Context, projectPath string, env map[string]string) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "Test", begin) }(time.Now())

	return c.Client.Test(ctx, projectPath, env)
}
