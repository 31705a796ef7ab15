package ziparchive

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

func (c *metricsClient) Archive(ctx context.Context, sourceDir, destinationDir, name string) (zipPath string, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "Archive", begin) }(time.Now())

	return c.Client.Archive(ctx, sourceDir, destinationDir, name)
}
