package gitapi

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

func (c *metricsClient) GetBranchName(ctx context.Context) (branchName string, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "GetBranchName", begin) }(time.Now())

	return c.Client.GetBranchName(ctx)
}

func (c *metricsClient) GetCommitHash(ctx context.Context, length int) (commitHash string, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "GetCommitHash", begin) }(time.Now())

	return c.Client.GetCommitHash(ctx, length)
}
