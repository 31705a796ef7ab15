package azdoapi

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

func (c *metricsClient) UploadArtifact(ctx context.Context, containerFolder, artifactName, location string) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "UploadArtifact", begin) }(time.Now())

	return c.Client.UploadArtifact(ctx, containerFolder, artifactName, location)
}

func (c *metricsClient) SetVariable(ctx context.Context, name, value string) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(c.requestCount, c.requestLatency, "SetVariable", begin) }(time.Now())

	return c.Client.SetVariable(ctx, name, value)
}
