package pipeline

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/helix-ci/helix-ci-runner/pkg/api"
)

// NewMetricsService returns a new instance of a metrics Service.
func NewMetricsService(s Service, requestCount metrics.Counter, requestLatency metrics.Histogram) Service {
	return &metricsService{s, requestCount, requestLatency}
}

type metricsService struct {
	Service        Service
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (s *metricsService) Run(ctx context.Context) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "Run", begin) }(time.Now())

	return s.Service.Run(ctx)
}

func (s *metricsService) ResolveVersion(ctx context.Context) (version BuildVersion, err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "ResolveVersion", begin) }(time.Now())

	return s.Service.ResolveVersion(ctx)
}

func (s *metricsService) ProvisionDatabases(ctx context.Context, version BuildVersion) (databases Databases, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "ProvisionDatabases", begin)
	}(time.Now())

	return s.Service.ProvisionDatabases(ctx, version)
}

func (s *metricsService) BuildSolution(ctx context.Context, version BuildVersion) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "BuildSolution", begin) }(time.Now())

	return s.Service.BuildSolution(ctx, version)
}

func (s *metricsService) PublishProjects(ctx context.Context, version BuildVersion) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "PublishProjects", begin) }(time.Now())

	return s.Service.PublishProjects(ctx, version)
}

func (s *metricsService) ArchiveArtifacts(ctx context.Context) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "ArchiveArtifacts", begin) }(time.Now())

	return s.Service.ArchiveArtifacts(ctx)
}

func (s *metricsService) PackageInfrastructure(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "PackageInfrastructure", begin)
	}(time.Now())

	return s.Service.PackageInfrastructure(ctx)
}

func (s *metricsService) RunTests(ctx context.Context, databases Databases) (err error) {
	defer func(begin time.Time) { api.UpdateMetrics(s.requestCount, s.requestLatency, "RunTests", begin) }(time.Now())

	return s.Service.RunTests(ctx, databases)
}
