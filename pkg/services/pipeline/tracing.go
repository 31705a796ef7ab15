package pipeline

import (
	"context"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingService returns a new instance of a tracing Service.
func NewTracingService(s Service) Service {
	return &tracingService{s, "pipeline"}
}

type tracingService struct {
	Service Service
	prefix  string
}

func (s *tracingService) Run(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "Run"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.Run(ctx)
}

func (s *tracingService) ResolveVersion(ctx context.Context) (version BuildVersion, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "ResolveVersion"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.ResolveVersion(ctx)
}

func (s *tracingService) ProvisionDatabases(ctx context.Context, version BuildVersion) (databases Databases, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "ProvisionDatabases"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.ProvisionDatabases(ctx, version)
}

func (s *tracingService) BuildSolution(ctx context.Context, version BuildVersion) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "BuildSolution"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.BuildSolution(ctx, version)
}

func (s *tracingService) PublishProjects(ctx context.Context, version BuildVersion) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "PublishProjects"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.PublishProjects(ctx, version)
}

func (s *tracingService) ArchiveArtifacts(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "ArchiveArtifacts"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.ArchiveArtifacts(ctx)
}

func (s *tracingService) PackageInfrastructure(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "PackageInfrastructure"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.PackageInfrastructure(ctx)
}

func (s *tracingService) RunTests(ctx context.Context, databases Databases) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "RunTests"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.RunTests(ctx, databases)
}
