package pipeline

import (
	"context"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service) Service {
	return &loggingService{s, "pipeline"}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) Run(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "Run", err) }()

	return s.Service.Run(ctx)
}

func (s *loggingService) ResolveVersion(ctx context.Context) (version BuildVersion, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "ResolveVersion", err) }()

	return s.Service.ResolveVersion(ctx)
}

func (s *loggingService) ProvisionDatabases(ctx context.Context, version BuildVersion) (databases Databases, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "ProvisionDatabases", err) }()

	return s.Service.ProvisionDatabases(ctx, version)
}

func (s *loggingService) BuildSolution(ctx context.Context, version BuildVersion) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "BuildSolution", err) }()

	return s.Service.BuildSolution(ctx, version)
}

func (s *loggingService) PublishProjects(ctx context.Context, version BuildVersion) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "PublishProjects", err) }()

	return s.Service.PublishProjects(ctx, version)
}

func (s *loggingService) ArchiveArtifacts(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "ArchiveArtifacts", err) }()

	return s.Service.ArchiveArtifacts(ctx)
}

func (s *loggingService) PackageInfrastructure(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "PackageInfrastructure", err) }()

	return s.Service.PackageInfrastructure(ctx)
}

func (s *loggingService) RunTests(ctx context.Context, databases Databases) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "RunTests", err, ErrTestRunFailed) }()

	return s.Service.RunTests(ctx, databases)
}
