package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
	"github.com/helix-ci/helix-ci-runner/pkg/clients/azdoapi"
	"github.com/helix-ci/helix-ci-runner/pkg/clients/database"
	"github.com/helix-ci/helix-ci-runner/pkg/clients/dotnetcli"
	"github.com/helix-ci/helix-ci-runner/pkg/clients/gitapi"
	"github.com/helix-ci/helix-ci-runner/pkg/clients/ziparchive"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrTestRunFailed distinguishes a failing test suite from build-stage
	// failures, callers map it to a separate exit code
	ErrTestRunFailed = errors.New("one of the test projects failed")
)

// Service runs the build pipeline stages strictly in order, aborting on the
// first stage that fails
//
//go:generate mockgen -package=pipeline -destination ./mock.go -source=service.go
type Service interface {
	Run(ctx context.Context) (err error)
	ResolveVersion(ctx context.Context) (version BuildVersion, err error)
	ProvisionDatabases(ctx context.Context, version BuildVersion) (databases Databases, err error)
	BuildSolution(ctx context.Context, version BuildVersion) (err error)
	PublishProjects(ctx context.Context, version BuildVersion) (err error)
	ArchiveArtifacts(ctx context.Context) (err error)
	PackageInfrastructure(ctx context.Context) (err error)
	RunTests(ctx context.Context, databases Databases) (err error)
}

// NewService returns a new pipeline.Service
func NewService(config *api.RunnerConfig, options RunOptions, gitapiClient gitapi.Client, dotnetcliClient dotnetcli.Client, databaseClient database.Client, azdoapiClient azdoapi.Client, ziparchiveClient ziparchive.Client) Service {
	return &service{
		config:           config,
		options:          options,
		gitapiClient:     gitapiClient,
		dotnetcliClient:  dotnetcliClient,
		databaseClient:   databaseClient,
		azdoapiClient:    azdoapiClient,
		ziparchiveClient: ziparchiveClient,
	}
}

type service struct {
	config           *api.RunnerConfig
	options          RunOptions
	gitapiClient     gitapi.Client
	dotnetcliClient  dotnetcli.Client
	databaseClient   database.Client
	azdoapiClient    azdoapi.Client
	ziparchiveClient ziparchive.Client
}

func (s *service) Run(ctx context.Context) (err error) {

	version, err := s.ResolveVersion(ctx)
	if err != nil {
		return errors.Wrap(err, "failed resolving version")
	}

	log.Info().
		Str("branch", version.Branch).
		Str("suffix", version.Suffix).
		Str("buildSuffix", version.BuildSuffix).
		Msg("Resolved version")

	databases, err := s.ProvisionDatabases(ctx, version)
	if err != nil {
		return errors.Wrap(err, "failed provisioning databases")
	}

	if err = s.BuildSolution(ctx, version); err != nil {
		return errors.Wrap(err, "failed building solution")
	}

	if err = s.PublishProjects(ctx, version); err != nil {
		return errors.Wrap(err, "failed publishing projects")
	}

	if err = s.ArchiveArtifacts(ctx); err != nil {
		return errors.Wrap(err, "failed archiving artifacts")
	}

	if err = s.PackageInfrastructure(ctx); err != nil {
		return errors.Wrap(err, "failed packaging infrastructure")
	}

	return s.RunTests(ctx, databases)
}

func (s *service) ResolveVersion(ctx context.Context) (version BuildVersion, err error) {

	branch := s.options.Branch
	if branch == "" {
		branch, err = s.gitapiClient.GetBranchName(ctx)
		if err != nil {
			return
		}
	}

	commitHash, err := s.gitapiClient.GetCommitHash(ctx, commitHashLength)
	if err != nil {
		return
	}

	revision := deriveRevision(s.options.BuildID)
	suffix := deriveSuffix(branch, revision)

	return BuildVersion{
		Branch:      branch,
		Revision:    revision,
		Suffix:      suffix,
		BuildSuffix: deriveBuildSuffix(branch, suffix, commitHash),
		CommitHash:  commitHash,
	}, nil
}

func (s *service) ProvisionDatabases(ctx context.Context, version BuildVersion) (databases Databases, err error) {

	databases = Databases{
		ConnectionStrings: map[string]string{},
	}

	mainConfig := s.databaseConfig(s.config.Databases.Main, s.options.MainDatabasePrefix)
	apimConfig := s.databaseConfig(s.config.Databases.Apim, s.options.ApimDatabasePrefix)

	if !mainConfig.IsEnabled() && !apimConfig.IsEnabled() {
		log.Info().Msg("No database prefixes set, skipping database provisioning")
		return
	}

	if err = s.databaseClient.Connect(ctx); err != nil {
		return
	}
	defer s.databaseClient.Close()

	for _, databaseConfig := range []*api.EphemeralDatabaseConfig{mainConfig, apimConfig} {
		if !databaseConfig.IsEnabled() {
			continue
		}

		var connectionString string
		connectionString, err = s.provisionDatabase(ctx, databaseConfig, version, &databases)
		if err != nil {
			return
		}

		databases.ConnectionStrings[databaseConfig.Variable] = connectionString

		if err = s.azdoapiClient.SetVariable(ctx, databaseConfig.Variable, connectionString); err != nil {
			return
		}
	}

	// a companion cleanup job drops the databases listed in this variable
	err = s.azdoapiClient.SetVariable(ctx, "DatabasesCreated", strings.Join(databases.Created, ","))

	return
}

func (s *service) provisionDatabase(ctx context.Context, databaseConfig *api.EphemeralDatabaseConfig, version BuildVersion, databases *Databases) (connectionString string, err error) {

	name := s.databaseClient.GenerateDatabaseName(databaseConfig.Prefix, version.BuildSuffix)

	// names embed a timestamp, a clash means another run started in the same second
	exists, err := s.databaseClient.DatabaseExists(ctx, name)
	if err != nil {
		return
	}
	if exists {
		return "", errors.Errorf("database %v already exists, a concurrent run may be provisioning it", name)
	}

	if err = s.databaseClient.CreateDatabase(ctx, name); err != nil {
		return
	}
	databases.Created = append(databases.Created, name)

	var username, passwd string
	if s.config.Databases.CreateLogin {
		username, passwd, err = s.databaseClient.CreateLogin(ctx, name)
		if err != nil {
			return
		}
	}

	applied, err := s.databaseClient.ApplyMigrations(ctx, name, databaseConfig.MigrationsDir)
	if err != nil {
		return
	}

	log.Info().Msgf("Applied %v migration scripts to database %v", applied, name)

	return s.databaseClient.GetConnectionString(name, username, passwd), nil
}

func (s *service) databaseConfig(databaseConfig *api.EphemeralDatabaseConfig, prefixOverride string) *api.EphemeralDatabaseConfig {
	if prefixOverride == "" {
		return databaseConfig
	}

	override := *databaseConfig
	override.Prefix = prefixOverride

	return &override
}

func (s *service) BuildSolution(ctx context.Context, version BuildVersion) (err error) {

	return s.dotnetcliClient.Build(ctx, s.config.Solution, s.options.Verbosity, version.BuildSuffix)
}

func (s *service) PublishProjects(ctx context.Context, version BuildVersion) (err error) {

	if s.config.Publish.Parallel {
		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(s.config.Publish.MaxConcurrency)

		for _, project := range s.config.Projects {
			project := project
			group.Go(func() error {
				return s.publishProject(groupCtx, project, version)
			})
		}

		return group.Wait()
	}

	for _, project := range s.config.Projects {
		if err = s.publishProject(ctx, project, version); err != nil {
			return
		}
	}

	return nil
}

func (s *service) publishProject(ctx context.Context, project *api.ProjectConfig, version BuildVersion) (err error) {

	outputDir := filepath.Join(s.config.ArtifactsDir, project.Path)

	// packages are tagged with the shorter package suffix, not the build suffix
	if err = s.dotnetcliClient.Publish(ctx, project.Path, outputDir, version.Suffix); err != nil {
		return
	}

	if project.Role == api.ProjectRoleAPI {
		return s.prepareApimPublish(outputDir)
	}

	return nil
}

// prepareApimPublish copies the approved OpenAPI specification files into the
// nested ApimPublish layout, then moves that folder up into the artifacts
// root so downstream api-management tooling finds it at a fixed path
func (s *service) prepareApimPublish(publishDir string) (err error) {

	if s.config.Apim == nil || len(s.config.Apim.Specs) == 0 {
		return nil
	}

	folderName := s.config.Apim.GetFolderName()
	nestedDir := filepath.Join(publishDir, folderName)

	for _, spec := range s.config.Apim.Specs {
		target := filepath.Join(nestedDir, "apis", spec.Name, spec.Name+"-v1.json")
		if err = copyFile(spec.Source, target); err != nil {
			return
		}
	}

	relocatedDir := filepath.Join(s.config.ArtifactsDir, folderName)
	if err = os.RemoveAll(relocatedDir); err != nil {
		return
	}

	return os.Rename(nestedDir, relocatedDir)
}

func (s *service) ArchiveArtifacts(ctx context.Context) (err error) {

	if s.options.ZipDestination == "" {
		log.Info().Msg("No zip destination set, skipping archiving")
		return nil
	}

	for _, project := range s.config.Projects {
		if !project.Zip {
			continue
		}

		var zipPath string
		zipPath, err = s.ziparchiveClient.Archive(ctx, filepath.Join(s.config.ArtifactsDir, project.Path), s.options.ZipDestination, project.Name)
		if err != nil {
			return
		}

		if err = s.azdoapiClient.UploadArtifact(ctx, project.Name, project.Name, zipPath); err != nil {
			return
		}
	}

	return s.archiveApimPublish(ctx)
}

func (s *service) archiveApimPublish(ctx context.Context) (err error) {

	if s.config.Apim == nil || len(s.config.Apim.Specs) == 0 {
		return nil
	}

	folderName := s.config.Apim.GetFolderName()

	zipPath, err := s.ziparchiveClient.Archive(ctx, filepath.Join(s.config.ArtifactsDir, folderName), s.options.ZipDestination, folderName)
	if err != nil {
		return
	}

	return s.azdoapiClient.UploadArtifact(ctx, folderName, folderName, zipPath)
}

func (s *service) PackageInfrastructure(ctx context.Context) (err error) {

	// infrastructure is only packaged on runs that also archive
	if s.options.ZipDestination == "" || s.config.Infra == nil {
		return nil
	}

	outputName := s.config.Infra.OutputName
	if outputName == "" {
		outputName = "Infrastructure"
	}
	outputDir := filepath.Join(s.config.ArtifactsDir, outputName)

	if err = s.dotnetcliClient.Publish(ctx, s.config.Infra.ResourceGroupProject, outputDir, ""); err != nil {
		return
	}

	// the database admin tool is published into the same directory so both
	// outputs are uploaded as one artifact
	if err = s.dotnetcliClient.Publish(ctx, s.config.Infra.DatabaseAdminProject, outputDir, ""); err != nil {
		return
	}

	for _, migrationDir := range s.config.Infra.MigrationDirs {
		if err = copyDir(migrationDir, filepath.Join(outputDir, filepath.Base(migrationDir))); err != nil {
			return
		}
	}

	if err = s.azdoapiClient.UploadArtifact(ctx, outputName, outputName, outputDir); err != nil {
		return
	}

	if s.config.Apim != nil && len(s.config.Apim.Specs) > 0 {
		folderName := s.config.Apim.GetFolderName()
		return s.azdoapiClient.UploadArtifact(ctx, folderName, folderName, filepath.Join(s.options.ZipDestination, folderName+".zip"))
	}

	return nil
}

func (s *service) RunTests(ctx context.Context, databases Databases) (err error) {

	for _, testProject := range s.config.TestProjects {
		if err = s.dotnetcliClient.Test(ctx, testProject, databases.ConnectionStrings); err != nil {
			log.Warn().Err(err).Msgf("Test project %v failed", testProject)
			return errors.Wrapf(ErrTestRunFailed, "test project %v", testProject)
		}
	}

	return nil
}

func copyFile(source, target string) (err error) {

	if err = os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return
	}

	sourceFile, err := os.Open(source)
	if err != nil {
		return
	}
	defer sourceFile.Close()

	targetFile, err := os.Create(target)
	if err != nil {
		return
	}
	defer targetFile.Close()

	_, err = io.Copy(targetFile, sourceFile)

	return
}

func copyDir(sourceDir, targetDir string) (err error) {

	return filepath.Walk(sourceDir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() {
			return nil
		}

		relPath, relErr := filepath.Rel(sourceDir, path)
		if relErr != nil {
			return relErr
		}

		return copyFile(path, filepath.Join(targetDir, relPath))
	})
}
