package main

import (
	"context"
	"io"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/alecthomas/kingpin"
	"github.com/google/uuid"
	"github.com/helix-ci/helix-ci-runner/pkg/api"
	"github.com/helix-ci/helix-ci-runner/pkg/clients/azdoapi"
	"github.com/helix-ci/helix-ci-runner/pkg/clients/database"
	"github.com/helix-ci/helix-ci-runner/pkg/clients/dotnetcli"
	"github.com/helix-ci/helix-ci-runner/pkg/clients/gitapi"
	"github.com/helix-ci/helix-ci-runner/pkg/clients/ziparchive"
	"github.com/helix-ci/helix-ci-runner/pkg/services/pipeline"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	jaeger "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jprom "github.com/uber/jaeger-lib/metrics/prometheus"
)

const applicationName = "helix-ci-runner"

var (
	version   string
	branch    string
	revision  string
	buildDate string
	goVersion = runtime.Version()
)

var (
	// flags
	configFilePath = kingpin.Flag("config-file-path", "The path to the yaml config file describing the solution to build.").Default("helix-ci.yaml").Envar("HELIX_CONFIG_FILE_PATH").String()
	workDir        = kingpin.Flag("work-dir", "The directory holding the checked out repository.").Default(".").Envar("HELIX_WORK_DIR").String()
	dotnetPath     = kingpin.Flag("dotnet-path", "The path to the dotnet cli binary.").Default("dotnet").Envar("HELIX_DOTNET_PATH").String()

	sourceBranch = kingpin.Flag("source-branch", "The branch being built, overrides the branch detected from the repository.").Envar("BUILD_SOURCEBRANCHNAME").String()
	buildID      = kingpin.Flag("build-id", "The numeric id assigned to this build by the build system.").Envar("BUILD_BUILDID").String()
	verbosity    = kingpin.Flag("verbosity", "The msbuild verbosity for the build stage (quiet|minimal|normal|detailed|diagnostic).").Default("minimal").Envar("HELIX_VERBOSITY").String()

	zipDestination     = kingpin.Flag("zip-destination", "The directory zip archives are written to, leave empty to skip archiving.").Envar("BUILD_ARTIFACTSTAGINGDIRECTORY").String()
	databasePrefix     = kingpin.Flag("database-prefix", "Overrides the configured prefix for the main ephemeral database.").Envar("HELIX_DATABASE_PREFIX").String()
	apimDatabasePrefix = kingpin.Flag("apim-database-prefix", "Overrides the configured prefix for the apim consumption database.").Envar("HELIX_APIM_DATABASE_PREFIX").String()

	prometheusMetricsAddress = kingpin.Flag("metrics-listen-address", "The address to listen on for Prometheus metrics requests.").Default(":9001").String()
	prometheusMetricsPath    = kingpin.Flag("metrics-path", "The path to listen for Prometheus metrics requests.").Default("/metrics").String()
)

func main() {

	// parse command line parameters
	kingpin.Parse()

	// configure json logging
	initLogging()

	// init tracing to analyze slow pipeline stages
	closer := initJaeger(applicationName)
	defer closer.Close()

	// expose prometheus metrics for the duration of the run
	go startPrometheus()

	parsedVerbosity, err := api.ParseVerbosity(*verbosity)
	if err != nil {
		log.Fatal().Err(err).Msgf("Unsupported verbosity %v", *verbosity)
	}

	config, err := api.NewConfigReader("HELIX_").ReadConfigFromFile(*configFilePath)
	if err != nil {
		log.Fatal().Err(err).Msgf("Failed reading config from %v", *configFilePath)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	span := opentracing.StartSpan("Run")
	ctx = opentracing.ContextWithSpan(ctx, span)

	pipelineService := getPipelineService(config, pipeline.RunOptions{
		Branch:             *sourceBranch,
		BuildID:            *buildID,
		Verbosity:          parsedVerbosity,
		ZipDestination:     *zipDestination,
		MainDatabasePrefix: *databasePrefix,
		ApimDatabasePrefix: *apimDatabasePrefix,
	})

	err = pipelineService.Run(ctx)

	span.Finish()
	closer.Close()

	if err != nil {
		if errors.Is(err, pipeline.ErrTestRunFailed) {
			log.Warn().Err(err).Msg("Run failed its test stage")
			os.Exit(3)
		}
		log.Error().Err(err).Msg("Run failed")
		os.Exit(1)
	}

	log.Info().Msg("Run finished successfully")
}

func getPipelineService(config *api.RunnerConfig, options pipeline.RunOptions) pipeline.Service {

	gitapiClient := gitapi.NewClient(*workDir)
	gitapiClient = gitapi.NewTracingClient(gitapiClient)
	gitapiClient = gitapi.NewLoggingClient(gitapiClient)
	gitapiClient = gitapi.NewMetricsClient(gitapiClient,
		api.NewRequestCounter("gitapi_client"),
		api.NewRequestHistogram("gitapi_client"),
	)

	dotnetcliClient := dotnetcli.NewClient(*dotnetPath, *workDir)
	dotnetcliClient = dotnetcli.NewTracingClient(dotnetcliClient)
	dotnetcliClient = dotnetcli.NewLoggingClient(dotnetcliClient)
	dotnetcliClient = dotnetcli.NewMetricsClient(dotnetcliClient,
		api.NewRequestCounter("dotnetcli_client"),
		api.NewRequestHistogram("dotnetcli_client"),
	)

	databaseClient := database.NewClient(config.Databases.Host, config.Databases.Port, config.Databases.User, config.Databases.Password, config.Databases.SslMode)
	databaseClient = database.NewTracingClient(databaseClient)
	databaseClient = database.NewLoggingClient(databaseClient)
	databaseClient = database.NewMetricsClient(databaseClient,
		api.NewRequestCounter("database_client"),
		api.NewRequestHistogram("database_client"),
	)

	azdoapiClient := azdoapi.NewClient(os.Stdout)
	azdoapiClient = azdoapi.NewTracingClient(azdoapiClient)
	azdoapiClient = azdoapi.NewLoggingClient(azdoapiClient)
	azdoapiClient = azdoapi.NewMetricsClient(azdoapiClient,
		api.NewRequestCounter("azdoapi_client"),
		api.NewRequestHistogram("azdoapi_client"),
	)

	ziparchiveClient := ziparchive.NewClient()
	ziparchiveClient = ziparchive.NewTracingClient(ziparchiveClient)
	ziparchiveClient = ziparchive.NewLoggingClient(ziparchiveClient)
	ziparchiveClient = ziparchive.NewMetricsClient(ziparchiveClient,
		api.NewRequestCounter("ziparchive_client"),
		api.NewRequestHistogram("ziparchive_client"),
	)

	pipelineService := pipeline.NewService(config, options, gitapiClient, dotnetcliClient, databaseClient, azdoapiClient, ziparchiveClient)
	pipelineService = pipeline.NewTracingService(pipelineService)
	pipelineService = pipeline.NewLoggingService(pipelineService)
	pipelineService = pipeline.NewMetricsService(pipelineService,
		api.NewRequestCounter("pipeline_service"),
		api.NewRequestHistogram("pipeline_service"),
	)

	return pipelineService
}

func startPrometheus() {
	log.Debug().
		Str("port", *prometheusMetricsAddress).
		Str("path", *prometheusMetricsPath).
		Msg("Serving Prometheus metrics...")

	http.Handle(*prometheusMetricsPath, promhttp.Handler())

	if err := http.ListenAndServe(*prometheusMetricsAddress, nil); err != nil {
		log.Fatal().Err(err).Msg("Starting Prometheus listener failed")
	}
}

func initLogging() {

	// log as severity for stackdriver logging to recognize the level
	zerolog.LevelFieldName = "severity"

	// set some default fields added to all logs
	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("app", applicationName).
		Str("version", version).
		Str("runId", uuid.New().String()).
		Logger()

	// use zerolog for any logs sent via standard log library
	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	// log startup message
	log.Info().
		Str("branch", branch).
		Str("revision", revision).
		Str("buildDate", buildDate).
		Str("goVersion", goVersion).
		Msgf("Starting %v...", applicationName)
}

func initJaeger(service string) io.Closer {

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger config from environment variables failed")
	}

	// service name defaults to the application when JAEGER_SERVICE_NAME is unset
	if cfg.ServiceName == "" {
		cfg.ServiceName = service
	}

	closer, err := cfg.InitGlobalTracer(cfg.ServiceName, jaegercfg.Logger(jaeger.StdLogger), jaegercfg.Metrics(jprom.New()))
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger tracer failed")
	}

	return closer
}
