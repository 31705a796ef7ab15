package database

import (
	"context"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "database"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) Connect(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "Connect"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.Connect(ctx)
}

func (c *tracingClient) Close() (err error) {
	return c.Client.Close()
}

func (c *tracingClient) GenerateDatabaseName(prefix, buildSuffix string) (name string) {
	return c.Client.GenerateDatabaseName(prefix, buildSuffix)
}

func (c *tracingClient) CreateDatabase(ctx context.Context, name string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "CreateDatabase"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.CreateDatabase(ctx, name)
}

func (c *tracingClient) DatabaseExists(ctx context.Context, name string) (exists bool, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "DatabaseExists"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.DatabaseExists(ctx, name)
}

func (c *tracingClient) CreateLogin(ctx context.Context, databaseName string) (username, passwd string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "CreateLogin"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.CreateLogin(ctx, databaseName)
}

func (c *tracingClient) ApplyMigrations(ctx context.Context, databaseName, migrationsDir string) (applied int, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "ApplyMigrations"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.ApplyMigrations(ctx, databaseName, migrationsDir)
}

func (c *tracingClient) GetConnectionString(databaseName, username, passwd string) (connectionString string) {
	return c.Client.GetConnectionString(databaseName, username, passwd)
}
