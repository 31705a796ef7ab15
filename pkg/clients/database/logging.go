package database

import (
	"context"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "database"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) Connect(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "Connect", err) }()

	return c.Client.Connect(ctx)
}

func (c *loggingClient) Close() (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "Close", err) }()

	return c.Client.Close()
}

func (c *loggingClient) GenerateDatabaseName(prefix, buildSuffix string) (name string) {
	return c.Client.GenerateDatabaseName(prefix, buildSuffix)
}

func (c *loggingClient) CreateDatabase(ctx context.Context, name string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "CreateDatabase", err) }()

	return c.Client.CreateDatabase(ctx, name)
}

func (c *loggingClient) DatabaseExists(ctx context.Context, name string) (exists bool, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "DatabaseExists", err) }()

	return c.Client.DatabaseExists(ctx, name)
}

func (c *loggingClient) CreateLogin(ctx context.Context, databaseName string) (username, passwd string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "CreateLogin", err) }()

	return c.Client.CreateLogin(ctx, databaseName)
}

func (c *loggingClient) ApplyMigrations(ctx context.Context, databaseName, migrationsDir string) (applied int, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "ApplyMigrations", err) }()

	return c.Client.ApplyMigrations(ctx, databaseName, migrationsDir)
}

func (c *loggingClient) GetConnectionString(databaseName, username, passwd string) (connectionString string) {
	return c.Client.GetConnectionString(databaseName, username, passwd)
}
