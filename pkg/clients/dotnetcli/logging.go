package dotnetcli

import (
	"context"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "dotnetcli"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) Build(ctx context.Context, solution string, verbosity api.Verbosity, versionSuffix string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "Build", err) }()

	return c.Client.Build(ctx, solution, verbosity, versionSuffix)
}

func (c *loggingClient) Publish(ctx context.Context, projectPath, outputDir, versionSuffix string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "Publish", err) }()

	return c.Client.Publish(ctx, projectPath, outputDir, versionSuffix)
}

func (c *loggingClient) Test(ctx context.Context, projectPath string, env map[string]string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "Test", err) }()

	return c.Client.Test(ctx, projectPath, env)
}
