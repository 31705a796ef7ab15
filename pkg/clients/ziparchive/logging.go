package ziparchive

import (
	"context"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "ziparchive"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) Archive(ctx context.Context, sourceDir, destinationDir, name string) (zipPath string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "Archive", err) }()

	return c.Client.Archive(ctx, sourceDir, destinationDir, name)
}
