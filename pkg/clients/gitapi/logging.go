package gitapi

import (
	"context"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "gitapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) GetBranchName(ctx context.Context) (branchName string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetBranchName", err) }()

	return c.Client.GetBranchName(ctx)
}

func (c *loggingClient) GetCommitHash(ctx context.Context, length int) (commitHash string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetCommitHash", err) }()

	return c.Client.GetCommitHash(ctx, length)
}
