package gitapi

import (
	"context"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "gitapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) GetBranchName(ctx context.Context) (branchName string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetBranchName"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetBranchName(ctx)
}

func (c *tracingClient) GetCommitHash(ctx context.Context, length int) (commitHash string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetCommitHash"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetCommitHash(ctx, length)
}
