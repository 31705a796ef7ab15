package ziparchive

import (
	"context"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "ziparchive"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) Archive(ctx context.Context, sourceDir, destinationDir, name string) (zipPath string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "Archive"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.Archive(ctx, sourceDir, destinationDir, name)
}
