package dotnetcli

import (
	"context"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "dotnetcli"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) Build(ctx context.Context, solution string, verbosity api.Verbosity, versionSuffix string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "Build"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.Build(ctx, solution, verbosity, versionSuffix)
}

func (c *tracingClient) Publish(ctx context.Context, projectPath, outputDir, versionSuffix string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "Publish"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.Publish(ctx, projectPath, outputDir, versionSuffix)
}

func (c *tracingClient) Test(ctx context.Context, projectPath string, env map[string]string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "Test"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.Test(ctx, projectPath, env)
}
