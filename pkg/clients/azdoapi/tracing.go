package azdoapi

import (
	"context"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "azdoapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) UploadArtifact(ctx context.Context, containerFolder, artifactName, location string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "UploadArtifact"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.UploadArtifact(ctx, containerFolder, artifactName, location)
}

func (c *tracingClient) SetVariable(ctx context.Context, name, value string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "SetVariable"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.SetVariable(ctx, name, value)
}
