package azdoapi

import (
	"context"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "azdoapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) UploadArtifact(ctx context.Context, containerFolder, artifactName, location string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "UploadArtifact", err) }()

	return c.Client.UploadArtifact(ctx, containerFolder, artifactName, location)
}

func (c *loggingClient) SetVariable(ctx context.Context, name, value string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "SetVariable", err) }()

	return c.Client.SetVariable(ctx, name, value)
}
