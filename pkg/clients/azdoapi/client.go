package azdoapi

import (
	"context"
	"fmt"
	"io"
)

// Client emits Azure DevOps logging commands; the agent scrapes these lines
// from stdout so their format has to match exactly
//
//go:generate mockgen -package=azdoapi -destination ./mock.go -source=client.go
type Client interface {
	UploadArtifact(ctx context.Context, containerFolder, artifactName, location string) (err error)
	SetVariable(ctx context.Context, name, value string) (err error)
}

// NewClient returns a new azdoapi.Client writing logging commands to writer
func NewClient(writer io.Writer) Client {
	return &client{
		writer: writer,
	}
}

type client struct {
	writer io.Writer
}

func (c *client) UploadArtifact(ctx context.Context, containerFolder, artifactName, location string) (err error) {

	_, err = fmt.Fprintf(c.writer, "##vso[artifact.upload containerfolder=%v;artifactname=%v]%v\n", containerFolder, artifactName, location)

	return
}

func (c *client) SetVariable(ctx context.Context, name, value string) (err error) {

	_, err = fmt.Fprintf(c.writer, "##vso[task.setvariable variable=%v]%v\n", name, value)

	return
}
