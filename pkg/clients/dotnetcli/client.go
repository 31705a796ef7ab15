package dotnetcli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
	"github.com/rs/zerolog/log"
)

// Client wraps the dotnet CLI; every invocation gets an explicit working
// directory instead of mutating the process-wide current directory
//
//go:generate mockgen -package=dotnetcli -destination ./mock.go -source=client.go
type Client interface {
	Build(ctx context.Context, solution string, verbosity api.Verbosity, versionSuffix string) (err error)
	Publish(ctx context.Context, projectPath, outputDir, versionSuffix string) (err error)
	Test(ctx context.Context, projectPath string, env map[string]string) (err error)
}

// NewClient returns a new dotnetcli.Client running binaryPath from workDir
func NewClient(binaryPath, workDir string) Client {
	return &client{
		binaryPath: binaryPath,
		workDir:    workDir,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

type client struct {
	binaryPath string
	workDir    string
	stdout     io.Writer
	stderr     io.Writer
}

func (c *client) Build(ctx context.Context, solution string, verbosity api.Verbosity, versionSuffix string) (err error) {

	args := []string{"build", solution, "--verbosity", verbosity.String()}
	if versionSuffix != "" {
		args = append(args, fmt.Sprintf("/p:VersionSuffix=%v", versionSuffix))
	}

	return c.run(ctx, args, nil)
}

func (c *client) Publish(ctx context.Context, projectPath, outputDir, versionSuffix string) (err error) {

	// the solution has been built already, avoid restoring and building again
	args := []string{"publish", projectPath, "--no-restore", "--no-build", "--output", outputDir}
	if versionSuffix != "" {
		args = append(args, fmt.Sprintf("/p:VersionSuffix=%v", versionSuffix))
	}

	return c.run(ctx, args, nil)
}

func (c *client) Test(ctx context.Context, projectPath string, env map[string]string) (err error) {

	args := []string{"test", projectPath, "--no-restore", "--no-build"}

	return c.run(ctx, args, env)
}

func (c *client) run(ctx context.Context, args []string, env map[string]string) (err error) {

	log.Info().Msgf("> %v %v", c.binaryPath, args)

	cmd := exec.CommandContext(ctx, c.binaryPath, args...)
	cmd.Dir = c.workDir
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	cmd.Env = os.Environ()
	for name, value := range env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%v=%v", name, value))
	}

	err = cmd.Run()
	if err != nil {
		return fmt.Errorf("command %v %v failed: %w", c.binaryPath, args, err)
	}

	return nil
}
