package gitapi

import (
	"context"
	"fmt"

	git "gopkg.in/src-d/go-git.v4"
)

// Client reads branch and commit information from the local repository
//
//go:generate mockgen -package=gitapi -destination ./mock.go -source=client.go
type Client interface {
	GetBranchName(ctx context.Context) (branchName string, err error)
	GetCommitHash(ctx context.Context, length int) (commitHash string, err error)
}

// NewClient returns a new gitapi.Client reading from the repository at repoDir
func NewClient(repoDir string) Client {
	return &client{
		repoDir: repoDir,
	}
}

type client struct {
	repoDir string
}

func (c *client) GetBranchName(ctx context.Context) (branchName string, err error) {

	repository, err := git.PlainOpenWithOptions(c.repoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return
	}

	head, err := repository.Head()
	if err != nil {
		return
	}

	// a detached head resolves to the literal name HEAD
	branchName = head.Name().Short()

	return
}

func (c *client) GetCommitHash(ctx context.Context, length int) (commitHash string, err error) {

	repository, err := git.PlainOpenWithOptions(c.repoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return
	}

	head, err := repository.Head()
	if err != nil {
		return
	}

	commitHash = head.Hash().String()
	if length <= 0 || length > len(commitHash) {
		return commitHash, fmt.Errorf("commit hash length %v is out of range", length)
	}
	commitHash = commitHash[:length]

	return
}
