package gitapi

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	git "gopkg.in/src-d/go-git.v4"
	"gopkg.in/src-d/go-git.v4/plumbing/object"
)

func initTestRepository(t *testing.T) (repoDir string) {

	t.Helper()

	repoDir = t.TempDir()

	repository, err := git.PlainInit(repoDir, false)
	if err != nil {
		t.Fatal(err)
	}

	worktree, err := repository.Worktree()
	if err != nil {
		t.Fatal(err)
	}

	err = os.WriteFile(filepath.Join(repoDir, "README.md"), []byte("# test"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	_, err = worktree.Add("README.md")
	if err != nil {
		t.Fatal(err)
	}

	_, err = worktree.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "ci",
			Email: "ci@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	return repoDir
}

func TestGetBranchName(t *testing.T) {

	t.Run("ReturnsNameOfCheckedOutBranch", func(t *testing.T) {

		repoDir := initTestRepository(t)
		client := NewClient(repoDir)

		// act
		branchName, err := client.GetBranchName(context.Background())

		assert.Nil(t, err)
		assert.Equal(t, "master", branchName)
	})

	t.Run("ReturnsErrorForNonRepositoryDirectory", func(t *testing.T) {

		client := NewClient(t.TempDir())

		// act
		_, err := client.GetBranchName(context.Background())

		assert.NotNil(t, err)
	})
}

func TestGetCommitHash(t *testing.T) {

	t.Run("ReturnsHashTruncatedToRequestedLength", func(t *testing.T) {

		repoDir := initTestRepository(t)
		client := NewClient(repoDir)

		// act
		commitHash, err := client.GetCommitHash(context.Background(), 7)

		assert.Nil(t, err)
		assert.Equal(t, 7, len(commitHash))
	})

	t.Run("ReturnsErrorForOutOfRangeLength", func(t *testing.T) {

		repoDir := initTestRepository(t)
		client := NewClient(repoDir)

		// act
		_, err := client.GetCommitHash(context.Background(), 0)

		assert.NotNil(t, err)
	})
}
