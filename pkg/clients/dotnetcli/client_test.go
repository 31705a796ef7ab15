package dotnetcli

import (
	"bytes"
	"context"
	"testing"

	"github.com/helix-ci/helix-ci-runner/pkg/api"
	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {

	t.Run("ReturnsNilWhenCommandSucceeds", func(t *testing.T) {

		client := NewClient("true", t.TempDir())

		// act
		err := client.Build(context.Background(), "Vehicles.sln", api.VerbosityMinimal, "feature-xy-lo-1a2b3c4")

		assert.Nil(t, err)
	})

	t.Run("ReturnsErrorWhenCommandFails", func(t *testing.T) {

		client := NewClient("false", t.TempDir())

		// act
		err := client.Build(context.Background(), "Vehicles.sln", api.VerbosityMinimal, "")

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorWhenBinaryDoesNotExist", func(t *testing.T) {

		client := NewClient("this-binary-does-not-exist", t.TempDir())

		// act
		err := client.Build(context.Background(), "Vehicles.sln", api.VerbosityMinimal, "")

		assert.NotNil(t, err)
	})
}

func TestPublish(t *testing.T) {

	t.Run("PassesNoRestoreAndNoBuild", func(t *testing.T) {

		var stdout bytes.Buffer
		c := NewClient("echo", t.TempDir()).(*client)
		c.stdout = &stdout

		// act
		err := c.Publish(context.Background(), "src/Vehicles.Api", "artifacts/src/Vehicles.Api", "feature-xy-lo")

		assert.Nil(t, err)
		assert.Contains(t, stdout.String(), "--no-restore")
		assert.Contains(t, stdout.String(), "--no-build")
		assert.Contains(t, stdout.String(), "/p:VersionSuffix=feature-xy-lo")
	})
}

func TestTest(t *testing.T) {

	t.Run("ReturnsNilWhenCommandSucceeds", func(t *testing.T) {

		client := NewClient("true", t.TempDir())

		// act
		err := client.Test(context.Background(), "test/Vehicles.Api.UnitTests", map[string]string{
			"DatabaseConnectionString": "host=localhost",
		})

		assert.Nil(t, err)
	})

	t.Run("ReturnsErrorWhenCommandFails", func(t *testing.T) {

		client := NewClient("false", t.TempDir())

		// act
		err := client.Test(context.Background(), "test/Vehicles.Api.UnitTests", nil)

		assert.NotNil(t, err)
	})
}
