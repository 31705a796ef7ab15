package database

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDatabaseName(t *testing.T) {

	t.Run("PrependsSecondPrecisionUTCTimestamp", func(t *testing.T) {

		c := NewClient("localhost", 5432, "postgres", "", "disable").(*client)
		c.nowFunc = func() time.Time {
			return time.Date(2023, 11, 7, 14, 30, 5, 0, time.UTC)
		}

		// act
		name := c.GenerateDatabaseName("vehicles", "feature-xy-lo-1a2b3c4")

		assert.Equal(t, "20231107143005vehiclesfeature-xy-lo-1a2b3c4", name)
	})

	t.Run("DiffersForDifferentPrefixesWithinTheSameSecond", func(t *testing.T) {

		c := NewClient("localhost", 5432, "postgres", "", "disable").(*client)
		c.nowFunc = func() time.Time {
			return time.Date(2023, 11, 7, 14, 30, 5, 0, time.UTC)
		}

		// act
		name1 := c.GenerateDatabaseName("vehicles", "master-1a2b3c4")
		name2 := c.GenerateDatabaseName("apimconsumption", "master-1a2b3c4")

		assert.NotEqual(t, name1, name2)
	})

	t.Run("CollidesForSamePrefixWithinTheSameSecond", func(t *testing.T) {

		// second-resolution timestamps are a documented limitation, two runs
		// on the same prefix within one second produce the same name
		c := NewClient("localhost", 5432, "postgres", "", "disable").(*client)
		c.nowFunc = func() time.Time {
			return time.Date(2023, 11, 7, 14, 30, 5, 0, time.UTC)
		}

		// act
		name1 := c.GenerateDatabaseName("vehicles", "master-1a2b3c4")
		name2 := c.GenerateDatabaseName("vehicles", "master-1a2b3c4")

		assert.Equal(t, name1, name2)
	})

	t.Run("UsesUTCRegardlessOfLocalTimezone", func(t *testing.T) {

		location, err := time.LoadLocation("Europe/Amsterdam")
		if err != nil {
			t.Fatal(err)
		}

		c := NewClient("localhost", 5432, "postgres", "", "disable").(*client)
		c.nowFunc = func() time.Time {
			return time.Date(2023, 11, 7, 15, 30, 5, 0, location)
		}

		// act
		name := c.GenerateDatabaseName("vehicles", "master-1a2b3c4")

		assert.Regexp(t, regexp.MustCompile(`^2023110714`), name)
	})
}

func TestGetConnectionString(t *testing.T) {

	t.Run("UsesAdminCredentialsWhenNoLoginWasCreated", func(t *testing.T) {

		c := NewClient("postgres.ci.internal", 5432, "postgres", "s3cret", "disable")

		// act
		connectionString := c.GetConnectionString("20231107143005vehiclesmaster-1a2b3c4", "", "")

		assert.Equal(t, "Host=postgres.ci.internal;Port=5432;Database=20231107143005vehiclesmaster-1a2b3c4;Username=postgres;Password=s3cret", connectionString)
	})

	t.Run("UsesScopedLoginCredentialsWhenProvided", func(t *testing.T) {

		c := NewClient("postgres.ci.internal", 5432, "postgres", "s3cret", "disable")

		// act
		connectionString := c.GetConnectionString("db1", "db1_login", "generated")

		assert.Equal(t, "Host=postgres.ci.internal;Port=5432;Database=db1;Username=db1_login;Password=generated", connectionString)
	})
}

func TestCreateDatabase(t *testing.T) {

	t.Run("ReturnsErrNotConnectedBeforeConnect", func(t *testing.T) {

		c := NewClient("localhost", 5432, "postgres", "", "disable")

		// act
		err := c.CreateDatabase(context.Background(), "db1")

		assert.Equal(t, ErrNotConnected, err)
	})
}

func TestApplyMigrations(t *testing.T) {

	t.Run("ReturnsErrorForNonExistingMigrationsDir", func(t *testing.T) {

		c := NewClient("localhost", 5432, "postgres", "", "disable")

		// act
		_, err := c.ApplyMigrations(context.Background(), "db1", "does/not/exist")

		assert.NotNil(t, err)
	})
}

func TestDataSourceName(t *testing.T) {

	t.Run("OmitsPasswordWhenEmpty", func(t *testing.T) {

		c := NewClient("localhost", 5432, "postgres", "", "disable").(*client)

		// act
		dataSourceName := c.dataSourceName("postgres")

		assert.Equal(t, "host=localhost port=5432 user=postgres dbname=postgres sslmode=disable", dataSourceName)
	})

	t.Run("AppendsPasswordWhenSet", func(t *testing.T) {

		c := NewClient("localhost", 5432, "postgres", "s3cret", "disable").(*client)

		// act
		dataSourceName := c.dataSourceName("db1")

		assert.Equal(t, "host=localhost port=5432 user=postgres dbname=db1 sslmode=disable password=s3cret", dataSourceName)
	})
}
