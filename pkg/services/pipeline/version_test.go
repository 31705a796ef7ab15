package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveRevision(t *testing.T) {

	t.Run("ZeroPadsNumericBuildIDToFiveDigits", func(t *testing.T) {

		// act
		revision := deriveRevision("123")

		assert.Equal(t, "00123", revision)
	})

	t.Run("KeepsSixDigitBuildID", func(t *testing.T) {

		// act
		revision := deriveRevision("123456")

		assert.Equal(t, "123456", revision)
	})

	t.Run("ReturnsLocalSentinelForEmptyBuildID", func(t *testing.T) {

		// act
		revision := deriveRevision("")

		assert.Equal(t, "lo", revision)
	})

	t.Run("ReturnsLocalSentinelForNonNumericBuildID", func(t *testing.T) {

		// act
		revision := deriveRevision("abc")

		assert.Equal(t, "lo", revision)
	})
}

func TestDeriveSuffix(t *testing.T) {

	t.Run("ReturnsEmptySuffixForMasterWithRealBuildID", func(t *testing.T) {

		// act
		suffix := deriveSuffix("master", "00123")

		assert.Equal(t, "", suffix)
	})

	t.Run("ReturnsSuffixForMasterWithoutBuildID", func(t *testing.T) {

		// act
		suffix := deriveSuffix("master", "lo")

		assert.Equal(t, "master-lo", suffix)
	})

	t.Run("TruncatesBranchToTenCharacters", func(t *testing.T) {

		// act
		suffix := deriveSuffix("feature-xyz", "lo")

		assert.Equal(t, "feature-xy-lo", suffix)
	})

	t.Run("KeepsShortBranchIntact", func(t *testing.T) {

		// act
		suffix := deriveSuffix("develop", "00042")

		assert.Equal(t, "develop-00042", suffix)
	})
}

func TestDeriveBuildSuffix(t *testing.T) {

	t.Run("AppendsCommitHashToSuffix", func(t *testing.T) {

		// act
		buildSuffix := deriveBuildSuffix("feature-xyz", "feature-xy-lo", "1a2b3c4")

		assert.Equal(t, "feature-xy-lo-1a2b3c4", buildSuffix)
	})

	t.Run("UsesBranchWhenSuffixIsEmpty", func(t *testing.T) {

		// act
		buildSuffix := deriveBuildSuffix("master", "", "1a2b3c4")

		assert.Equal(t, "master-1a2b3c4", buildSuffix)
	})
}
