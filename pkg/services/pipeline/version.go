package pipeline

import (
	"fmt"
	"strconv"
)

const (
	// localRevision marks a run without a numeric build id, like a developer machine
	localRevision = "lo"

	branchTruncateLength = 10
	commitHashLength     = 7
)

// deriveRevision zero-pads a numeric build id to 5 digits, anything else
// yields the local sentinel
func deriveRevision(buildID string) string {
	number, err := strconv.Atoi(buildID)
	if err != nil {
		return localRevision
	}
	return fmt.Sprintf("%05d", number)
}

// deriveSuffix is empty only for master builds with a real build id, so
// release packages off master carry no prerelease suffix
func deriveSuffix(branch, revision string) string {
	if branch == "master" && revision != localRevision {
		return ""
	}
	return truncateBranch(branch) + "-" + revision
}

func deriveBuildSuffix(branch, suffix, commitHash string) string {
	if suffix != "" {
		return suffix + "-" + commitHash
	}
	return branch + "-" + commitHash
}

func truncateBranch(branch string) string {
	if len(branch) > branchTruncateLength {
		return branch[:branchTruncateLength]
	}
	return branch
}
