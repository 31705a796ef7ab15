package pipeline

import "github.com/helix-ci/helix-ci-runner/pkg/api"

// BuildVersion holds the version strings derived from branch, build id and
// commit hash at the start of a run
type BuildVersion struct {
	Branch      string
	Revision    string
	Suffix      string
	BuildSuffix string
	CommitHash  string
}

// Databases holds the outcome of the provisioning stage; the connection
// strings are handed to the test processes as explicit environment variables
type Databases struct {
	Created           []string
	ConnectionStrings map[string]string
}

// RunOptions carries the per-run parameters passed on the command line
type RunOptions struct {
	Branch             string
	BuildID            string
	Verbosity          api.Verbosity
	ZipDestination     string
	MainDatabasePrefix string
	ApimDatabasePrefix string
}
