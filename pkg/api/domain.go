package api

import "fmt"

// Verbosity sets how much output the build engine emits
type Verbosity string

const (
	VerbosityQuiet      Verbosity = "quiet"
	VerbosityMinimal    Verbosity = "minimal"
	VerbosityNormal     Verbosity = "normal"
	VerbosityDetailed   Verbosity = "detailed"
	VerbosityDiagnostic Verbosity = "diagnostic"
)

// ParseVerbosity normalizes a verbosity value, accepting the same
// abbreviations the build engine accepts
func ParseVerbosity(value string) (Verbosity, error) {
	switch value {
	case "q", "quiet":
		return VerbosityQuiet, nil
	case "m", "minimal":
		return VerbosityMinimal, nil
	case "n", "normal":
		return VerbosityNormal, nil
	case "d", "detailed":
		return VerbosityDetailed, nil
	case "diag", "diagnostic":
		return VerbosityDiagnostic, nil
	}

	return VerbosityMinimal, fmt.Errorf("verbosity %v is not supported", value)
}

func (v Verbosity) String() string {
	return string(v)
}
