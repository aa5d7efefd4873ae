// Package terminal provides helpers for detecting whether a stream is attached
// to an interactive terminal and whether the current process runs in a
// CI/non-interactive environment.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"TRAVIS",                 // Travis CI
	"CIRCLECI",               // Circle CI
	"JENKINS_URL",            // Jenkins
	"BUILD_NUMBER",           // Jenkins/TeamCity/etc
	"GITLAB_CI",              // GitLab CI
	"APPVEYOR",               // AppVeyor
	"BUILDKITE",              // Buildkite
	"DRONE",                  // Drone CI
	"TF_BUILD",               // Azure DevOps
}

// FileDescriptor is implemented by streams backed by an OS file descriptor,
// such as *os.File.
type FileDescriptor interface {
	Fd() uintptr
}

// IsTerminal reports whether stream is backed by a file descriptor that is
// connected to a terminal. Streams without a descriptor (pipes wrapped in
// readers, in-memory buffers) are never terminals.
func IsTerminal(stream any) bool {
	fd, ok := stream.(FileDescriptor)
	if !ok {
		return false
	}
	// A nil *os.File still satisfies the interface.
	if f, isFile := stream.(*os.File); isFile && f == nil {
		return false
	}
	return term.IsTerminal(int(fd.Fd()))
}

// DetectorOptions contains options for controlling interactive detection
type DetectorOptions struct {
	ForceInteractive    bool // Force interactive mode regardless of environment
	ForceNonInteractive bool // Force non-interactive mode regardless of environment
}

// InteractiveDetector interface defines methods for detecting interactive terminal capabilities
type InteractiveDetector interface {
	IsInteractive() bool
	IsTerminal() bool
	IsCIEnvironment() bool
}

// DefaultInteractiveDetector implements InteractiveDetector for a single output stream.
type DefaultInteractiveDetector struct {
	options DetectorOptions
	stream  any
}

// NewInteractiveDetector creates a detector that checks stderr.
func NewInteractiveDetector(options DetectorOptions) InteractiveDetector {
	return NewStreamDetector(os.Stderr, options)
}

// NewStreamDetector creates a detector for the given stream.
func NewStreamDetector(stream any, options DetectorOptions) InteractiveDetector {
	return &DefaultInteractiveDetector{
		options: options,
		stream:  stream,
	}
}

// IsInteractive returns true if the current environment is interactive
func (d *DefaultInteractiveDetector) IsInteractive() bool {
	// Priority 1: Command line options (highest priority)
	if d.options.ForceInteractive {
		return true
	}
	if d.options.ForceNonInteractive {
		return false
	}

	// Priority 2: CI environment detection
	if d.IsCIEnvironment() {
		return false
	}

	// Priority 3: Terminal detection
	return d.IsTerminal()
}

// IsTerminal checks if the detector's stream is connected to a terminal
func (d *DefaultInteractiveDetector) IsTerminal() bool {
	return IsTerminal(d.stream)
}

// IsCIEnvironment checks if the current environment is a CI/CD system
func (d *DefaultInteractiveDetector) IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		if value := os.Getenv(envVar); value != "" {
			// Special handling for CI variable - should be truthy
			if envVar == "CI" {
				return isCITruthy(value)
			}
			// For other CI variables, presence indicates CI environment
			return true
		}
	}

	return false
}

// isCITruthy checks if a CI environment variable value should be considered "true"
// CI=false or CI=0 should not be considered a CI environment
func isCITruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower != "false" && lower != "0" && lower != "no"
}
