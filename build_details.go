package dirattrs

import (
	"fmt"
	"runtime"
)

var (
	// version is set via ldflags during release builds.
	// For development builds, this will show "dev"
	version = "dev"
	// commit is the short git hash, set via ldflags
	commit = "unknown"
	// buildTime is an RFC3339 timestamp, set via ldflags
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the module was built from, or 'unknown'.
func Commit() string {
	return commit
}

// BuildTime returns the build timestamp, or 'unknown'.
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version.
func GoVersion() string {
	return runtime.Version()
}

// BuildInfo returns every build detail on one line.
func BuildInfo() string {
	return fmt.Sprintf("dirattrs Version: %s, Commit: %s, Build Time: %s, Go Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
