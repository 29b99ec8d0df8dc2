// Package version provides centralized version information for NameForge projects.
// This package supports independent versioning for the nameforged daemon and the
// nameforge CLI as separate projects within the monorepo, allowing them to evolve
// independently while maintaining consistency within each project's components.
// All versions follow semantic versioning (semver) conventions.

package version

// NameforgedVersion holds the current nameforged daemon version.
// Format: major.minor.patch[-prerelease][+build]
const NameforgedVersion = "0.1.0-dev"

// NameforgeVersion holds the current nameforge CLI version.
// This is used by the CLI binary and allows independent evolution
// of the command-line tool separate from the daemon.
// Format: major.minor.patch[-prerelease][+build]
const NameforgeVersion = "0.1.0-dev"
