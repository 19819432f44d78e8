package domain

import "path/filepath"

// Target is a project subdirectory whose dependencies get installed.
type Target struct {
	Name string // Label used in console notices ("backend")
	Dir  string // Path relative to the base directory
}

// Target names.
const (
	TargetBackend  = "backend"
	TargetFrontend = "frontend"
)

// DefaultTargets returns the install targets in processing order.
// Backend always comes before frontend.
func DefaultTargets() []Target {
	return []Target{
		{Name: TargetBackend, Dir: TargetBackend},
		{Name: TargetFrontend, Dir: TargetFrontend},
	}
}

// Path returns the absolute target directory under baseDir.
func (t Target) Path(baseDir string) string {
	if filepath.IsAbs(t.Dir) {
		return filepath.Clean(t.Dir)
	}
	return filepath.Join(baseDir, t.Dir)
}
