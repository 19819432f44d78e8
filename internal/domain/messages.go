package domain

import "fmt"

// Console message texts.
const (
	DoneMessage = "All dependencies installed!"
)

// RunningMessage is printed before an install command starts.
func RunningMessage(command, dir string) string {
	return fmt.Sprintf("==> Running: %s (in %s)", command, dir)
}

// NotFoundMessage is printed when a target directory is missing.
func NotFoundMessage(name string) string {
	return fmt.Sprintf("No %s directory found.", name)
}

// FailedMessage is printed when an install command fails.
func FailedMessage(command string) string {
	return "Error running: " + command
}
