package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewShellCommand(t *testing.T) {
	cmd := NewShellCommand("bash", "npm install", "/work/backend")

	assert.Equal(t, "bash", cmd.Program)
	assert.Equal(t, []string{"-c", "npm install"}, cmd.Args)
	assert.Equal(t, "/work/backend", cmd.Dir)
	assert.Equal(t, "npm install", cmd.String())
}

func TestNewShellCommand_DefaultShell(t *testing.T) {
	cmd := NewShellCommand("", "yarn install", "")

	assert.Equal(t, DefaultShell, cmd.Program)
	assert.Equal(t, []string{"-c", "yarn install"}, cmd.Args)
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand("npm", []string{"ci", "--no-audit"}, "/tmp")

	assert.Equal(t, "npm", cmd.Program)
	assert.Equal(t, "/tmp", cmd.Dir)
	assert.Equal(t, "npm ci --no-audit", cmd.String())
}

func TestExecCommand_String_WithoutDisplay(t *testing.T) {
	cmd := &ExecCommand{Program: "pnpm", Args: []string{"install"}}
	assert.Equal(t, "pnpm install", cmd.String())
}
