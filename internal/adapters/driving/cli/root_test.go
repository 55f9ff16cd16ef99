package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "kartka", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "scan")
	assert.Contains(t, commandNames, "search")
	assert.Contains(t, commandNames, "hydrate")
	assert.Contains(t, commandNames, "serve")
	assert.Contains(t, commandNames, "watch")
	assert.Contains(t, commandNames, "history")
	assert.Contains(t, commandNames, "version")
}

func TestRootCmd_HasPersistentFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}

func TestSetVersion(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	SetVersion("9.9.9")

	assert.Equal(t, "9.9.9", version)
}
