package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHydrateCmd_Use(t *testing.T) {
	assert.Equal(t, "hydrate", hydrateCmd.Use)
}

func TestHydrateCmd_Short(t *testing.T) {
	assert.Equal(t, "Pull remote archives missing from the local index", hydrateCmd.Short)
}

func TestHydrateCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"hydrate"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "(1/1) pulling 2024_01_01_00_00_00.pdf")
	assert.Contains(t, buf.String(), "Hydrated 1 archive(s)")
}
