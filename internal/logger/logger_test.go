package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebug(t *testing.T) {
	t.Run("prints when verbose", func(t *testing.T) {
		var buf bytes.Buffer
		SetOutput(&buf)
		SetVerbose(true)
		defer func() {
			SetVerbose(false)
			SetOutput(os.Stderr)
		}()

		Debug("processing %s", "page_1.png")

		assert.Equal(t, "[DEBUG] processing page_1.png\n", buf.String())
	})

	t.Run("silent when not verbose", func(t *testing.T) {
		var buf bytes.Buffer
		SetOutput(&buf)
		SetVerbose(false)
		defer SetOutput(os.Stderr)

		Debug("processing %s", "page_1.png")
		Info("pulled %d", 3)
		Warn("slow OCR")
		Section("Scan")

		assert.Empty(t, buf.String())
	})
}

func TestSection(t *testing.T) {
	t.Run("prints header when verbose", func(t *testing.T) {
		var buf bytes.Buffer
		SetOutput(&buf)
		SetVerbose(true)
		defer func() {
			SetVerbose(false)
			SetOutput(os.Stderr)
		}()

		Section("Hydrate")

		assert.Equal(t, "\n=== Hydrate ===\n", buf.String())
	})
}
