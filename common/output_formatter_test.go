package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatKV(t *testing.T) {
	t.Parallel()

	t.Run("aligns keys", func(t *testing.T) {
		t.Parallel()

		output := FormatKV([]string{
			"Commit|abc1234",
			"Build Time|2026-08-31",
		})

		require.Equal(t, "Commit     = abc1234\nBuild Time = 2026-08-31", output)
	})

	t.Run("missing value renders placeholder", func(t *testing.T) {
		t.Parallel()

		output := FormatKV([]string{
			"Address|",
			"Chain|17000",
		})

		require.Contains(t, output, "<none>")
	})
}

type fakeCmdResult struct {
	output string
}

func (r *fakeCmdResult) GetOutput() string {
	return r.output
}

func TestTextOutputFormatter(t *testing.T) {
	t.Parallel()

	formatter := &textOutputFormatter{}

	_, err := formatter.Write([]byte("progress"))
	require.NoError(t, err)

	formatter.SetCommandResult(&fakeCmdResult{output: "done"})
	formatter.SetError(errors.New("boom"))

	require.NotNil(t, formatter.result)
	require.Error(t, formatter.err)
}
