package common

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
)

type ICommandResult interface {
	GetOutput() string
}

type OutputFormatter interface {
	io.Writer

	SetError(err error)
	SetCommandResult(result ICommandResult)
	WriteOutput()
}

func InitializeOutputter(_ *cobra.Command) OutputFormatter {
	return &textOutputFormatter{}
}

// FormatKV aligns "key|value" lines into a key = value table for CLI output.
func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}

type textOutputFormatter struct {
	buffer bytes.Buffer
	result ICommandResult
	err    error
}

var _ OutputFormatter = (*textOutputFormatter)(nil)

func (of *textOutputFormatter) Write(p []byte) (int, error) {
	return of.buffer.Write(p)
}

func (of *textOutputFormatter) SetError(err error) {
	of.err = err
}

func (of *textOutputFormatter) SetCommandResult(result ICommandResult) {
	of.result = result
}

func (of *textOutputFormatter) WriteOutput() {
	if of.buffer.Len() > 0 {
		_, _ = of.buffer.WriteTo(os.Stdout)
	}

	if of.err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", of.err)

		return
	}

	if of.result != nil {
		_, _ = fmt.Fprintln(os.Stdout, of.result.GetOutput())

		of.result = nil
	}
}
