package cliutil_test

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencollector/wheelindex/pkg/cliutil"
)

//nolint:paralleltest // can't use .Parallel() with .Setenv()
func TestHelpTemplate(t *testing.T) {
	t.Setenv("COLUMNS", "80")
	noopRunE := func(_ *cobra.Command, _ []string) error {
		return nil
	}

	cmd := &cobra.Command{
		Use:   "frobnicate [flags] VARS_ARE_UNDERSCORE_AND_CAPITAL",
		Args:  cobra.ExactArgs(1),
		Short: "One line description of program, no period",
		Long: "Longer description of program.  This is a paragraph, and " +
			"it explains what the tool is for.",
		RunE: noopRunE,
	}
	cmd.Flags().BoolP("bar", "b", false, "Barzooble the baz")
	cmd.Flags().StringP("filename", "f", "", "Use `FILENAME` for the thing")
	cmd.AddCommand(&cobra.Command{
		Use:   "example-subcommand [flags]",
		Args:  cobra.ExactArgs(0),
		Short: "One line description of subcommand",
		RunE:  noopRunE,
	})
	cmd.SetHelpTemplate(cliutil.HelpTemplate)

	var out strings.Builder
	cmd.SetOutput(&out)
	cmd.HelpFunc()(cmd, []string{"--help"})
	help := out.String()

	lines := strings.Split(help, "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "Usage: frobnicate [flags] VARS_ARE_UNDERSCORE_AND_CAPITAL", lines[0])
	assert.Contains(t, help, "One line description of program, no period\n")
	assert.Contains(t, help, "Longer description of program.")
	assert.Contains(t, help, "\nAvailable Commands:\n")
	assert.Contains(t, help, "example-subcommand   One line description of subcommand")
	assert.Contains(t, help, "\nFlags:\n")
	assert.Contains(t, help, "-f, --filename FILENAME")
	assert.Contains(t, help, `Use "frobnicate [command] --help" for more information about a command.`)
}

func TestOnlySubcommands(t *testing.T) {
	t.Parallel()
	cmd := &cobra.Command{Use: "frobnicate"}
	assert.NoError(t, cliutil.OnlySubcommands(cmd, nil))
}

func TestWrapPositionalArgs(t *testing.T) {
	t.Parallel()
	cmd := &cobra.Command{Use: "frobnicate"}
	inner := cliutil.WrapPositionalArgs(cobra.ExactArgs(1))
	assert.NoError(t, inner(cmd, []string{"one"}))
}
