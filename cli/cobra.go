package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}

	if cmd.HasSubCommands() {
		return xerrors.New("\n" + strings.TrimRight(cmd.UsageString(), "\n"))
	}

	return xerrors.Errorf("\"%s\" accepts no argument(s).\nSee '%s --help'.\n\nUsage:  %s\n\n%s",
		cmd.CommandPath(),
		cmd.CommandPath(),
		cmd.UseLine(),
		cmd.Short)
}
