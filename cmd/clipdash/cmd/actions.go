package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/msto63/clipdash/internal/clip"
)

var actionsLong bool

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List every action",
	Long: `List every action of the dashboard by group.

Buffer actions work on the dashboard's buffer list and are only available
in the dashboard.

Examples:
  clipdash actions
  clipdash actions --long`,
	RunE: runActions,
}

func init() {
	rootCmd.AddCommand(actionsCmd)

	actionsCmd.Flags().BoolVarP(&actionsLong, "long", "l", false, "Show the help text of each action")
}

func runActions(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	group := ""
	for _, a := range clip.Catalog() {
		if a.Group != group {
			if group != "" {
				fmt.Fprintln(out)
			}
			group = a.Group
			if group == clip.GroupBuffer {
				fmt.Fprintf(out, "%s (dashboard only):\n", group)
			} else {
				fmt.Fprintf(out, "%s:\n", group)
			}
		}

		fmt.Fprintf(out, "  %-32s %s\n", a.Key()+argHint(a.Uses), a.Title)
		if actionsLong {
			for _, line := range strings.Split(ansi.Wordwrap(a.Help, 70, ""), "\n") {
				fmt.Fprintf(out, "      %s\n", line)
			}
		}
	}
	return nil
}
