package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	cderror "github.com/msto63/clipdash/foundation/core/error"
	"github.com/msto63/clipdash/internal/clip"
)

var stdinMode bool

var groupCommands = []struct {
	group string
	short string
}{
	{clip.GroupStr, "String transforms on the whole clipboard"},
	{clip.GroupList, "Line transforms on the clipboard"},
	{clip.GroupAction, "Open the clipboard in external programs"},
}

func init() {
	for _, g := range groupCommands {
		groupCmd := &cobra.Command{
			Use:   g.group,
			Short: g.short,
			Long: g.short + `.

The result replaces the clipboard and the status goes to stderr.
With --stdin the input comes from stdin and the result goes to stdout.`,
		}
		groupCmd.PersistentFlags().BoolVar(&stdinMode, "stdin", false, "Read stdin instead of the clipboard and print the result")
		for _, a := range clip.Group(g.group) {
			groupCmd.AddCommand(newActionCmd(a))
		}
		rootCmd.AddCommand(groupCmd)
	}
}

// newActionCmd builds the subcommand running one catalog action
func newActionCmd(a clip.Action) *cobra.Command {
	c := &cobra.Command{
		Use:   a.Name + argHint(a.Uses),
		Short: a.Title,
		Long:  a.Help,
		Args:  cobra.ExactArgs(argCount(a.Uses)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, a, args)
		},
	}
	if argCount(a.Uses) > 0 {
		c.Long += "\n\nArguments starting with '-' go after --, as in:\n  " +
			"clipdash " + a.Group + " " + a.Name + " -- -1"
		c.SetFlagErrorFunc(dashArgError)
	}
	return c
}

// dashArgError explains how to pass an argument such as "-1" that the flag
// parser took for a shorthand flag
func dashArgError(cmd *cobra.Command, err error) error {
	msg := err.Error()
	const prefix = "unknown shorthand flag: '"
	if !strings.HasPrefix(msg, prefix) || len(msg) <= len(prefix) {
		return err
	}
	if c := msg[len(prefix)]; c < '0' || c > '9' {
		return err
	}
	return cderror.Wrap(err, "put -- before arguments starting with '-', as in: "+
		cmd.CommandPath()+" -- -1").
		WithCode(cderror.CodeInvalidInput).
		WithOperation("cli.args")
}

func runAction(cmd *cobra.Command, a clip.Action, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	var port clip.Port
	var input *clip.MemoryClipboard
	if stdinMode {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return cderror.FileRead("cli.stdin", "stdin", err)
		}
		input = clip.NewMemoryClipboard(trimNewline(string(data)))
		port = input
	} else {
		system := clip.NewSystemClipboard(logger)
		if !system.Available() {
			return cderror.New("No clipboard utility found, use --stdin").
				WithCode(cderror.CodeExternalTool).
				WithOperation("cli.clipboard")
		}
		port = system
	}

	// Temp files of the viewer stay behind: the viewer outlives this process
	svc := clip.NewService(port, cfg, logger)

	var runArgs clip.Args
	rest := args
	if a.Uses.Arg1() {
		runArgs.Arg1, rest = rest[0], rest[1:]
	}
	if a.Uses.Arg2() {
		runArgs.Arg2 = rest[0]
	}

	st := svc.Run(cmd.Context(), a.Key(), runArgs)
	if !st.OK() {
		return st.Err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), st.Message)
	if input != nil {
		fmt.Fprintln(cmd.OutOrStdout(), input.Read())
	}
	return nil
}

func argCount(u clip.ArgUse) int {
	n := 0
	if u.Arg1() {
		n++
	}
	if u.Arg2() {
		n++
	}
	return n
}

func argHint(u clip.ArgUse) string {
	var b strings.Builder
	if u.Arg1() {
		b.WriteString(" <arg1>")
	}
	if u.Arg2() {
		b.WriteString(" <arg2>")
	}
	return b.String()
}

// trimNewline drops the line ending a shell pipe adds
func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
