package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/student"
	rosterstore "github.com/trezcool/gradebook/storage/roster"
)

var (
	isTerminalFunc = isTerminal // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	svc  *student.Service
	repo *rosterstore.Repository
	out  io.Writer
}

func (cli *commandLine) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Manage the student roster",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errHelp
		},
	}
	root.SetOut(cli.out)
	root.SetErr(cli.out)

	root.AddCommand(
		cli.listCmd(),
		cli.showCmd(),
		cli.addCmd(),
		cli.updateCmd(),
		cli.deleteCmd(),
		cli.resetCmd(),
		cli.statsCmd(),
		cli.subjectsCmd(),
		cli.themeCmd(),
	)
	return root
}

// run executes the command line; args[0] is the program name.
func (cli *commandLine) run(args []string) error {
	root := cli.rootCmd()
	root.SetArgs(args[1:])
	return root.ExecuteContext(context.Background())
}

func (cli *commandLine) colored() bool {
	return isTerminalFunc(cli.out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorize wraps text in a 24-bit ANSI foreground color given as "#rrggbb".
func colorize(text, hex string) string {
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return text
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}

// formatError renders validation errors as "field: message" lines.
func formatError(err error) string {
	flds := core.TranslateErrors(errors.Cause(err))
	if len(flds) == 0 {
		return err.Error()
	}
	lines := make([]string, 0, len(flds))
	for fld, msg := range flds {
		lines = append(lines, fld+": "+msg)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}
