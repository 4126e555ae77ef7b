package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trezcool/gradebook/core/student"
)

func (cli *commandLine) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Print or change the display theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(student.ThemeLight), string(student.ThemeDark), "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if args[0] == "toggle" {
					if _, err := cli.svc.ToggleTheme(cmd.Context()); err != nil {
						return err
					}
				} else if err := cli.svc.SetTheme(cmd.Context(), student.Theme(args[0])); err != nil {
					return err
				}
			}
			fmt.Fprintf(cli.out, "theme: %s\n", cli.svc.Theme())
			return nil
		},
	}
}
