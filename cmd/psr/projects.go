package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (c *cli) projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage saved project aliases",
		Args:  usageArgs(cobra.NoArgs),
	}

	add := &cobra.Command{
		Use:   "add <name> [path]",
		Short: "Save a project directory under an alias",
		Args:  usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "."
			if len(args) == 2 {
				path = args[1]
			}
			if err := c.settings.AddProject(args[0], path); err != nil {
				return err
			}
			if err := c.settings.Save(); err != nil {
				return err
			}
			saved, _ := c.settings.ProjectPath(args[0])
			fmt.Fprintf(c.stdout, "Added project '%s' at '%s'\n", args[0], saved)
			return nil
		},
	}

	var yes bool
	remove := &cobra.Command{
		Use:   "remove <name>",
		Short: "Forget a saved project",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			name := args[0]
			if _, ok := c.settings.ProjectPath(name); ok && !yes {
				confirmed, err := c.confirm(fmt.Sprintf("Remove project '%s'?", name))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintf(c.stdout, "Kept project '%s'\n", name)
					return nil
				}
			}
			if err := c.settings.RemoveProject(name); err != nil {
				return err
			}
			if err := c.settings.Save(); err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Removed project '%s'\n", name)
			return nil
		},
	}
	remove.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	rename := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Change a saved project's alias",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := c.settings.RenameProject(args[0], args[1]); err != nil {
				return err
			}
			if err := c.settings.Save(); err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Renamed project '%s' to '%s'\n", args[0], args[1])
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show saved projects",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(*cobra.Command, []string) error {
			fmt.Fprintln(c.stdout, "Saved projects:")
			for _, p := range c.settings.Projects {
				fmt.Fprintf(c.stdout, "  %s -> %s\n", p.Name, p.Path)
			}
			return nil
		},
	}

	cmd.AddCommand(add, remove, rename, list)
	return cmd
}

// confirm asks a yes/no question when attached to a terminal. Without one
// the answer is yes.
func (c *cli) confirm(msg string) (bool, error) {
	in, inOK := c.stdin.(*os.File)
	out, outOK := c.stdout.(*os.File)
	if !inOK || !outOK || !term.IsTerminal(int(in.Fd())) {
		return true, nil
	}
	ok := false
	err := survey.AskOne(&survey.Confirm{Message: msg}, &ok, survey.WithStdio(in, out, c.stderr))
	if errors.Is(err, terminal.InterruptErr) {
		return false, nil
	}
	return ok, err
}
