// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is a node in the nscolor command tree. A leaf sets Run; a group
// such as "cache" sets Subcommands and is dispatched on its first
// positional argument.
type Command struct {
	// Name is what the user types, e.g. "resolve".
	Name string

	// Summary is the one-liner in the parent's command listing.
	Summary string

	// Description replaces Summary at the top of the command's own help.
	Description string

	// Usage overrides the synthesized usage line, e.g.
	// "nscolor resolve [flags] <namespace>...".
	Usage string

	Examples []Example

	// Flags builds a fresh flag set. It is called once for parsing and
	// again for help or suggestions, so it must not share state beyond
	// the params struct it binds. Nil means the command takes no flags.
	Flags func() *pflag.FlagSet

	Subcommands []*Command

	// Run receives the positional arguments left after flag parsing. A
	// command with both Run and Subcommands runs when no subcommand
	// name matches.
	Run func(args []string) error

	// HelpOutput receives help text. Unset commands inherit it from their
	// parent, falling back to os.Stderr.
	HelpOutput io.Writer

	// parent is set on dispatch.
	parent *Command
}

// Example is one annotated command line in help output.
type Example struct {
	Description string
	Command     string
}

// Execute routes args through the tree and runs the matched command.
// Unknown names and bad flags come back as Validation errors.
func (c *Command) Execute(args []string) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(c.helpOutput())
		return nil
	}

	if len(c.Subcommands) > 0 && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		sub, err := c.subcommand(args[0])
		if err != nil {
			return err
		}
		return sub.Execute(args[1:])
	}

	if len(c.Subcommands) > 0 && c.Run == nil {
		c.PrintHelp(c.helpOutput())
		if len(args) == 0 {
			return Validation("subcommand required")
		}
		return Validation("subcommand required (got flag %q)", args[0])
	}

	positional, err := c.parseFlags(args)
	if err != nil {
		return err
	}

	if c.Run == nil {
		c.PrintHelp(c.helpOutput())
		return fmt.Errorf("no action defined for %q", c.fullName())
	}
	return c.Run(positional)
}

// subcommand finds the child named name and links it to c.
func (c *Command) subcommand(name string) (*Command, error) {
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			sub.parent = c
			return sub, nil
		}
	}
	if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
		return nil, Validation("unknown command %q (did you mean %q?)%s", name, suggestion, c.helpFooter())
	}
	return nil, Validation("unknown command %q%s", name, c.helpFooter())
}

// parseFlags parses args against c.Flags and returns the positional rest.
func (c *Command) parseFlags(args []string) ([]string, error) {
	if c.Flags == nil {
		return args, nil
	}
	flagSet := c.Flags()
	// Errors are reported through the returned ToolError, not pflag's
	// own usage dump.
	flagSet.SetOutput(io.Discard)
	if err := flagSet.Parse(args); err != nil {
		message := err.Error()
		if strings.Contains(message, "unknown flag") || strings.Contains(message, "unknown shorthand flag") {
			// A failed Parse leaves the set half-filled, so suggest
			// against a fresh one.
			if suggestion := suggestFlag(args, c.Flags()); suggestion != "" {
				return nil, Validation("%s (did you mean %s?)%s", message, suggestion, c.helpFooter())
			}
		}
		return nil, Validation("%s%s", message, c.helpFooter())
	}
	return flagSet.Args(), nil
}

func (c *Command) helpFooter() string {
	return fmt.Sprintf("\n\nRun '%s --help' for usage.", c.fullName())
}

// PrintHelp writes the description, usage line, subcommand listing,
// flags, and examples to w.
func (c *Command) PrintHelp(w io.Writer) {
	switch {
	case c.Description != "":
		fmt.Fprintf(w, "%s\n\n", c.Description)
	case c.Summary != "":
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}
	fmt.Fprintf(w, "Usage:\n  %s\n", c.usageLine())

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		table := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(table, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		table.Flush()
	}

	if c.Flags != nil {
		if usage := c.Flags().FlagUsages(); usage != "" {
			fmt.Fprintf(w, "\nFlags:\n%s", usage)
		}
	}

	c.printExamples(w)

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", c.fullName())
	}
}

func (c *Command) usageLine() string {
	switch {
	case c.Usage != "":
		return c.Usage
	case len(c.Subcommands) > 0:
		return c.fullName() + " <command> [flags]"
	default:
		return c.fullName() + " [flags]"
	}
}

func (c *Command) printExamples(w io.Writer) {
	if len(c.Examples) == 0 {
		return
	}
	fmt.Fprintf(w, "\nExamples:\n")
	for _, example := range c.Examples {
		if example.Description == "" {
			fmt.Fprintf(w, "  %s\n", example.Command)
			continue
		}
		fmt.Fprintf(w, "  # %s\n  %s\n\n", example.Description, example.Command)
	}
}

// fullName is the command path from the root, e.g. "nscolor cache list".
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func (c *Command) helpOutput() io.Writer {
	for command := c; command != nil; command = command.parent {
		if command.HelpOutput != nil {
			return command.HelpOutput
		}
	}
	return os.Stderr
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
