// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nscolor/cmd/nscolor/cli"
	"github.com/bureau-foundation/nscolor/lib/material"
)

type chainParams struct {
	GlobalParams
	Log bool `flag:"log" desc:"emit the message as a log record on stderr instead of printing it"`
}

func chainCommand(env Environment) *cli.Command {
	var params chainParams

	return &cli.Command{
		Name:    "chain",
		Summary: "Print a message prefixed by its namespace chain",
		Description: `Print a message under a dotted namespace path.

Each level of the path is drawn in its own color, the outermost and
innermost levels inverted, and neighbors are joined by a dash in the
color of the child composed under its parent. The message takes the
color of the whole path.

With --log the message is written as an info record carrying the path
as its namespace attribute, through the same logger nscolor uses for
its own diagnostics.`,
		Usage: "nscolor chain [flags] <namespace.path> <message>...",
		Examples: []cli.Example{
			{
				Description: "Print a chained message",
				Command:     "nscolor chain http-server.router 'route added'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("chain", &params)
		},
		Run: func(args []string) error {
			if len(args) < 2 {
				return cli.Validation("a namespace path and a message are required\n\nUsage: nscolor chain [flags] <namespace.path> <message>...")
			}
			s, err := openSession(env, params.GlobalParams)
			if err != nil {
				return err
			}

			message := strings.Join(args[1:], " ")
			if params.Log {
				s.logger.Info(message, "namespace", args[0])
				return nil
			}
			_, err = fmt.Fprintln(env.Stdout, s.chain.Render(material.ParsePath(args[0]), message))
			return err
		},
	}
}
