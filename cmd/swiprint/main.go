// Command swiprint formats text with the freestanding printf engine and runs
// guest WebAssembly programs whose only output is the host console.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		var ec exitCodeError
		if errors.As(err, &ec) {
			os.Exit(ec.Code())
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "swiprint",
		Usage:     "Freestanding printf engine and guest console host",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to YAML config file"},
			&cli.StringFlag{Name: "log-level", Usage: "override log level (debug, info, warn, error)"},
			&cli.StringFlag{Name: "log-format", Usage: "override log format (text, json, console)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			printfCmd(),
			demoCmd(),
			runCmd(),
			schemaCmd(),
			probeCmd(),
		},
	}
}

// exitCodeError carries a guest's non-zero exit code out of Run.
type exitCodeError struct {
	code uint32
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Code returns the process exit code.
func (e exitCodeError) Code() int {
	return int(e.code & 0xFF)
}
