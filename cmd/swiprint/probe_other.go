//go:build !linux

package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"
)

func probeCmd() *cli.Command {
	return &cli.Command{
		Name:  "probe",
		Usage: "Print the terminal attributes of standard input (linux only)",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return errors.New("probe: only supported on linux")
		},
	}
}
