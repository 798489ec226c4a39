package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/reglet-dev/swiprint/application/config"
)

func schemaCmd() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print the JSON Schema of the config file",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			data, err := config.Schema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.Root().Writer, "%s\n", data)
			return err
		},
	}
}
