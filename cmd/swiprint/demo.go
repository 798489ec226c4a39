package main

import (
	"bufio"
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/reglet-dev/swiprint/format"
	"github.com/reglet-dev/swiprint/programs"
)

func demoCmd() *cli.Command {
	return &cli.Command{
		Name:      "demo",
		Usage:     "Run a built-in demonstration program on the host",
		ArgsUsage: "hello | primes [N] | rc4",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := bufio.NewWriter(cmd.Root().Writer)
			e := format.NewWriterEmitter(w)

			var err error
			switch name := cmd.Args().First(); name {
			case "hello":
				programs.Hello(e)
			case "primes":
				if n := cmd.Args().Get(1); n != "" {
					programs.Prime(e, programs.Atod(n))
				} else {
					programs.PrimeDemo(e)
				}
			case "rc4":
				err = programs.RC4Demo(e)
			case "":
				return fmt.Errorf("demo: missing program name (hello, primes, rc4)")
			default:
				return fmt.Errorf("demo: unknown program %q", name)
			}

			if ferr := w.Flush(); err == nil {
				err = ferr
			}
			if err == nil {
				err = e.Err()
			}
			return err
		},
	}
}
