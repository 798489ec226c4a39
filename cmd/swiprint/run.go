package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/reglet-dev/swiprint/host"
	"github.com/reglet-dev/swiprint/hostfuncs"
)

// runReport is the --json output of run.
type runReport struct {
	Program   string                   `json:"program"`
	ID        string                   `json:"id,omitempty"`
	Output    string                   `json:"output"`
	ExitCode  uint32                   `json:"exit_code"`
	Duration  string                   `json:"duration"`
	Truncated bool                     `json:"truncated"`
	Error     *hostfuncs.ErrorResponse `json:"error,omitempty"`
}

func runCmd() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:      "run",
		Usage:     "Run a guest WebAssembly program",
		ArgsUsage: "PROGRAM.wasm",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "capture output and print a JSON report", Destination: &asJSON},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("run: missing PROGRAM.wasm")
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			wasm, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}

			root := cmd.Root()
			opts := []host.Option{
				host.WithConfig(cfg),
				host.WithLogger(newLogger(cfg.Log, root.ErrWriter)),
			}
			var out *bufio.Writer
			if !asJSON {
				out = bufio.NewWriter(root.Writer)
				opts = append(opts, host.WithOutput(out))
			}

			exec, err := host.NewExecutor(ctx, opts...)
			if err != nil {
				return err
			}
			defer func() { _ = exec.Close(ctx) }()

			name := filepath.Base(path)
			res, runErr := exec.RunProgram(ctx, name, wasm)

			if asJSON {
				report := runReport{
					Program:   name,
					Output:    exec.Output(),
					ExitCode:  res.ExitCode,
					Duration:  res.Duration.Round(time.Microsecond).String(),
					Truncated: res.Truncated,
					Error:     hostfuncs.ToErrorResponse(runErr),
				}
				if res.ID != uuid.Nil {
					report.ID = res.ID.String()
				}
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(root.Writer, "%s\n", data); err != nil {
					return err
				}
			} else if err := out.Flush(); err != nil {
				return err
			}

			if runErr != nil {
				return runErr
			}
			if res.ExitCode != 0 {
				return exitCodeError{code: res.ExitCode}
			}
			return nil
		},
	}
}
