package host

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/reglet-dev/swiprint/application/config"
	"github.com/reglet-dev/swiprint/hostfuncs"
	wazeroadapter "github.com/reglet-dev/swiprint/infrastructure/wazero"
)

// Executor manages a wazero runtime and the guest programs loaded into it.
type Executor struct {
	runtime  wazero.Runtime
	registry *hostfuncs.HandlerRegistry
	console  console
	capture  *hostfuncs.BoundedBuffer
	output   io.Writer
	logger   *slog.Logger
	cfg      config.Config
}

// NewExecutor creates a new executor with the given options.
//
// Without WithOutput, console output is captured and available from Output.
// Without WithRegistry, the registry holds the console and diagnostics calls
// behind panic recovery and logging middleware.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{cfg: config.Default()}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid executor config: %w", err)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	if e.output != nil {
		e.console = newStreamConsole(e.output, e.cfg.Console.MaxOutput)
	} else {
		e.capture = hostfuncs.NewBoundedBuffer(e.cfg.Console.MaxOutput)
		e.console = e.capture
	}

	// Default registry if not provided
	if e.registry == nil {
		reg, err := hostfuncs.NewRegistry(
			hostfuncs.WithMiddleware(
				hostfuncs.PanicRecoveryMiddleware(),
				hostfuncs.LoggingMiddleware(e.logger),
			),
			hostfuncs.WithBundle(hostfuncs.AllBundles(e.console,
				hostfuncs.WithMaxStringLen(e.cfg.Host.MaxStringLen))),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create default registry: %w", err)
		}
		e.registry = reg
	}

	rt := wazero.NewRuntime(ctx)
	e.runtime = rt

	if e.cfg.Host.WASI {
		if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
			_ = rt.Close(ctx)
			return nil, fmt.Errorf("failed to instantiate WASI: %w", err)
		}
	}

	adapterOpts := []wazeroadapter.AdapterOption{
		wazeroadapter.WithModuleName(e.cfg.Host.ModuleName),
	}
	if !e.registry.Has("exit") {
		adapterOpts = append(adapterOpts, wazeroadapter.WithCustomHandler(wazeroadapter.ExitHandler()))
	}
	if err := wazeroadapter.RegisterWithRuntime(ctx, rt, e.registry, adapterOpts...); err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	return e, nil
}

// Close releases resources held by the executor, including every program
// still loaded.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Output returns the captured console output. It is empty when the executor
// streams to a writer given with WithOutput.
func (e *Executor) Output() string {
	if e.capture == nil {
		return ""
	}
	return e.capture.String()
}

// Truncated reports whether console output went past the configured limit.
func (e *Executor) Truncated() bool {
	return e.console.Truncated()
}

// RunProgram loads wasm under name, runs it to completion and unloads it.
func (e *Executor) RunProgram(ctx context.Context, name string, wasm []byte) (RunResult, error) {
	p, err := e.LoadProgram(ctx, name, wasm)
	if err != nil {
		return RunResult{}, err
	}
	defer func() { _ = p.Close(ctx) }()
	return p.Run(ctx)
}
