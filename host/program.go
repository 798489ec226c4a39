package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/sys"

	wazeroadapter "github.com/reglet-dev/swiprint/infrastructure/wazero"
)

// Program is an instantiated guest module.
type Program struct {
	module api.Module
	exec   *Executor
	name   string
}

// RunResult describes one completed run of a program.
type RunResult struct {
	// ID identifies the run in logs.
	ID uuid.UUID `json:"id"`

	// ExitCode is the code passed to exit or proc_exit, or main's return
	// value. Zero when the entry point simply returned.
	ExitCode uint32 `json:"exit_code"`

	// Duration is the wall time spent in the entry point.
	Duration time.Duration `json:"duration"`

	// Truncated is set when console output went past the configured limit.
	Truncated bool `json:"truncated"`
}

// LoadProgram compiles and instantiates a guest module. Start functions are
// not run; Run calls the entry point. WASI stdout and stderr go to the
// executor's console.
func (e *Executor) LoadProgram(ctx context.Context, name string, wasm []byte) (*Program, error) {
	compiled, err := e.runtime.CompileModule(ctx, wasm)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", name, err)
	}

	modCfg := wazero.NewModuleConfig().
		WithName(name).
		WithArgs(name).
		WithStartFunctions().
		WithStdout(e.console).
		WithStderr(e.console)

	mod, err := e.runtime.InstantiateModule(ctx, compiled, modCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate %s: %w", name, err)
	}

	return &Program{module: mod, exec: e, name: name}, nil
}

// Name returns the name the program was loaded under.
func (p *Program) Name() string {
	return p.name
}

// Run calls the program's entry point, _start or else main, and waits for it
// to finish. An exit through exit or proc_exit is a normal completion
// reported in ExitCode; a trap or failed host call is returned as an error.
func (p *Program) Run(ctx context.Context) (RunResult, error) {
	entry := p.module.ExportedFunction("_start")
	if entry == nil {
		entry = p.module.ExportedFunction("main")
	}
	if entry == nil {
		return RunResult{}, fmt.Errorf("program %s exports neither _start nor main", p.name)
	}

	result := RunResult{ID: uuid.New()}
	ctx = wazeroadapter.WithRunID(wazeroadapter.WithProgramName(ctx, p.name), result.ID.String())
	logger := p.exec.logger.With(slog.String("program", p.name), slog.String("run_id", result.ID.String()))
	logger.DebugContext(ctx, "program started")

	start := time.Now()
	results, err := entry.Call(ctx)
	result.Duration = time.Since(start)
	result.Truncated = p.exec.Truncated()

	var exitErr *sys.ExitError
	switch {
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		logger.ErrorContext(ctx, "program failed", slog.Any("error", err))
		return result, fmt.Errorf("program %s: %w", p.name, err)
	case len(results) > 0:
		result.ExitCode = api.DecodeU32(results[0])
	}

	logger.DebugContext(ctx, "program finished",
		slog.Uint64("exit_code", uint64(result.ExitCode)),
		slog.Duration("duration", result.Duration))
	return result, nil
}

// Call invokes an exported function with i32 arguments and returns its i32
// results.
func (p *Program) Call(ctx context.Context, name string, params ...uint32) ([]uint32, error) {
	f := p.module.ExportedFunction(name)
	if f == nil {
		return nil, fmt.Errorf("export %q not found", name)
	}

	args := make([]uint64, len(params))
	for i, v := range params {
		args[i] = api.EncodeU32(v)
	}

	results, err := f.Call(wazeroadapter.WithProgramName(ctx, p.name), args...)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", p.name, name, err)
	}

	out := make([]uint32, len(results))
	for i, r := range results {
		out[i] = api.DecodeU32(r)
	}
	return out, nil
}

// Close releases the program's module.
func (p *Program) Close(ctx context.Context) error {
	return p.module.Close(ctx)
}
