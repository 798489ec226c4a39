package wazero

import (
	"context"
	"log/slog"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/sys"

	"github.com/reglet-dev/swiprint/hostfuncs"
)

// DefaultModuleName is the host module guests import their calls from.
const DefaultModuleName = "armsim"

// AdapterConfig holds configuration for the wazero adapter.
type AdapterConfig struct {
	// ModuleName is the host module name (default: "armsim").
	ModuleName string

	// CustomHandlers allows adding wazero-specific handlers that need the
	// module itself rather than just its memory (e.g., exit).
	CustomHandlers []CustomHandler
}

// CustomHandler represents a wazero handler that bypasses the registry.
type CustomHandler struct {
	// Name is the exported function name.
	Name string

	// Handler is the wazero GoModuleFunc implementation.
	Handler api.GoModuleFunc

	// ParamTypes are the WASM parameter types.
	ParamTypes []api.ValueType

	// ResultTypes are the WASM result types.
	ResultTypes []api.ValueType
}

// AdapterOption configures the adapter.
type AdapterOption func(*AdapterConfig)

// WithModuleName sets the host module name (default: "armsim").
func WithModuleName(name string) AdapterOption {
	return func(c *AdapterConfig) {
		if name != "" {
			c.ModuleName = name
		}
	}
}

// WithCustomHandler adds a custom wazero handler.
func WithCustomHandler(h CustomHandler) AdapterOption {
	return func(c *AdapterConfig) {
		c.CustomHandlers = append(c.CustomHandlers, h)
	}
}

// defaultAdapterConfig returns the default adapter configuration.
func defaultAdapterConfig() AdapterConfig {
	return AdapterConfig{
		ModuleName: DefaultModuleName,
	}
}

// RegisterWithRuntime registers all calls from a HandlerRegistry with a wazero
// runtime, as exports of one host module.
//
// Each exported function takes the call's Params i32 values and returns
// nothing. The wrapper decodes the parameters, invokes the registry with the
// calling module's memory, and panics with the handler's error so wazero
// aborts the guest and returns that error from the guest's Call.
func RegisterWithRuntime(ctx context.Context, runtime wazero.Runtime, registry *hostfuncs.HandlerRegistry, opts ...AdapterOption) error {
	cfg := defaultAdapterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	builder := runtime.NewHostModuleBuilder(cfg.ModuleName)

	for _, name := range registry.Names() {
		sc, _ := registry.Lookup(name)
		funcName := name // capture for closure
		params := make([]api.ValueType, sc.Params)
		for i := range params {
			params[i] = api.ValueTypeI32
		}
		builder.NewFunctionBuilder().
			WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
				handleRegistryCall(ctx, mod, stack, registry, funcName, len(params))
			}), params, []api.ValueType{}).
			Export(funcName)
	}

	for _, ch := range cfg.CustomHandlers {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(ch.Handler, ch.ParamTypes, ch.ResultTypes).
			Export(ch.Name)
	}

	_, err := builder.Instantiate(ctx)
	return err
}

// handleRegistryCall handles a host call from WASM.
func handleRegistryCall(ctx context.Context, mod api.Module, stack []uint64, registry *hostfuncs.HandlerRegistry, name string, n int) {
	params := make([]uint32, n)
	for i := range params {
		params[i] = api.DecodeU32(stack[i])
	}

	var mem hostfuncs.Memory = hostfuncs.SliceMemory(nil)
	if m := mod.Memory(); m != nil {
		mem = m
	}

	if err := registry.Invoke(ctx, name, mem, params); err != nil {
		args := append([]any{"function", name}, logAttrs(ctx, mod)...)
		slog.ErrorContext(ctx, "wazero: host call failed", append(args, "error", err)...)
		panic(err)
	}
}

// ExitHandler returns the exit(code) call. It closes the calling module with
// code and unwinds the guest with a *sys.ExitError, the way WASI proc_exit
// does.
func ExitHandler() CustomHandler {
	return CustomHandler{
		Name: "exit",
		Handler: api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
			code := api.DecodeU32(stack[0])
			_ = mod.CloseWithExitCode(ctx, code)
			panic(sys.NewExitError(code))
		}),
		ParamTypes:  []api.ValueType{api.ValueTypeI32},
		ResultTypes: []api.ValueType{},
	}
}
