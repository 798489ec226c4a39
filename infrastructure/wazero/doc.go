// Package wazero registers host calls with the wazero runtime.
//
// This package bridges the pure Go host calls in hostfuncs with the wazero
// WebAssembly runtime. Every call is exported from one host module (default
// "armsim") as a function of i32 parameters with no results; guest memory is
// handed to the handler as-is, so pointers in the parameters are read in
// place.
//
// # Basic Usage
//
//	registry, err := hostfuncs.NewRegistry(
//	    hostfuncs.WithBundle(hostfuncs.AllBundles(out)),
//	)
//	if err != nil {
//	    return err
//	}
//
//	runtime := wazero.NewRuntime(ctx)
//	err = wazero.RegisterWithRuntime(ctx, runtime, registry,
//	    wazero.WithCustomHandler(wazero.ExitHandler()),
//	)
//
// A failing host call aborts the guest: the error surfaces from the guest
// function's Call, wrapped by wazero, and errors.Is still matches the
// hostfuncs sentinels.
package wazero
