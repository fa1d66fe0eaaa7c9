package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on standard input with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}

// VMGlobals exposes the machine state to the REPL.
func VMGlobals(vm *bfvm.VM) map[string]any {
	state := vm.State()
	return map[string]any{
		"cells":       state.Cells,
		"pointer":     state.Pointer,
		"program":     state.Program,
		"cursor":      state.Cursor,
		"loop_starts": state.LoopStarts,
		"skip_depth":  state.SkipDepth,
		"steps":       state.Steps,
		"cell": func(index int) int {
			return vm.Tape.Get(index)
		},
	}
}
