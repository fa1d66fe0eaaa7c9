package runners

import (
	"context"
	"iter"
	"time"

	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/logs"
	"gopkg.in/tomb.v2"
)

// Runner drives one machine over one program in its own goroutine.
// The machine is only touched by that goroutine until Wait returns.
type Runner struct {
	vm      *bfvm.VM
	source  iter.Seq2[rune, error]
	logger  logs.Logger
	newSpan logs.NewSpan

	tomb tomb.Tomb
}

type Start func(ctx context.Context, vm *bfvm.VM, source iter.Seq2[rune, error]) *Runner

func (Module) Start(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Start {
	return func(ctx context.Context, vm *bfvm.VM, source iter.Seq2[rune, error]) *Runner {
		r := &Runner{
			vm:      vm,
			source:  source,
			logger:  logger,
			newSpan: newSpan,
		}
		r.tomb.Go(func() error {
			return r.run(ctx)
		})
		return r
	}
}

func (r *Runner) run(ctx context.Context) error {
	ctx, _ = r.newSpan(r.tomb.Context(ctx), "")
	begin := time.Now()

	err := r.vm.Run(ctx, r.source)

	state := r.vm.State()
	args := []any{
		"steps", state.Steps,
		"instructions", len(state.Program),
		"cells", len(state.Cells),
		"duration", time.Since(begin),
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "run failed", append(args, "error", err)...)
		return logs.WrapSpan(ctx, err)
	}
	r.logger.InfoContext(ctx, "run finished", args...)
	return nil
}

// Stop cancels the run between instructions and waits for it to end.
func (r *Runner) Stop() error {
	r.tomb.Kill(nil)
	return r.tomb.Wait()
}

func (r *Runner) Wait() error {
	return r.tomb.Wait()
}

func (r *Runner) Dead() <-chan struct{} {
	return r.tomb.Dead()
}
