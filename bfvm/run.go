package bfvm

import (
	"context"
	"fmt"
	"iter"
)

type flusher interface {
	Flush() error
}

// Run feeds the whole source to the machine. Exhausting the source is the
// normal end of a run.
func (v *VM) Run(ctx context.Context, source iter.Seq2[rune, error]) (err error) {
	defer func() {
		f, ok := v.options.Output.(flusher)
		if !ok {
			return
		}
		if e := f.Flush(); e != nil && err == nil {
			err = fmt.Errorf("flush output: %w", e)
		}
	}()

	for r, readErr := range source {
		if readErr != nil {
			return fmt.Errorf("read source: %w", readErr)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := v.Feed(ctx, r); err != nil {
			return err
		}
	}

	return v.Finish()
}

// Finish checks that no loop is left open once the source is exhausted.
func (v *VM) Finish() error {
	if len(v.LoopStarts) > 0 || v.SkipDepth > 0 {
		return v.fail(OpLoopStart, fmt.Errorf("%w: %d running, %d skipped",
			ErrUnclosedLoop, len(v.LoopStarts), v.SkipDepth))
	}
	return nil
}
