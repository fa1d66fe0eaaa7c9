package bfvm

import "context"

func (v *VM) loopStart() error {
	if v.SkipDepth > 0 {
		v.SkipDepth++
		return nil
	}
	if err := v.count(OpLoopStart); err != nil {
		return err
	}
	if v.Tape.Get(v.Pointer) != 0 {
		v.LoopStarts = append(v.LoopStarts, v.Cursor)
		return nil
	}
	v.SkipDepth++
	return nil
}

func (v *VM) loopEnd(ctx context.Context) error {
	if v.SkipDepth > 0 {
		v.SkipDepth--
		return nil
	}
	if len(v.LoopStarts) == 0 {
		return v.fail(OpLoopEnd, ErrUnmatchedLoopEnd)
	}
	if err := v.count(OpLoopEnd); err != nil {
		return err
	}

	if v.Tape.Get(v.Pointer) != 0 {
		if err := v.replay(ctx); err != nil {
			return err
		}
	}

	v.LoopStarts = v.LoopStarts[:len(v.LoopStarts)-1]
	return nil
}

// replay runs the buffered loop body until the current cell is zero.
// The cursor is back on the loop end when it returns without error.
func (v *VM) replay(ctx context.Context) error {
	v.depth++
	defer func() {
		v.depth--
	}()
	if v.options.MaxDepth > 0 && v.depth > v.options.MaxDepth {
		return v.fail(OpLoopEnd, ErrDepthLimit)
	}

	iterations := 0
	for v.Tape.Get(v.Pointer) != 0 {
		if err := ctx.Err(); err != nil {
			return v.fail(OpLoopEnd, err)
		}

		present := v.Cursor
		v.Cursor = v.LoopStarts[len(v.LoopStarts)-1] + 1
		for v.Cursor < present {
			if err := v.exec(ctx, v.Ledger.At(v.Cursor)); err != nil {
				return err
			}
			v.Cursor++
		}
		v.Cursor = present

		iterations++
		// the loop end is evaluated again
		if err := v.count(OpLoopEnd); err != nil {
			return err
		}
	}

	if v.options.Trace {
		v.logger.DebugContext(ctx, "loop done",
			"start", v.LoopStarts[len(v.LoopStarts)-1],
			"end", v.Cursor,
			"iterations", iterations,
			"depth", v.depth,
		)
	}
	return nil
}
