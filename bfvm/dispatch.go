package bfvm

import (
	"context"
	"fmt"
)

// Feed reads one character of the program. Valid instructions are buffered
// in the ledger before they run.
func (v *VM) Feed(ctx context.Context, r rune) error {
	op := Classify(r)
	if op == OpNoOp {
		return nil
	}
	v.Ledger.Append(op)
	v.Cursor++
	if v.options.Trace {
		v.logger.DebugContext(ctx, "instruction",
			"op", op,
			"cursor", v.Cursor,
			"pointer", v.Pointer,
			"skip", v.SkipDepth,
		)
	}
	return v.exec(ctx, op)
}

func (v *VM) exec(ctx context.Context, op Op) error {
	switch op {
	case OpLoopStart:
		return v.loopStart()
	case OpLoopEnd:
		return v.loopEnd(ctx)
	}

	if v.SkipDepth > 0 {
		return nil
	}
	if err := v.count(op); err != nil {
		return err
	}

	switch op {

	case OpIncrement:
		v.Tape.Modify(v.Pointer, 1)

	case OpDecrement:
		v.Tape.Modify(v.Pointer, -1)

	case OpMoveRight:
		v.Pointer++

	case OpMoveLeft:
		v.Pointer--

	case OpOutput:
		if v.options.Output == nil {
			return nil
		}
		if err := v.options.Output.WriteByte(CellByte(v.Tape.Get(v.Pointer))); err != nil {
			return v.fail(op, fmt.Errorf("write output: %w", err))
		}

	case OpInput:
		if v.options.Input == nil {
			return v.fail(op, ErrInputUnavailable)
		}
		b, err := v.options.Input.ReadByte()
		if err != nil {
			return v.fail(op, fmt.Errorf("%w: %w", ErrInputUnavailable, err))
		}
		v.Tape.Set(v.Pointer, int(b))

	}

	return nil
}

// CellByte reduces a cell value to the byte it outputs as.
func CellByte(value int) byte {
	return byte(((value % 256) + 256) % 256)
}
