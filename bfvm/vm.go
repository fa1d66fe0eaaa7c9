package bfvm

import (
	"io"
	"log/slog"

	"github.com/reusee/taibf/logs"
)

type Options struct {
	Input    io.ByteReader // if nil, every input instruction fails
	Output   io.ByteWriter // if nil, output is discarded
	Logger   logs.Logger   // if nil, logs are discarded
	MaxSteps int           // 0 for unlimited
	MaxDepth int           // 0 for unlimited
	Trace    bool
}

type VM struct {
	Tape       *Tape
	Pointer    int
	Ledger     *Ledger
	Cursor     int
	LoopStarts []int
	SkipDepth  int
	Steps      int

	depth   int
	options Options
	logger  logs.Logger
}

func NewVM(options Options) *VM {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &VM{
		Tape:    NewTape(),
		Ledger:  new(Ledger),
		Cursor:  -1,
		options: options,
		logger:  logger,
	}
}

// State is a copy of the machine state.
type State struct {
	Cells      map[int]int
	Pointer    int
	Program    string
	Cursor     int
	LoopStarts []int
	SkipDepth  int
	Steps      int
}

func (v *VM) State() State {
	return State{
		Cells:      v.Tape.Cells(),
		Pointer:    v.Pointer,
		Program:    v.Ledger.String(),
		Cursor:     v.Cursor,
		LoopStarts: append([]int(nil), v.LoopStarts...),
		SkipDepth:  v.SkipDepth,
		Steps:      v.Steps,
	}
}

func (v *VM) count(op Op) error {
	v.Steps++
	if v.options.MaxSteps > 0 && v.Steps > v.options.MaxSteps {
		return v.fail(op, ErrStepLimit)
	}
	return nil
}
