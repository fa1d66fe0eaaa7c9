package bfvm

import (
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/logs"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
}

type MakeVM func(input io.ByteReader, output io.ByteWriter) *VM

func (Module) MakeVM(
	logger logs.Logger,
	maxSteps bfconfigs.MaxSteps,
	maxDepth bfconfigs.MaxDepth,
	trace bfconfigs.Trace,
) MakeVM {
	return func(input io.ByteReader, output io.ByteWriter) *VM {
		return NewVM(Options{
			Input:    input,
			Output:   output,
			Logger:   logger,
			MaxSteps: int(maxSteps),
			MaxDepth: int(maxDepth),
			Trace:    bool(trace),
		})
	}
}
