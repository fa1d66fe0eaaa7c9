package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/runners"
	"github.com/reusee/taibf/sources"
	"github.com/reusee/taibf/vars"
)

var (
	programFile = cmds.Var[string]("-file", "read the program from a file")
	programText = cmds.Var[string]("-e", "run the program given as argument")
	programURL  = cmds.Var[string]("-url", "fetch the program over HTTP")
	inputFile   = cmds.Var[string]("-input", "read input bytes from a file instead of standard input")
	tapFlag     = cmds.Switch("-tap", "open a starlark REPL over the final machine state")
)

func init() {
	cmds.Define("-theory", cmds.Func(func() {
		fmt.Print(bfvm.Theory)
		os.Exit(0)
	}).Desc("print how the machine evaluates programs"))
}

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	dscope.New(
		new(runners.Module),
		modes.ForProduction(),
	).Call(func(
		start runners.Start,
		makeVM bfvm.MakeVM,
		fetchURL sources.FetchURL,
		tap debugs.Tap,
		logger logs.Logger,
	) {
		err = run(ctx, start, makeVM, fetchURL, tap, logger)
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	start runners.Start,
	makeVM bfvm.MakeVM,
	fetchURL sources.FetchURL,
	tap debugs.Tap,
	logger logs.Logger,
) error {
	stdin := sources.Shared(os.Stdin)

	source, closeSource, err := openProgram(ctx, stdin, fetchURL)
	if err != nil {
		return err
	}
	defer closeSource()

	var input io.ByteReader = stdin
	if path := vars.DerefOrZero(inputFile); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		input = bufio.NewReader(f)
	}

	sink := sources.NewSink(os.Stdout)
	vm := makeVM(sources.FlushBeforeRead(input, sink), sink)

	err = start(ctx, vm, source).Wait()
	if errors.Is(err, bfvm.ErrInputUnavailable) {
		logger.WarnContext(ctx, "program read past the end of input")
	}

	if *tapFlag {
		tap(ctx, "final state", debugs.VMGlobals(vm))
	}

	return err
}

func openProgram(
	ctx context.Context,
	stdin *bufio.Reader,
	fetchURL sources.FetchURL,
) (iter.Seq2[rune, error], func(), error) {
	switch {

	case *programText != "":
		return sources.String(*programText), func() {}, nil

	case *programFile != "":
		f, err := os.Open(*programFile)
		if err != nil {
			return nil, nil, err
		}
		return sources.Runes(f), func() { f.Close() }, nil

	case *programURL != "":
		body, err := fetchURL(ctx, *programURL)
		if err != nil {
			return nil, nil, err
		}
		return sources.Runes(body), func() { body.Close() }, nil

	}

	// program and input share standard input
	return sources.Runes(stdin), func() {}, nil
}
