package bfvm

import (
	"bytes"
	"context"
	"errors"
	"io"
	"maps"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/reusee/taibf/sources"
)

func run(t *testing.T, program string, input string, options ...func(*Options)) (*VM, string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	opts := Options{
		Input:  strings.NewReader(input),
		Output: out,
	}
	for _, fn := range options {
		fn(&opts)
	}
	vm := NewVM(opts)
	err := vm.Run(context.Background(), sources.String(program))
	return vm, out.String(), err
}

func mustRun(t *testing.T, program string, input string) (*VM, string) {
	t.Helper()
	vm, out, err := run(t, program, input)
	if err != nil {
		t.Fatal(err)
	}
	return vm, out
}

func TestVM_Output(t *testing.T) {
	_, out := mustRun(t, "+++.", "")
	if out != "\x03" {
		t.Fatalf("got %q", out)
	}
}

func TestVM_NetSum(t *testing.T) {
	vm, _ := mustRun(t, "+++>++<-->>----<<<+", "")
	expected := map[int]int{
		-1: 1,
		0:  1,
		1:  2,
		2:  -4,
	}
	if !maps.Equal(vm.Tape.Cells(), expected) {
		t.Fatalf("got %v", vm.Tape.Cells())
	}
	if vm.Pointer != -1 {
		t.Fatalf("got %v", vm.Pointer)
	}

	// move order does not matter for disjoint cells
	vm2, _ := mustRun(t, "<+>>>----<++<+", "")
	if !maps.Equal(vm2.Tape.Cells(), expected) {
		t.Fatalf("got %v", vm2.Tape.Cells())
	}
}

func TestVM_SkipZeroLoop(t *testing.T) {
	vm, _ := mustRun(t, "[-]", "")
	if vm.Tape.Len() != 0 {
		t.Fatalf("got %v", vm.Tape.Cells())
	}
	if vm.SkipDepth != 0 {
		t.Fatalf("got %v", vm.SkipDepth)
	}
	if len(vm.LoopStarts) != 0 {
		t.Fatalf("got %v", vm.LoopStarts)
	}
	if vm.Ledger.String() != "[-]" {
		t.Fatalf("got %q", vm.Ledger.String())
	}
	// only the loop start was evaluated
	if vm.Steps != 1 {
		t.Fatalf("got %v", vm.Steps)
	}
}

func TestVM_SkipNested(t *testing.T) {
	vm, out := mustRun(t, "[[+.]+.]>+", "")
	if out != "" {
		t.Fatalf("got %q", out)
	}
	if !maps.Equal(vm.Tape.Cells(), map[int]int{1: 1}) {
		t.Fatalf("got %v", vm.Tape.Cells())
	}
}

func TestVM_ClearLoop(t *testing.T) {
	var decrements int
	vm, _ := mustRun(t, "+++[-]", "")
	if vm.Tape.Get(0) != 0 {
		t.Fatalf("got %v", vm.Tape.Get(0))
	}
	for i := 0; i < vm.Ledger.Len(); i++ {
		if vm.Ledger.At(i) == OpDecrement {
			decrements++
		}
	}
	if decrements != 1 {
		t.Fatalf("got %v", decrements)
	}
	// 3 increments, loop start, 3 decrements, loop end evaluated 3 times
	if vm.Steps != 3+1+3+3 {
		t.Fatalf("got %v", vm.Steps)
	}
}

func TestVM_NestedLoops(t *testing.T) {
	vm, _ := mustRun(t, "++[>++[>+<-]<-]", "")
	if !maps.Equal(vm.Tape.Cells(), map[int]int{2: 4}) {
		t.Fatalf("got %v", vm.Tape.Cells())
	}
	if vm.Tape.Get(0) != 0 || vm.Tape.Get(1) != 0 || vm.Tape.Get(2) != 4 {
		t.Fatalf("got %v", vm.Tape.Cells())
	}
	if vm.Pointer != 0 {
		t.Fatalf("got %v", vm.Pointer)
	}
	if vm.Cursor != 14 {
		t.Fatalf("got %v", vm.Cursor)
	}
	if len(vm.LoopStarts) != 0 {
		t.Fatalf("got %v", vm.LoopStarts)
	}
}

func TestVM_Multiply(t *testing.T) {
	// 3 * 4 * 5 with three levels of nesting
	vm, _ := mustRun(t, "+++[>++++[>+++++[>+<-]<-]<-]", "")
	if !maps.Equal(vm.Tape.Cells(), map[int]int{3: 60}) {
		t.Fatalf("got %v", vm.Tape.Cells())
	}
}

func TestVM_HelloWorld(t *testing.T) {
	program := `
++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.
`
	_, out := mustRun(t, program, "")
	if out != "Hello World!\n" {
		t.Fatalf("got %q", out)
	}
}

func TestVM_Comments(t *testing.T) {
	vm, out := mustRun(t, "add two: ++ then print!\n.\tdone", "")
	if out != "\x02" {
		t.Fatalf("got %q", out)
	}
	if vm.Ledger.String() != "++." {
		t.Fatalf("got %q", vm.Ledger.String())
	}
	if vm.Cursor != 2 {
		t.Fatalf("got %v", vm.Cursor)
	}
}

func TestVM_Input(t *testing.T) {
	_, out := mustRun(t, ",+.,.", "a\xff")
	if out != "b\xff" {
		t.Fatalf("got %q", out)
	}

	vm, _ := mustRun(t, ",", "\xfe")
	if vm.Tape.Get(0) != 254 {
		t.Fatalf("got %v", vm.Tape.Get(0))
	}
}

func TestVM_InputInLoop(t *testing.T) {
	// read three bytes, echo each one shifted by one
	_, out := mustRun(t, "+++[>,+.<-]", "abc")
	if out != "bcd" {
		t.Fatalf("got %q", out)
	}
}

func TestVM_InputUnavailable(t *testing.T) {
	vm, _, err := run(t, "+>,", "")
	if !errors.Is(err, ErrInputUnavailable) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, io.EOF) {
		t.Fatalf("got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("got %T", err)
	}
	if e.Op != OpInput || e.Cursor != 2 || e.Pointer != 1 {
		t.Fatalf("got %+v", e)
	}
	if vm.Tape.Get(1) != 0 {
		t.Fatal()
	}

	_, _, err = run(t, ",", "", func(o *Options) {
		o.Input = nil
	})
	if !errors.Is(err, ErrInputUnavailable) {
		t.Fatalf("got %v", err)
	}
}

func TestVM_InputSkipped(t *testing.T) {
	// input inside a skipped loop is never requested
	_, _, err := run(t, "[,]", "")
	if err != nil {
		t.Fatal(err)
	}
}

func TestVM_OutputModulus(t *testing.T) {
	_, out := mustRun(t, strings.Repeat("+", 256)+".", "")
	if out != "\x00" {
		t.Fatalf("got %q", out)
	}
	_, out = mustRun(t, "-.", "")
	if out != "\xff" {
		t.Fatalf("got %q", out)
	}
	_, out = mustRun(t, strings.Repeat("+", 255)+".", "")
	if out != "\xff" {
		t.Fatalf("got %q", out)
	}

	for value, expected := range map[int]byte{
		0:    0,
		1:    1,
		255:  255,
		256:  0,
		257:  1,
		-1:   255,
		-256: 0,
		-257: 255,
		1000: 232,
	} {
		if b := CellByte(value); b != expected {
			t.Fatalf("%d: got %v", value, b)
		}
	}
}

func TestVM_UnboundedCells(t *testing.T) {
	vm, _ := mustRun(t, strings.Repeat("+", 300)+">"+strings.Repeat("-", 300), "")
	if vm.Tape.Get(0) != 300 || vm.Tape.Get(1) != -300 {
		t.Fatalf("got %v", vm.Tape.Cells())
	}
}

func TestVM_Determinism(t *testing.T) {
	program := "+++[>,[>+>+<<-]>[<+>-]<.<-]>>>."
	input := "xyz"
	vm1, out1 := mustRun(t, program, input)
	vm2, out2 := mustRun(t, program, input)
	if out1 != out2 {
		t.Fatalf("got %q %q", out1, out2)
	}
	if !maps.Equal(vm1.Tape.Cells(), vm2.Tape.Cells()) {
		t.Fatalf("got %v %v", vm1.Tape.Cells(), vm2.Tape.Cells())
	}
	if vm1.State().Steps != vm2.State().Steps {
		t.Fatal()
	}
}

func TestVM_UnmatchedLoopEnd(t *testing.T) {
	for _, program := range []string{
		"]",
		"+]",
		"[]]",
		"+[-]]",
	} {
		_, _, err := run(t, program, "")
		if !errors.Is(err, ErrUnmatchedLoopEnd) {
			t.Fatalf("%s: got %v", program, err)
		}
	}

	_, _, err := run(t, "++]", "")
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("got %T", err)
	}
	if e.Op != OpLoopEnd || e.Cursor != 2 {
		t.Fatalf("got %+v", e)
	}
}

func TestVM_UnclosedLoop(t *testing.T) {
	for _, program := range []string{
		"+[",
		"[",
		"+[[-]",
		"[[]",
		"+[>+<-",
	} {
		_, _, err := run(t, program, "")
		if !errors.Is(err, ErrUnclosedLoop) {
			t.Fatalf("%s: got %v", program, err)
		}
	}
}

func TestVM_StepLimit(t *testing.T) {
	_, _, err := run(t, "+[]", "", func(o *Options) {
		o.MaxSteps = 1000
	})
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("got %v", err)
	}

	vm, _, err := run(t, "+++[-]", "", func(o *Options) {
		o.MaxSteps = 10
	})
	if err != nil {
		t.Fatal(err)
	}
	if vm.Steps != 10 {
		t.Fatalf("got %v", vm.Steps)
	}
}

func TestVM_DepthLimit(t *testing.T) {
	program := "++[>++[>+<-]<-]"
	_, _, err := run(t, program, "", func(o *Options) {
		o.MaxDepth = 1
	})
	if !errors.Is(err, ErrDepthLimit) {
		t.Fatalf("got %v", err)
	}
	_, _, err = run(t, program, "", func(o *Options) {
		o.MaxDepth = 2
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestVM_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	vm := NewVM(Options{})
	err := vm.Run(ctx, sources.String("+"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}

	// cancel during replay
	ctx, cancel = context.WithCancel(context.Background())
	vm = NewVM(Options{
		Output: writerFunc(func(b byte) error {
			cancel()
			return nil
		}),
	})
	err = vm.Run(ctx, sources.String("+[.]"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
}

func TestVM_SourceError(t *testing.T) {
	boom := errors.New("boom")
	vm := NewVM(Options{})
	err := vm.Run(context.Background(), sources.Runes(io.MultiReader(
		strings.NewReader("++"),
		iotest.ErrReader(boom),
	)))
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if vm.Tape.Get(0) != 2 {
		t.Fatalf("got %v", vm.Tape.Get(0))
	}
}

func TestVM_OutputError(t *testing.T) {
	boom := errors.New("boom")
	vm := NewVM(Options{
		Output: writerFunc(func(byte) error {
			return boom
		}),
	})
	err := vm.Run(context.Background(), sources.String("+."))
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
}

func TestVM_Flush(t *testing.T) {
	f := &flushWriter{}
	vm := NewVM(Options{
		Output: f,
	})
	if err := vm.Run(context.Background(), sources.String("+.")); err != nil {
		t.Fatal(err)
	}
	if f.flushes != 1 {
		t.Fatalf("got %v", f.flushes)
	}

	f = &flushWriter{}
	vm = NewVM(Options{
		Output: f,
	})
	if err := vm.Run(context.Background(), sources.String("+.]")); !errors.Is(err, ErrUnmatchedLoopEnd) {
		t.Fatalf("got %v", err)
	}
	if f.flushes != 1 {
		t.Fatalf("got %v", f.flushes)
	}
}

func TestVM_Feed(t *testing.T) {
	vm := NewVM(Options{})
	ctx := context.Background()
	for _, r := range "+[" {
		if err := vm.Feed(ctx, r); err != nil {
			t.Fatal(err)
		}
	}
	// the loop body runs live as it streams in
	if len(vm.LoopStarts) != 1 || vm.LoopStarts[0] != 1 {
		t.Fatalf("got %v", vm.LoopStarts)
	}
	if err := vm.Feed(ctx, '-'); err != nil {
		t.Fatal(err)
	}
	if vm.Tape.Get(0) != 0 {
		t.Fatalf("got %v", vm.Tape.Get(0))
	}
	if err := vm.Finish(); !errors.Is(err, ErrUnclosedLoop) {
		t.Fatalf("got %v", err)
	}
	if err := vm.Feed(ctx, ']'); err != nil {
		t.Fatal(err)
	}
	if err := vm.Finish(); err != nil {
		t.Fatal(err)
	}
}

func TestVM_State(t *testing.T) {
	vm, _ := mustRun(t, "+>++ x", "")
	state := vm.State()
	if state.Program != "+>++" {
		t.Fatalf("got %q", state.Program)
	}
	if state.Cursor != 3 || state.Pointer != 1 || state.Steps != 4 {
		t.Fatalf("got %+v", state)
	}
	state.Cells[5] = 5
	if vm.Tape.Get(5) != 0 {
		t.Fatal("state should be a copy")
	}
}

type writerFunc func(byte) error

func (w writerFunc) WriteByte(b byte) error {
	return w(b)
}

type flushWriter struct {
	bytes.Buffer
	flushes int
}

func (f *flushWriter) Flush() error {
	f.flushes++
	return nil
}
