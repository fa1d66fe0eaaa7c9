package bfvm

type Op byte

const (
	OpNoOp Op = iota
	OpIncrement
	OpDecrement
	OpMoveRight
	OpMoveLeft
	OpOutput
	OpInput
	OpLoopStart
	OpLoopEnd
)

var opRunes = [...]rune{
	OpNoOp:      0,
	OpIncrement: '+',
	OpDecrement: '-',
	OpMoveRight: '>',
	OpMoveLeft:  '<',
	OpOutput:    '.',
	OpInput:     ',',
	OpLoopStart: '[',
	OpLoopEnd:   ']',
}

var opNames = [...]string{
	OpNoOp:      "nop",
	OpIncrement: "increment",
	OpDecrement: "decrement",
	OpMoveRight: "move right",
	OpMoveLeft:  "move left",
	OpOutput:    "output",
	OpInput:     "input",
	OpLoopStart: "loop start",
	OpLoopEnd:   "loop end",
}

// Classify maps a source character to its instruction.
// Characters outside the instruction set are OpNoOp.
func Classify(r rune) Op {
	switch r {
	case '+':
		return OpIncrement
	case '-':
		return OpDecrement
	case '>':
		return OpMoveRight
	case '<':
		return OpMoveLeft
	case '.':
		return OpOutput
	case ',':
		return OpInput
	case '[':
		return OpLoopStart
	case ']':
		return OpLoopEnd
	}
	return OpNoOp
}

func (o Op) Rune() rune {
	if int(o) >= len(opRunes) {
		return 0
	}
	return opRunes[o]
}

func (o Op) String() string {
	if int(o) >= len(opNames) {
		return "unknown"
	}
	return opNames[o]
}
