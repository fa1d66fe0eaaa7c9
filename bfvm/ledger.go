package bfvm

import "strings"

// Ledger buffers every valid instruction read from the source, in order.
// It only grows.
type Ledger struct {
	ops []Op
}

func (l *Ledger) Append(op Op) int {
	l.ops = append(l.ops, op)
	return len(l.ops) - 1
}

func (l *Ledger) At(i int) Op {
	return l.ops[i]
}

func (l *Ledger) Len() int {
	return len(l.ops)
}

func (l *Ledger) String() string {
	var b strings.Builder
	b.Grow(len(l.ops))
	for _, op := range l.ops {
		b.WriteRune(op.Rune())
	}
	return b.String()
}
