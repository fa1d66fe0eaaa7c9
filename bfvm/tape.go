package bfvm

import "maps"

// Tape is a sparse, unbounded cell store. Absent cells read as zero, and
// cells that return to zero are dropped.
type Tape struct {
	cells map[int]int
}

func NewTape() *Tape {
	return &Tape{
		cells: make(map[int]int),
	}
}

func (t *Tape) Get(index int) int {
	return t.cells[index]
}

func (t *Tape) Set(index int, value int) {
	if value == 0 {
		delete(t.cells, index)
		return
	}
	if t.cells == nil {
		t.cells = make(map[int]int)
	}
	t.cells[index] = value
}

func (t *Tape) Modify(index int, delta int) {
	t.Set(index, t.cells[index]+delta)
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) Cells() map[int]int {
	return maps.Clone(t.cells)
}
