package bfvm

const Theory = `
# Streaming Tape Machine Theory

The machine evaluates an eight-instruction tape language while reading the
program as a forward stream. There is no pre-pass and no bracket table.

## 1. State
- **Tape**: sparse map from signed cell index to signed integer. Missing cells are zero.
- **Pointer**: the selected cell.
- **Ledger**: every valid instruction seen so far, in order. It never shrinks.
- **Cursor**: index into the ledger. -1 before the first instruction. Only live instructions advance it.
- **Loop starts**: stack of ledger positions of loops being run.
- **Skip depth**: count of loop starts seen while skipping a loop whose cell was zero.

## 2. Loop start
- Not skipping and the cell is non-zero: push the cursor. The body runs live as it streams in.
- Otherwise: skip depth + 1. Skipped instructions are still buffered.

## 3. Loop end
- Skipping: skip depth - 1.
- Empty loop start stack: fatal, the loop end has no loop start.
- Cell non-zero: replay. Save the cursor, move it to the position after the top loop start,
  re-run buffered instructions up to the saved cursor, restore it. Repeat until the cell is zero.
- Pop the loop start.

Nested loops inside a replayed body go through the same rules recursively; each level saves
and restores its own cursor.

## 4. Termination
- The source running out ends the run. A loop still running or skipped at that point is fatal.
- An input instruction with no byte available is fatal.
- Output is the cell value modulo 256.
`
