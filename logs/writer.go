package logs

import (
	"io"
	"os"
)

// Writer receives terminal log output. Standard output is reserved for
// program output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
