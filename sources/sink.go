package sources

import (
	"bufio"
	"io"
)

type Sink = *bufio.Writer

func NewSink(w io.Writer) Sink {
	return bufio.NewWriter(w)
}

// FlushBeforeRead flushes sink before every byte read from input, so
// prompts are visible before the program blocks on input.
func FlushBeforeRead(input io.ByteReader, sink Sink) io.ByteReader {
	return flushingReader{
		input: input,
		sink:  sink,
	}
}

type flushingReader struct {
	input io.ByteReader
	sink  Sink
}

func (f flushingReader) ReadByte() (byte, error) {
	if err := f.sink.Flush(); err != nil {
		return 0, err
	}
	return f.input.ReadByte()
}
