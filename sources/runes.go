package sources

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
)

// Runes reads r one rune at a time, only as the sequence is consumed.
// io.EOF ends the sequence; other read errors are yielded once.
func Runes(r io.Reader) iter.Seq2[rune, error] {
	runeReader, ok := r.(io.RuneReader)
	if !ok {
		runeReader = bufio.NewReader(r)
	}
	return func(yield func(rune, error) bool) {
		for {
			c, _, err := runeReader.ReadRune()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(c, nil) {
				return
			}
		}
	}
}

func String(s string) iter.Seq2[rune, error] {
	return Runes(strings.NewReader(s))
}

// Shared wraps r so that it can serve as both program source and input
// bytes. Input instructions consume the bytes following what the program
// has read so far.
func Shared(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}
