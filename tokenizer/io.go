package tokenizer

import (
	"errors"
	"io"
	"unicode/utf8"
)

var (
	_ io.WriteCloser = (*Tokenizer)(nil)
	_ io.ReaderFrom  = (*Tokenizer)(nil)
)

// Write pushes UTF-8 encoded input. An incomplete UTF-8 sequence at the end of
// p is kept until the next call to Write or Close.
func (t *Tokenizer) Write(p []byte) (int, error) {
	data := append(t.partial, p...)
	n := completePrefix(data)
	t.partial = append([]byte(nil), data[n:]...)
	if err := t.Push(string(data[:n])); err != nil {
		return len(p), err
	}
	return len(p), nil
}

// Close ends the stream (see End).
func (t *Tokenizer) Close() error {
	rest := string(t.partial)
	t.partial = nil
	return t.End(rest)
}

// ReadFrom reads r until EOF, pushing everything read into the tokenizer,
// then ends the stream. Errors of the tokenizer and of r are returned joined.
func (t *Tokenizer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	var errs []error
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		total += int64(n)
		if n > 0 {
			if _, werr := t.Write(buf[:n]); werr != nil {
				errs = append(errs, werr)
				if t.halted {
					t.End("") // resets, returns ErrHalted
					return total, errors.Join(errs...)
				}
			}
		}
		if errors.Is(err, io.EOF) {
			errs = append(errs, t.Close())
			return total, errors.Join(errs...)
		}
		if err != nil {
			t.reset()
			errs = append(errs, err)
			return total, errors.Join(errs...)
		}
	}
}

// completePrefix returns the length of the longest prefix of b which does not
// end inside a UTF-8 sequence.
func completePrefix(b []byte) int {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if utf8.FullRune(b[i:]) {
				return len(b)
			}
			return i
		}
	}
	return len(b)
}
