package tokenizer

import (
	"errors"

	"github.com/npillmayer/chunklex"
)

// tokenize runs a scanning pass over the carry-over followed by text.
// final is set for the last pass at the end of the stream. Text which cannot
// be finalized yet is left in t.buffered, as a whole.
func (t *Tokenizer) tokenize(text string, final bool) error {
	if t.skipping {
		tracer().Debugf("skipping %d bytes after dead end", len(text))
		t.pos += uint64(len(text))
		return nil
	}
	data := t.buffered + text
	t.buffered = ""
	var errs []error
	for len(data) > 0 {
		if t.splitter != nil {
			if n := t.splitter.leading(data); n > 0 {
				if n == len(data) && !final {
					break // separator may continue in the next chunk
				}
				t.emitter.split(data[:n], t.span(n))
				t.pos += uint64(n)
				data = data[n:]
				continue
			}
		}
		segment, terminated := data, false
		if t.splitter != nil {
			if i := t.splitter.cut(data); i > 0 {
				segment, terminated = data[:i], true
			}
		}
		n, err := t.scan(segment, final || terminated)
		data = data[n:]
		if err != nil {
			if t.policy == Halt {
				t.halted = true
				if t.onError != nil {
					return ErrHalted
				}
				return err
			}
			if t.onError == nil {
				errs = append(errs, err)
			}
			continue
		}
		if n < len(segment) {
			break // held back
		}
	}
	t.buffered = data
	if len(data) > 0 {
		tracer().Debugf("carry-over %q @%d", data, t.pos)
	}
	return errors.Join(errs...)
}

// scan matches tokens from the front of a segment. If the longest match
// consumes everything left of the segment and the segment is not final, the
// rest is held back, as it might be extended by more input.
//
// In split mode, unmatched text of an open segment is held back as well: it
// may turn out to be the start of a separator, and a dead end drops the
// segment as a whole.
//
// scan returns the number of bytes consumed. On a dead end, the error is
// returned. With policy Resume, the rest of the segment counts as consumed.
func (t *Tokenizer) scan(segment string, final bool) (int, error) {
	consumed := 0
	for consumed < len(segment) {
		rest := segment[consumed:]
		m, ok := t.rules.LongestMatch(rest)
		if !ok {
			if !final && t.splitter != nil {
				return consumed, nil
			}
			err := t.deadEnd(rest)
			if t.policy == Resume {
				t.pos += uint64(len(rest))
				consumed = len(segment)
				t.skipping = !final
			}
			return consumed, err
		}
		if m.All && !final {
			return consumed, nil
		}
		t.emitter.token(rest[:m.Length], m.Rule, t.span(m.Length))
		t.pos += uint64(m.Length)
		consumed += m.Length
	}
	return consumed, nil
}

// span returns the span of the next n bytes of pending input.
func (t *Tokenizer) span(n int) chunklex.Span {
	return chunklex.Span{t.pos, t.pos + uint64(n)}
}
