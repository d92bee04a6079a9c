package tokenizer

import (
	"errors"
	"fmt"

	"github.com/npillmayer/chunklex"
)

var (
	// ErrUnmatchedInput is matched by every UnmatchedInputError (see errors.Is).
	ErrUnmatchedInput = errors.New("unmatched input")

	// ErrHalted is returned by a tokenizer which has been stopped by a dead end,
	// until End resets it.
	ErrHalted = errors.New("tokenizer halted")
)

// UnmatchedInputError reports a dead end: no rule matches any prefix of Text.
type UnmatchedInputError struct {
	Text string        // the text which could not be matched
	Span chunklex.Span // position of Text in the input stream
}

func (e *UnmatchedInputError) Error() string {
	return fmt.Sprintf("no rules found to match any part of %q at %s", e.Text, e.Span)
}

// Is makes errors.Is(e, ErrUnmatchedInput) hold.
func (e *UnmatchedInputError) Is(target error) bool {
	return target == ErrUnmatchedInput
}

// DeadEndPolicy tells a tokenizer what to do when no rule matches.
type DeadEndPolicy int

const (
	// Halt stops the tokenizer. Further input is refused with ErrHalted until
	// End resets it. This is the default.
	Halt DeadEndPolicy = iota
	// Resume drops the rest of the current segment and continues scanning.
	// Without split mode, the segment extends to the end of the stream.
	Resume
)

func (p DeadEndPolicy) String() string {
	switch p {
	case Halt:
		return "halt"
	case Resume:
		return "resume"
	}
	return fmt.Sprintf("DeadEndPolicy(%d)", int(p))
}

// Default error reporting function for tokenizers.
func logError(e error) {
	tracer().Errorf("tokenizer error: " + e.Error())
}
