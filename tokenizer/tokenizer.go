package tokenizer

import (
	"errors"
	"unicode/utf8"

	"github.com/npillmayer/chunklex"
	"github.com/npillmayer/chunklex/rule"
)

// Tokenizer is an incremental tokenizer. Create one with New, register rules,
// then push chunks of input and finally call End.
//
// Rules and ignored types have to be set up before the first chunk is pushed.
type Tokenizer struct {
	rules    *rule.Table
	emitter  emitter
	splitter *splitter
	stepSize int
	policy   DeadEndPolicy
	onError  func(error) // error handler, may be nil
	buffered string      // carry-over: pending text which could not be finalized yet
	pos      uint64      // stream offset of the first byte of buffered
	halted   bool        // a dead end stopped the tokenizer
	skipping bool        // dropping input up to the end of the stream
	partial  []byte      // incomplete UTF-8 sequence from Write
}

// New creates a tokenizer without any rules.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{
		rules:   rule.NewTable(),
		emitter: newEmitter(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// --- Setup -----------------------------------------------------------------

// AddRule registers a rule matching m, producing tokens of type typ.
// An optional filter may disable the rule for a given candidate text.
//
// A nil matcher or an empty type label are rejected with rule.ErrInvalidRule.
func (t *Tokenizer) AddRule(m rule.Matcher, typ string, filter ...rule.Filter) error {
	_, err := t.rules.Register(m, typ, firstFilter(filter))
	return err
}

// AddBuiltin registers a built-in rule (rule.Whitespace, rule.Word, rule.Number).
func (t *Tokenizer) AddBuiltin(name string, filter ...rule.Filter) error {
	_, err := t.rules.RegisterBuiltin(name, firstFilter(filter))
	return err
}

func firstFilter(filters []rule.Filter) rule.Filter {
	if len(filters) == 0 {
		return nil
	}
	return filters[0]
}

// Ignore sets token types which will be matched, but not delivered.
func (t *Tokenizer) Ignore(types ...string) {
	for _, typ := range types {
		t.emitter.ignore(typ)
	}
}

// Ignored returns the ignored token types in ascending order.
func (t *Tokenizer) Ignored() []string {
	return t.emitter.ignoredTypes()
}

// Rules returns the rule table of t.
func (t *Tokenizer) Rules() *rule.Table {
	return t.rules
}

// SetErrorHandler sets an error handler for the tokenizer. A nil handler
// removes the current one. With an error handler set, dead ends are no longer
// returned by Push and End (see Push).
func (t *Tokenizer) SetErrorHandler(h func(error)) {
	t.onError = h
}

// Stats returns counters for the current stream.
func (t *Tokenizer) Stats() Stats {
	return t.emitter.stats
}

// Buffered returns the carry-over text, i.e. text which has been matched
// completely but may still be extended by the next chunk.
func (t *Tokenizer) Buffered() string {
	return t.buffered
}

// --- Streaming -------------------------------------------------------------

// Push feeds a chunk of input into the tokenizer. Tokens are delivered to the
// listener before Push returns, except for text held back as carry-over.
//
// Dead ends (see UnmatchedInputError) are reported exactly once: to the error
// handler, if one is set, otherwise as the return value of the call which ran
// into them. With policy Halt, the tokenizer then refuses further input and
// every call up to and including End returns ErrHalted. This includes the
// failing call itself if the dead end went to the error handler. With policy
// Resume, scanning continues and dead ends returned by a single call are joined.
func (t *Tokenizer) Push(chunk string) error {
	if t.halted {
		return ErrHalted
	}
	var errs []error
	for _, step := range t.steps(chunk) {
		if err := t.tokenize(step, false); err != nil {
			errs = append(errs, err)
		}
		if t.halted {
			break
		}
	}
	return errors.Join(errs...)
}

// End pushes a last chunk, which may be empty, and signals the end of the stream.
// The carry-over is finalized: it is either delivered as tokens or reported
// as a dead end. End notifies the listener with Done and resets t for a new
// stream, even if errors occurred.
func (t *Tokenizer) End(chunk string) error {
	defer t.reset()
	if t.halted {
		t.emitter.done()
		return ErrHalted
	}
	var errs []error
	if chunk != "" {
		if err := t.Push(chunk); err != nil {
			errs = append(errs, err)
		}
	}
	if !t.halted {
		if err := t.tokenize("", true); err != nil {
			errs = append(errs, err)
		}
	}
	t.emitter.done()
	tracer().Debugf("end of stream, %d tokens", t.emitter.stats.Tokens)
	return errors.Join(errs...)
}

func (t *Tokenizer) reset() {
	t.buffered = ""
	t.pos = 0
	t.halted = false
	t.skipping = false
	t.partial = nil
	t.emitter.stats = Stats{}
}

// steps cuts a chunk into pieces of at most stepSize bytes, but never inside
// a UTF-8 sequence.
func (t *Tokenizer) steps(chunk string) []string {
	if t.stepSize <= 0 || len(chunk) <= t.stepSize {
		return []string{chunk}
	}
	var steps []string
	for len(chunk) > 0 {
		n := t.stepSize
		if n >= len(chunk) {
			n = len(chunk)
		}
		for n < len(chunk) && !utf8.RuneStart(chunk[n]) {
			n++
		}
		steps = append(steps, chunk[:n])
		chunk = chunk[n:]
	}
	return steps
}

// deadEnd reports text which no rule matches.
func (t *Tokenizer) deadEnd(text string) error {
	err := &UnmatchedInputError{
		Text: text,
		Span: chunklex.Span{t.pos, t.pos + uint64(len(text))},
	}
	t.emitter.stats.DeadEnds++
	tracer().Infof("dead end: %v", err)
	if t.onError != nil {
		t.onError(err)
	}
	return err
}

// --- Options ---------------------------------------------------------------

// Option configures a tokenizer.
type Option func(t *Tokenizer)

// StepSize lets a tokenizer process chunks in pieces of at most n bytes.
// 0 disables sub-chunking. Step size does not change the resulting tokens.
func StepSize(n int) Option {
	return func(t *Tokenizer) {
		if n < 0 {
			n = 0
		}
		t.stepSize = n
	}
}

// Split switches on split mode, cutting the input into segments at sep.
func Split(sep Separator) Option {
	return func(t *Tokenizer) {
		if sep == nil {
			t.splitter = nil
			return
		}
		t.splitter = &splitter{sep: sep}
	}
}

// Classify sets a classifier which may override token types.
func Classify(c Classifier) Option {
	return func(t *Tokenizer) {
		t.emitter.classify = c
	}
}

// Notify sets the listener receiving tokens and separators.
func Notify(l Listener) Option {
	return func(t *Tokenizer) {
		if l == nil {
			l = ListenerFuncs{}
		}
		t.emitter.listener = l
	}
}

// OnDeadEnd sets the policy for unmatched input.
//
// With policy Resume, the rest of the segment containing the dead end is
// dropped. In split mode, scanning continues with the next separator. Without
// split mode the rest of the stream forms a single segment, so all input up to
// End is dropped.
func OnDeadEnd(p DeadEndPolicy) Option {
	return func(t *Tokenizer) {
		t.policy = p
	}
}

// ErrorHandler sets an error handler (see SetErrorHandler).
func ErrorHandler(h func(error)) Option {
	return func(t *Tokenizer) {
		t.onError = h
	}
}

// LogErrors installs an error handler which traces errors.
func LogErrors() Option {
	return ErrorHandler(logError)
}
