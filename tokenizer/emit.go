package tokenizer

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/chunklex"
	"github.com/npillmayer/chunklex/rule"
)

// Classifier may override the type of a token. It is called with the content
// of every finalized match and the rule which matched it. If ok is false, the
// type of the rule is used.
type Classifier func(content string, r *rule.Rule) (typ string, ok bool)

// Listener receives the output of a tokenizer.
type Listener interface {
	Token(tok chunklex.Token)                // a token has been finalized
	Split(separator string, at chunklex.Span) // split mode only: a separator has been consumed
	Done()                                    // end of stream
}

// ListenerFuncs adapts functions to the Listener interface. Nil functions
// are skipped.
type ListenerFuncs struct {
	OnToken func(chunklex.Token)
	OnSplit func(string, chunklex.Span)
	OnDone  func()
}

var _ Listener = ListenerFuncs{}

func (l ListenerFuncs) Token(tok chunklex.Token) {
	if l.OnToken != nil {
		l.OnToken(tok)
	}
}

func (l ListenerFuncs) Split(sep string, at chunklex.Span) {
	if l.OnSplit != nil {
		l.OnSplit(sep, at)
	}
}

func (l ListenerFuncs) Done() {
	if l.OnDone != nil {
		l.OnDone()
	}
}

// Stats counts the output of a tokenizer.
type Stats struct {
	Tokens   int // tokens delivered to the listener
	Ignored  int // tokens matched, but not delivered because of their type
	Splits   int // separators consumed in split mode
	DeadEnds int // unmatched input occurrences
}

// emitter turns finalized matches into tokens.
type emitter struct {
	ignored  *treeset.Set // type labels not to deliver
	classify Classifier
	listener Listener
	stats    Stats
}

func newEmitter() emitter {
	return emitter{
		ignored:  treeset.NewWith(utils.StringComparator),
		listener: ListenerFuncs{},
	}
}

func (e *emitter) ignore(typ string) {
	e.ignored.Add(typ)
}

func (e *emitter) isIgnored(typ string) bool {
	return e.ignored.Contains(typ)
}

func (e *emitter) ignoredTypes() []string {
	types := make([]string, 0, e.ignored.Size())
	for _, v := range e.ignored.Values() {
		types = append(types, v.(string))
	}
	return types
}

// token resolves the type of a match and delivers a token, unless the type is
// ignored. It returns false for ignored tokens.
func (e *emitter) token(content string, r *rule.Rule, span chunklex.Span) (chunklex.Token, bool) {
	typ := r.Type()
	if e.classify != nil {
		if t, ok := e.classify(content, r); ok {
			typ = t
		}
	}
	if e.isIgnored(typ) {
		tracer().Debugf("ignoring %s %q", typ, content)
		e.stats.Ignored++
		return chunklex.Token{}, false
	}
	tok := chunklex.MakeToken(content, typ, span)
	tracer().Debugf("token %s", tok.Debug())
	e.stats.Tokens++
	e.listener.Token(tok)
	return tok, true
}

func (e *emitter) split(sep string, span chunklex.Span) {
	tracer().Debugf("split %q @%s", sep, span)
	e.stats.Splits++
	e.listener.Split(sep, span)
}

func (e *emitter) done() {
	e.listener.Done()
}
