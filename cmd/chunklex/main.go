package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/chunklex"
	"github.com/npillmayer/chunklex/ruleset"
	"github.com/npillmayer/chunklex/tokenizer"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	rulesf := flag.String("rules", "", "Rule-set file (.yaml or .toml), built-in rules if empty")
	inputf := flag.String("input", "", "Input file")
	chunk := flag.Int("chunk", 4096, "Chunk size in bytes")
	tree := flag.Bool("tree", false, "Print segments and tokens as a tree")
	interactive := flag.Bool("repl", false, "Read input interactively, line by line")
	printRules := flag.Bool("print-rules", false, "Print the rule set as YAML and exit")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	//
	// set up the tokenizer
	desc, err := loadRules(*rulesf)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	if *printRules {
		if err := desc.Encode(os.Stdout, ruleset.YAML); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
		return
	}
	if fp, err := desc.Fingerprint(); err == nil {
		tracer().Infof("rule set fingerprint is %s", fp)
	}
	out := &printer{tree: *tree}
	tok, err := desc.Build(tokenizer.Notify(out))
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	out.tok = tok
	//
	// stream the input
	if *interactive {
		if err := repl(tok); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
		return
	}
	in, closer, err := openInput(*inputf, flag.Args())
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	defer closer()
	if err := feed(tok, in, *chunk); err != nil {
		pterm.Error.Println(err.Error())
		closer()
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func loadRules(filename string) (*ruleset.Description, error) {
	if filename == "" {
		tracer().Infof("no rule-set file given, using built-in rules")
		return ruleset.Default(), nil
	}
	return ruleset.Load(filename)
}

// openInput selects the input source: a file, the command line arguments or
// standard input.
func openInput(filename string, args []string) (io.Reader, func(), error) {
	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to open input file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
	if len(args) > 0 {
		return strings.NewReader(strings.Join(args, " ")), func() {}, nil
	}
	return os.Stdin, func() {}, nil
}

// feed pushes the content of r to tok in chunks of size n and ends the stream.
func feed(tok *tokenizer.Tokenizer, r io.Reader, n int) error {
	if n <= 0 {
		_, err := tok.ReadFrom(r)
		return err
	}
	buf := make([]byte, n)
	var errs []error
	for {
		k, err := io.ReadFull(r, buf)
		if k > 0 {
			if _, werr := tok.Write(buf[:k]); werr != nil {
				if errors.Is(werr, tokenizer.ErrHalted) {
					tok.End("") // reset; the dead end has been reported already
					return errors.Join(errs...)
				}
				errs = append(errs, werr)
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			tok.End("")
			return fmt.Errorf("error reading input: %w", err)
		}
	}
	if err := tok.Close(); err != nil && !errors.Is(err, tokenizer.ErrHalted) {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// repl starts interactive mode. Every line is pushed as a chunk, including its
// line break.
func repl(tok *tokenizer.Tokenizer) error {
	rl, err := readline.New("chunklex> ")
	if err != nil {
		return err
	}
	defer rl.Close()
	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if err := tok.Push(line + "\n"); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	if err := tok.End(""); err != nil {
		pterm.Error.Println(err.Error())
	}
	println("Good bye!")
	return nil
}

// --- Output ----------------------------------------------------------------

// printer is the tokenizer listener of the CLI. It either prints tokens as they
// arrive or collects them for printing a tree at the end of the stream.
type printer struct {
	tok       *tokenizer.Tokenizer
	tree      bool
	collector tokenizer.Collector
}

var _ tokenizer.Listener = (*printer)(nil)

func (p *printer) Token(tok chunklex.Token) {
	if p.tree {
		p.collector.Token(tok)
		return
	}
	pterm.Println(fmt.Sprintf("%-14s %-12s %q", tok.Span(), tok.Type(), tok.Content()))
}

func (p *printer) Split(sep string, at chunklex.Span) {
	if p.tree {
		p.collector.Split(sep, at)
		return
	}
	pterm.Println(fmt.Sprintf("%-14s %-12s %q", at, "--", sep))
}

func (p *printer) Done() {
	if p.tree {
		renderSegments(p.collector.Segments())
		p.collector.Reset()
	}
	if p.tok != nil {
		st := p.tok.Stats()
		tracer().Infof("%d tokens, %d ignored, %d separators, %d dead ends",
			st.Tokens, st.Ignored, st.Splits, st.DeadEnds)
	}
}

func renderSegments(segs [][]chunklex.Token) {
	ll := pterm.LeveledList{}
	for i, seg := range segs {
		ll = append(ll, pterm.LeveledListItem{
			Level: 0,
			Text:  fmt.Sprintf("segment %d %s", i+1, tokenizer.SpanOf(seg)),
		})
		for _, tok := range seg {
			ll = append(ll, pterm.LeveledListItem{
				Level: 1,
				Text:  tok.Debug(),
			})
		}
	}
	if len(ll) == 0 {
		pterm.Info.Println("no tokens")
		return
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
