package ruleset

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cnf/structhash"
	"github.com/npillmayer/chunklex/rule"
	"github.com/npillmayer/chunklex/tokenizer"
	"gopkg.in/yaml.v3"
)

// Description represents the structure of a rule-set file.
type Description struct {
	Step    int      `yaml:"step,omitempty" toml:"step,omitempty"`
	Split   string   `yaml:"split,omitempty" toml:"split,omitempty"`       // separator pattern, switches on split mode
	DeadEnd string   `yaml:"dead-end,omitempty" toml:"dead-end,omitempty"` // "halt" or "resume"
	Ignore  []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`
	Rules   []Rule   `yaml:"rules" toml:"rules"`
}

// Rule represents a single rule of a rule-set file. Exactly one of Builtin,
// Pattern, Literal and Literals has to be set.
type Rule struct {
	Type     string   `yaml:"type,omitempty" toml:"type,omitempty"`
	Builtin  string   `yaml:"builtin,omitempty" toml:"builtin,omitempty"`
	Pattern  string   `yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	Mode     string   `yaml:"mode,omitempty" toml:"mode,omitempty"` // prefix | whole | dfa
	Literal  string   `yaml:"literal,omitempty" toml:"literal,omitempty"`
	Literals []string `yaml:"literals,omitempty" toml:"literals,omitempty"`
	Reject   string   `yaml:"reject,omitempty" toml:"reject,omitempty"`
}

// Format is the file format of a description.
type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	if f == TOML {
		return "toml"
	}
	return "yaml"
}

// FormatOf determines the format of a rule-set file from its extension.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return YAML, fmt.Errorf("cannot tell format of rule-set file '%s' from its extension", filename)
}

// Default returns a description using the built-in rules, ignoring whitespace.
func Default() *Description {
	return &Description{
		Ignore: []string{rule.Whitespace},
		Rules: []Rule{
			{Builtin: rule.Whitespace},
			{Builtin: rule.Number},
			{Type: "maybe-float", Pattern: `\d+\.`},
			{Builtin: rule.Word},
		},
	}
}

// Load loads and parses a rule-set file.
func Load(filename string) (*Description, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule-set file '%s': %w", filename, err)
	}
	d, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("rule-set file '%s': %w", filename, err)
	}
	tracer().Infof("loaded %d rules from %s", len(d.Rules), filename)
	return d, nil
}

// Parse parses and validates a description.
func Parse(data []byte, format Format) (*Description, error) {
	var d Description
	switch format {
	case TOML:
		if _, err := toml.Decode(string(data), &d); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Encode writes d in the given format.
func (d *Description) Encode(w io.Writer, format Format) error {
	if format == TOML {
		return toml.NewEncoder(w).Encode(d)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to marshal rule set to YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Fingerprint returns a hash of d. Descriptions with equal content have equal
// fingerprints.
func (d *Description) Fingerprint() (string, error) {
	return structhash.Hash(d, 1)
}

// Validate checks a description for structural errors. It does not compile
// patterns; Build does.
func (d *Description) Validate() error {
	if d.Step < 0 {
		return fmt.Errorf("%w: negative step size %d", rule.ErrInvalidRule, d.Step)
	}
	if _, err := d.deadEndPolicy(); err != nil {
		return err
	}
	for i, r := range d.Rules {
		if err := r.validate(); err != nil {
			return fmt.Errorf("rule #%d: %w", i+1, err)
		}
	}
	return nil
}

func (r Rule) validate() error {
	n := 0
	for _, set := range []bool{r.Builtin != "", r.Pattern != "", r.Literal != "", len(r.Literals) > 0} {
		if set {
			n++
		}
	}
	switch {
	case n == 0:
		return fmt.Errorf("%w: one of builtin, pattern, literal or literals required", rule.ErrNoRuleArguments)
	case n > 1:
		return fmt.Errorf("%w: only one of builtin, pattern, literal or literals allowed", rule.ErrInvalidRule)
	case r.Builtin == "" && r.Type == "":
		return fmt.Errorf("%w: type label missing", rule.ErrInvalidRule)
	}
	switch r.Mode {
	case "", "prefix", "whole", "dfa":
	default:
		return fmt.Errorf("%w: unknown mode %q", rule.ErrInvalidRule, r.Mode)
	}
	if r.Mode != "" && r.Pattern == "" {
		return fmt.Errorf("%w: mode %q requires a pattern", rule.ErrInvalidRule, r.Mode)
	}
	return nil
}

func (d *Description) deadEndPolicy() (tokenizer.DeadEndPolicy, error) {
	switch d.DeadEnd {
	case "", "halt":
		return tokenizer.Halt, nil
	case "resume":
		return tokenizer.Resume, nil
	}
	return tokenizer.Halt, fmt.Errorf("%w: unknown dead-end policy %q", rule.ErrInvalidRule, d.DeadEnd)
}
