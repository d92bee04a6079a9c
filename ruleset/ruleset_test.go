package ruleset

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/chunklex/rule"
	"github.com/npillmayer/chunklex/tokenizer"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.ruleset")
	defer teardown()
	//
	d, err := Load("testdata/numbers.yaml")
	require.NoError(t, err)
	assert.Len(t, d.Rules, 4)
	assert.Equal(t, []string{"whitespace", "comma"}, d.Ignore)
	//
	c := &tokenizer.Collector{}
	tok, err := d.Build(tokenizer.Notify(c))
	require.NoError(t, err)
	require.NoError(t, tok.Push("8, 1000,3"))
	require.NoError(t, tok.End("4.5"))
	var got []string
	for _, tk := range c.Tokens() {
		assert.Equal(t, "number", tk.Type())
		got = append(got, tk.Content())
	}
	assert.Equal(t, []string{"8", "1000", "34.5"}, got)
}

func TestLoadTOML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.ruleset")
	defer teardown()
	//
	d, err := Load("testdata/records.toml")
	require.NoError(t, err)
	assert.Equal(t, `\n+`, d.Split)
	assert.Equal(t, "dfa", d.Rules[2].Mode)
	//
	var deadEnds []error
	c := &tokenizer.Collector{}
	tok, err := d.Build(tokenizer.Notify(c), tokenizer.ErrorHandler(func(err error) {
		deadEnds = append(deadEnds, err)
	}))
	require.NoError(t, err)
	require.NoError(t, tok.End("size = 12\nmode = on\n!broken\nid = 12ab\n"))
	var got []string
	for _, tk := range c.Tokens() {
		got = append(got, tk.Type()+":"+tk.Content())
	}
	assert.Equal(t, []string{
		"key:size", "number:12",
		"key:mode", "keyword:on",
		"key:id", "value:12ab",
	}, got)
	assert.Equal(t, []string{"\n", "\n", "\n", "\n"}, c.Splits())
	require.Len(t, deadEnds, 1)
	assert.True(t, errors.Is(deadEnds[0], tokenizer.ErrUnmatchedInput))
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.ruleset")
	defer teardown()
	//
	for i, test := range []struct {
		yaml string
		err  error
	}{
		{yaml: "rules:\n  - type: x\n", err: rule.ErrNoRuleArguments},
		{yaml: "rules:\n  - pattern: 'x'\n", err: rule.ErrInvalidRule},
		{yaml: "rules:\n  - type: x\n    pattern: 'x'\n    literal: 'x'\n", err: rule.ErrInvalidRule},
		{yaml: "rules:\n  - type: x\n    pattern: 'x'\n    mode: nfa\n", err: rule.ErrInvalidRule},
		{yaml: "rules:\n  - type: x\n    literal: 'x'\n    mode: whole\n", err: rule.ErrInvalidRule},
		{yaml: "dead-end: retry\nrules: []\n", err: rule.ErrInvalidRule},
		{yaml: "step: -1\nrules: []\n", err: rule.ErrInvalidRule},
	} {
		_, err := Parse([]byte(test.yaml), YAML)
		assert.True(t, errors.Is(err, test.err), "test %d: expected %v, have %v", i, test.err, err)
	}
	_, err := Parse([]byte("rules: [ unclosed"), YAML)
	assert.Error(t, err)
	_, err = Parse([]byte("rules = ["), TOML)
	assert.Error(t, err)
	_, err = Load("testdata/rules.json")
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.ruleset")
	defer teardown()
	//
	for i, d := range []*Description{
		{Rules: []Rule{{Type: "x", Pattern: "("}}},
		{Rules: []Rule{{Type: "x", Pattern: "x", Reject: "("}}},
		{Rules: []Rule{{Builtin: "float"}}},
		{Split: `\n*`, Rules: []Rule{{Builtin: "word"}}},
	} {
		_, err := d.Build()
		assert.Error(t, err, "test %d", i)
	}
}

func TestDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.ruleset")
	defer teardown()
	//
	c := &tokenizer.Collector{}
	tok, err := Default().Build(tokenizer.Notify(c))
	require.NoError(t, err)
	require.NoError(t, tok.Push("pi is 3."))
	require.NoError(t, tok.End("14"))
	require.Len(t, c.Events, 3)
	assert.Equal(t, "number", c.Events[2].Type())
	assert.True(t, c.Events[2].Is("3.14"))
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.ruleset")
	defer teardown()
	//
	a, err := Default().Fingerprint()
	require.NoError(t, err)
	b, err := Default().Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, a, b)
	d := Default()
	d.Ignore = nil
	c, err := d.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestEncode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chunklex.ruleset")
	defer teardown()
	//
	for _, format := range []Format{YAML, TOML} {
		var buf bytes.Buffer
		require.NoError(t, Default().Encode(&buf, format))
		d, err := Parse(buf.Bytes(), format)
		require.NoError(t, err, "format %s:\n%s", format, buf.String())
		assert.Equal(t, Default(), d, "format %s", format)
	}
}
