package changelog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuild(t *testing.T) {
	messages := []string{
		"feat(parser): add streaming mode",
		"fix: handle empty input",
		"docs: update readme",
		"merge branch 'main' into feature",
		"perf(query)!: rework index layout",
		"refactor(core): extract methods",
		"custom!: rename public api",
		"chore: update dependencies",
		"feat: add export command",
	}

	c := Build("kommit", "1.3.0", messages)

	require.False(t, c.IsEmpty())
	assert.Equal(t, "kommit", c.Project)
	assert.Equal(t, "1.3.0", c.Version)

	labels := make([]string, 0, len(c.Sections))
	for _, s := range c.Sections {
		labels = append(labels, s.Label)
	}
	// fixed section order, breaking first
	assert.Equal(t, []string{BreakingLabel, "Feat", "Fix", "Refactor"}, labels)

	breaking := c.Sections[0]
	require.Len(t, breaking.Entries, 2)
	assert.Equal(t, "perf", breaking.Entries[0].ChangeType)
	assert.True(t, breaking.Entries[0].Breaking)
	// the word!: fallback lands in the breaking section with its type passed through
	assert.Equal(t, "custom", breaking.Entries[1].ChangeType)
	assert.True(t, breaking.Entries[1].Breaking)

	feats := c.Sections[1]
	require.Len(t, feats.Entries, 2)
	// input order preserved within a section
	assert.Equal(t, "add streaming mode", feats.Entries[0].Subject)
	assert.Equal(t, "parser", feats.Entries[0].Scope)
	assert.Equal(t, "add export command", feats.Entries[1].Subject)

	// docs, chore, merge commits are filtered out
	assert.Equal(t, 6, c.Count())
}

func TestBuildEmpty(t *testing.T) {
	c := Build("kommit", "", []string{"merge branch", "WIP", "docs: notes"})
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Count())
}

func TestRenderMarkdownString(t *testing.T) {
	c := Build("kommit", "1.1.0", []string{
		"feat(parser): add streaming mode",
		"fix: handle empty input",
		"refactor!: drop config v0 support",
	})

	out, err := RenderMarkdownString(c)
	require.NoError(t, err)

	contains := []string{
		"## kommit 1.1.0",
		"### " + BreakingLabel,
		"- drop config v0 support",
		"### Feat",
		"- **parser**: add streaming mode",
		"### Fix",
		"- handle empty input",
	}
	for _, s := range contains {
		assert.Contains(t, out, s)
	}

	// breaking section renders before the type sections
	assert.Less(t, strings.Index(out, BreakingLabel), strings.Index(out, "Feat"))
}

func TestRenderMarkdownUnreleased(t *testing.T) {
	c := Build("", "", []string{"fix: one"})

	out, err := RenderMarkdownString(c)
	require.NoError(t, err)
	assert.Contains(t, out, "## Unreleased")
}

func TestRenderYAMLRoundTrip(t *testing.T) {
	c := Build("kommit", "2.0.0", []string{
		"feat: add export command",
		"fix(cli)!: change exit codes",
	})

	var buf bytes.Buffer
	require.NoError(t, RenderYAML(c, &buf))

	var decoded Changelog
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, c, decoded)
}

func TestFormatTerminalPlain(t *testing.T) {
	c := Build("kommit", "1.2.0", []string{
		"feat(parser): add streaming mode",
		"fix: handle empty input",
	})

	var buf bytes.Buffer
	require.NoError(t, FormatTerminal(c, &buf, FormatOptions{Plain: true, MaxWidth: 80}))

	out := buf.String()
	assert.Contains(t, out, "kommit 1.2.0")
	assert.Contains(t, out, "Feat")
	assert.Contains(t, out, "  - parser: add streaming mode")
	assert.Contains(t, out, "  - handle empty input")
}

func TestWrapText(t *testing.T) {
	wrapped := wrapText("a long entry that should wrap at the configured terminal width boundary", 30, "    ")
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			assert.LessOrEqual(t, len(line), 30)
		} else {
			assert.True(t, strings.HasPrefix(line, "    "))
		}
	}
}
