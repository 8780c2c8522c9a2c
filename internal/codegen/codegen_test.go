package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var sb strings.Builder

	err := Render([]string{"orc named Thug", "rat named Pip"}, &sb)
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, `#include "AppHdr.h"`)
	assert.Contains(t, out, "std::vector<std::string> get_vault_monsters ()")
	assert.Contains(t, out, "vault_monsters.reserve(2);")
	assert.Contains(t, out, `vault_monsters.push_back("orc named Thug");`)
	assert.Contains(t, out, `vault_monsters.push_back("rat named Pip");`)
	assert.Contains(t, out, "return vault_monsters;")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestRenderPreservesOrderAndRepeats(t *testing.T) {
	var sb strings.Builder

	err := Render([]string{"b named X", "a named Y", "b named X"}, &sb)
	require.NoError(t, err)

	out := sb.String()
	first := strings.Index(out, `"b named X"`)
	second := strings.Index(out, `"a named Y"`)
	third := strings.LastIndex(out, `"b named X"`)

	assert.Less(t, first, second)
	assert.Less(t, second, third)
	assert.Equal(t, 2, strings.Count(out, `push_back("b named X")`))
}

func TestRenderReplacesEmbeddedQuotes(t *testing.T) {
	var sb strings.Builder

	err := Render([]string{`orc named "Boss"`}, &sb)
	require.NoError(t, err)

	assert.Contains(t, sb.String(), `push_back("orc named 'Boss'");`)
	assert.NotContains(t, sb.String(), `named "Boss"`)
}

func TestRenderEmptyList(t *testing.T) {
	var sb strings.Builder

	err := Render(nil, &sb)
	require.NoError(t, err)

	assert.Contains(t, sb.String(), "vault_monsters.reserve(0);")
	assert.NotContains(t, sb.String(), "push_back")
}

func TestRenderDeterministic(t *testing.T) {
	specs := []string{"orc named Thug", "rat named Pip"}

	var a, b strings.Builder
	require.NoError(t, Render(specs, &a))
	require.NoError(t, Render(specs, &b))

	assert.Equal(t, a.String(), b.String())
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault_monster_data.cc")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0o644))

	require.NoError(t, Write([]string{"orc named Thug"}, path))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "stale content")
	assert.Contains(t, string(out), `push_back("orc named Thug");`)
}
