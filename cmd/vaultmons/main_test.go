package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qoala/monster/internal/config"
	"github.com/qoala/monster/internal/scanner"
)

func TestGenerateEndToEnd(t *testing.T) {
	require.NoError(t, config.Init())

	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "a.des"),
		[]byte("MONS: orc named Thug/goblin, kobold\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "builder"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "builder", "b.des"),
		[]byte("MONS: rat\n"), 0o644))

	output := filepath.Join(t.TempDir(), "vault_monster_data.cc")
	require.NoError(t, generate(root, output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `vault_monsters.push_back("orc named Thug");`)
	assert.Equal(t, 1, strings.Count(out, "push_back"))
	assert.Contains(t, out, "vault_monsters.reserve(1);")
	assert.NotContains(t, out, "goblin")
	assert.NotContains(t, out, "kobold")
	assert.NotContains(t, out, `"rat"`)
}

func TestGenerateDeterministic(t *testing.T) {
	require.NoError(t, config.Init())

	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "a.des"),
		[]byte("MONS: orc named Thug/troll named Crusher\nKMONS: D = rat named Pip\n"), 0o644))

	outDir := t.TempDir()
	first := filepath.Join(outDir, "first.cc")
	second := filepath.Join(outDir, "second.cc")

	require.NoError(t, generate(root, first))
	require.NoError(t, generate(root, second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateMissingDesFolder(t *testing.T) {
	require.NoError(t, config.Init())

	output := filepath.Join(t.TempDir(), "out.cc")
	err := generate(filepath.Join(t.TempDir(), "does-not-exist"), output)

	assert.ErrorIs(t, err, scanner.ErrNotDirectory)
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "output must not be written on scan failure")
}
