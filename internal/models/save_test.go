package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")

	g := NewGameState()
	g.StartNew()
	g.Day = 4
	g.Money = 1234
	g.Favorability = 0.63
	require.NoError(t, g.SaveToFile(path))

	loaded := LoadGameState(path)
	assert.Equal(t, g, loaded)
}

func TestLoadMissingFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	loaded := LoadGameState(path)
	assert.True(t, loaded.IsNewGame())
}

func TestLoadMalformedFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	loaded := LoadGameState(path)
	assert.True(t, loaded.IsNewGame())
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "deep", "save.json")

	g := NewGameState()
	g.StartNew()
	require.NoError(t, g.SaveToFile(path))

	assert.FileExists(t, path)
}
