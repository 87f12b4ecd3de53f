package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jsonSample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.json")

	require.NoError(t, SaveJSON(path, jsonSample{Name: "coins", Count: 3}))

	var got jsonSample
	found, err := LoadJSON(path, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, jsonSample{Name: "coins", Count: 3}, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not be left behind")
}

func TestLoadJSON_MissingFile(t *testing.T) {
	var got jsonSample
	found, err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoadJSON_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var got jsonSample
	_, err := LoadJSON(path, &got)
	assert.Error(t, err)
}
