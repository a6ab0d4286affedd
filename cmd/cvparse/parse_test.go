package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubhub/cvparser/internal/types"
)

func TestOutputPathFor(t *testing.T) {
	tests := []struct {
		name      string
		inputPath string
		outDir    string
		want      string
	}{
		{
			name:      "alongside input",
			inputPath: "/data/cvs/jane.pdf",
			outDir:    "",
			want:      "/data/cvs/jane.json",
		},
		{
			name:      "explicit out dir",
			inputPath: "/data/cvs/jane.docx",
			outDir:    "/tmp/out",
			want:      "/tmp/out/jane.json",
		},
		{
			name:      "no extension",
			inputPath: "cv",
			outDir:    "",
			want:      "cv.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outputPathFor(tt.inputPath, tt.outDir))
		})
	}
}

func TestParseOneHeuristicPath(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "jane.txt")
	cv := "Jane Doe\njane@example.com\n(555) 123-4567\n\nWORK EXPERIENCE\nDesigner at Acme Corp\nJan 2020 - Present\n\nSKILLS\nFigma, Sketch\n"
	require.NoError(t, os.WriteFile(inputPath, []byte(cv), 0o644))

	settings := &parseSettings{includeRaw: true, concurrency: 1}
	require.NoError(t, parseOne(context.Background(), inputPath, settings, nil))

	outputPath := filepath.Join(dir, "jane.json")
	fileBytes, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	data := types.NewParsedCVData()
	require.NoError(t, json.Unmarshal(fileBytes, data))
	require.NotNil(t, data.Personal.Name)
	assert.Equal(t, "Jane Doe", *data.Personal.Name)
	assert.Equal(t, cv, data.RawText)
}

func TestParseOneStripsRawText(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "jane.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("Jane Doe\njane@example.com\n"), 0o644))

	settings := &parseSettings{includeRaw: false, concurrency: 1}
	require.NoError(t, parseOne(context.Background(), inputPath, settings, nil))

	fileBytes, err := os.ReadFile(filepath.Join(dir, "jane.json"))
	require.NoError(t, err)

	data := types.NewParsedCVData()
	require.NoError(t, json.Unmarshal(fileBytes, data))
	assert.Empty(t, data.RawText)
}

func TestParseOneEmptyFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("  \n"), 0o644))

	settings := &parseSettings{includeRaw: true, concurrency: 1}
	err := parseOne(context.Background(), inputPath, settings, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No text content")
}

func TestParseOneMissingFile(t *testing.T) {
	settings := &parseSettings{includeRaw: true, concurrency: 1}
	assert.Error(t, parseOne(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), settings, nil))
}

func TestLoadParsedCV(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "cv.json")
		data := types.NewParsedCVData()
		data.Personal.Name = types.StringPtr("Jane Doe")
		jsonBytes, err := json.Marshal(data)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, jsonBytes, 0o644))

		loaded, err := loadParsedCV(path)
		require.NoError(t, err)
		require.NotNil(t, loaded.Personal.Name)
		assert.Equal(t, "Jane Doe", *loaded.Personal.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadParsedCV(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, err := loadParsedCV(path)
		assert.Error(t, err)
	})
}
