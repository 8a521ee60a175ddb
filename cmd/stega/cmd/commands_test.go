package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/stega/pkg/config"
	"github.com/ssargent/stega/pkg/stega"
)

func TestEncodeDecodeRemove(t *testing.T) {
	path := writeTestImage(t)

	out, err := executeCommand(t, "encode", path, "ruSt", "hello there")
	require.NoError(t, err)
	assert.Equal(t, "Encoding successful!\n", out)

	out, err = executeCommand(t, "decode", path, "ruSt")
	require.NoError(t, err)
	assert.Equal(t, "hello there\n", out)

	out, err = executeCommand(t, "print", path)
	require.NoError(t, err)
	assert.Equal(t, "IHDR\nIDAT\nruSt\nIEND\n", out)

	out, err = executeCommand(t, "remove", path, "ruSt")
	require.NoError(t, err)
	assert.Equal(t, "Chunk ruSt removal successful!\n", out)

	_, err = executeCommand(t, "decode", path, "ruSt")
	require.Error(t, err)
	assert.Equal(t, "No chunk found with type -: ruSt", err.Error())
}

func TestPrintFormats(t *testing.T) {
	path := writeTestImage(t)

	t.Run("json", func(t *testing.T) {
		out, err := executeCommand(t, "print", path, "--json")
		require.NoError(t, err)

		var types []string
		require.NoError(t, json.Unmarshal([]byte(out), &types))
		assert.Equal(t, []string{"IHDR", "IDAT", "IEND"}, types)
	})

	t.Run("verbose", func(t *testing.T) {
		out, err := executeCommand(t, "print", path, "--verbose")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[2], "IEND")
		assert.Contains(t, lines[2], "crc=ae426082")
		assert.Contains(t, lines[2], "critical=true")
	})

	t.Run("verbose json", func(t *testing.T) {
		out, err := executeCommand(t, "print", path, "-v", "--json")
		require.NoError(t, err)

		var infos []stega.ChunkInfo
		require.NoError(t, json.Unmarshal([]byte(out), &infos))
		require.Len(t, infos, 3)
		assert.Equal(t, "IHDR", infos[0].Type)
		assert.Equal(t, uint32(13), infos[0].Length)
	})
}

func TestCommandErrors(t *testing.T) {
	path := writeTestImage(t)
	notPNG := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(notPNG, []byte("plain text, not an image"), 0644))

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "missing file",
			args:    []string{"decode", filepath.Join(t.TempDir(), "missing.png"), "ruSt"},
			message: "file not found",
		},
		{
			name:    "invalid chunk type",
			args:    []string{"encode", path, "ru1t", "hi"},
			message: "Invalid chunk type",
		},
		{
			name:    "wrong type length",
			args:    []string{"decode", path, "rust!"},
			message: "Invalid chunk type",
		},
		{
			name:    "not a png",
			args:    []string{"print", notPNG},
			message: "Not a PNG file: bad signature",
		},
		{
			name:    "removing absent chunk",
			args:    []string{"remove", path, "ruSt"},
			message: "Unable to remove chunk -: ruSt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestWrongArgumentCount(t *testing.T) {
	_, err := executeCommand(t, "encode", "image.png", "ruSt")
	assert.Error(t, err)
}

func TestUploadCommand(t *testing.T) {
	path := writeTestImage(t)
	dataDir := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "stega.yaml")

	cfg := config.DefaultConfig()
	cfg.DataDir = dataDir
	require.NoError(t, config.SaveConfig(cfg, configPath))

	out, err := executeCommand(t, "upload", path, "--config", configPath)
	require.NoError(t, err)

	name := strings.TrimSpace(out)
	assert.True(t, strings.HasSuffix(name, ".png"), "unexpected name %q", name)
	assert.FileExists(t, filepath.Join(dataDir, "images", name))
}

func TestUploadRejectsNonPNG(t *testing.T) {
	notPNG := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(notPNG, []byte("plain text"), 0644))
	configPath := filepath.Join(t.TempDir(), "stega.toml")
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	require.NoError(t, config.SaveConfig(cfg, configPath))

	_, err := executeCommand(t, "upload", notPNG, "--config", configPath)
	require.Error(t, err)
	assert.Equal(t, "Not a PNG file: bad signature", err.Error())
}

func TestMissingExplicitConfig(t *testing.T) {
	path := writeTestImage(t)
	_, err := executeCommand(t, "print", path, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestNilContainer(t *testing.T) {
	path := writeTestImage(t)
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"print", path})
	SetContainer(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency container not initialized")
}
