package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/stega/pkg/codec"
	"github.com/ssargent/stega/pkg/di"
)

// executeCommand runs the root command with args and a fresh HOME so no
// user config is picked up.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetContainer(di.NewContainer())
	resetFlags(rootCmd)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default between runs of the shared
// command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeTestImage(t *testing.T) string {
	t.Helper()
	p := codec.New(
		codec.NewChunk(codec.ChunkType{'I', 'H', 'D', 'R'}, make([]byte, 13)),
		codec.NewChunk(codec.ChunkType{'I', 'D', 'A', 'T'}, []byte{0x78, 0x9c}),
		codec.NewChunk(codec.ChunkType{'I', 'E', 'N', 'D'}, nil),
	)
	path := filepath.Join(t.TempDir(), "image.png")
	require.NoError(t, os.WriteFile(path, p.Bytes(), 0644))
	return path
}
