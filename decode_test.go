package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/archive"
	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/log/logtest"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNotAnArchive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "garbage.huff")
	require.NoError(t, os.WriteFile(input, []byte("not an archive"), 0o644))

	var stdout bytes.Buffer
	cmd := decodeCmd{
		Stdout: &stdout,
		Log:    logtest.NewLogger(t),
		Clock:  clock.NewMock(),
	}
	err := cmd.Run(input, filepath.Join(dir, "out.txt"))
	require.Error(t, err)

	var ferr *archive.FormatError
	assert.ErrorAs(t, err, &ferr)
}

func TestDecodeCountsCharacters(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archived := filepath.Join(dir, "input.huff")
	restored := filepath.Join(dir, "out.txt")

	// 6 characters, more bytes than characters once encoded as UTF-8.
	const text = "héllo!"
	var arch archive.Archiver
	enc, err := arch.Encode(text)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(archived, enc.Data, 0o644))

	var stdout bytes.Buffer
	cmd := decodeCmd{
		Stdout: &stdout,
		Log:    logtest.NewLogger(t),
		Clock:  clock.NewMock(),
	}
	require.NoError(t, cmd.Run(archived, restored))
	assert.Contains(t, stdout.String(), "Wrote 6 characters")

	body, err := os.ReadFile(restored)
	require.NoError(t, err)
	assert.Equal(t, text, string(body))
}
