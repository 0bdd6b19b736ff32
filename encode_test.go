package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/archive"
	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/huffman"
	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/log/logtest"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	output := filepath.Join(dir, "output.huff")
	require.NoError(t, os.WriteFile(input, []byte("abracadabra"), 0o644))

	var stdout bytes.Buffer
	cmd := encodeCmd{
		Stdout: &stdout,
		Log:    logtest.NewLogger(t),
		Clock:  clock.NewMock(),
	}
	require.NoError(t, cmd.Run(input, output))

	out := stdout.String()
	assert.Contains(t, out, "Unique symbols: 5")
	assert.Contains(t, out, "Original size (bytes): 11")
	assert.Contains(t, out, "Code table (symbol -> code):")
	assert.Contains(t, out, "'a' -> ")

	// The archive on disk must decode back to the input.
	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var arch archive.Archiver
	text, err := arch.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "abracadabra", text)
}

func TestEncodeEmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(input, nil, 0o644))

	var stdout bytes.Buffer
	cmd := encodeCmd{
		Stdout: &stdout,
		Log:    logtest.NewLogger(t),
		Clock:  clock.NewMock(),
	}
	err := cmd.Run(input, filepath.Join(dir, "out.huff"))
	assert.ErrorIs(t, err, archive.ErrEmptyInput)
}

func TestSortSymbols(t *testing.T) {
	t.Parallel()

	codes := huffman.CodeTable{
		'z': "10",
		'a': "111",
		'm': "0",
		'b': "110",
	}
	assert.Equal(t, []rune{'m', 'z', 'a', 'b'}, sortSymbols(codes),
		"shorter codes first, then symbol order")
}
