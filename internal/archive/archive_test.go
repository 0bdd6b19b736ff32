package archive

import (
	"testing"

	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/log/logtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncodeEmptyInput(t *testing.T) {
	t.Parallel()

	var arch Archiver
	_, err := arch.Encode("")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestRoundTripAbracadabra(t *testing.T) {
	t.Parallel()

	arch := Archiver{Log: logtest.NewLogger(t)}

	enc, err := arch.Encode("abracadabra")
	require.NoError(t, err)
	require.Len(t, enc.Codes, 5)

	for _, sym := range []rune{'c', 'd'} {
		assert.LessOrEqual(t, len(enc.Codes['a']), len(enc.Codes[sym]))
	}

	text, err := arch.Decode(enc.Data)
	require.NoError(t, err)
	assert.Equal(t, "abracadabra", text)
}

func TestRoundTripSingleSymbol(t *testing.T) {
	t.Parallel()

	var arch Archiver

	enc, err := arch.Encode("aaaa")
	require.NoError(t, err)
	require.Len(t, enc.Codes, 1)
	assert.NotEmpty(t, enc.Codes['a'])

	text, err := arch.Decode(enc.Data)
	require.NoError(t, err)
	assert.Equal(t, "aaaa", text)
}

func TestRoundTripProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringN(1, -1, -1).Draw(t, "text")

		var arch Archiver
		enc, err := arch.Encode(text)
		require.NoError(t, err)
		assert.LessOrEqual(t, enc.Padding, 7)

		got, err := arch.Decode(enc.Data)
		require.NoError(t, err)
		assert.Equal(t, text, got)
	})
}

func TestDecodeTruncatedPayload(t *testing.T) {
	t.Parallel()

	var arch Archiver

	// Chosen so that dropping the final payload byte cuts the bit
	// stream in the middle of a codeword.
	enc, err := arch.Encode("caadbaab")
	require.NoError(t, err)

	_, err = arch.Decode(enc.Data[:len(enc.Data)-1])
	assert.ErrorIs(t, err, ErrCorruptData)
}

func TestDecodeTruncatedToEmptyPayload(t *testing.T) {
	t.Parallel()

	var arch Archiver

	// "ab" packs into a single byte with 6 padding bits. Dropping the
	// byte leaves the header promising padding that no longer exists.
	enc, err := arch.Encode("ab")
	require.NoError(t, err)

	_, err = arch.Decode(enc.Data[:len(enc.Data)-1])
	require.Error(t, err)
	var ferr *FormatError
	assert.ErrorAs(t, err, &ferr)
}

func TestDecodeMismatchedCodes(t *testing.T) {
	t.Parallel()

	// A payload that ends mid-codeword for the table it is paired
	// with: the single code is "11" but the stream holds "111".
	c := Container{
		Codes:   map[rune]string{'a': "11"},
		Padding: 5,
		Payload: []byte{0xe0},
	}
	data, err := c.MarshalBinary()
	require.NoError(t, err)

	var arch Archiver
	_, err = arch.Decode(data)
	assert.ErrorIs(t, err, ErrCorruptData)
}

func TestEncodeDeterministic(t *testing.T) {
	t.Parallel()

	var arch Archiver

	first, err := arch.Encode("mississippi")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		next, err := arch.Encode("mississippi")
		require.NoError(t, err)
		assert.Equal(t, first.Data, next.Data,
			"same input must always serialize identically")
	}
}
