// Package bitpack converts between logical bit sequences and
// byte-aligned payloads.
//
// Bit sequences are strings over {'0', '1'}. Bytes are filled most
// significant bit first, and the final byte is padded with zero bits;
// the padding count travels with the payload so the unpacked sequence
// can be restored exactly.
package bitpack

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// Pack groups bits into bytes, most significant bit first, padding
// the final byte with zeros. It returns the payload and the number of
// padding bits added, always in [0, 7].
//
// Pack fails only if bits contains a character other than '0' or '1'.
func Pack(bits string) (payload []byte, padding int, err error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			err = w.WriteBool(false)
		case '1':
			err = w.WriteBool(true)
		default:
			return nil, 0, fmt.Errorf("bit %d: invalid character %q", i, bits[i])
		}
		if err != nil {
			return nil, 0, err
		}
	}

	skipped, err := w.Align()
	if err != nil {
		return nil, 0, err
	}
	if err := w.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), int(skipped), nil
}

// Unpack expands every payload byte into its 8-bit representation,
// most significant bit first. Every byte value is valid; stripping
// padding is the caller's concern.
func Unpack(payload []byte) string {
	var bits strings.Builder
	bits.Grow(len(payload) * 8)

	r := bitio.NewReader(bytes.NewReader(payload))
	for {
		b, err := r.ReadBool()
		if err != nil {
			// Only io.EOF is possible when reading from memory.
			break
		}
		if b {
			bits.WriteByte('1')
		} else {
			bits.WriteByte('0')
		}
	}
	return bits.String()
}
