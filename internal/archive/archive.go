// Package archive compresses text into self-describing Huffman
// archives and restores it.
//
// An archive carries its own code table, so decoding needs nothing
// but the archive bytes. See Container for the byte layout.
package archive

import (
	"strings"

	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/bitpack"
	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/huffman"
	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/log"
)

// Archiver encodes and decodes Huffman archives.
// The zero value is ready to use and logs nothing.
type Archiver struct {
	Log *log.Logger
}

// Encoded is the result of one successful encode.
type Encoded struct {
	// Data is the serialized archive.
	Data []byte

	// Codes is the code table embedded in Data,
	// for callers that report on the encoding.
	Codes huffman.CodeTable

	// Padding is the number of zero bits that aligned the payload.
	Padding int
}

// Encode compresses text into archive bytes.
//
// It fails with ErrEmptyInput if text has no symbols: an empty input
// has no frequencies to build a tree from.
func (a *Archiver) Encode(text string) (*Encoded, error) {
	freqs := huffman.Frequencies(text)
	if len(freqs) == 0 {
		return nil, ErrEmptyInput
	}

	codes := huffman.Codes(huffman.Build(freqs))
	a.logger().Debugf("built code table: %d symbols", len(codes))

	var bits strings.Builder
	for _, sym := range text {
		code, ok := codes[sym]
		if !ok {
			return nil, &UnknownSymbolError{Symbol: sym}
		}
		bits.WriteString(code)
	}

	payload, padding, err := bitpack.Pack(bits.String())
	if err != nil {
		return nil, err
	}
	a.logger().Debugf("packed %d bits into %d bytes, %d padding", bits.Len(), len(payload), padding)

	c := Container{Codes: codes, Padding: padding, Payload: payload}
	data, err := c.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return &Encoded{Data: data, Codes: codes, Padding: padding}, nil
}

// Decode restores the text stored in archive bytes.
//
// It fails with a *FormatError if the container cannot be parsed and
// with ErrCorruptData if the payload ends in the middle of a code.
func (a *Archiver) Decode(data []byte) (string, error) {
	var c Container
	if err := c.UnmarshalBinary(data); err != nil {
		return "", err
	}
	a.logger().Debugf("read archive: %d codes, %d payload bytes, %d padding",
		len(c.Codes), len(c.Payload), c.Padding)

	bits := bitpack.Unpack(c.Payload)
	if c.Padding > len(bits) {
		return "", &FormatError{Reason: "padding exceeds payload bits"}
	}
	bits = bits[:len(bits)-c.Padding]

	symbols := make(map[string]rune, len(c.Codes))
	for sym, code := range c.Codes {
		symbols[code] = sym
	}

	// Greedy prefix matching: grow a candidate until it names a code,
	// emit that symbol, start over. Prefix-freedom guarantees the
	// first match is the only possible one.
	var text strings.Builder
	start := 0
	for i := 0; i < len(bits); i++ {
		sym, ok := symbols[bits[start:i+1]]
		if !ok {
			continue
		}
		text.WriteRune(sym)
		start = i + 1
	}
	if start != len(bits) {
		return "", ErrCorruptData
	}
	return text.String(), nil
}

func (a *Archiver) logger() *log.Logger {
	if a.Log != nil {
		return a.Log
	}
	return log.Discard
}
