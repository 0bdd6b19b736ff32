package archive

import (
	"encoding/binary"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/huffman"
)

// Container is the self-describing archive unit: everything needed to
// restore the original text is in its serialized bytes.
//
// The layout is a 4-byte big-endian header length, a JSON header
// {"codes": {symbol: bitstring}, "padding": n}, and the packed
// payload in the remaining bytes.
type Container struct {
	Codes   huffman.CodeTable
	Padding int // zero bits appended to the final payload byte, [0, 7]
	Payload []byte
}

// header is the JSON shape of the container header. Symbols are keyed
// by their textual representation.
type header struct {
	Codes   map[string]string `json:"codes"`
	Padding int               `json:"padding"`
}

// MarshalBinary serializes the container.
func (c *Container) MarshalBinary() ([]byte, error) {
	hdr := header{
		Codes:   make(map[string]string, len(c.Codes)),
		Padding: c.Padding,
	}
	for sym, code := range c.Codes {
		hdr.Codes[string(sym)] = code
	}

	hdrJSON, err := json.Marshal(hdr)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 4+len(hdrJSON)+len(c.Payload))
	out = binary.BigEndian.AppendUint32(out, uint32(len(hdrJSON)))
	out = append(out, hdrJSON...)
	out = append(out, c.Payload...)
	return out, nil
}

// UnmarshalBinary parses serialized container bytes, validating the
// header shape. It fails with a *FormatError if the declared header
// length exceeds the available bytes, the header is not valid JSON,
// a code table entry is malformed, or padding is outside [0, 7].
func (c *Container) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return &FormatError{Reason: "missing header length"}
	}
	hdrLen := binary.BigEndian.Uint32(data[:4])
	rest := data[4:]
	if uint64(hdrLen) > uint64(len(rest)) {
		return &FormatError{Reason: "header length exceeds available bytes"}
	}

	var hdr header
	if err := json.Unmarshal(rest[:hdrLen], &hdr); err != nil {
		return &FormatError{Reason: "malformed header", Err: err}
	}
	if hdr.Padding < 0 || hdr.Padding > 7 {
		return &FormatError{Reason: "padding out of range"}
	}

	codes := make(huffman.CodeTable, len(hdr.Codes))
	for key, code := range hdr.Codes {
		sym, size := utf8.DecodeRuneInString(key)
		if len(key) == 0 || size != len(key) || (sym == utf8.RuneError && size == 1) {
			return &FormatError{Reason: "code table key is not a single symbol"}
		}
		if len(code) == 0 || strings.Trim(code, "01") != "" {
			return &FormatError{Reason: "code is not a bitstring"}
		}
		codes[sym] = code
	}

	c.Codes = codes
	c.Padding = hdr.Padding
	c.Payload = rest[hdrLen:]
	return nil
}
