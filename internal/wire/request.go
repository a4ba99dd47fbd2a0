// Package wire encodes lookup requests and decodes lookup responses for the
// TempMailDetector check endpoint.
package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// ErrInvalidUTF8 is returned for a domain that is not valid UTF-8 and so
// cannot be carried in a JSON string unchanged.
var ErrInvalidUTF8 = errors.New("domain is not valid UTF-8")

// EncodeRequest returns the request payload for domain:
//
//	{"domain": "<domain>"}
//
// The domain is copied verbatim. Bytes outside printable ASCII are written
// as lowercase \uXXXX escapes, and HTML characters are left alone, so the
// payload is byte-identical to what the reference Python client sends.
// Invalid UTF-8 is rejected with ErrInvalidUTF8 rather than replaced.
func EncodeRequest(domain string) ([]byte, error) {
	if !utf8.ValidString(domain) {
		return nil, ErrInvalidUTF8
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(domain); err != nil {
		return nil, fmt.Errorf("encode domain: %w", err)
	}
	quoted := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})

	out := make([]byte, 0, len(quoted)+16)
	out = append(out, `{"domain": `...)
	out = appendASCII(out, quoted)
	out = append(out, '}')
	return out, nil
}

// appendASCII appends a JSON string literal to dst, escaping every rune at or
// above DEL. Runes beyond the BMP become surrogate pairs.
func appendASCII(dst, lit []byte) []byte {
	for len(lit) > 0 {
		r, size := utf8.DecodeRune(lit)
		lit = lit[size:]
		switch {
		case r < utf8.RuneSelf && r != 0x7f:
			dst = append(dst, byte(r))
		case r > 0xffff:
			hi, lo := utf16.EncodeRune(r)
			dst = appendEscape(dst, hi)
			dst = appendEscape(dst, lo)
		default:
			dst = appendEscape(dst, r)
		}
	}
	return dst
}

func appendEscape(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[r>>12&0xf], hexDigits[r>>8&0xf],
		hexDigits[r>>4&0xf], hexDigits[r&0xf])
}
