package textsearch

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable is returned when no decoder in the chain accepts the input.
var ErrUndecodable = errors.New("file is not a text file or has unsupported encoding")

// Decoder turns raw bytes into text or reports why it cannot.
type Decoder func(raw []byte) (string, error)

// DefaultDecoders tries strict UTF-8 first and falls back to Latin-1.
// Latin-1 maps every byte to a code point, so with it last the chain never fails.
var DefaultDecoders = []Decoder{DecodeUTF8, DecodeLatin1}

// DecodeUTF8 accepts only well-formed UTF-8.
func DecodeUTF8(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", errors.New("invalid utf-8 sequence")
	}
	return string(raw), nil
}

// DecodeLatin1 decodes ISO 8859-1.
func DecodeLatin1(raw []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Decode runs the decoders in order and returns the first successful result.
func Decode(raw []byte, decoders ...Decoder) (string, error) {
	for _, decode := range decoders {
		if text, err := decode(raw); err == nil {
			return text, nil
		}
	}
	return "", ErrUndecodable
}
