package source

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// decodeText validates that b is UTF-8 and returns it as a string. offset is
// only used to annotate the error.
func decodeText(b []byte, offset uint64) (string, error) {
	out, _, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return "", &EncodingError{Offset: offset, Err: err}
	}
	return string(out), nil
}

// completePrefix drops a multibyte sequence cut off at the end of b, so a
// writer caught between two halves of a character is read on the next pass.
// Bytes that can never start a valid sequence are kept and fail decoding.
func completePrefix(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		if !utf8.FullRune(b[i:]) {
			return b[:i]
		}
		break
	}
	return b
}
