// This file contains helpers for turning fixed-width, zero-padded byte
// runs into Go strings, including the Shift-JIS text used by the Japanese
// name/description fields.

package xiparser

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// cString returns the data up to (not including) the first zero byte. If no
// zero byte is present the whole slice is returned, matching the source's
// fallback behavior for a non-terminated fixed-width field.
func cString(data []byte) string {
	for i, b := range data {
		if b == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}

// jpString returns the data as text, decoding it as Shift-JIS if it is not
// already valid UTF-8 (the archives store Japanese text in Shift-JIS,
// English text as plain ASCII/UTF-8).
func jpString(data []byte) string {
	raw := cString(data)
	if utf8.ValidString(raw) {
		return raw
	}

	decoded, _, err := transform.String(japanese.ShiftJIS.NewDecoder(), raw)
	if err != nil {
		return raw
	}
	return decoded
}
