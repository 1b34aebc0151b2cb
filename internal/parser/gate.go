/*
Copyright 2026 go-uri Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/go-uri/strict/internal/alloc"
)

// isControl reports whether r is a C0 control (U+0000-U+001F, U+007F)
// or a C1 control (U+0080-U+009F). Both are rejected unconditionally
// by the input gate, whether they arrived as a literal byte or as a
// decoded multi-byte UTF-8 sequence.
func isControl(r rune) bool {
	return (r >= 0x0000 && r <= 0x001F) || r == 0x007F || (r >= 0x0080 && r <= 0x009F)
}

// Gate validates UTF-8 well-formedness, rejects C0/C1 controls, and
// returns an ASCII copy of s with every non-ASCII byte percent-encoded.
// It is idempotent on inputs that are already pure, control-free
// ASCII: such inputs pass through byte for byte.
//
// utf8.DecodeRuneInString already rejects overlong encodings, lone
// surrogate halves, code points above U+10FFFF, and truncated trailing
// sequences -- each of those cases decodes to (utf8.RuneError, 1),
// which this function treats as an Encoding failure.
func Gate(g *alloc.Guard, s string) (string, error) {
	if err := g.Reserve(len(s)); err != nil {
		return "", errOutOfMemory()
	}

	// Fast path: already-ASCII, control-free input returns unchanged.
	if isPlainASCII(s) {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return "", errEncoding("input is not well-formed UTF-8")
		}
		if isControl(r) {
			return "", errInvalidChar("control character in input", r)
		}
		if r < utf8.RuneSelf {
			b.WriteByte(s[i])
		} else {
			for j := 0; j < size; j++ {
				b.WriteString(hexByte(s[i+j]))
			}
		}
		i += size
	}
	return b.String(), nil
}

// isPlainASCII reports whether s is entirely ASCII and free of C0/C1
// control bytes, letting Gate skip allocation for the common case.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			return false
		}
		if c <= 0x1F || c == 0x7F {
			return false
		}
	}
	return true
}

const hexDigits = "0123456789ABCDEF"

// hexByte renders b as "%XX" with uppercase hex digits.
func hexByte(b byte) string {
	buf := [3]byte{'%', hexDigits[b>>4], hexDigits[b&0xF]}
	return string(buf[:])
}
