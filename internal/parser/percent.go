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

	"github.com/go-uri/strict/internal/alloc"
)

func hexVal(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b-'a') + 10
	case 'A' <= b && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}

// NormalizePercent canonicalizes every %XX escape to uppercase hex,
// rejects %00 and any other C0 escape, and decodes any escape that
// denotes an unreserved character. Escapes of reserved/delimiter bytes
// are left in canonical uppercase form and are never treated as their
// decoded meaning by later stages.
func NormalizePercent(g *alloc.Guard, s string) (string, error) {
	if err := g.Reserve(len(s)); err != nil {
		return "", errOutOfMemory()
	}
	if !strings.ContainsRune(s, '%') {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] != '%' {
			b.WriteByte(s[i])
			i++
			continue
		}
		if i+2 >= len(s) || !isASCIIHexDigit(s[i+1]) || !isASCIIHexDigit(s[i+2]) {
			return "", errInvalid("malformed percent-encoding")
		}
		hi, lo := s[i+1], s[i+2]
		val := hexVal(hi)*16 + hexVal(lo)
		if val == 0x00 {
			return "", errInvalid("percent-encoded NUL byte")
		}
		if val <= 0x1F || val == 0x7F {
			return "", errInvalid("percent-encoded control character")
		}
		if isUnreserved(byte(val)) {
			b.WriteByte(byte(val))
		} else {
			b.WriteByte('%')
			b.WriteByte(hexDigits[hexVal(hi)])
			b.WriteByte(hexDigits[hexVal(lo)])
		}
		i += 3
	}
	return b.String(), nil
}
