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

import "strings"

// isASCIILetter reports whether b is an ASCII letter.
func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// isASCIIDigit reports whether b is an ASCII digit.
func isASCIIDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isASCIIHexDigit reports whether b is an ASCII hex digit (either case).
func isASCIIHexDigit(b byte) bool {
	return isASCIIDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// isUnreserved reports whether b is in RFC 3986's unreserved set:
// ALPHA / DIGIT / "-" / "." / "_" / "~".
func isUnreserved(b byte) bool {
	return isASCIILetter(b) || isASCIIDigit(b) || b == '-' || b == '.' || b == '_' || b == '~'
}

// isSubDelim reports whether b is in RFC 3986's sub-delims set.
func isSubDelim(b byte) bool {
	return strings.IndexByte("!$&'()*+,;=", b) >= 0
}

// isSchemeByte reports whether b may appear in a scheme after the first
// character: ALPHA / DIGIT / "+" / "-" / ".".
func isSchemeByte(b byte) bool {
	return isASCIILetter(b) || isASCIIDigit(b) || b == '+' || b == '-' || b == '.'
}

// isUserinfoByte reports whether b may appear in userinfo:
// unreserved / "%" / sub-delims / ":".
func isUserinfoByte(b byte) bool {
	return isUnreserved(b) || b == '%' || isSubDelim(b) || b == ':'
}

// isHostByte reports whether b may appear in host:
// unreserved / "%" / sub-delims / "[" / "]" / ":".
func isHostByte(b byte) bool {
	return isUnreserved(b) || b == '%' || isSubDelim(b) || b == '[' || b == ']' || b == ':'
}

// isPortByte reports whether b may appear in port: DIGIT.
func isPortByte(b byte) bool {
	return isASCIIDigit(b)
}

// isPathByte reports whether b may appear in path:
// unreserved / "%" / sub-delims / ":" / "@" / "/".
func isPathByte(b byte) bool {
	return isUnreserved(b) || b == '%' || isSubDelim(b) || b == ':' || b == '@' || b == '/'
}

// isQueryByte reports whether b may appear in query or fragment:
// path chars / "?".
func isQueryByte(b byte) bool {
	return isPathByte(b) || b == '?'
}

// validateBytes walks s and fails with KindInvalid at the first byte
// that does not satisfy allowed.
func validateBytes(s string, allowed func(byte) bool) error {
	for i := 0; i < len(s); i++ {
		if !allowed(s[i]) {
			return errInvalidChar("disallowed character in component", rune(s[i]))
		}
	}
	return nil
}

// validateScheme checks the scheme production: ALPHA, then
// ALPHA / DIGIT / "+" / "-" / ".".
func validateScheme(s string) error {
	if s == "" {
		return errInvalid("empty scheme")
	}
	if !isASCIILetter(s[0]) {
		return errInvalidChar("scheme must start with a letter", rune(s[0]))
	}
	return validateBytes(s[1:], isSchemeByte)
}
