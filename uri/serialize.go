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

package uri

import (
	"strings"

	"github.com/go-uri/strict/internal/alloc"
	"github.com/go-uri/strict/internal/parser"
)

// Serialize re-assembles u into a canonical ASCII string. Every
// component is re-encoded with its own character predicate before
// being written -- defensive against a %XX decoding to a byte outside
// a component's alphabet, which shouldn't happen given how components
// are validated on the way in, but is cheap to re-check here.
func (u *URI) Serialize() (string, error) {
	if u == nil {
		return "", errBadPointer
	}
	return serializeWithGuard(alloc.NewGuard(0), u)
}

// serializeWithGuard does the work of Serialize with an explicit
// allocation budget, so a fault-injection exercise can make any of its
// buffer-growing steps fail with KindOutOfMemory.
func serializeWithGuard(g *alloc.Guard, u *URI) (string, error) {
	var b strings.Builder

	if u.scheme.present {
		b.WriteString(u.scheme.value)
		b.WriteByte(':')
	}

	hasAuthority := u.HasAuthority()
	if hasAuthority {
		b.WriteString("//")
		if u.userinfo.present {
			v, err := reencode(g, u.userinfo.value, parser.IsUserinfoByte)
			if err != nil {
				return "", fromParserError(err)
			}
			b.WriteString(v)
			b.WriteByte('@')
		}
		if u.host.present {
			v, err := reencode(g, u.host.value, parser.IsHostByte)
			if err != nil {
				return "", fromParserError(err)
			}
			b.WriteString(v)
		}
		if u.port.present {
			b.WriteByte(':')
			b.WriteString(u.port.value)
		}
	}

	path, err := reencode(g, u.path, parser.IsPathByte)
	if err != nil {
		return "", fromParserError(err)
	}
	path = disambiguatePath(path, hasAuthority, u.scheme.present)
	b.WriteString(path)

	if u.query.present {
		v, err := reencode(g, u.query.value, parser.IsQueryByte)
		if err != nil {
			return "", fromParserError(err)
		}
		b.WriteByte('?')
		b.WriteString(v)
	}
	if u.fragment.present {
		v, err := reencode(g, u.fragment.value, parser.IsQueryByte)
		if err != nil {
			return "", fromParserError(err)
		}
		b.WriteByte('#')
		b.WriteString(v)
	}

	return b.String(), nil
}

// disambiguatePath applies the WHATWG disambiguation prefixes: a path
// is prefixed so that re-parsing the serialized form never mistakes a
// bare path for an authority marker or a scheme.
func disambiguatePath(path string, hasAuthority, hasScheme bool) string {
	if !hasAuthority && strings.HasPrefix(path, "//") {
		return "/." + path
	}
	if !hasAuthority && !hasScheme && firstSegmentLooksLikeScheme(path) {
		return "./" + path
	}
	return path
}

// firstSegmentLooksLikeScheme reports whether path's first segment
// (up to the first "/") contains a ":" preceded by a non-empty run of
// scheme characters (ALPHA / DIGIT / "+" / "-" / "."), which would let
// a re-parse mistake it for a scheme or reject it. A leading letter is
// not required.
func firstSegmentLooksLikeScheme(path string) bool {
	seg := path
	if i := strings.IndexByte(path, '/'); i >= 0 {
		seg = path[:i]
	}
	colon := strings.IndexByte(seg, ':')
	if colon <= 0 {
		return false
	}
	for i := 0; i < colon; i++ {
		c := seg[i]
		isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		isOther := c == '+' || c == '-' || c == '.'
		if !isAlnum && !isOther {
			return false
		}
	}
	return true
}

// reencode rewrites s so every byte outside allowed becomes an
// uppercase "%XX" escape. Values stored on a URI already satisfy this
// by construction, so in the common case reencode returns s unchanged
// without allocating -- but every call still charges g for the buffer
// it would need in the worst case, so a scripted allocation failure
// can be simulated even on the fast path.
func reencode(g *alloc.Guard, s string, allowed func(byte) bool) (string, error) {
	if err := g.Reserve(len(s)); err != nil {
		return "", err
	}

	clean := true
	for i := 0; i < len(s); i++ {
		if !allowed(s[i]) {
			clean = false
			break
		}
	}
	if clean {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if allowed(c) {
			b.WriteByte(c)
		} else {
			b.WriteString(parser.HexByte(c))
		}
	}
	return b.String(), nil
}
