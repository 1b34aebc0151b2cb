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

import "github.com/go-uri/strict/internal/alloc"

// ComponentKind enumerates the seven URI components as a closed set of
// constants. ValidateAndNormalizeComponent dispatches on it with one
// switch instead of lookup functions from component to predicate and
// field; a value outside the set is rejected with KindInvalid.
type ComponentKind uint8

const (
	Scheme ComponentKind = iota
	Userinfo
	Host
	Port
	Path
	Query
	Fragment
)

// ValidateAndNormalizeComponent runs the input gate followed by
// character-set validation, percent normalization, and any
// component-specific case-folding or canonicalization for a single
// setter input. It is used by every uri.URI per-component setter.
func ValidateAndNormalizeComponent(g *alloc.Guard, kind ComponentKind, s string) (string, error) {
	ascii, err := Gate(g, s)
	if err != nil {
		return "", err
	}

	switch kind {
	case Scheme:
		if err := validateScheme(ascii); err != nil {
			return "", err
		}
		return toLowerASCII(ascii), nil
	case Userinfo:
		return normalizeComponent(g, ascii, isUserinfoByte)
	case Host:
		v, err := normalizeComponent(g, ascii, isHostByte)
		if err != nil {
			return "", err
		}
		return foldHostCase(v), nil
	case Port:
		if err := validateBytes(ascii, isPortByte); err != nil {
			return "", err
		}
		return canonicalizePort(ascii)
	case Path:
		return normalizeComponent(g, ascii, isPathByte)
	case Query, Fragment:
		return normalizeComponent(g, ascii, isQueryByte)
	default:
		return "", errInvalid("unknown component kind")
	}
}

// IsUserinfoByte, IsHostByte, IsPathByte and IsQueryByte expose this
// package's component predicates to callers outside it, so that a
// serializer can defensively re-validate an already-normalized
// component with the same rules that admitted it in the first place.
func IsUserinfoByte(b byte) bool { return isUserinfoByte(b) }
func IsHostByte(b byte) bool     { return isHostByte(b) }
func IsPathByte(b byte) bool     { return isPathByte(b) }
func IsQueryByte(b byte) bool    { return isQueryByte(b) }

// HexByte renders b as "%XX" with uppercase hex digits, for callers
// outside this package that need to re-escape a byte the same way the
// input gate and percent normalizer do.
func HexByte(b byte) string { return hexByte(b) }

func toLowerASCII(s string) string {
	b := []byte(s)
	for i := range b {
		if 'A' <= b[i] && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
