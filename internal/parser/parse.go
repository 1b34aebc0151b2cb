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

// ParseComponents runs the full pipeline over ref: input gate,
// tokenizer, per-component character-set validation, percent
// normalization, scheme/host case-folding and port canonicalization.
// When deferPathResolve is true the path is left merge-ready and
// un-resolved (used by reference resolution, which must merge against
// a base path before removing dot-segments).
func ParseComponents(g *alloc.Guard, ref string, deferPathResolve bool) (*Raw, error) {
	ascii, err := Gate(g, ref)
	if err != nil {
		return nil, err
	}

	raw, err := Tokenize(ascii)
	if err != nil {
		return nil, err
	}

	if err := normalizeRaw(g, raw); err != nil {
		return nil, err
	}

	if !deferPathResolve {
		resolved, err := RemoveDotSegments(g, raw.Path)
		if err != nil {
			return nil, err
		}
		raw.Path = resolved
	}

	return raw, nil
}

// normalizeRaw validates and normalizes every present component of raw
// in place.
func normalizeRaw(g *alloc.Guard, raw *Raw) error {
	if raw.Scheme.Present {
		if err := validateScheme(raw.Scheme.Value); err != nil {
			return err
		}
		raw.Scheme.Value = strings.ToLower(raw.Scheme.Value)
	}

	if raw.Userinfo.Present {
		v, err := normalizeComponent(g, raw.Userinfo.Value, isUserinfoByte)
		if err != nil {
			return err
		}
		raw.Userinfo.Value = v
	}

	if raw.Host.Present {
		v, err := normalizeComponent(g, raw.Host.Value, isHostByte)
		if err != nil {
			return err
		}
		raw.Host.Value = foldHostCase(v)
	}

	if raw.Port.Present {
		if err := validateBytes(raw.Port.Value, isPortByte); err != nil {
			return err
		}
		v, err := canonicalizePort(raw.Port.Value)
		if err != nil {
			return err
		}
		raw.Port.Value = v
	}

	v, err := normalizeComponent(g, raw.Path, isPathByte)
	if err != nil {
		return err
	}
	raw.Path = v

	if raw.Query.Present {
		v, err := normalizeComponent(g, raw.Query.Value, isQueryByte)
		if err != nil {
			return err
		}
		raw.Query.Value = v
	}

	if raw.Fragment.Present {
		v, err := normalizeComponent(g, raw.Fragment.Value, isQueryByte)
		if err != nil {
			return err
		}
		raw.Fragment.Value = v
	}

	return nil
}

// normalizeComponent validates a component's raw character set, runs
// percent normalization, then revalidates the result: decoding an
// unreserved escape cannot introduce a disallowed byte, but the
// post-condition check guards against logic errors in the normalizer
// itself.
func normalizeComponent(g *alloc.Guard, s string, allowed func(byte) bool) (string, error) {
	if err := validateBytes(s, allowed); err != nil {
		return "", err
	}
	normalized, err := NormalizePercent(g, s)
	if err != nil {
		return "", err
	}
	if err := validateBytes(normalized, allowed); err != nil {
		return "", err
	}
	return normalized, nil
}

// foldHostCase lower-cases every literal (non-percent-escape) ASCII
// byte of host, leaving the uppercase hex digits of any %XX escape
// untouched.
func foldHostCase(host string) string {
	b := []byte(host)
	for i := 0; i < len(b); i++ {
		if b[i] == '%' && i+2 < len(b) {
			i += 2
			continue
		}
		if 'A' <= b[i] && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

const maxPortDigits = 5 // len("65535")

// canonicalizePort parses s as an unsigned decimal, rejects values
// above 65535, and strips leading zeros while preserving at least "0".
// An empty port is preserved as empty.
func canonicalizePort(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	stripped := strings.TrimLeft(s, "0")
	if stripped == "" {
		stripped = "0"
	}
	if len(stripped) > maxPortDigits {
		return "", errOutOfRange("port value exceeds 65535")
	}
	val := 0
	for i := 0; i < len(stripped); i++ {
		val = val*10 + int(stripped[i]-'0')
	}
	if val > 65535 {
		return "", errOutOfRange("port value exceeds 65535")
	}
	return stripped, nil
}
