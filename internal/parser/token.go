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

// Component is an optionally-present component value. Present
// distinguishes "absent" from "empty", which must survive a round trip
// for userinfo, host, port, query and fragment.
type Component struct {
	Present bool
	Value   string
}

// Raw holds the result of Tokenize: the seven components exactly as
// split out of the input, before character-set validation or
// normalization.
type Raw struct {
	Scheme           Component
	AuthorityPresent bool
	Userinfo         Component
	Host             Component
	Port             Component
	Path             string // always present, possibly empty
	Query            Component
	Fragment         Component
}

// Tokenize makes a single pass over an ASCII string (already produced
// by Gate) that detaches fragment and query suffixes, then attempts a
// scheme, then an authority, leaving whatever remains as path.
func Tokenize(s string) (*Raw, error) {
	raw := &Raw{}
	buf := s

	if idx := strings.IndexByte(buf, '#'); idx != -1 {
		raw.Fragment = Component{Present: true, Value: buf[idx+1:]}
		buf = buf[:idx]
	}
	if idx := strings.IndexByte(buf, '?'); idx != -1 {
		raw.Query = Component{Present: true, Value: buf[idx+1:]}
		buf = buf[:idx]
	}

	schemeEnd := -1
	if len(buf) > 0 && isASCIILetter(buf[0]) {
		i := 1
		for i < len(buf) && isSchemeByte(buf[i]) {
			i++
		}
		if i < len(buf) && buf[i] == ':' {
			schemeEnd = i
		}
	}

	if schemeEnd >= 0 {
		raw.Scheme = Component{Present: true, Value: buf[:schemeEnd]}
		buf = buf[schemeEnd+1:]
	} else {
		firstSeg := buf
		if slash := strings.IndexByte(buf, '/'); slash != -1 {
			firstSeg = buf[:slash]
		}
		if strings.ContainsRune(firstSeg, ':') {
			return nil, errInvalidChar("':' in first segment of relative reference", ':')
		}
	}

	if strings.HasPrefix(buf, "//") {
		raw.AuthorityPresent = true
		buf = buf[2:]

		var authorityPart string
		if idx := strings.IndexByte(buf, '/'); idx == -1 {
			authorityPart = buf
			raw.Path = ""
		} else {
			authorityPart = buf[:idx]
			raw.Path = buf[idx:]
		}

		rest := authorityPart
		if at := strings.IndexByte(rest, '@'); at != -1 {
			raw.Userinfo = Component{Present: true, Value: rest[:at]}
			rest = rest[at+1:]
		}

		if strings.HasPrefix(rest, "[") {
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return nil, errInvalid("unbalanced '[' in host")
			}
			raw.Host = Component{Present: true, Value: rest[:end+1]}
			rest = rest[end+1:]
		} else if colon := strings.IndexByte(rest, ':'); colon == -1 {
			raw.Host = Component{Present: true, Value: rest}
			rest = ""
		} else {
			raw.Host = Component{Present: true, Value: rest[:colon]}
			rest = rest[colon:]
		}

		if strings.HasPrefix(rest, ":") {
			raw.Port = Component{Present: true, Value: rest[1:]}
		}
	} else {
		raw.Path = buf
	}

	return raw, nil
}
