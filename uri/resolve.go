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
	"github.com/go-uri/strict/internal/alloc"
	"github.com/go-uri/strict/internal/parser"
)

// Set resolves ref against u as the base URI, per RFC 3986 §5.2.2, and
// replaces u's state with the result. u is left unchanged if resolution
// fails at any step -- the whole operation is copy, mutate, validate,
// then commit.
func (u *URI) Set(ref string) error {
	if u == nil {
		return errBadPointer
	}

	g := alloc.NewGuard(0)
	raw, err := parser.ParseComponents(g, ref, true)
	if err != nil {
		return fromParserError(err)
	}

	next := *u

	switch {
	case raw.Scheme.Present:
		// Case 1: ref carries its own scheme. Every component is taken
		// from ref; only the path is run through dot-segment removal,
		// since an absolute reference's path is never merged against
		// the base.
		resolved, err := parser.RemoveDotSegments(g, raw.Path)
		if err != nil {
			return fromParserError(err)
		}
		next.scheme = componentFromRaw(raw.Scheme)
		next.userinfo = componentFromRaw(raw.Userinfo)
		next.host = componentFromRaw(raw.Host)
		next.port = componentFromRaw(raw.Port)
		next.path = resolved
		next.query = componentFromRaw(raw.Query)
		next.fragment = componentFromRaw(raw.Fragment)

	case raw.AuthorityPresent:
		// Case 2: ref has its own authority but inherits the base
		// scheme. Userinfo/host/port, path and query all come from ref.
		resolved, err := parser.RemoveDotSegments(g, raw.Path)
		if err != nil {
			return fromParserError(err)
		}
		next.userinfo = componentFromRaw(raw.Userinfo)
		next.host = componentFromRaw(raw.Host)
		next.port = componentFromRaw(raw.Port)
		next.path = resolved
		next.query = componentFromRaw(raw.Query)
		next.fragment = componentFromRaw(raw.Fragment)

	case raw.Path == "":
		// Case 3: ref is a same-document or query-only reference. The
		// base path is kept untouched; the query is replaced only if
		// ref supplies one, and the fragment is always replaced
		// (including being cleared if ref has none).
		if raw.Query.Present {
			next.query = componentFromRaw(raw.Query)
		}
		next.fragment = componentFromRaw(raw.Fragment)

	default:
		// Case 4: ref has a relative or absolute path of its own, no
		// scheme and no authority. Merge it against the base path
		// (or take it verbatim if absolute), then resolve dot segments.
		resolved, err := applyPathInput(g, next.path, next.HasAuthority(), raw.Path)
		if err != nil {
			return err
		}
		next.path = resolved
		next.query = componentFromRaw(raw.Query)
		next.fragment = componentFromRaw(raw.Fragment)
	}

	if err := next.checkAuthorityPathInvariant(); err != nil {
		return err
	}

	*u = next
	return nil
}
