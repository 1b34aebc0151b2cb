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

// component is the internal three-valued representation of an
// optional URI component: present and non-empty, present and empty, or
// absent. Accessors expose this as a (string, bool) pair.
type component struct {
	present bool
	value   string
}

func componentFromRaw(c parser.Component) component {
	return component{present: c.Present, value: c.Value}
}

// URI is a mutable, owned URI value. The zero value is the same value
// New("") returns: every component absent and an empty path. A *URI
// is safe to mutate from a single goroutine at a
// time, the same single-threaded discipline as the library this
// package is modeled on -- distinct URI values share no state.
type URI struct {
	scheme   component
	userinfo component
	host     component
	port     component
	path     string
	query    component
	fragment component
}

// New parses ref -- a UTF-8 reference string -- into a new owned URI,
// running the full input-gate/tokenizer/validator/normalizer/resolver
// pipeline.
func New(ref string) (*URI, error) {
	g := alloc.NewGuard(0)
	return newWithGuard(g, ref)
}

func newWithGuard(g *alloc.Guard, ref string) (*URI, error) {
	raw, err := parser.ParseComponents(g, ref, false)
	if err != nil {
		return nil, fromParserError(err)
	}
	u := fromRaw(raw)
	if err := u.checkAuthorityPathInvariant(); err != nil {
		return nil, err
	}
	return u, nil
}

func fromRaw(raw *parser.Raw) *URI {
	return &URI{
		scheme:   componentFromRaw(raw.Scheme),
		userinfo: componentFromRaw(raw.Userinfo),
		host:     componentFromRaw(raw.Host),
		port:     componentFromRaw(raw.Port),
		path:     raw.Path,
		query:    componentFromRaw(raw.Query),
		fragment: componentFromRaw(raw.Fragment),
	}
}

// Clone returns an independent copy of u. Because Go strings are
// immutable and share their backing storage, cloning never grows a new
// buffer and so cannot fail with KindOutOfMemory in this
// implementation (see DESIGN.md); Clone still reports KindBadPointer
// for a nil receiver to preserve the operation's documented error set.
func (u *URI) Clone() (*URI, error) {
	if u == nil {
		return nil, errBadPointer
	}
	cp := *u
	return &cp, nil
}

// Release deliberately discards u's observable state. Go's garbage
// collector reclaims the backing memory regardless, but Release gives
// callers an explicit teardown call -- matching the discipline of a
// library with no destructor side channel -- and guarantees every
// accessor on a released value behaves as if the value were freshly
// absent rather than exposing stale data.
func (u *URI) Release() {
	if u == nil {
		return
	}
	*u = URI{}
}

// HasAuthority reports whether the authority cluster
// ([userinfo "@"] host [":" port]) is present, i.e. whether any of
// userinfo, host or port is non-absent.
func (u *URI) HasAuthority() bool {
	if u == nil {
		return false
	}
	return u.userinfo.present || u.host.present || u.port.present
}

// Scheme returns the scheme component and whether it is present.
func (u *URI) Scheme() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.scheme.value, u.scheme.present
}

// Userinfo returns the userinfo component and whether it is present.
func (u *URI) Userinfo() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.userinfo.value, u.userinfo.present
}

// Host returns the host component and whether it is present.
func (u *URI) Host() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.host.value, u.host.present
}

// Port returns the port component and whether it is present.
func (u *URI) Port() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.port.value, u.port.present
}

// Path returns the path component. A path is always present, though it
// may be empty.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	return u.path
}

// Query returns the query component and whether it is present.
func (u *URI) Query() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.query.value, u.query.present
}

// Fragment returns the fragment component and whether it is present.
func (u *URI) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.fragment.value, u.fragment.present
}

// checkAuthorityPathInvariant enforces RFC 3986 §3.3's rule that a URI
// with an authority and a non-empty path must have a path beginning
// with "/".
func (u *URI) checkAuthorityPathInvariant() error {
	if u.HasAuthority() && u.path != "" && !strings.HasPrefix(u.path, "/") {
		return newError(KindInvalid, "path with authority must be absolute")
	}
	return nil
}
