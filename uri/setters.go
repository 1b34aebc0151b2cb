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

// checkRelativePathBlocksAuthorityEdit rejects setting userinfo, host
// or port outright while the current path is non-empty and relative,
// since the result would otherwise serialize ambiguously: a relative
// path placed right after a newly added "//authority" would re-parse
// as part of the authority itself.
func (u *URI) checkRelativePathBlocksAuthorityEdit() error {
	if u.path != "" && !strings.HasPrefix(u.path, "/") {
		return newError(KindInvalid, "cannot set an authority component while the path is relative")
	}
	return nil
}

// SetScheme sets or (if s is nil) clears the scheme component.
func (u *URI) SetScheme(s *string) error {
	if u == nil {
		return errBadPointer
	}
	if s == nil {
		u.scheme = component{}
		return nil
	}
	if *s == "" {
		return newError(KindInvalid, "empty scheme")
	}
	g := alloc.NewGuard(0)
	v, err := parser.ValidateAndNormalizeComponent(g, parser.Scheme, *s)
	if err != nil {
		return fromParserError(err)
	}
	u.scheme = component{present: true, value: v}
	return nil
}

// SetUserinfo sets or (if s is nil) clears the userinfo component.
func (u *URI) SetUserinfo(s *string) error {
	if u == nil {
		return errBadPointer
	}
	if s == nil {
		u.userinfo = component{}
		return nil
	}
	if err := u.checkRelativePathBlocksAuthorityEdit(); err != nil {
		return err
	}
	g := alloc.NewGuard(0)
	v, err := parser.ValidateAndNormalizeComponent(g, parser.Userinfo, *s)
	if err != nil {
		return fromParserError(err)
	}
	u.userinfo = component{present: true, value: v}
	return nil
}

// SetHost sets or (if s is nil) clears the host component.
func (u *URI) SetHost(s *string) error {
	if u == nil {
		return errBadPointer
	}
	if s == nil {
		u.host = component{}
		return nil
	}
	if err := u.checkRelativePathBlocksAuthorityEdit(); err != nil {
		return err
	}
	g := alloc.NewGuard(0)
	v, err := parser.ValidateAndNormalizeComponent(g, parser.Host, *s)
	if err != nil {
		return fromParserError(err)
	}
	u.host = component{present: true, value: v}
	return nil
}

// SetPort sets or (if s is nil) clears the port component.
func (u *URI) SetPort(s *string) error {
	if u == nil {
		return errBadPointer
	}
	if s == nil {
		u.port = component{}
		return nil
	}
	if err := u.checkRelativePathBlocksAuthorityEdit(); err != nil {
		return err
	}
	g := alloc.NewGuard(0)
	v, err := parser.ValidateAndNormalizeComponent(g, parser.Port, *s)
	if err != nil {
		return fromParserError(err)
	}
	u.port = component{present: true, value: v}
	return nil
}

// SetPath replaces the path component. Absolute input ("/...")
// replaces the path outright; relative input is merged against the
// existing path's directory prefix. Either way, the result runs
// through dot-segment removal before being installed. A nil s clears
// the path to empty -- the path component is always present, so
// "removing" it means making it empty (see DESIGN.md).
func (u *URI) SetPath(s *string) error {
	if u == nil {
		return errBadPointer
	}
	if s == nil {
		u.path = ""
		return nil
	}
	g := alloc.NewGuard(0)
	normalized, err := parser.ValidateAndNormalizeComponent(g, parser.Path, *s)
	if err != nil {
		return fromParserError(err)
	}
	resolved, err := applyPathInput(g, u.path, u.HasAuthority(), normalized)
	if err != nil {
		return err
	}
	u.path = resolved
	return nil
}

// SetQuery sets or (if s is nil) clears the query component.
func (u *URI) SetQuery(s *string) error {
	if u == nil {
		return errBadPointer
	}
	if s == nil {
		u.query = component{}
		return nil
	}
	g := alloc.NewGuard(0)
	v, err := parser.ValidateAndNormalizeComponent(g, parser.Query, *s)
	if err != nil {
		return fromParserError(err)
	}
	u.query = component{present: true, value: v}
	return nil
}

// SetFragment sets or (if s is nil) clears the fragment component.
func (u *URI) SetFragment(s *string) error {
	if u == nil {
		return errBadPointer
	}
	if s == nil {
		u.fragment = component{}
		return nil
	}
	g := alloc.NewGuard(0)
	v, err := parser.ValidateAndNormalizeComponent(g, parser.Fragment, *s)
	if err != nil {
		return fromParserError(err)
	}
	u.fragment = component{present: true, value: v}
	return nil
}
