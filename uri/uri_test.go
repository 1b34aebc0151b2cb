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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewParsesBasicURI(t *testing.T) {
	u, err := New("http://example.com/a/b?x=1#frag")
	require.NoError(t, err)

	s, ok := u.Scheme()
	require.True(t, ok)
	require.Equal(t, "http", s)

	h, ok := u.Host()
	require.True(t, ok)
	require.Equal(t, "example.com", h)

	require.Equal(t, "/a/b", u.Path())

	q, ok := u.Query()
	require.True(t, ok)
	require.Equal(t, "x=1", q)

	f, ok := u.Fragment()
	require.True(t, ok)
	require.Equal(t, "frag", f)
}

func TestNewRejectsControlCharacters(t *testing.T) {
	_, err := New("http://example.com/\r\n")
	requireKind(t, err, KindInvalid)
}

func TestNewAcceptsAuthorityWithEmptyPath(t *testing.T) {
	_, err := New("http://example.com")
	require.NoError(t, err, "a bare authority with an empty path is valid")
}

func TestAccessorsOnNilURIAreSilent(t *testing.T) {
	var u *URI

	s, ok := u.Scheme()
	require.False(t, ok)
	require.Empty(t, s)

	require.Empty(t, u.Path())
	require.False(t, u.HasAuthority())
}

func TestNilReceiverMutatorsReturnBadPointer(t *testing.T) {
	var u *URI
	requireKind(t, u.SetScheme(nil), KindBadPointer)
	requireKind(t, u.Set("x"), KindBadPointer)

	_, err := u.Serialize()
	requireKind(t, err, KindBadPointer)

	_, err = u.Clone()
	requireKind(t, err, KindBadPointer)
}

func TestCloneIsIndependent(t *testing.T) {
	u, err := New("http://example.com/a")
	require.NoError(t, err)

	c, err := u.Clone()
	require.NoError(t, err)
	require.NoError(t, c.SetPath(strPtr("/b")))

	require.Equal(t, "/a", u.Path(), "mutating the clone must not affect the original")
	require.Equal(t, "/b", c.Path())
}

func TestReleaseResetsState(t *testing.T) {
	u, err := New("http://example.com/a")
	require.NoError(t, err)

	u.Release()
	require.False(t, u.HasAuthority())
	require.Empty(t, u.Path())
}

func TestEmptyPresentVsAbsentSurvivesRoundTrip(t *testing.T) {
	u, err := New("http://example.com?#")
	require.NoError(t, err)

	q, ok := u.Query()
	require.True(t, ok)
	require.Empty(t, q)

	f, ok := u.Fragment()
	require.True(t, ok)
	require.Empty(t, f)
}

func strPtr(s string) *string { return &s }
