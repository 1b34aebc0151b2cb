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

import "testing"

// TestResolutionExamplesRFC3986 checks the normal examples of
// RFC 3986 §5.4.1 against a fixed base URI, per spec law L4.
func TestResolutionExamplesRFC3986(t *testing.T) {
	const base = "http://a/b/c/d;p?q"

	cases := []struct {
		ref  string
		want string
	}{
		{"g:h", "g:h"},
		{"g", "http://a/b/c/g"},
		{"./g", "http://a/b/c/g"},
		{"g/", "http://a/b/c/g/"},
		{"/g", "http://a/g"},
		{"//g", "http://g"},
		{"?y", "http://a/b/c/d;p?y"},
		{"g?y", "http://a/b/c/g?y"},
		{"#s", "http://a/b/c/d;p?q#s"},
		{"g#s", "http://a/b/c/g#s"},
		{"g?y#s", "http://a/b/c/g?y#s"},
		{";x", "http://a/b/c/;x"},
		{"g;x", "http://a/b/c/g;x"},
		{"g;x?y#s", "http://a/b/c/g;x?y#s"},
		{"", "http://a/b/c/d;p?q"},
		{".", "http://a/b/c/"},
		{"./", "http://a/b/c/"},
		{"..", "http://a/b/"},
		{"../", "http://a/b/"},
		{"../g", "http://a/b/g"},
		{"../..", "http://a/"},
		{"../../", "http://a/"},
		{"../../g", "http://a/g"},
	}

	for _, c := range cases {
		u, err := New(base)
		if err != nil {
			t.Fatalf("New(%q): unexpected error: %v", base, err)
		}
		if err := u.Set(c.ref); err != nil {
			t.Fatalf("Set(%q): unexpected error: %v", c.ref, err)
		}
		got, err := u.Serialize()
		if err != nil {
			t.Fatalf("Serialize after Set(%q): unexpected error: %v", c.ref, err)
		}
		if got != c.want {
			t.Errorf("resolve(%q, %q) = %q, want %q", base, c.ref, got, c.want)
		}
	}
}

// TestResolutionAbnormalExamplesRFC3986 checks a representative subset
// of the abnormal examples of RFC 3986 §5.4.2: excess ".." segments
// climbing past the authority root must not escape it, dot-segments in
// an absolute reference path are removed, and segments that merely
// contain dots ("g.", "..g") are kept as ordinary segments.
func TestResolutionAbnormalExamplesRFC3986(t *testing.T) {
	const base = "http://a/b/c/d;p?q"

	cases := []struct {
		ref  string
		want string
	}{
		{"../../../g", "http://a/g"},
		{"../../../../g", "http://a/g"},
		{"/./g", "http://a/g"},
		{"/../g", "http://a/g"},
		{"g.", "http://a/b/c/g."},
		{".g", "http://a/b/c/.g"},
		{"g..", "http://a/b/c/g.."},
		{"..g", "http://a/b/c/..g"},
		{"./../g", "http://a/b/g"},
		{"./g/.", "http://a/b/c/g/"},
		{"g/./h", "http://a/b/c/g/h"},
		{"g/../h", "http://a/b/c/h"},
	}

	for _, c := range cases {
		u, err := New(base)
		if err != nil {
			t.Fatalf("New(%q): unexpected error: %v", base, err)
		}
		if err := u.Set(c.ref); err != nil {
			t.Fatalf("Set(%q): unexpected error: %v", c.ref, err)
		}
		got, err := u.Serialize()
		if err != nil {
			t.Fatalf("Serialize after Set(%q): unexpected error: %v", c.ref, err)
		}
		if got != c.want {
			t.Errorf("resolve(%q, %q) = %q, want %q", base, c.ref, got, c.want)
		}
	}
}

func TestSetTransactionalOnFailure(t *testing.T) {
	u, err := New("http://a/b/c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before, _ := u.Serialize()

	if err := u.Set("http://bad\t/x"); err == nil {
		t.Fatal("expected error")
	}

	after, _ := u.Serialize()
	if before != after {
		t.Fatalf("Set mutated u on failure: before=%q after=%q", before, after)
	}
}

func TestSetWithSchemeOverwritesEverything(t *testing.T) {
	u, err := New("http://a/b/c?q#f")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := u.Set("ftp://other.example/x/y"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := u.Serialize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ftp://other.example/x/y" {
		t.Fatalf("got %q", got)
	}
}

func TestSetSameDocumentReferenceKeepsPath(t *testing.T) {
	u, err := New("http://a/b/c?orig#frag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := u.Set(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := u.Serialize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "http://a/b/c?orig" {
		t.Fatalf("got %q", got)
	}
}
