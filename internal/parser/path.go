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

// firstSegment splits in into its first complete segment (an initial
// "/" if present, followed by bytes up to but not including the next
// "/") and the remainder.
func firstSegment(in string) (segment, rest string) {
	if strings.HasPrefix(in, "/") {
		next := strings.Index(in[1:], "/")
		if next == -1 {
			return in, ""
		}
		return in[:next+1], in[next+1:]
	}
	idx := strings.Index(in, "/")
	if idx == -1 {
		return in, ""
	}
	return in[:idx], in[idx:]
}

// RemoveDotSegments is a stricter variant of RFC 3986 §5.2.4 that never
// promotes a relative path to an absolute one -- "a/.." reduces to "",
// not "/". Percent-encoded "%2E"/"%2e" must already be decoded to
// literal "." by NormalizePercent before this runs, so "%2e%2e" is
// treated as "..".
func RemoveDotSegments(g *alloc.Guard, path string) (string, error) {
	if err := g.Reserve(len(path)); err != nil {
		return "", errOutOfMemory()
	}

	absolute := strings.HasPrefix(path, "/")

	var out []string
	in := path
	for len(in) > 0 {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = "/" + in[3:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = "/" + in[4:]
			out = popSegment(out)
		case in == "/..":
			in = "/"
			out = popSegment(out)
		case in == "." || in == "..":
			in = ""
		default:
			var seg string
			seg, in = firstSegment(in)
			out = append(out, seg)
		}
	}

	result := strings.Join(out, "")
	if !absolute && strings.HasPrefix(result, "/") {
		result = result[1:]
	}
	return result, nil
}

// popSegment removes the last segment from out ("remove the last
// segment and its preceding '/', if any").
func popSegment(out []string) []string {
	if len(out) == 0 {
		return out
	}
	return out[:len(out)-1]
}

// MergePath implements RFC 3986 §5.2.3's merge step: the existing path's
// prefix up to and including its last "/" (or "" if none), followed by
// the new, relative path. Callers run RemoveDotSegments on the result.
func MergePath(g *alloc.Guard, basePath, relPath string) (string, error) {
	if err := g.Reserve(len(basePath) + len(relPath)); err != nil {
		return "", errOutOfMemory()
	}
	if lastSlash := strings.LastIndex(basePath, "/"); lastSlash != -1 {
		return basePath[:lastSlash+1] + relPath, nil
	}
	return relPath, nil
}
