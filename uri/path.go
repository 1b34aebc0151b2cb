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

// applyPathInput implements the shared replace-or-merge logic used by
// both SetPath and whole-reference resolution's merge case: absolute
// input replaces the path outright; relative input is merged against
// currentPath's directory prefix. Either way the result is run through
// dot-segment removal, then checked against the rule that a URI with
// an authority must not end up with a relative path.
func applyPathInput(g *alloc.Guard, currentPath string, hasAuthority bool, input string) (string, error) {
	var merged string
	if strings.HasPrefix(input, "/") {
		merged = input
	} else {
		var err error
		merged, err = parser.MergePath(g, currentPath, input)
		if err != nil {
			return "", fromParserError(err)
		}
	}

	resolved, err := parser.RemoveDotSegments(g, merged)
	if err != nil {
		return "", fromParserError(err)
	}

	if hasAuthority && resolved != "" && !strings.HasPrefix(resolved, "/") {
		return "", newError(KindInvalid, "relative path not valid for a URI with an authority")
	}
	return resolved, nil
}
