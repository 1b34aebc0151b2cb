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
	"errors"
	"testing"

	"github.com/go-uri/strict/internal/alloc"
	"github.com/go-uri/strict/internal/parser"
)

// exercise runs one scripted pass over every allocating entry point
// reachable from the public API: parsing a full reference, normalizing
// a single setter component, resolving a relative reference with
// deferred path resolution, merging a path against a base, and
// serializing the result. g is shared across every call the way a
// single URI's construction-through-mutation sequence would share one
// budget.
func exercise(g *alloc.Guard) error {
	raw, err := parser.ParseComponents(g, "http://a/b/c/d;p?q#f", false)
	if err != nil {
		return err
	}

	if _, err := parser.ValidateAndNormalizeComponent(g, parser.Host, "bücher.example"); err != nil {
		return err
	}
	if _, err := parser.ValidateAndNormalizeComponent(g, parser.Path, "new/segment"); err != nil {
		return err
	}

	next, err := parser.ParseComponents(g, "../../g?y#s", true)
	if err != nil {
		return err
	}

	u := fromRaw(raw)
	if _, err := applyPathInput(g, u.path, u.HasAuthority(), next.Path); err != nil {
		return err
	}
	if _, err := serializeWithGuard(g, u); err != nil {
		return err
	}
	return nil
}

// isOutOfMemory reports whether err is either flavor of this tree's
// out-of-memory error: an *internal/parser.Error with KindOutOfMemory
// (from the parser entry points the exercise calls directly), or a
// *uri.Error with KindOutOfMemory (applyPathInput and
// serializeWithGuard translate every failure, including the bare
// alloc.ErrOutOfMemory of Serialize's re-encoding pass, into one). A
// bare alloc.ErrOutOfMemory is accepted as well.
func isOutOfMemory(err error) bool {
	var pe *parser.Error
	if errors.As(err, &pe) {
		return pe.Kind == parser.KindOutOfMemory
	}
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind == KindOutOfMemory
	}
	return errors.Is(err, alloc.ErrOutOfMemory)
}

// TestAllocationFaultInjection runs the scripted exercise once to count
// its total allocation requests, then re-runs it once per n in that
// range with the n-th request failing. Every run must either complete
// or fail with KindOutOfMemory -- never panic, never a different error
// kind.
func TestAllocationFaultInjection(t *testing.T) {
	probe := alloc.NewGuard(0)
	if err := exercise(probe); err != nil {
		t.Fatalf("baseline exercise run failed: %v", err)
	}
	total := probe.Count()
	if total == 0 {
		t.Fatal("expected the exercise to perform at least one allocation")
	}

	sawFailure := false
	for n := uint64(1); n <= total; n++ {
		g := alloc.NewGuard(n)
		err := exercise(g)
		if err == nil {
			continue
		}
		sawFailure = true
		if !isOutOfMemory(err) {
			t.Errorf("failing allocation %d/%d produced a non-out-of-memory error: %v", n, total, err)
		}
	}
	if !sawFailure {
		t.Fatal("expected at least one scripted allocation failure to surface an error")
	}
}
