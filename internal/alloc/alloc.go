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

// Package alloc provides a fault-injection harness for the allocating
// operations of the uri package: the normalizer, path resolver and
// serializer all grow buffers through a Guard instead of calling
// strings.Builder.Grow or append directly, so tests can make the n-th
// allocation in a scripted exercise fail and assert that the URI value
// is left untouched.
//
// Go has no process-wide allocator interception hook, so unlike a
// malloc/realloc shim installed via LD_PRELOAD, the budget here is
// threaded explicitly through the call sites that would otherwise grow
// a buffer unconditionally.
package alloc

import "errors"

// ErrOutOfMemory is returned by Guard.Reserve when the simulated budget
// is exhausted. It is mapped to uri.KindOutOfMemory at the package
// boundary.
var ErrOutOfMemory = errors.New("alloc: simulated allocation failure")

// Guard tracks allocation requests and optionally fails one of them.
// The zero value never fails. A Guard has no internal synchronization
// and is not safe for concurrent use (Reserve updates its count),
// matching the single-threaded discipline of the URI value it
// instruments.
type Guard struct {
	count  uint64
	failAt uint64 // 0 means "never fail"
}

// NewGuard returns a Guard that fails precisely its failAt-th Reserve
// call (1-based). A failAt of 0 means the guard never fails.
func NewGuard(failAt uint64) *Guard {
	return &Guard{failAt: failAt}
}

// Reserve records one allocation request of n bytes and fails it if it
// is the configured nth call. The size is accepted for symmetry with a
// real allocator and for future accounting; it is not currently used to
// decide failure.
func (g *Guard) Reserve(n int) error {
	g.count++
	if g.failAt != 0 && g.count == g.failAt {
		return ErrOutOfMemory
	}
	return nil
}

// Count returns the number of Reserve calls made so far.
func (g *Guard) Count() uint64 {
	return g.count
}

// Reset clears the call count without changing the configured failAt.
func (g *Guard) Reset() {
	g.count = 0
}
