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

// Package uri implements a defensively strict RFC 3986 URI value type:
// a tokenizer/normalizer/resolver pipeline wrapped around one mutable
// value object, designed to safely carry URIs across trust boundaries
// (web clients, proxies, brokers, loggers). It deliberately rejects
// many inputs that browsers accept, to forestall CRLF injection, NUL
// truncation, authority-path smuggling, percent-encoding confusion,
// overlong UTF-8, and double-decoding path traversal.
package uri

import (
	"errors"
	"fmt"

	"github.com/go-uri/strict/internal/alloc"
	"github.com/go-uri/strict/internal/parser"
)

// Kind classifies a URI operation failure. It is a closed set: every
// fallible operation in this package returns an *Error whose Kind is
// one of the five values below.
type Kind uint8

const (
	// KindBadPointer marks a required *URI receiver that was nil.
	KindBadPointer Kind = iota + 1
	// KindEncoding marks malformed UTF-8 input.
	KindEncoding
	// KindInvalid marks a structural or grammatical violation: a
	// disallowed character (literal or after percent-decoding), a
	// malformed percent escape, a NUL byte, a control character, an
	// empty scheme, an unbalanced '[', a ':' in the first segment of a
	// relative path, or a relative path assigned to a URI with an
	// authority.
	KindInvalid
	// KindOutOfRange marks a port value outside 0-65535.
	KindOutOfRange
	// KindOutOfMemory marks a simulated allocation failure surfaced by
	// the internal/alloc fault-injection harness.
	KindOutOfMemory
)

// String renders the Kind the way a log line or test failure would
// want it: a short, stable, lowercase token.
func (k Kind) String() string {
	switch k {
	case KindBadPointer:
		return "bad_pointer"
	case KindEncoding:
		return "encoding"
	case KindInvalid:
		return "invalid"
	case KindOutOfRange:
		return "out_of_range"
	case KindOutOfMemory:
		return "out_of_memory"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every fallible operation in this
// package. Its Kind is always one of the constants above.
type Error struct {
	Kind    Kind
	Message string
	err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("uri: %s: %s", e.Kind, e.Message)
}

// Unwrap exposes any wrapped internal cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is an *Error with the same Kind, so
// errors.Is(err, &uri.Error{Kind: uri.KindInvalid}) matches any error
// of that Kind; callers can also compare Kinds directly.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var errBadPointer = newError(KindBadPointer, "receiver is nil")

// fromParserError translates the internal parser's error taxonomy into
// the public Kind enum.
func fromParserError(err error) error {
	if err == nil {
		return nil
	}
	var pe *parser.Error
	if errors.As(err, &pe) {
		var k Kind
		switch pe.Kind {
		case parser.KindEncoding:
			k = KindEncoding
		case parser.KindInvalid:
			k = KindInvalid
		case parser.KindOutOfRange:
			k = KindOutOfRange
		case parser.KindOutOfMemory:
			k = KindOutOfMemory
		default:
			k = KindInvalid
		}
		return &Error{Kind: k, Message: pe.Error(), err: err}
	}
	if errors.Is(err, alloc.ErrOutOfMemory) {
		return newError(KindOutOfMemory, "allocation failed")
	}
	return newError(KindInvalid, err.Error())
}
