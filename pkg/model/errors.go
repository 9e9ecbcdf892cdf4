/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error kinds surfaced by the engine. Each kind is a typed error that
carries the context needed to act on it (violated invariant, offending kinds,
exceeded bound, partial progress) and matches its sentinel through errors.Is.
*/

package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is matching
var (
	ErrMalformedModel        = errors.New("malformed model")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrKindMismatch          = errors.New("kind mismatch")
	ErrTimeoutExceeded       = errors.New("timeout exceeded")
	ErrInfiniteLoopGuard     = errors.New("infinite loop guard")
)

// MalformedModelError reports a structural invariant violated at construction time
type MalformedModelError struct {
	Kind      Kind
	Invariant string
	Detail    string
}

func (e *MalformedModelError) Error() string {
	msg := fmt.Sprintf("malformed %s: %s", e.Kind, e.Invariant)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is matches ErrMalformedModel
func (e *MalformedModelError) Is(target error) bool { return target == ErrMalformedModel }

// Malformed builds a MalformedModelError with a formatted detail
func Malformed(kind Kind, invariant string, format string, args ...interface{}) error {
	return &MalformedModelError{Kind: kind, Invariant: invariant, Detail: fmt.Sprintf(format, args...)}
}

// UnsupportedConversionError reports an operation that is not defined for a kind
type UnsupportedConversionError struct {
	From Kind
	To   string
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("unsupported conversion from %s to %s", e.From, e.To)
}

// Is matches ErrUnsupportedConversion
func (e *UnsupportedConversionError) Is(target error) bool { return target == ErrUnsupportedConversion }

// Unsupported builds an UnsupportedConversionError for an operation target
func Unsupported(from Kind, to string) error {
	return &UnsupportedConversionError{From: from, To: to}
}

// KindMismatchError reports two models that cannot be compared
type KindMismatchError struct {
	Left  Kind
	Right Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("cannot compare %s with %s", e.Left, e.Right)
}

// Is matches ErrKindMismatch
func (e *KindMismatchError) Is(target error) bool { return target == ErrKindMismatch }

// TimeoutExceededError reports a simulation that hit its step or configuration bound
type TimeoutExceededError struct {
	Input string
	Bound int
	Steps int
	// Last is a rendering of the last configuration reached
	Last string
}

func (e *TimeoutExceededError) Error() string {
	msg := fmt.Sprintf("bound of %d exceeded after %d steps on input %q", e.Bound, e.Steps, e.Input)
	if e.Last != "" {
		msg += " (last configuration " + e.Last + ")"
	}
	return msg
}

// Is matches ErrTimeoutExceeded
func (e *TimeoutExceededError) Is(target error) bool { return target == ErrTimeoutExceeded }

// InfiniteLoopGuardError reports a derivation search that exceeded its safety budget
type InfiniteLoopGuardError struct {
	Limit int
	// Partial holds the words produced before the guard tripped
	Partial []string
}

func (e *InfiniteLoopGuardError) Error() string {
	msg := fmt.Sprintf("derivation search exceeded %d sentential forms without progress", e.Limit)
	if len(e.Partial) > 0 {
		msg += fmt.Sprintf("; produced so far: [%s]", strings.Join(quoteAll(e.Partial), ", "))
	}
	return msg
}

// Is matches ErrInfiniteLoopGuard
func (e *InfiniteLoopGuardError) Is(target error) bool { return target == ErrInfiniteLoopGuard }

func quoteAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = fmt.Sprintf("%q", w)
	}
	return out
}
