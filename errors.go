package njsonpath

import (
	"errors"
	"fmt"

	"github.com/dhawalhost/njsonpath/ast"
)

// Sentinel errors wrapped by ParseError/EvalError, following the teacher's
// package-level `var ( Err... = errors.New(...) )` idiom (njson_get.go,
// nqjson_get.go) rather than bespoke error strings scattered through the
// parser and evaluator.
var (
	ErrEmptyPath          = errors.New("njsonpath: empty path")
	ErrExpectedRoot       = errors.New("njsonpath: path must start with '$' or '@'")
	ErrUnterminatedString = errors.New("njsonpath: unterminated string literal")
	ErrInvalidEscape      = errors.New("njsonpath: invalid escape sequence")
	ErrUnexpectedToken    = errors.New("njsonpath: unexpected token")
	ErrUnexpectedEOF      = errors.New("njsonpath: unexpected end of path")
	ErrTrailingGarbage    = errors.New("njsonpath: trailing input after path")
	ErrZeroStep           = errors.New("njsonpath: slice step must not be zero")
	ErrInvalidNumber      = errors.New("njsonpath: invalid numeric literal")
	ErrComputedZeroStep   = errors.New("njsonpath: computed slice step evaluated to zero")
)

// TokenKind names a class of token for ParseError's expected-set. Kept as a
// distinct exported type (rather than a bare string) so callers building
// editor tooling can switch on it without string comparisons.
type TokenKind string

// ParseError is produced only by the parser. It carries the offending byte
// span, a short human message, and the set of token kinds that would have
// been accepted at that position, per spec.md §7.
type ParseError struct {
	Span     ast.Span
	Message  string
	Expected []TokenKind
	err      error
}

func (e *ParseError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("njsonpath: parse error at %d:%d: %s", e.Span.Start, e.Span.End, e.Message)
	}
	return fmt.Sprintf("njsonpath: parse error at %d:%d: %s (expected one of %v)", e.Span.Start, e.Span.End, e.Message, e.Expected)
}

// Unwrap exposes the wrapped sentinel so errors.Is(err, ErrUnexpectedEOF)
// and friends work against a returned *ParseError.
func (e *ParseError) Unwrap() error { return e.err }

func newParseError(sentinel error, span ast.Span, msg string, expected ...TokenKind) *ParseError {
	return &ParseError{Span: span, Message: msg, Expected: expected, err: sentinel}
}

// Render draws a caret-pointer diagnostic under the offending span of
// pathText, mirroring the original Rust implementation's
// ast/error.rs::render — supplemented here per spec.md §11 since the
// distilled spec never mentions it but the source library exposes it as a
// primary way to surface parse failures without a full editor integration.
func (e *ParseError) Render(pathText string) string {
	line := pathText
	start := e.Span.Start
	end := e.Span.End
	if start < 0 {
		start = 0
	}
	if end > len(line) {
		end = len(line)
	}
	if start > end {
		start = end
	}
	caret := make([]byte, end)
	for i := range caret {
		if i >= start && i < end {
			caret[i] = '^'
		} else {
			caret[i] = ' '
		}
	}
	if len(caret) == start {
		caret = append(caret, '^')
	}
	return fmt.Sprintf("%s\n%s\n%s", line, string(caret), e.Message)
}

// EvalError is produced only in the cases the design declares fatal: a
// computed slice step of zero (spec.md §7). Out-of-range indices, missing
// keys, type mismatches, and parent-at-root are not errors — they simply
// produce no match.
type EvalError struct {
	Message string
	err     error
}

func (e *EvalError) Error() string { return "njsonpath: eval error: " + e.Message }

// Unwrap exposes the wrapped sentinel for errors.Is.
func (e *EvalError) Unwrap() error { return e.err }

func newEvalError(sentinel error, msg string) *EvalError {
	return &EvalError{Message: msg, err: sentinel}
}
