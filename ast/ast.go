// Package ast holds the syntax tree that backs a compiled path. Consumers
// who only want to run paths against documents never need to touch this
// package directly; it is exposed for callers that want syntax highlighting
// or other tooling built on top of the parser.
package ast

// Span is a byte range in the source text a node was parsed from. Spans are
// only populated when a path is compiled in spanned mode; otherwise every
// node's Span is the zero value. Span is never considered by Equal.
type Span struct {
	Start int
	End   int
}

// Root identifies which anchor a Path begins from.
type Root uint8

const (
	// RootDocument is the '$' anchor: the document root.
	RootDocument Root = iota
	// RootCurrent is the '@' anchor: the current node of the enclosing
	// evaluation context (only meaningful for subpaths and filter
	// expressions).
	RootCurrent
)

func (r Root) String() string {
	if r == RootCurrent {
		return "@"
	}
	return "$"
}

// Path is a root anchor followed by an ordered list of Steps. A top-level
// compiled path may begin with either anchor; at the top level both start
// from the document itself. Inside Subpath selectors and filter Path
// expressions, RootCurrent starts from the current node instead.
type Path struct {
	Root  Root
	Steps []Step
	Span  Span
}

// Equal compares two paths structurally, ignoring spans.
func (p *Path) Equal(o *Path) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.Root != o.Root || len(p.Steps) != len(o.Steps) {
		return false
	}
	for i := range p.Steps {
		if !p.Steps[i].Equal(&o.Steps[i]) {
			return false
		}
	}
	return true
}

// StepKind discriminates the three ways a step can be written.
type StepKind uint8

const (
	// StepDot is `.sel`: a single selector following a dot.
	StepDot StepKind = iota
	// StepBracket is `[union]`: a bracketed, possibly multi-selector union.
	StepBracket
	// StepRecursive is `..sel` or `..[union]`: apply the union at every
	// descendant depth, including the current node itself.
	StepRecursive
)

// Step is one axis movement in a path: a selector or a union of selectors,
// applied either directly, after a dot, or recursively at every depth.
type Step struct {
	Kind  StepKind
	Union Union
	Span  Span
}

// Equal compares two steps structurally, ignoring spans.
func (s *Step) Equal(o *Step) bool {
	if s.Kind != o.Kind || len(s.Union) != len(o.Union) {
		return false
	}
	for i := range s.Union {
		if !s.Union[i].Equal(&o.Union[i]) {
			return false
		}
	}
	return true
}

// Union is a non-empty, ordered list of selectors. Duplicates in the result
// list are intentional and never deduplicated by the evaluator itself.
type Union []Selector

// SelectorKind discriminates the elementary matchers a Selector can be.
type SelectorKind uint8

const (
	// SelWildcard is `*`.
	SelWildcard SelectorKind = iota
	// SelName is a bare identifier or quoted string key.
	SelName
	// SelIndex is a (possibly negative) integer array index.
	SelIndex
	// SelSlice is `start:end:step`.
	SelSlice
	// SelFilter is `?( expr )`.
	SelFilter
	// SelParent is `^`.
	SelParent
	// SelIdentity is `~`.
	SelIdentity
	// SelSubpath is a nested path used where a selector is expected; its
	// scalar results become Name or Index selectors at evaluation time.
	SelSubpath
)

// Slice holds the three (optionally omitted) components of a slice
// selector. A nil component means "use the sign-of-step default" per the
// evaluator's slice semantics.
type Slice struct {
	Start *int64
	End   *int64
	Step  *int64
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Equal compares two slices structurally.
func (s Slice) Equal(o Slice) bool {
	return int64PtrEqual(s.Start, o.Start) && int64PtrEqual(s.End, o.End) && int64PtrEqual(s.Step, o.Step)
}

// Selector is one elementary matcher appearing inside a step. Exactly the
// fields relevant to Kind are meaningful; the rest are zero.
type Selector struct {
	Kind SelectorKind

	// SelName
	Name string
	// SelIndex
	Index int64
	// SelSlice
	Slice Slice
	// SelFilter
	Filter *Expr
	// SelSubpath: the nested path, rooted at $ or @ per Subpath.Root.
	Subpath *Path

	Span Span
}

// Equal compares two selectors structurally, ignoring spans.
func (s *Selector) Equal(o *Selector) bool {
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case SelName:
		return s.Name == o.Name
	case SelIndex:
		return s.Index == o.Index
	case SelSlice:
		return s.Slice.Equal(o.Slice)
	case SelFilter:
		return s.Filter.Equal(o.Filter)
	case SelSubpath:
		return s.Subpath.Equal(o.Subpath)
	default:
		return true // Wildcard, Parent, Identity carry no payload
	}
}

// ExprKind discriminates the tagged variants of a filter expression.
type ExprKind uint8

const (
	ExprLitNull ExprKind = iota
	ExprLitBool
	ExprLitInt
	ExprLitFloat
	ExprLitString
	// ExprPath is a full sub-path anchored at $ or @, appearing as an
	// operand inside a filter expression.
	ExprPath
	ExprUnary
	ExprBinary
	// ExprGroup is a parenthesized sub-expression, kept distinct so the
	// pretty-printer can reproduce the source's grouping.
	ExprGroup
)

// UnOp is a unary prefix operator.
type UnOp uint8

const (
	OpNot UnOp = iota // !
	OpNeg             // -
)

// BinOp is an infix operator, ordered here from lowest to highest
// precedence to match the grammar in the parser.
type BinOp uint8

const (
	OpOr BinOp = iota
	OpAnd
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

// Expr is a node in the filter expression sub-language.
type Expr struct {
	Kind ExprKind

	Bool  bool
	Int   int64
	Float float64
	Str   string
	Path  *Path // ExprPath

	UnOp UnOp // ExprUnary
	X    *Expr

	BinOp BinOp // ExprBinary
	Y     *Expr

	Span Span
}

// Equal compares two expressions structurally, ignoring spans.
func (e *Expr) Equal(o *Expr) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Kind != o.Kind {
		return false
	}
	switch e.Kind {
	case ExprLitNull:
		return true
	case ExprLitBool:
		return e.Bool == o.Bool
	case ExprLitInt:
		return e.Int == o.Int
	case ExprLitFloat:
		return e.Float == o.Float
	case ExprLitString:
		return e.Str == o.Str
	case ExprPath:
		return e.Path.Equal(o.Path)
	case ExprUnary:
		return e.UnOp == o.UnOp && e.X.Equal(o.X)
	case ExprBinary:
		return e.BinOp == o.BinOp && e.X.Equal(o.X) && e.Y.Equal(o.Y)
	case ExprGroup:
		return e.X.Equal(o.X)
	default:
		return false
	}
}
