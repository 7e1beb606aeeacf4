package ast

import (
	"strconv"
	"strings"
)

// String reconstructs path text textually equivalent to whatever was
// parsed into p (modulo whitespace and quote-style choice). Used by the
// parser's own round-trip tests and by diagnostic tooling.
func (p *Path) String() string {
	var b strings.Builder
	p.write(&b)
	return b.String()
}

func (p *Path) write(b *strings.Builder) {
	b.WriteString(p.Root.String())
	for _, s := range p.Steps {
		s.write(b)
	}
}

func (s *Step) write(b *strings.Builder) {
	switch s.Kind {
	case StepDot:
		b.WriteByte('.')
		s.Union[0].writeBare(b)
	case StepRecursive:
		b.WriteString("..")
		if len(s.Union) == 1 && s.Union[0].isBareable() {
			s.Union[0].writeBare(b)
			return
		}
		b.WriteByte('[')
		writeUnion(b, s.Union)
		b.WriteByte(']')
	case StepBracket:
		b.WriteByte('[')
		writeUnion(b, s.Union)
		b.WriteByte(']')
	}
}

func writeUnion(b *strings.Builder, u Union) {
	for i, sel := range u {
		if i > 0 {
			b.WriteByte(',')
		}
		sel.writeBracket(b)
	}
}

// isBareable reports whether a selector can appear directly after a bare
// dot or double-dot, without brackets (wildcard, parent, identity, or a
// plain identifier name).
func (s *Selector) isBareable() bool {
	switch s.Kind {
	case SelWildcard, SelParent, SelIdentity:
		return true
	case SelName:
		return isPlainIdent(s.Name)
	default:
		return false
	}
}

func (s *Selector) writeBare(b *strings.Builder) {
	switch s.Kind {
	case SelWildcard:
		b.WriteByte('*')
	case SelParent:
		b.WriteByte('^')
	case SelIdentity:
		b.WriteByte('~')
	case SelName:
		b.WriteString(s.Name)
	default:
		s.writeBracket(b)
	}
}

func (s *Selector) writeBracket(b *strings.Builder) {
	switch s.Kind {
	case SelWildcard:
		b.WriteByte('*')
	case SelParent:
		b.WriteByte('^')
	case SelIdentity:
		b.WriteByte('~')
	case SelName:
		writeQuotedString(b, s.Name)
	case SelIndex:
		b.WriteString(strconv.FormatInt(s.Index, 10))
	case SelSlice:
		writeIntPtr(b, s.Slice.Start)
		b.WriteByte(':')
		writeIntPtr(b, s.Slice.End)
		if s.Slice.Step != nil {
			b.WriteByte(':')
			writeIntPtr(b, s.Slice.Step)
		}
	case SelFilter:
		b.WriteString("?(")
		s.Filter.write(b)
		b.WriteByte(')')
	case SelSubpath:
		s.Subpath.write(b)
	}
}

func writeIntPtr(b *strings.Builder, v *int64) {
	if v == nil {
		return
	}
	b.WriteString(strconv.FormatInt(*v, 10))
}

func writeQuotedString(b *strings.Builder, s string) {
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
}

func isPlainIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !(r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')) {
				return false
			}
			continue
		}
		if !(r == '_' || r == '-' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}

func (e *Expr) write(b *strings.Builder) {
	switch e.Kind {
	case ExprLitNull:
		b.WriteString("null")
	case ExprLitBool:
		if e.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case ExprLitInt:
		b.WriteString(strconv.FormatInt(e.Int, 10))
	case ExprLitFloat:
		s := strconv.FormatFloat(e.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			// Keep a fraction so the literal reparses as a float, not an int.
			s += ".0"
		}
		b.WriteString(s)
	case ExprLitString:
		writeQuotedString(b, e.Str)
	case ExprPath:
		e.Path.write(b)
	case ExprUnary:
		switch e.UnOp {
		case OpNot:
			b.WriteByte('!')
		case OpNeg:
			b.WriteByte('-')
		}
		e.X.write(b)
	case ExprBinary:
		e.X.write(b)
		// Spaces keep `-` from being lexed as part of a preceding name.
		b.WriteByte(' ')
		b.WriteString(binOpText(e.BinOp))
		b.WriteByte(' ')
		e.Y.write(b)
	case ExprGroup:
		b.WriteByte('(')
		e.X.write(b)
		b.WriteByte(')')
	}
}

func binOpText(op BinOp) string {
	switch op {
	case OpOr:
		return "||"
	case OpAnd:
		return "&&"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	default:
		return "?"
	}
}
