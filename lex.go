package njsonpath

import (
	"strconv"
	"strings"

	"github.com/dhawalhost/njsonpath/ast"
)

type tokKind uint8

const (
	tokEOF tokKind = iota
	tokDollar
	tokAt
	tokDot
	tokDotDot
	tokLBracket
	tokRBracket
	tokLParen
	tokRParen
	tokComma
	tokColon
	tokStar
	tokCaret
	tokTilde
	tokQuestion
	tokBang
	tokPlus
	tokMinus
	tokSlash
	tokPercent
	tokEqEq
	tokNe
	tokLe
	tokLt
	tokGe
	tokGt
	tokAndAnd
	tokOrOr
	tokIdent
	tokString
	tokInt
	tokFloat
	tokNull
	tokTrue
	tokFalse
)

type token struct {
	kind tokKind
	text string
	i    int64
	f    float64
	span ast.Span
}

// lexer tokenizes path text on demand; the parser calls peek/next as it
// descends the grammar. Kept as a single forward-scanning pass with one
// token of lookahead, in the spirit of the original's token-level span
// tracking (original_source/src/ast/span.rs): every token carries its byte
// range, which the parser copies onto the nodes it builds. Path.Spans()
// reports those node ranges; it does not list individual tokens.
type lexer struct {
	src  string
	pos  int
	peeked *token
}

func newLexer(src string) *lexer { return &lexer{src: src} }

func (l *lexer) peek() (token, error) {
	if l.peeked == nil {
		t, err := l.scan()
		if err != nil {
			return token{}, err
		}
		l.peeked = &t
	}
	return *l.peeked, nil
}

func (l *lexer) next() (token, error) {
	if l.peeked != nil {
		t := *l.peeked
		l.peeked = nil
		return t, nil
	}
	return l.scan()
}

func isIdentStart(r byte) bool {
	return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isIdentCont(r byte) bool {
	return isIdentStart(r) || r == '-' || (r >= '0' && r <= '9')
}

func isDigit(r byte) bool { return r >= '0' && r <= '9' }

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			l.pos++
			continue
		}
		break
	}
}

func (l *lexer) scan() (token, error) {
	l.skipSpace()
	start := l.pos
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, span: ast.Span{Start: start, End: start}}, nil
	}
	c := l.src[l.pos]

	two := func(k tokKind) (token, error) {
		l.pos += 2
		return token{kind: k, span: ast.Span{Start: start, End: l.pos}}, nil
	}
	one := func(k tokKind) (token, error) {
		l.pos++
		return token{kind: k, span: ast.Span{Start: start, End: l.pos}}, nil
	}

	switch {
	case c == '$':
		return one(tokDollar)
	case c == '@':
		return one(tokAt)
	case c == '.':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '.' {
			return two(tokDotDot)
		}
		return one(tokDot)
	case c == '[':
		return one(tokLBracket)
	case c == ']':
		return one(tokRBracket)
	case c == '(':
		return one(tokLParen)
	case c == ')':
		return one(tokRParen)
	case c == ',':
		return one(tokComma)
	case c == ':':
		return one(tokColon)
	case c == '*':
		return one(tokStar)
	case c == '^':
		return one(tokCaret)
	case c == '~':
		return one(tokTilde)
	case c == '?':
		return one(tokQuestion)
	case c == '+':
		return one(tokPlus)
	case c == '-':
		return one(tokMinus)
	case c == '/':
		return one(tokSlash)
	case c == '%':
		return one(tokPercent)
	case c == '=':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '=' {
			return two(tokEqEq)
		}
		return token{}, newParseError(ErrUnexpectedToken, ast.Span{Start: start, End: start + 1}, "unexpected '='")
	case c == '!':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '=' {
			return two(tokNe)
		}
		return one(tokBang)
	case c == '<':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '=' {
			return two(tokLe)
		}
		return one(tokLt)
	case c == '>':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '=' {
			return two(tokGe)
		}
		return one(tokGt)
	case c == '&':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '&' {
			return two(tokAndAnd)
		}
		return token{}, newParseError(ErrUnexpectedToken, ast.Span{Start: start, End: start + 1}, "unexpected '&'")
	case c == '|':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '|' {
			return two(tokOrOr)
		}
		return token{}, newParseError(ErrUnexpectedToken, ast.Span{Start: start, End: start + 1}, "unexpected '|'")
	case c == '\'' || c == '"':
		return l.scanString(c)
	case isDigit(c):
		return l.scanNumber()
	case isIdentStart(c):
		return l.scanIdent()
	default:
		return token{}, newParseError(ErrUnexpectedToken, ast.Span{Start: start, End: start + 1}, "unexpected character "+strconv.QuoteRune(rune(c)))
	}
}

func (l *lexer) scanIdent() (token, error) {
	start := l.pos
	for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
		l.pos++
	}
	text := l.src[start:l.pos]
	span := ast.Span{Start: start, End: l.pos}
	switch text {
	case "null":
		return token{kind: tokNull, text: text, span: span}, nil
	case "true":
		return token{kind: tokTrue, text: text, span: span}, nil
	case "false":
		return token{kind: tokFalse, text: text, span: span}, nil
	default:
		return token{kind: tokIdent, text: text, span: span}, nil
	}
}

func (l *lexer) scanNumber() (token, error) {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	isFloat := false
	if l.pos < len(l.src) && l.src[l.pos] == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]) {
		isFloat = true
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		save := l.pos
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		if l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			isFloat = true
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.pos++
			}
		} else {
			l.pos = save
		}
	}
	text := l.src[start:l.pos]
	span := ast.Span{Start: start, End: l.pos}
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token{}, newParseError(ErrInvalidNumber, span, "invalid float literal "+text)
		}
		return token{kind: tokFloat, text: text, f: f, span: span}, nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return token{}, newParseError(ErrInvalidNumber, span, "invalid integer literal "+text)
	}
	return token{kind: tokInt, text: text, i: i, span: span}, nil
}

func (l *lexer) scanString(quote byte) (token, error) {
	start := l.pos
	l.pos++ // consume opening quote
	var b strings.Builder
	for {
		if l.pos >= len(l.src) {
			return token{}, newParseError(ErrUnterminatedString, ast.Span{Start: start, End: l.pos}, "unterminated string literal")
		}
		c := l.src[l.pos]
		if c == quote {
			l.pos++
			break
		}
		if c == '\\' {
			l.pos++
			if l.pos >= len(l.src) {
				return token{}, newParseError(ErrUnterminatedString, ast.Span{Start: start, End: l.pos}, "unterminated escape")
			}
			esc := l.src[l.pos]
			switch esc {
			case '\\':
				b.WriteByte('\\')
			case '\'':
				b.WriteByte('\'')
			case '"':
				b.WriteByte('"')
			case '/':
				b.WriteByte('/')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				if l.pos+4 >= len(l.src) {
					return token{}, newParseError(ErrInvalidEscape, ast.Span{Start: l.pos - 1, End: l.pos + 1}, "truncated \\u escape")
				}
				hex := l.src[l.pos+1 : l.pos+5]
				code, err := strconv.ParseUint(hex, 16, 32)
				if err != nil {
					return token{}, newParseError(ErrInvalidEscape, ast.Span{Start: l.pos - 1, End: l.pos + 5}, "invalid \\u escape")
				}
				b.WriteRune(rune(code))
				l.pos += 4
			default:
				return token{}, newParseError(ErrInvalidEscape, ast.Span{Start: l.pos - 1, End: l.pos + 1}, "invalid escape \\"+string(esc))
			}
			l.pos++
			continue
		}
		b.WriteByte(c)
		l.pos++
	}
	span := ast.Span{Start: start, End: l.pos}
	return token{kind: tokString, text: b.String(), span: span}, nil
}
