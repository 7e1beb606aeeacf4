package njsonpath

import (
	"github.com/dhawalhost/njsonpath/ast"
)

// parser is a hand-rolled recursive-descent parser over the token stream,
// grounded on the original's `ast/parse.rs` grammar (there implemented as
// chumsky combinators; reworked here in the direct recursive-descent style
// the njchilds90-go-jsonpath example uses for its own bracket/filter
// parsing) with an explicit operator-precedence climb for filter
// expressions (lowest `||` to highest unary).
type parser struct {
	lx *lexer
}

func newParser(src string) *parser { return &parser{lx: newLexer(src)} }

// parsePath parses path text into a syntax tree. It is Compile's building
// block and is not exported; callers reach the tree only through Compile.
func parsePath(src string) (*ast.Path, error) {
	if src == "" {
		return nil, newParseError(ErrEmptyPath, ast.Span{}, "path text is empty")
	}
	p := newParser(src)
	path, err := p.parseRootedPath()
	if err != nil {
		return nil, err
	}
	tok, err := p.lx.peek()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokEOF {
		return nil, newParseError(ErrTrailingGarbage, tok.span, "trailing input after path")
	}
	return path, nil
}

func (p *parser) parseRootedPath() (*ast.Path, error) {
	tok, err := p.lx.next()
	if err != nil {
		return nil, err
	}
	var root ast.Root
	switch tok.kind {
	case tokDollar:
		root = ast.RootDocument
	case tokAt:
		root = ast.RootCurrent
	default:
		return nil, newParseError(ErrExpectedRoot, tok.span, "expected '$' or '@'", "$", "@")
	}
	start := tok.span.Start
	steps, end, err := p.parseSteps()
	if err != nil {
		return nil, err
	}
	if end < start {
		end = start
	}
	return &ast.Path{Root: root, Steps: steps, Span: ast.Span{Start: start, End: end}}, nil
}

// parseSteps consumes steps until it hits a token that cannot start one
// (end of input, or a closing bracket/paren/comma when parsing a subpath
// embedded inside a bracket or filter expression).
func (p *parser) parseSteps() ([]ast.Step, int, error) {
	var steps []ast.Step
	end := 0
	for {
		tok, err := p.lx.peek()
		if err != nil {
			return nil, 0, err
		}
		switch tok.kind {
		case tokDot:
			step, err := p.parseDotStep(false)
			if err != nil {
				return nil, 0, err
			}
			end = step.Span.End
			steps = append(steps, step)
		case tokDotDot:
			step, err := p.parseDotStep(true)
			if err != nil {
				return nil, 0, err
			}
			end = step.Span.End
			steps = append(steps, step)
		case tokLBracket:
			step, err := p.parseBracketStep()
			if err != nil {
				return nil, 0, err
			}
			end = step.Span.End
			steps = append(steps, step)
		default:
			return steps, end, nil
		}
	}
}

func (p *parser) parseDotStep(recursive bool) (ast.Step, error) {
	dot, err := p.lx.next() // consumes '.' or '..'
	if err != nil {
		return ast.Step{}, err
	}
	tok, err := p.lx.peek()
	if err != nil {
		return ast.Step{}, err
	}
	// `..[union]` form: recursive descent applied to a full bracket union.
	if recursive && tok.kind == tokLBracket {
		bstep, err := p.parseBracketStep()
		if err != nil {
			return ast.Step{}, err
		}
		return ast.Step{Kind: ast.StepRecursive, Union: bstep.Union, Span: ast.Span{Start: dot.span.Start, End: bstep.Span.End}}, nil
	}
	sel, err := p.parseSimpleSelector()
	if err != nil {
		return ast.Step{}, err
	}
	kind := ast.StepDot
	if recursive {
		kind = ast.StepRecursive
	}
	return ast.Step{Kind: kind, Union: ast.Union{sel}, Span: ast.Span{Start: dot.span.Start, End: sel.Span.End}}, nil
}

// parseSimpleSelector parses the selector forms accepted directly after a
// dot: name, wildcard, parent, or identity (spec.md §4.1 grammar's
// `(name | '*' | '^' | '~')`).
func (p *parser) parseSimpleSelector() (ast.Selector, error) {
	tok, err := p.lx.next()
	if err != nil {
		return ast.Selector{}, err
	}
	switch tok.kind {
	case tokStar:
		return ast.Selector{Kind: ast.SelWildcard, Span: tok.span}, nil
	case tokCaret:
		return ast.Selector{Kind: ast.SelParent, Span: tok.span}, nil
	case tokTilde:
		return ast.Selector{Kind: ast.SelIdentity, Span: tok.span}, nil
	case tokIdent, tokNull, tokTrue, tokFalse:
		return ast.Selector{Kind: ast.SelName, Name: tok.text, Span: tok.span}, nil
	default:
		return ast.Selector{}, newParseError(ErrUnexpectedToken, tok.span, "expected a name, '*', '^', or '~' after '.'", "name", "*", "^", "~")
	}
}

func (p *parser) parseBracketStep() (ast.Step, error) {
	lb, err := p.lx.next() // '['
	if err != nil {
		return ast.Step{}, err
	}
	union, err := p.parseUnion()
	if err != nil {
		return ast.Step{}, err
	}
	rb, err := p.expect(tokRBracket, "]")
	if err != nil {
		return ast.Step{}, err
	}
	return ast.Step{Kind: ast.StepBracket, Union: union, Span: ast.Span{Start: lb.span.Start, End: rb.span.End}}, nil
}

func (p *parser) parseUnion() (ast.Union, error) {
	var union ast.Union
	for {
		sel, err := p.parseUnionSelector()
		if err != nil {
			return nil, err
		}
		union = append(union, sel)
		tok, err := p.lx.peek()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokComma {
			break
		}
		if _, err := p.lx.next(); err != nil {
			return nil, err
		}
	}
	return union, nil
}

// parseUnionSelector parses one comma-separated element inside `[...]`:
// wildcard, parent, identity, filter, subpath, string literal (Name), or
// an integer/slice (Index vs Slice disambiguated by the presence of a
// colon, per spec.md §4.1's disambiguation rules).
func (p *parser) parseUnionSelector() (ast.Selector, error) {
	tok, err := p.lx.peek()
	if err != nil {
		return ast.Selector{}, err
	}
	switch tok.kind {
	case tokStar:
		p.lx.next()
		return ast.Selector{Kind: ast.SelWildcard, Span: tok.span}, nil
	case tokCaret:
		p.lx.next()
		return ast.Selector{Kind: ast.SelParent, Span: tok.span}, nil
	case tokTilde:
		p.lx.next()
		return ast.Selector{Kind: ast.SelIdentity, Span: tok.span}, nil
	case tokString:
		p.lx.next()
		return ast.Selector{Kind: ast.SelName, Name: tok.text, Span: tok.span}, nil
	case tokQuestion:
		return p.parseFilterSelector()
	case tokDollar, tokAt:
		return p.parseSubpathSelector()
	case tokInt, tokMinus, tokColon:
		return p.parseIndexOrSlice()
	default:
		return ast.Selector{}, newParseError(ErrUnexpectedToken, tok.span, "unexpected token in selector position")
	}
}

// parseSignedInt parses an optional leading '-' followed by an integer
// literal token, returning the combined value and its span.
func (p *parser) parseSignedInt() (int64, ast.Span, error) {
	tok, err := p.lx.peek()
	if err != nil {
		return 0, ast.Span{}, err
	}
	neg := false
	start := tok.span.Start
	if tok.kind == tokMinus {
		neg = true
		if _, err := p.lx.next(); err != nil {
			return 0, ast.Span{}, err
		}
		tok, err = p.lx.peek()
		if err != nil {
			return 0, ast.Span{}, err
		}
	}
	if tok.kind != tokInt {
		return 0, ast.Span{}, newParseError(ErrUnexpectedToken, tok.span, "expected an integer literal")
	}
	p.lx.next()
	v := tok.i
	if neg {
		v = -v
	}
	return v, ast.Span{Start: start, End: tok.span.End}, nil
}

func (p *parser) parseIndexOrSlice() (ast.Selector, error) {
	start := 0
	if tok, err := p.lx.peek(); err == nil {
		start = tok.span.Start
	}

	var startVal *int64
	tok, err := p.lx.peek()
	if err != nil {
		return ast.Selector{}, err
	}
	if tok.kind != tokColon {
		v, _, err := p.parseSignedInt()
		if err != nil {
			return ast.Selector{}, err
		}
		startVal = &v
	}

	tok, err = p.lx.peek()
	if err != nil {
		return ast.Selector{}, err
	}
	if tok.kind != tokColon {
		// No colon at all: this is a bare Index selector.
		if startVal == nil {
			return ast.Selector{}, newParseError(ErrUnexpectedToken, tok.span, "expected an integer index or a slice")
		}
		return ast.Selector{Kind: ast.SelIndex, Index: *startVal, Span: ast.Span{Start: start, End: tok.span.Start}}, nil
	}

	// Slice: consume first colon.
	colon1, err := p.lx.next()
	if err != nil {
		return ast.Selector{}, err
	}
	end := colon1.span.End

	var endVal *int64
	tok, err = p.lx.peek()
	if err != nil {
		return ast.Selector{}, err
	}
	if tok.kind != tokColon && tok.kind != tokComma && tok.kind != tokRBracket {
		v, sp, err := p.parseSignedInt()
		if err != nil {
			return ast.Selector{}, err
		}
		endVal = &v
		end = sp.End
	}

	var stepVal *int64
	tok, err = p.lx.peek()
	if err != nil {
		return ast.Selector{}, err
	}
	if tok.kind == tokColon {
		colon2, err := p.lx.next()
		if err != nil {
			return ast.Selector{}, err
		}
		end = colon2.span.End
		tok, err = p.lx.peek()
		if err != nil {
			return ast.Selector{}, err
		}
		if tok.kind != tokComma && tok.kind != tokRBracket {
			v, sp, err := p.parseSignedInt()
			if err != nil {
				return ast.Selector{}, err
			}
			if v == 0 {
				return ast.Selector{}, newParseError(ErrZeroStep, sp, "slice step must not be zero")
			}
			stepVal = &v
			end = sp.End
		}
	}

	return ast.Selector{
		Kind:  ast.SelSlice,
		Slice: ast.Slice{Start: startVal, End: endVal, Step: stepVal},
		Span:  ast.Span{Start: start, End: end},
	}, nil
}

func (p *parser) parseSubpathSelector() (ast.Selector, error) {
	sub, err := p.parseRootedPath()
	if err != nil {
		return ast.Selector{}, err
	}
	return ast.Selector{Kind: ast.SelSubpath, Subpath: sub, Span: sub.Span}, nil
}

func (p *parser) parseFilterSelector() (ast.Selector, error) {
	q, err := p.lx.next() // '?'
	if err != nil {
		return ast.Selector{}, err
	}
	if _, err := p.expect(tokLParen, "("); err != nil {
		return ast.Selector{}, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return ast.Selector{}, err
	}
	rp, err := p.expect(tokRParen, ")")
	if err != nil {
		return ast.Selector{}, err
	}
	return ast.Selector{Kind: ast.SelFilter, Filter: expr, Span: ast.Span{Start: q.span.Start, End: rp.span.End}}, nil
}

func (p *parser) expect(kind tokKind, what string) (token, error) {
	tok, err := p.lx.next()
	if err != nil {
		return token{}, err
	}
	if tok.kind != kind {
		return token{}, newParseError(ErrUnexpectedToken, tok.span, "expected "+what, TokenKind(what))
	}
	return tok, nil
}

// --- Filter expression parsing: precedence climbing, lowest to highest:
// '||', '&&', comparisons, '+ -', '* / %', unary '! -', primary.

func (p *parser) parseExpr() (*ast.Expr, error) { return p.parseOr() }

func (p *parser) parseOr() (*ast.Expr, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.lx.peek()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokOrOr {
			return lhs, nil
		}
		p.lx.next()
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Expr{Kind: ast.ExprBinary, BinOp: ast.OpOr, X: lhs, Y: rhs, Span: spanOf(lhs, rhs)}
	}
}

func (p *parser) parseAnd() (*ast.Expr, error) {
	lhs, err := p.parseCompare()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.lx.peek()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokAndAnd {
			return lhs, nil
		}
		p.lx.next()
		rhs, err := p.parseCompare()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Expr{Kind: ast.ExprBinary, BinOp: ast.OpAnd, X: lhs, Y: rhs, Span: spanOf(lhs, rhs)}
	}
}

func (p *parser) parseCompare() (*ast.Expr, error) {
	lhs, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	tok, err := p.lx.peek()
	if err != nil {
		return nil, err
	}
	var op ast.BinOp
	switch tok.kind {
	case tokEqEq:
		op = ast.OpEq
	case tokNe:
		op = ast.OpNe
	case tokLe:
		op = ast.OpLe
	case tokLt:
		op = ast.OpLt
	case tokGe:
		op = ast.OpGe
	case tokGt:
		op = ast.OpGt
	default:
		return lhs, nil
	}
	p.lx.next()
	rhs, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{Kind: ast.ExprBinary, BinOp: op, X: lhs, Y: rhs, Span: spanOf(lhs, rhs)}, nil
}

func (p *parser) parseAdd() (*ast.Expr, error) {
	lhs, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.lx.peek()
		if err != nil {
			return nil, err
		}
		var op ast.BinOp
		switch tok.kind {
		case tokPlus:
			op = ast.OpAdd
		case tokMinus:
			op = ast.OpSub
		default:
			return lhs, nil
		}
		p.lx.next()
		rhs, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Expr{Kind: ast.ExprBinary, BinOp: op, X: lhs, Y: rhs, Span: spanOf(lhs, rhs)}
	}
}

func (p *parser) parseMul() (*ast.Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.lx.peek()
		if err != nil {
			return nil, err
		}
		var op ast.BinOp
		switch tok.kind {
		case tokStar:
			op = ast.OpMul
		case tokSlash:
			op = ast.OpDiv
		case tokPercent:
			op = ast.OpMod
		default:
			return lhs, nil
		}
		p.lx.next()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Expr{Kind: ast.ExprBinary, BinOp: op, X: lhs, Y: rhs, Span: spanOf(lhs, rhs)}
	}
}

func (p *parser) parseUnary() (*ast.Expr, error) {
	tok, err := p.lx.peek()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokBang:
		p.lx.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Expr{Kind: ast.ExprUnary, UnOp: ast.OpNot, X: x, Span: ast.Span{Start: tok.span.Start, End: x.Span.End}}, nil
	case tokMinus:
		p.lx.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Expr{Kind: ast.ExprUnary, UnOp: ast.OpNeg, X: x, Span: ast.Span{Start: tok.span.Start, End: x.Span.End}}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (*ast.Expr, error) {
	tok, err := p.lx.peek()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokNull:
		p.lx.next()
		return &ast.Expr{Kind: ast.ExprLitNull, Span: tok.span}, nil
	case tokTrue:
		p.lx.next()
		return &ast.Expr{Kind: ast.ExprLitBool, Bool: true, Span: tok.span}, nil
	case tokFalse:
		p.lx.next()
		return &ast.Expr{Kind: ast.ExprLitBool, Bool: false, Span: tok.span}, nil
	case tokInt:
		p.lx.next()
		return &ast.Expr{Kind: ast.ExprLitInt, Int: tok.i, Span: tok.span}, nil
	case tokFloat:
		p.lx.next()
		return &ast.Expr{Kind: ast.ExprLitFloat, Float: tok.f, Span: tok.span}, nil
	case tokString:
		p.lx.next()
		return &ast.Expr{Kind: ast.ExprLitString, Str: tok.text, Span: tok.span}, nil
	case tokLParen:
		p.lx.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		rp, err := p.expect(tokRParen, ")")
		if err != nil {
			return nil, err
		}
		return &ast.Expr{Kind: ast.ExprGroup, X: inner, Span: ast.Span{Start: tok.span.Start, End: rp.span.End}}, nil
	case tokDollar, tokAt:
		sub, err := p.parseRootedPath()
		if err != nil {
			return nil, err
		}
		return &ast.Expr{Kind: ast.ExprPath, Path: sub, Span: sub.Span}, nil
	default:
		return nil, newParseError(ErrUnexpectedToken, tok.span, "expected an expression")
	}
}

func spanOf(x, y *ast.Expr) ast.Span { return ast.Span{Start: x.Span.Start, End: y.Span.End} }
