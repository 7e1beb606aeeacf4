package njsonpath

import (
	"math"
	"strings"

	"github.com/dhawalhost/njsonpath/ast"
)

// fval is a filter expression's intermediate result: either a real Value
// or the distinguished "nothing" token used when an expression is
// undefined on its operands (spec.md §7/§9). Kept as a tagged struct
// rather than folding nothing into a boolean false, because `nothing ==
// nothing` must be true while `nothing == false` is false.
type fval struct {
	nothing bool
	val     Value
	// multi marks the boolean produced by a multi-element path result,
	// which is truthy but compares unequal to every operand.
	multi bool
}

func fnothing() fval        { return fval{nothing: true} }
func fvalOf(v Value) fval   { return fval{val: v} }

// truthy implements spec.md §4.3's truthiness table: booleans as
// themselves, numbers non-zero, strings non-empty, null false, objects and
// arrays true (presence test), nothing false.
func (f fval) truthy() bool {
	if f.nothing {
		return false
	}
	switch f.val.Kind() {
	case KindBool:
		return f.val.Bool()
	case KindInt:
		return f.val.Int() != 0
	case KindFloat:
		return f.val.Float() != 0
	case KindString:
		return f.val.String() != ""
	case KindNull:
		return false
	case KindArray, KindObject:
		return true
	default:
		return false
	}
}

// evalExpr evaluates a filter expression against the candidate node cur
// (the '@' of the filter), returning the tri-state result. Every branch
// is total: there is no operand combination that panics or errors, only
// ones that collapse to the nothing token (spec.md §7: "this makes every
// filter total").
func evalExpr(e *ast.Expr, ctx *evalCtx, cur match) fval {
	switch e.Kind {
	case ast.ExprLitNull:
		return fvalOf(nullValue())
	case ast.ExprLitBool:
		return fvalOf(boolValue(e.Bool))
	case ast.ExprLitInt:
		return fvalOf(intValue(e.Int))
	case ast.ExprLitFloat:
		return fvalOf(floatValue(e.Float))
	case ast.ExprLitString:
		return fvalOf(stringValue(e.Str))
	case ast.ExprPath:
		return evalExprPath(e.Path, ctx, cur)
	case ast.ExprUnary:
		return evalUnaryExpr(e.UnOp, evalExpr(e.X, ctx, cur))
	case ast.ExprBinary:
		return evalBinaryExpr(e, ctx, cur)
	case ast.ExprGroup:
		return evalExpr(e.X, ctx, cur)
	default:
		return fnothing()
	}
}

// evalExprPath implements spec.md §3's path-expression coercion: an empty
// result set is the nothing token, a single-element result unwraps to its
// element, and a multi-element result coerces to the boolean "non-empty"
// (leaving it usable only via truthiness: it is marked multi so `==` never
// holds for it, and ordering/arithmetic on a bool always falls through to
// nothing).
func evalExprPath(p *ast.Path, ctx *evalCtx, cur match) fval {
	results := evalSubpathFull(p, ctx, cur)
	switch len(results) {
	case 0:
		return fnothing()
	case 1:
		return fvalOf(results[0].val)
	default:
		return fval{val: boolValue(true), multi: true}
	}
}

func evalUnaryExpr(op ast.UnOp, x fval) fval {
	switch op {
	case ast.OpNot:
		return fvalOf(boolValue(!x.truthy()))
	case ast.OpNeg:
		if x.nothing {
			return fnothing()
		}
		switch x.val.Kind() {
		case KindInt:
			return fvalOf(intValue(-x.val.Int()))
		case KindFloat:
			return fvalOf(floatValue(-x.val.Float()))
		default:
			return fnothing()
		}
	default:
		return fnothing()
	}
}

func evalBinaryExpr(e *ast.Expr, ctx *evalCtx, cur match) fval {
	// && and || short-circuit: the right operand is never evaluated once
	// the result is decided.
	if e.BinOp == ast.OpAnd {
		if l := evalExpr(e.X, ctx, cur); !l.truthy() {
			return fvalOf(boolValue(false))
		}
		return fvalOf(boolValue(evalExpr(e.Y, ctx, cur).truthy()))
	}
	if e.BinOp == ast.OpOr {
		if l := evalExpr(e.X, ctx, cur); l.truthy() {
			return fvalOf(boolValue(true))
		}
		return fvalOf(boolValue(evalExpr(e.Y, ctx, cur).truthy()))
	}

	l := evalExpr(e.X, ctx, cur)
	r := evalExpr(e.Y, ctx, cur)

	switch e.BinOp {
	case ast.OpEq:
		return fvalOf(boolValue(fvalEqual(l, r)))
	case ast.OpNe:
		return fvalOf(boolValue(!fvalEqual(l, r)))
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		return fvalCompare(e.BinOp, l, r)
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		return fvalArith(e.BinOp, l, r)
	default:
		return fnothing()
	}
}

// fvalEqual implements `==`'s coercion rules: nothing equals only nothing,
// integer and float compare numerically (spec.md §9's Open Question,
// resolved in favor of `1 == 1.0`), a multi-element path result equals
// nothing, and any other kind mismatch compares unequal.
func fvalEqual(a, b fval) bool {
	if a.nothing || b.nothing {
		return a.nothing && b.nothing
	}
	if a.multi || b.multi {
		return false
	}
	return valuesEqual(a.val, b.val)
}

// fvalCompare implements `< <= > >=`. Numeric comparisons follow IEEE-754
// via float64; string comparisons are byte-wise lexicographic. Anything
// else (including either operand being nothing) is incomparable and
// yields the nothing token, which is falsy — this is what makes ordering
// on mismatched kinds behave as "false" without a special case at the
// call site.
func fvalCompare(op ast.BinOp, a, b fval) fval {
	if a.nothing || b.nothing {
		return fnothing()
	}
	ak, bk := a.val.Kind(), b.val.Kind()
	if isNumericKind(ak) && isNumericKind(bk) {
		af, bf := a.val.Float(), b.val.Float()
		return fvalOf(boolValue(compareOrdered(op, af < bf, af == bf, af > bf)))
	}
	if ak == KindString && bk == KindString {
		c := strings.Compare(a.val.String(), b.val.String())
		return fvalOf(boolValue(compareOrdered(op, c < 0, c == 0, c > 0)))
	}
	return fnothing()
}

func compareOrdered(op ast.BinOp, lt, eq, gt bool) bool {
	switch op {
	case ast.OpLt:
		return lt
	case ast.OpLe:
		return lt || eq
	case ast.OpGt:
		return gt
	case ast.OpGe:
		return gt || eq
	default:
		return false
	}
}

// fvalArith implements `+ - * / %`. Integers stay integers when both
// operands are integers and the operation is exact; division that isn't
// exact always yields a float; modulo follows the sign of the divisor,
// matching Python/JSONPath filter conventions rather than Go's truncating
// `%`. `+` on two strings concatenates them — a feature the distilled
// spec doesn't mention but the original Rust evaluator implements
// (original_source/src/ast/eval.rs), carried over here per spec.md §11.
// Anything else non-numeric collapses to nothing.
func fvalArith(op ast.BinOp, a, b fval) fval {
	if a.nothing || b.nothing {
		return fnothing()
	}
	ak, bk := a.val.Kind(), b.val.Kind()
	if op == ast.OpAdd && ak == KindString && bk == KindString {
		return fvalOf(stringValue(a.val.String() + b.val.String()))
	}
	if !isNumericKind(ak) || !isNumericKind(bk) {
		return fnothing()
	}
	bothInt := ak == KindInt && bk == KindInt
	af, bf := a.val.Float(), b.val.Float()

	switch op {
	case ast.OpAdd:
		if bothInt {
			return fvalOf(intValue(a.val.Int() + b.val.Int()))
		}
		return fvalOf(floatValue(af + bf))
	case ast.OpSub:
		if bothInt {
			return fvalOf(intValue(a.val.Int() - b.val.Int()))
		}
		return fvalOf(floatValue(af - bf))
	case ast.OpMul:
		if bothInt {
			return fvalOf(intValue(a.val.Int() * b.val.Int()))
		}
		return fvalOf(floatValue(af * bf))
	case ast.OpDiv:
		if bf == 0 {
			return fnothing()
		}
		if bothInt {
			ai, bi := a.val.Int(), b.val.Int()
			if bi != 0 && ai%bi == 0 {
				return fvalOf(intValue(ai / bi))
			}
		}
		return fvalOf(floatValue(af / bf))
	case ast.OpMod:
		if bf == 0 {
			return fnothing()
		}
		if bothInt {
			ai, bi := a.val.Int(), b.val.Int()
			m := ai % bi
			if m != 0 && (m < 0) != (bi < 0) {
				m += bi
			}
			return fvalOf(intValue(m))
		}
		m := math.Mod(af, bf)
		if m != 0 && (m < 0) != (bf < 0) {
			m += bf
		}
		return fvalOf(floatValue(m))
	default:
		return fnothing()
	}
}
