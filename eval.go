package njsonpath

import (
	"github.com/dhawalhost/njsonpath/ast"
	globmatch "github.com/tidwall/match"
)

// match is the evaluator's working unit: a value paired with the absolute
// Location it was reached at. Locations are carried alongside values from
// the very first step (spec.md §9's "Parent tracking" design note) because
// Parent and Identity need the enclosing location, which a value-only
// traversal cannot recover.
type match struct {
	loc Location
	val Value
}

// evalCtx is threaded through every selector application. It only ever
// holds the whole input document — evaluation never mutates it, and
// subpaths / filter expressions reuse it verbatim regardless of where
// their own local traversal starts, so a Parent selector nested inside an
// '@'-rooted subpath still resolves against the real document tree rather
// than treating the subpath's start value as an isolated root.
type evalCtx struct {
	root      Value
	maxDepth  int  // 0 = unlimited
	globNames bool // WithGlobNames: Name selector falls back to glob matching
}

// evalRooted runs a full Path (top-level or nested) starting from the
// given absolute location/value pair, which is (ε, document) for a
// '$'-rooted path or (current location, current value) for an
// '@'-rooted one.
func evalRooted(p *ast.Path, ctx *evalCtx, startLoc Location, startVal Value) []match {
	ms := []match{{loc: startLoc, val: startVal}}
	for i := range p.Steps {
		ms = evalStep(&p.Steps[i], ctx, ms)
	}
	return ms
}

func evalStep(step *ast.Step, ctx *evalCtx, in []match) []match {
	var out []match
	switch step.Kind {
	case ast.StepDot, ast.StepBracket:
		for _, m := range in {
			for _, sel := range step.Union {
				out = append(out, evalSelector(sel, ctx, m)...)
			}
		}
	case ast.StepRecursive:
		for _, m := range in {
			for _, node := range collectDescendants(m, ctx.maxDepth) {
				for _, sel := range step.Union {
					out = append(out, evalSelector(sel, ctx, node)...)
				}
			}
		}
	}
	return out
}

// collectDescendants enumerates m and every descendant of m.val in
// depth-first pre-order (node before its children; array elements in
// index order, object members in insertion order), using an explicit work
// stack rather than Go call-stack recursion so paths with deep recursive
// descent steps over deeply nested documents can't overflow the stack
// (spec.md §5 requires handling at least 1,024 levels of nesting).
func collectDescendants(root match, maxDepth int) []match {
	var result []match
	base := len(root.loc)
	stack := []match{root}
	for len(stack) > 0 {
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, m)
		if maxDepth > 0 && len(m.loc)-base >= maxDepth {
			continue
		}
		switch m.val.Kind() {
		case KindArray:
			n := m.val.Len()
			for i := n - 1; i >= 0; i-- {
				stack = append(stack, match{loc: m.loc.append(IndexKey(i)), val: m.val.Index(i)})
			}
		case KindObject:
			keys := m.val.Keys()
			for i := len(keys) - 1; i >= 0; i-- {
				k := keys[i]
				v, _ := m.val.Get(k)
				stack = append(stack, match{loc: m.loc.append(NameKey(k)), val: v})
			}
		}
	}
	return result
}

func evalSelector(sel ast.Selector, ctx *evalCtx, m match) []match {
	switch sel.Kind {
	case ast.SelWildcard:
		return evalWildcard(m)
	case ast.SelName:
		return evalName(sel, ctx, m)
	case ast.SelIndex:
		return evalIndex(sel, m)
	case ast.SelSlice:
		return evalSlice(sel, m)
	case ast.SelFilter:
		return evalFilterSel(sel, ctx, m)
	case ast.SelParent:
		return evalParent(ctx, m)
	case ast.SelIdentity:
		return evalIdentity(m)
	case ast.SelSubpath:
		return evalSubpathSelector(sel, ctx, m)
	default:
		return nil
	}
}

func evalWildcard(m match) []match {
	switch m.val.Kind() {
	case KindArray:
		n := m.val.Len()
		out := make([]match, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, match{loc: m.loc.append(IndexKey(i)), val: m.val.Index(i)})
		}
		return out
	case KindObject:
		keys := m.val.Keys()
		out := make([]match, 0, len(keys))
		for _, k := range keys {
			v, _ := m.val.Get(k)
			out = append(out, match{loc: m.loc.append(NameKey(k)), val: v})
		}
		return out
	default:
		return nil
	}
}

// isGlobPattern reports whether name contains a tidwall/match glob
// metacharacter. Plain names (the overwhelming common case) never take
// this path, so exact lookup is always tried first.
func isGlobPattern(name string) bool {
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '*', '?', '[':
			return true
		}
	}
	return false
}

// evalName implements the Name selector: spec.md §3 defines it as yielding
// the value at that object key if present, nothing otherwise. With
// WithGlobNames set, a literal name containing a glob metacharacter and no
// exact-matching member instead matches against every key with
// tidwall/match (the same library gjson itself uses for wildcard path
// segments), yielding each match as an implicit union, in key order. Off
// by default, so plain and metacharacter-bearing names alike get spec's
// exact-lookup semantics unless the caller opts in.
func evalName(sel ast.Selector, ctx *evalCtx, m match) []match {
	if m.val.Kind() != KindObject {
		return nil
	}
	if v, ok := m.val.Get(sel.Name); ok {
		return []match{{loc: m.loc.append(NameKey(sel.Name)), val: v}}
	}
	if !ctx.globNames || !isGlobPattern(sel.Name) {
		return nil
	}
	var out []match
	for _, k := range m.val.Keys() {
		if globmatch.Match(k, sel.Name) {
			v, _ := m.val.Get(k)
			out = append(out, match{loc: m.loc.append(NameKey(k)), val: v})
		}
	}
	return out
}

func evalIndex(sel ast.Selector, m match) []match {
	if m.val.Kind() != KindArray {
		return nil
	}
	n := m.val.Len()
	i := sel.Index
	if i < 0 {
		i += int64(n)
	}
	if i < 0 || i >= int64(n) {
		return nil
	}
	return []match{{loc: m.loc.append(IndexKey(int(i))), val: m.val.Index(int(i))}}
}

func evalSlice(sel ast.Selector, m match) []match {
	if m.val.Kind() != KindArray {
		return nil
	}
	n := m.val.Len()
	idxs := sliceIndices(n, sel.Slice.Start, sel.Slice.End, sel.Slice.Step)
	out := make([]match, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, match{loc: m.loc.append(IndexKey(i)), val: m.val.Index(i)})
	}
	return out
}

// sliceIndices computes the array indices a slice selector yields, using
// the same start/stop normalization CPython uses for `seq[start:stop:step]`
// (spec.md §4.1's "Python-style semantics"): components default per the
// sign of step (forward 0/len, reverse len-1/-len-1 — spec.md §3), negative
// components count from the end, and everything is then clamped into
// range rather than raising, so out-of-range bounds shrink the result
// instead of producing an error.
func sliceIndices(n int, startP, endP, stepP *int64) []int {
	step := int64(1)
	if stepP != nil {
		step = *stepP
	}
	if step == 0 {
		// A literal zero step is rejected at parse time; this can only be
		// reached if a caller builds an ast.Selector by hand.
		return nil
	}

	var start, end int64
	if step > 0 {
		if startP == nil {
			start = 0
		} else {
			start = *startP
		}
		if endP == nil {
			end = int64(n)
		} else {
			end = *endP
		}
	} else {
		if startP == nil {
			start = int64(n) - 1
		} else {
			start = *startP
		}
		if endP == nil {
			end = -int64(n) - 1
		} else {
			end = *endP
		}
	}

	norm := func(v int64) int {
		if v < 0 {
			v += int64(n)
		}
		iv := int(v)
		if step > 0 {
			return clampInt(iv, 0, n)
		}
		return clampInt(iv, -1, n-1)
	}

	s := norm(start)
	e := norm(end)

	var out []int
	if step > 0 {
		for i := s; i < e; i += int(step) {
			out = append(out, i)
		}
	} else {
		for i := s; i > e; i += int(step) {
			out = append(out, i)
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func evalParent(ctx *evalCtx, m match) []match {
	parentLoc, ok := m.loc.parent()
	if !ok {
		return nil
	}
	v, ok := Lookup(ctx.root, parentLoc)
	if !ok {
		return nil
	}
	return []match{{loc: parentLoc, val: v}}
}

// evalIdentity yields the key or index by which m was reached from its
// parent: a string for an object key, an integer for an array index. At the
// document root (an empty location) there is no such key, so it yields no
// match rather than an error.
func evalIdentity(m match) []match {
	if len(m.loc) == 0 {
		return nil
	}
	last := m.loc[len(m.loc)-1]
	return []match{{loc: m.loc, val: last.asValue()}}
}

// evalSubpathSelector evaluates a Subpath selector: run the nested path
// against the document root ($) or the current node (@), then use each
// scalar result as a Name (string) or Index (integer) selector applied to
// m, in order — an implicit union over the scalar results.
func evalSubpathSelector(sel ast.Selector, ctx *evalCtx, m match) []match {
	results := evalSubpathFull(sel.Subpath, ctx, m)
	var out []match
	for _, r := range results {
		switch r.val.Kind() {
		case KindString:
			out = append(out, evalName(ast.Selector{Kind: ast.SelName, Name: r.val.String()}, ctx, m)...)
		case KindInt:
			out = append(out, evalIndex(ast.Selector{Kind: ast.SelIndex, Index: r.val.Int()}, m)...)
		}
	}
	return out
}

// evalSubpathFull runs a nested Path (used by both Subpath selectors and
// filter expression Path operands) starting from the document root or
// from m, per the nested path's own Root anchor.
func evalSubpathFull(p *ast.Path, ctx *evalCtx, m match) []match {
	if p.Root == ast.RootDocument {
		return evalRooted(p, ctx, Location{}, ctx.root)
	}
	return evalRooted(p, ctx, m.loc, m.val)
}

func evalFilterSel(sel ast.Selector, ctx *evalCtx, m match) []match {
	switch m.val.Kind() {
	case KindArray:
		n := m.val.Len()
		var out []match
		for i := 0; i < n; i++ {
			loc := m.loc.append(IndexKey(i))
			v := m.val.Index(i)
			if evalExpr(sel.Filter, ctx, match{loc: loc, val: v}).truthy() {
				out = append(out, match{loc: loc, val: v})
			}
		}
		return out
	case KindObject:
		var out []match
		for _, k := range m.val.Keys() {
			v, _ := m.val.Get(k)
			loc := m.loc.append(NameKey(k))
			if evalExpr(sel.Filter, ctx, match{loc: loc, val: v}).truthy() {
				out = append(out, match{loc: loc, val: v})
			}
		}
		return out
	default:
		return nil
	}
}
