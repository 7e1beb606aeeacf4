package njsonpath

import "github.com/dhawalhost/njsonpath/ast"

// Option configures Compile. Grounded in the njchilds90-go-jsonpath
// example's `Option func(*engine)` shape, generalized to this engine's
// compile-time knobs.
type Option func(*compileOptions)

type compileOptions struct {
	spans       bool
	maxDepth    int
	deduplicate bool
	globNames   bool
}

// WithSpans enables span tracking: every parsed node's byte range is kept
// and made available through Path.Spans().
func WithSpans() Option {
	return func(o *compileOptions) { o.spans = true }
}

// WithMaxDepth bounds recursive-descent traversal to at most depth levels
// below the node a `..` step is applied to. A depth of 0 (the default)
// means unlimited, subject only to the document's own size.
func WithMaxDepth(depth int) Option {
	return func(o *compileOptions) { o.maxDepth = depth }
}

// WithDeduplicate makes Find/FindPaths/FindWithPaths drop duplicate
// locations from the final result, preserving first-seen order. Off by
// default: spec.md §3 preserves union duplicates unless the caller asks
// for the top-level dedup this option provides.
func WithDeduplicate() Option {
	return func(o *compileOptions) { o.deduplicate = true }
}

// WithGlobNames extends the Name selector beyond spec.md §3's exact-key
// lookup: when a literal name contains a tidwall/match glob metacharacter
// (`*`, `?`, `[`) and no object member matches it exactly, every key that
// globs against it is yielded as an implicit union, in key order. Off by
// default, so `$['a*']` against `{"a*":1}` still yields exactly that exact
// key's value and nothing else, matching spec.md §3's Name semantics
// precisely.
func WithGlobNames() Option {
	return func(o *compileOptions) { o.globNames = true }
}

// Path is a compiled path expression. It is immutable once returned by
// Compile and safe to evaluate concurrently against any number of
// documents (spec.md §5).
type Path struct {
	tree    *ast.Path
	opts    compileOptions
	spanned []spanEntry
}

type spanEntry struct {
	node interface{}
	span ast.Span
}

// Compile parses pathText into a Path ready to be evaluated. It returns a
// *ParseError (never a bare error) on malformed input.
func Compile(pathText string, opts ...Option) (*Path, error) {
	tree, err := parsePath(pathText)
	if err != nil {
		return nil, err
	}
	var o compileOptions
	for _, opt := range opts {
		opt(&o)
	}
	p := &Path{tree: tree, opts: o}
	if o.spans {
		p.spanned = collectSpans(tree)
	}
	return p, nil
}

// MustCompile is like Compile but panics on error. Intended for
// package-level path literals initialized at startup, in the tradition of
// regexp.MustCompile.
func MustCompile(pathText string, opts ...Option) *Path {
	p, err := Compile(pathText, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// String reconstructs path text textually equivalent to the compiled path.
func (p *Path) String() string { return p.tree.String() }

func (p *Path) newCtx(root Value) *evalCtx {
	return &evalCtx{root: root, maxDepth: p.opts.maxDepth, globNames: p.opts.globNames}
}

func (p *Path) run(doc Value) []match {
	ms := evalRooted(p.tree, p.newCtx(doc), Location{}, doc)
	if p.opts.deduplicate {
		ms = dedupMatches(ms)
	}
	return ms
}

func dedupMatches(in []match) []match {
	seen := make(map[string]struct{}, len(in))
	out := make([]match, 0, len(in))
	for _, m := range in {
		key := m.loc.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}

// Find evaluates the path against document and returns the ordered list
// of matched values.
func (p *Path) Find(document Value) []Value {
	ms := p.run(document)
	out := make([]Value, len(ms))
	for i, m := range ms {
		out[i] = m.val
	}
	return out
}

// FindPaths evaluates the path against document and returns the ordered
// list of matched locations.
func (p *Path) FindPaths(document Value) []Location {
	ms := p.run(document)
	out := make([]Location, len(ms))
	for i, m := range ms {
		out[i] = m.loc
	}
	return out
}

// LocationValue pairs a Location with the value found there, returned by
// FindWithPaths.
type LocationValue struct {
	Location Location
	Value    Value
}

// FindWithPaths evaluates the path against document and returns the
// ordered list of (location, value) pairs.
func (p *Path) FindWithPaths(document Value) []LocationValue {
	ms := p.run(document)
	out := make([]LocationValue, len(ms))
	for i, m := range ms {
		out[i] = LocationValue{Location: m.loc, Value: m.val}
	}
	return out
}

// NodeSpan pairs a syntax tree node with the byte range it was parsed
// from. Only populated when the Path was compiled with WithSpans.
type NodeSpan struct {
	Node interface{}
	Span ast.Span
}

// Spans returns every tracked node's byte range, in a pre-order walk of
// the syntax tree (each node before its children). It returns nil unless
// the Path was compiled with WithSpans.
func (p *Path) Spans() []NodeSpan {
	if p.spanned == nil {
		return nil
	}
	out := make([]NodeSpan, len(p.spanned))
	for i, s := range p.spanned {
		out[i] = NodeSpan{Node: s.node, Span: s.span}
	}
	return out
}

func collectSpans(p *ast.Path) []spanEntry {
	var out []spanEntry
	var walkPath func(p *ast.Path)
	var walkExpr func(e *ast.Expr)

	walkExpr = func(e *ast.Expr) {
		if e == nil {
			return
		}
		out = append(out, spanEntry{node: e, span: e.Span})
		if e.Path != nil {
			walkPath(e.Path)
		}
		if e.X != nil {
			walkExpr(e.X)
		}
		if e.Y != nil {
			walkExpr(e.Y)
		}
	}

	walkPath = func(p *ast.Path) {
		out = append(out, spanEntry{node: p, span: p.Span})
		for i := range p.Steps {
			step := &p.Steps[i]
			out = append(out, spanEntry{node: step, span: step.Span})
			for j := range step.Union {
				sel := &step.Union[j]
				out = append(out, spanEntry{node: sel, span: sel.Span})
				if sel.Kind == ast.SelFilter {
					walkExpr(sel.Filter)
				}
				if sel.Kind == ast.SelSubpath {
					walkPath(sel.Subpath)
				}
			}
		}
	}

	walkPath(p)
	return out
}
