package njsonpath

// literalValue is a self-contained Value used for filter-expression
// intermediate results and Identity-selector output — values that don't
// live inside a host document and so can't be represented by a host
// adapter's own Value implementation.
type literalValue struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

func nullValue() Value           { return literalValue{kind: KindNull} }
func boolValue(v bool) Value     { return literalValue{kind: KindBool, b: v} }
func intValue(v int64) Value     { return literalValue{kind: KindInt, i: v} }
func floatValue(v float64) Value { return literalValue{kind: KindFloat, f: v} }
func stringValue(v string) Value { return literalValue{kind: KindString, s: v} }

// NewNull, NewBool, NewInt, NewFloat, and NewString build standalone
// scalar Values, independent of any host adapter. They exist for callers
// of Path.Replace who want to substitute a plain scalar without pulling in
// a jsonvalue backend just to construct one.
func NewNull() Value { return nullValue() }
func NewBool(v bool) Value { return boolValue(v) }
func NewInt(v int64) Value { return intValue(v) }
func NewFloat(v float64) Value { return floatValue(v) }
func NewString(v string) Value { return stringValue(v) }

func (l literalValue) Kind() Kind { return l.kind }
func (l literalValue) Bool() bool { return l.b }
func (l literalValue) Int() int64 { return l.i }
func (l literalValue) String() string { return l.s }
func (l literalValue) Float() float64 {
	if l.kind == KindInt {
		return float64(l.i)
	}
	return l.f
}
func (l literalValue) Len() int { return 0 }
func (l literalValue) Index(i int) Value { return nullValue() }
func (l literalValue) Keys() []string { return nil }
func (l literalValue) Get(key string) (Value, bool) { return nil, false }

func (l literalValue) Equal(other Value) bool {
	if other == nil {
		return false
	}
	return valuesEqual(l, other)
}

// ValuesEqual exports valuesEqual for host Value adapters (jsonvalue and
// any others) that need a ready-made Equal implementation instead of
// writing their own structural-equality walk.
func ValuesEqual(a, b Value) bool { return valuesEqual(a, b) }

// valuesEqual implements spec.md §3's structural-equality contract for
// Value, treating integer and float as numerically comparable (spec.md
// §9's Open Question, resolved in favor of `1 == 1.0`).
func valuesEqual(a, b Value) bool {
	ak, bk := a.Kind(), b.Kind()
	if isNumericKind(ak) && isNumericKind(bk) {
		return a.Float() == b.Float()
	}
	if ak != bk {
		return false
	}
	switch ak {
	case KindNull:
		return true
	case KindBool:
		return a.Bool() == b.Bool()
	case KindString:
		return a.String() == b.String()
	case KindArray:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !valuesEqual(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case KindObject:
		ak := a.Keys()
		bk := b.Keys()
		if len(ak) != len(bk) {
			return false
		}
		for _, k := range ak {
			av, _ := a.Get(k)
			bv, ok := b.Get(k)
			if !ok || !valuesEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isNumericKind(k Kind) bool { return k == KindInt || k == KindFloat }
