package njsonpath

// Kind discriminates the variant a Value currently holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the narrow interface the evaluator consumes a host's JSON tree
// through (spec.md §6). It is deliberately small: null/bool/integer/float/
// string/array/object, ordered iteration over arrays and objects, and
// structural equality. The engine never mutates a Value; the edit driver
// works against the Editable interface (see edit.go) instead.
//
// Implementations must give array elements a stable index order and object
// keys their original insertion order — the evaluator's Wildcard, Filter
// and recursive-descent ordering guarantees depend on it.
type Value interface {
	// Kind reports which variant this value holds.
	Kind() Kind

	// Bool returns the boolean value. Meaningful only when Kind is KindBool.
	Bool() bool
	// Int returns the integer value. Meaningful only when Kind is KindInt.
	Int() int64
	// Float returns the value as a float64. Meaningful when Kind is
	// KindInt or KindFloat.
	Float() float64
	// String returns the string value. Meaningful only when Kind is
	// KindString.
	String() string

	// Len returns the number of elements (array) or members (object).
	// Meaningful only when Kind is KindArray or KindObject.
	Len() int
	// Index returns the i'th array element. Meaningful only when Kind is
	// KindArray and 0 <= i < Len().
	Index(i int) Value
	// Keys returns object member names in insertion order. Meaningful
	// only when Kind is KindObject.
	Keys() []string
	// Get looks up a member by key. Meaningful only when Kind is
	// KindObject.
	Get(key string) (Value, bool)

	// Equal reports structural equality with another Value, comparing
	// integer and float representations numerically (spec.md §9's Open
	// Question is resolved in favor of numeric equality: 1 == 1.0).
	Equal(other Value) bool
}
