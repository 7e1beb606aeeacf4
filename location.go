package njsonpath

import (
	"strconv"
	"strings"
)

// Key is a single location step: either an object key (string) or an array
// index (non-negative integer), never both. It mirrors the original
// library's `Idx` enum (original_source/src/idx.rs) as a closed, tagged
// pair rather than a bare interface{}, per spec.md §9's note on keeping
// the selector/location vocabulary closed within the core.
type Key struct {
	name    string
	index   int
	isIndex bool
}

// NameKey builds a Key addressing an object member.
func NameKey(name string) Key { return Key{name: name} }

// IndexKey builds a Key addressing an array element.
func IndexKey(index int) Key { return Key{index: index, isIndex: true} }

// IsIndex reports whether this key addresses an array element.
func (k Key) IsIndex() bool { return k.isIndex }

// Name returns the object member name. Only meaningful when !IsIndex().
func (k Key) Name() string { return k.name }

// Index returns the array element index. Only meaningful when IsIndex().
func (k Key) Index() int { return k.index }

// Equal compares two keys for equality.
func (k Key) Equal(o Key) bool {
	if k.isIndex != o.isIndex {
		return false
	}
	if k.isIndex {
		return k.index == o.index
	}
	return k.name == o.name
}

// asValue converts a Key to the scalar Value an Identity selector
// yields: a string for object keys, an integer for array indices.
func (k Key) asValue() Value {
	if k.isIndex {
		return intValue(int64(k.index))
	}
	return stringValue(k.name)
}

// Location is an ordered list of Keys from the document root. The empty
// Location denotes the document root itself. Locations are only valid
// against the document they were derived from, and become stale after an
// edit (spec.md §3).
type Location []Key

// Equal compares two locations component-wise.
func (l Location) Equal(o Location) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// append returns a new Location with k appended, never mutating l's
// backing array — every step in the evaluator branches to many candidate
// locations sharing prefixes, so accidental aliasing here would corrupt
// sibling branches.
func (l Location) append(k Key) Location {
	out := make(Location, len(l)+1)
	copy(out, l)
	out[len(l)] = k
	return out
}

// parent returns l with its last component removed, or nil if l is
// already empty (the root has no parent).
func (l Location) parent() (Location, bool) {
	if len(l) == 0 {
		return nil, false
	}
	return l[:len(l)-1], true
}

// String renders a Location in the textual form `$['key'][index]…`
// (spec.md §6): numeric steps as `[n]`, string steps always bracket-quoted
// to avoid ambiguity with numeric-looking keys. Grounded on the escaping
// idiom in the teacher's path_escape.go, adapted from dot-notation escaping
// to bracket-quote escaping for this engine's Location text form.
func (l Location) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, k := range l {
		b.WriteByte('[')
		if k.isIndex {
			b.WriteString(strconv.Itoa(k.index))
		} else {
			b.WriteByte('\'')
			writeEscapedKey(&b, k.name)
			b.WriteByte('\'')
		}
		b.WriteByte(']')
	}
	return b.String()
}

func writeEscapedKey(b *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		default:
			b.WriteRune(r)
		}
	}
}

// Lookup resolves a Location against a document, returning the value at
// that position. It assumes the location was derived from this document
// (or an unedited copy of it) and is therefore always resolvable per
// spec.md §3's invariant; a Location that no longer resolves (because the
// document was edited after the location was captured) returns
// (nil, false) rather than panicking.
func Lookup(doc Value, loc Location) (Value, bool) {
	cur := doc
	for _, k := range loc {
		if k.isIndex {
			if cur.Kind() != KindArray || k.index < 0 || k.index >= cur.Len() {
				return nil, false
			}
			cur = cur.Index(k.index)
		} else {
			if cur.Kind() != KindObject {
				return nil, false
			}
			v, ok := cur.Get(k.name)
			if !ok {
				return nil, false
			}
			cur = v
		}
	}
	return cur, true
}
