// Package jsonvalue supplies concrete njsonpath.Value / njsonpath.Editable
// adapters over real third-party JSON backends, so the path engine is
// independently usable and testable without forcing every caller onto one
// specific JSON library (spec.md §6.1). The primary adapter wraps
// github.com/valyala/fastjson, whose objects keep members in an ordered
// slice — exactly the insertion-order guarantee spec.md §3's
// Wildcard/Filter ordering invariant requires, and one encoding/json's
// map[string]interface{} cannot give.
package jsonvalue

import (
	"strconv"
	"strings"

	"github.com/dhawalhost/njsonpath"
	"github.com/valyala/fastjson"
)

// parserPool mirrors the teacher's sync.Pool buffer-reuse idiom
// (njson_get.go/nqjson_get.go's smallBufferPool/mediumBufferPool) applied
// to fastjson's own *fastjson.Parser, which is documented as expensive to
// allocate and safe to reuse across unrelated documents once a previous
// parse's Value tree is no longer referenced.
var parserPool fastjson.ParserPool

// Parse parses data into a fastjson-backed njsonpath.Editable using a
// pooled parser. The returned value owns a private copy of the parsed
// tree (fastjson.Parser.ParseBytes retains no reference to data after
// return), so data may be reused or freed by the caller immediately.
func Parse(data []byte) (njsonpath.Editable, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return FromFastJSON(cloneValue(v)), nil
}

// ParseString is Parse for a string input.
func ParseString(data string) (njsonpath.Editable, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)
	v, err := p.Parse(data)
	if err != nil {
		return nil, err
	}
	return FromFastJSON(cloneValue(v)), nil
}

// cloneValue deep-copies a fastjson tree into a fresh Arena. fastjson's
// *Value has no exported Clone method, so the copy is rebuilt node-by-node
// using the library's own constructors/accessors.
func cloneValue(v *fastjson.Value) *fastjson.Value {
	var a fastjson.Arena
	return cloneValueInto(&a, v)
}

func cloneValueInto(a *fastjson.Arena, v *fastjson.Value) *fastjson.Value {
	if v == nil {
		return a.NewNull()
	}
	switch v.Type() {
	case fastjson.TypeNull:
		return a.NewNull()
	case fastjson.TypeTrue:
		return a.NewTrue()
	case fastjson.TypeFalse:
		return a.NewFalse()
	case fastjson.TypeNumber:
		return a.NewNumberString(v.String())
	case fastjson.TypeString:
		sb, _ := v.StringBytes()
		return a.NewString(string(sb))
	case fastjson.TypeArray:
		arr, _ := v.Array()
		out := a.NewArray()
		for i, item := range arr {
			out.SetArrayItem(i, cloneValueInto(a, item))
		}
		return out
	case fastjson.TypeObject:
		obj, _ := v.Object()
		out := a.NewObject()
		if obj != nil {
			obj.Visit(func(key []byte, item *fastjson.Value) {
				out.Set(string(key), cloneValueInto(a, item))
			})
		}
		return out
	default:
		return a.NewNull()
	}
}

// fjValue adapts a *fastjson.Value to njsonpath.Value / njsonpath.Editable.
type fjValue struct {
	v *fastjson.Value
}

// FromFastJSON wraps an already-parsed fastjson tree. The caller retains
// ownership of v; FromFastJSON never mutates it directly (edits always
// operate on a Clone()).
func FromFastJSON(v *fastjson.Value) njsonpath.Editable {
	return fjValue{v: v}
}

func (f fjValue) Kind() njsonpath.Kind {
	if f.v == nil {
		return njsonpath.KindNull
	}
	switch f.v.Type() {
	case fastjson.TypeNull:
		return njsonpath.KindNull
	case fastjson.TypeTrue, fastjson.TypeFalse:
		return njsonpath.KindBool
	case fastjson.TypeNumber:
		if numberLooksInt(f.v) {
			return njsonpath.KindInt
		}
		return njsonpath.KindFloat
	case fastjson.TypeString:
		return njsonpath.KindString
	case fastjson.TypeArray:
		return njsonpath.KindArray
	case fastjson.TypeObject:
		return njsonpath.KindObject
	default:
		return njsonpath.KindNull
	}
}

// numberLooksInt classifies a JSON number as an integer literal when its
// own source text carries no fractional part or exponent — the same
// distinction spec.md §4.3's arithmetic rules need ("integers stay
// integers... division always yields a float when inexact") but that raw
// JSON, unlike a host language's type system, doesn't tag directly.
func numberLooksInt(v *fastjson.Value) bool {
	raw := v.String()
	return !strings.ContainsAny(raw, ".eE")
}

func (f fjValue) Bool() bool { return f.v.Type() == fastjson.TypeTrue }

func (f fjValue) Int() int64 {
	i, _ := f.v.Int64()
	return i
}

func (f fjValue) Float() float64 {
	fl, _ := f.v.Float64()
	return fl
}

func (f fjValue) String() string {
	sb, _ := f.v.StringBytes()
	return string(sb)
}

func (f fjValue) Len() int {
	switch f.v.Type() {
	case fastjson.TypeArray:
		arr, _ := f.v.Array()
		return len(arr)
	case fastjson.TypeObject:
		obj, _ := f.v.Object()
		if obj == nil {
			return 0
		}
		return obj.Len()
	default:
		return 0
	}
}

func (f fjValue) Index(i int) njsonpath.Value {
	arr, _ := f.v.Array()
	if i < 0 || i >= len(arr) {
		return nil
	}
	return fjValue{v: arr[i]}
}

func (f fjValue) Keys() []string {
	obj, _ := f.v.Object()
	if obj == nil {
		return nil
	}
	keys := make([]string, 0, obj.Len())
	obj.Visit(func(key []byte, v *fastjson.Value) {
		keys = append(keys, string(key))
	})
	return keys
}

func (f fjValue) Get(key string) (njsonpath.Value, bool) {
	obj, _ := f.v.Object()
	if obj == nil {
		return nil, false
	}
	v := obj.Get(key)
	if v == nil {
		return nil, false
	}
	return fjValue{v: v}, true
}

func (f fjValue) Equal(other njsonpath.Value) bool {
	return njsonpath.ValuesEqual(f, other)
}

// Clone deep-copies the underlying fastjson tree so Path.Replace/Delete
// never touch the caller's original document (spec.md §1).
func (f fjValue) Clone() njsonpath.Editable {
	return fjValue{v: cloneValue(f.v)}
}

func (f fjValue) ReplaceAt(loc njsonpath.Location, val njsonpath.Value) bool {
	parent, last, ok := resolveParent(f.v, loc)
	if !ok {
		return false
	}
	var a fastjson.Arena
	newVal := toFastJSON(&a, val)
	if last.IsIndex() {
		if parent.Type() != fastjson.TypeArray {
			return false
		}
		arr, _ := parent.Array()
		if last.Index() < 0 || last.Index() >= len(arr) {
			return false
		}
		parent.SetArrayItem(last.Index(), newVal)
		return true
	}
	if parent.Type() != fastjson.TypeObject {
		return false
	}
	parent.Set(last.Name(), newVal)
	return true
}

func (f fjValue) DeleteAt(loc njsonpath.Location) bool {
	parent, last, ok := resolveParent(f.v, loc)
	if !ok {
		return false
	}
	if last.IsIndex() {
		if parent.Type() != fastjson.TypeArray {
			return false
		}
		arr, _ := parent.Array()
		if last.Index() < 0 || last.Index() >= len(arr) {
			return false
		}
		// fastjson has no in-place "remove and shift" primitive for
		// arrays, so the array is rebuilt without the deleted slot and
		// swapped back in via Arena — the surrounding tree keeps its
		// identity, only this one array's contents change.
		var a fastjson.Arena
		rebuilt := a.NewArray()
		out := 0
		for i, item := range arr {
			if i == last.Index() {
				continue
			}
			rebuilt.SetArrayItem(out, item)
			out++
		}
		return replaceArrayValue(f.v, loc[:len(loc)-1], rebuilt)
	}
	if parent.Type() != fastjson.TypeObject {
		return false
	}
	parent.Del(last.Name())
	return true
}

// resolveParent walks root down to loc's parent, returning that parent
// node and loc's final component.
func resolveParent(root *fastjson.Value, loc njsonpath.Location) (*fastjson.Value, njsonpath.Key, bool) {
	if len(loc) == 0 {
		return nil, njsonpath.Key{}, false
	}
	cur := root
	for _, k := range loc[:len(loc)-1] {
		if k.IsIndex() {
			arr, err := cur.Array()
			if err != nil || k.Index() < 0 || k.Index() >= len(arr) {
				return nil, njsonpath.Key{}, false
			}
			cur = arr[k.Index()]
		} else {
			obj, err := cur.Object()
			if err != nil || obj == nil {
				return nil, njsonpath.Key{}, false
			}
			v := obj.Get(k.Name())
			if v == nil {
				return nil, njsonpath.Key{}, false
			}
			cur = v
		}
	}
	return cur, loc[len(loc)-1], true
}

// replaceArrayValue overwrites the array node at parentLoc (the location
// of the array whose contents were rebuilt) with rebuilt.
func replaceArrayValue(root *fastjson.Value, parentLoc njsonpath.Location, rebuilt *fastjson.Value) bool {
	if len(parentLoc) == 0 {
		// The array being rebuilt is the document root itself: there is no
		// parent node to splice rebuilt into, so overwrite root's own
		// contents in place. A whole-struct assignment is the one way to
		// change what a *fastjson.Value points at without an exported
		// "replace in place" method on the library's own type.
		*root = *rebuilt
		return true
	}
	grandparent, last, ok := resolveParent(root, parentLoc)
	if !ok {
		return false
	}
	if last.IsIndex() {
		grandparent.SetArrayItem(last.Index(), rebuilt)
		return true
	}
	grandparent.Set(last.Name(), rebuilt)
	return true
}

// toFastJSON recursively builds a fastjson tree from a generic
// njsonpath.Value, used by ReplaceAt to splice caller-supplied
// replacement values (which may come from a different backend entirely)
// into a fastjson-backed document.
func toFastJSON(a *fastjson.Arena, v njsonpath.Value) *fastjson.Value {
	switch v.Kind() {
	case njsonpath.KindNull:
		return a.NewNull()
	case njsonpath.KindBool:
		if v.Bool() {
			return a.NewTrue()
		}
		return a.NewFalse()
	case njsonpath.KindInt:
		return a.NewNumberString(strconv.FormatInt(v.Int(), 10))
	case njsonpath.KindFloat:
		return a.NewNumberString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case njsonpath.KindString:
		return a.NewString(v.String())
	case njsonpath.KindArray:
		arr := a.NewArray()
		for i := 0; i < v.Len(); i++ {
			arr.SetArrayItem(i, toFastJSON(a, v.Index(i)))
		}
		return arr
	case njsonpath.KindObject:
		obj := a.NewObject()
		for _, k := range v.Keys() {
			mv, _ := v.Get(k)
			obj.Set(k, toFastJSON(a, mv))
		}
		return obj
	default:
		return a.NewNull()
	}
}
