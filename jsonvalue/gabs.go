package jsonvalue

import (
	"encoding/json"
	"sort"

	"github.com/Jeffail/gabs/v2"
	"github.com/dhawalhost/njsonpath"
)

// gabsValue adapts a *gabs.Container's underlying interface{} tree to
// njsonpath.Value. Unlike fjValue, it cannot honor spec.md §3's object
// key insertion-order guarantee: gabs (like encoding/json) decodes objects
// into a native Go map, which has no memorized order. Keys() falls back to
// a stable lexical sort so results are at least deterministic across runs
// of the same document — callers whose paths depend on wildcard/filter
// results appearing in source order should use Parse (fastjson-backed)
// instead.
type gabsValue struct {
	data interface{}
}

// FromGabs wraps a container a caller already parsed with gabs, letting a
// compiled Path evaluate against it directly. See gabsValue's doc comment
// for the object-ordering caveat.
func FromGabs(c *gabs.Container) njsonpath.Value {
	if c == nil {
		return gabsValue{data: nil}
	}
	return gabsValue{data: c.Data()}
}

func (g gabsValue) Kind() njsonpath.Kind {
	switch v := g.data.(type) {
	case nil:
		return njsonpath.KindNull
	case bool:
		return njsonpath.KindBool
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return njsonpath.KindInt
		}
		return njsonpath.KindFloat
	case float64:
		if float64(int64(v)) == v {
			return njsonpath.KindInt
		}
		return njsonpath.KindFloat
	case string:
		return njsonpath.KindString
	case []interface{}:
		return njsonpath.KindArray
	case map[string]interface{}:
		return njsonpath.KindObject
	default:
		return njsonpath.KindNull
	}
}

func (g gabsValue) Bool() bool {
	v, _ := g.data.(bool)
	return v
}

func (g gabsValue) Int() int64 {
	switch v := g.data.(type) {
	case json.Number:
		i, _ := v.Int64()
		return i
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func (g gabsValue) Float() float64 {
	switch v := g.data.(type) {
	case json.Number:
		f, _ := v.Float64()
		return f
	case float64:
		return v
	default:
		return 0
	}
}

func (g gabsValue) String() string {
	v, _ := g.data.(string)
	return v
}

func (g gabsValue) Len() int {
	switch v := g.data.(type) {
	case []interface{}:
		return len(v)
	case map[string]interface{}:
		return len(v)
	default:
		return 0
	}
}

func (g gabsValue) Index(i int) njsonpath.Value {
	arr, ok := g.data.([]interface{})
	if !ok || i < 0 || i >= len(arr) {
		return nil
	}
	return gabsValue{data: arr[i]}
}

func (g gabsValue) Keys() []string {
	obj, ok := g.data.(map[string]interface{})
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (g gabsValue) Get(key string) (njsonpath.Value, bool) {
	obj, ok := g.data.(map[string]interface{})
	if !ok {
		return nil, false
	}
	v, ok := obj[key]
	if !ok {
		return nil, false
	}
	return gabsValue{data: v}, true
}

func (g gabsValue) Equal(other njsonpath.Value) bool { return njsonpath.ValuesEqual(g, other) }
