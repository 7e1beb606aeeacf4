package jsonvalue

import (
	"regexp"
	"strings"

	"github.com/dhawalhost/njsonpath"
	"github.com/tidwall/gjson"
)

// gjsonValue adapts a gjson.Result to njsonpath.Value. It is read-only —
// gjson results don't own a mutable tree, so gjsonValue never implements
// njsonpath.Editable; callers who need Path.Replace/Path.Delete should go
// through Parse/FromFastJSON instead.
type gjsonValue struct {
	r     gjson.Result
	keys  []string
	byKey map[string]gjson.Result
}

// FromGJSON lets a compiled Path evaluate directly against a gjson.Result
// — e.g. one already extracted from a larger document by a gjson path
// expression upstream — without a full fastjson re-parse.
func FromGJSON(r gjson.Result) njsonpath.Value {
	v := gjsonValue{r: r}
	if r.IsObject() {
		v.keys = make([]string, 0)
		v.byKey = make(map[string]gjson.Result)
		r.ForEach(func(key, value gjson.Result) bool {
			k := key.String()
			v.keys = append(v.keys, k)
			v.byKey[k] = value
			return true
		})
	}
	return v
}

func (g gjsonValue) Kind() njsonpath.Kind {
	switch g.r.Type {
	case gjson.Null:
		return njsonpath.KindNull
	case gjson.True, gjson.False:
		return njsonpath.KindBool
	case gjson.Number:
		if strings.ContainsAny(g.r.Raw, ".eE") {
			return njsonpath.KindFloat
		}
		return njsonpath.KindInt
	case gjson.String:
		return njsonpath.KindString
	case gjson.JSON:
		if g.r.IsArray() {
			return njsonpath.KindArray
		}
		return njsonpath.KindObject
	default:
		return njsonpath.KindNull
	}
}

func (g gjsonValue) Bool() bool     { return g.r.Bool() }
func (g gjsonValue) Int() int64     { return g.r.Int() }
func (g gjsonValue) Float() float64 { return g.r.Float() }
func (g gjsonValue) String() string { return g.r.String() }

func (g gjsonValue) Len() int {
	if g.r.IsArray() {
		return len(g.r.Array())
	}
	return len(g.keys)
}

func (g gjsonValue) Index(i int) njsonpath.Value {
	arr := g.r.Array()
	if i < 0 || i >= len(arr) {
		return nil
	}
	return FromGJSON(arr[i])
}

func (g gjsonValue) Keys() []string { return g.keys }

func (g gjsonValue) Get(key string) (njsonpath.Value, bool) {
	v, ok := g.byKey[key]
	if !ok {
		return nil, false
	}
	return FromGJSON(v), true
}

func (g gjsonValue) Equal(other njsonpath.Value) bool { return njsonpath.ValuesEqual(g, other) }

// simpleDottedPath matches a compiled path consisting only of dotted plain
// names off the document root, e.g. `$.a.b.c` — the shape QuickExtract can
// hand straight to gjson's own dotted-path lookup instead of running the
// full parser/evaluator.
var simpleDottedPath = regexp.MustCompile(`^\$(\.[A-Za-z_][A-Za-z0-9_-]*)+$`)

// QuickExtract skips the compiled evaluator entirely for the common case
// of a plain dotted-name path (`$.a.b.c`), handing the lookup straight to
// gjson.GetBytes. It reports ok=false for anything else — wildcards,
// unions, filters, slices, recursive descent, parent/identity, subpaths —
// so callers should fall back to Parse + Path.Find whenever ok is false.
func QuickExtract(data []byte, p *njsonpath.Path) (njsonpath.Value, bool) {
	text := p.String()
	if !simpleDottedPath.MatchString(text) {
		return nil, false
	}
	dotted := strings.TrimPrefix(text, "$.")
	res := gjson.GetBytes(data, dotted)
	if !res.Exists() {
		return nil, false
	}
	return FromGJSON(res), true
}
