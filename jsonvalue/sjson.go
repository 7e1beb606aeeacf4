package jsonvalue

import (
	"bytes"
	"sort"
	"strconv"
	"strings"

	"github.com/dhawalhost/njsonpath"
	"github.com/tidwall/sjson"
)

// ApplyRawPatch evaluates path against the raw JSON in data (parsed once with
// Parse, only to discover matched locations — never mutated in place) and
// applies fn's verdicts directly to the byte stream via sjson, avoiding a
// full fastjson.Value tree round-trip for the common case of a document a
// caller only wants to patch and re-serialize.
//
// It is a standalone function rather than a Path method so that the core
// njsonpath package never has to import sjson — the dependency lives here,
// at the adapter boundary, per spec.md §6.1.
func ApplyRawPatch(path *njsonpath.Path, data []byte, fn njsonpath.Transform) ([]byte, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	matches := path.FindWithPaths(doc)
	ordered := sortDeepestFirst(matches)
	out := data
	for _, lv := range ordered {
		if len(lv.Location) == 0 {
			continue // root edits are a no-op, matching the in-tree edit driver
		}
		r := fn(lv.Value)
		sp := locationToSJSONPath(lv.Location)
		switch r.Action {
		case njsonpath.ActionReplace:
			raw, err := marshalRaw(r.Value)
			if err != nil {
				return nil, err
			}
			out, err = sjson.SetRawBytes(out, sp, raw)
			if err != nil {
				return nil, err
			}
		case njsonpath.ActionDelete:
			out, err = sjson.DeleteBytes(out, sp)
			if err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// DeleteRaw removes every location path matches from data, using sjson.
func DeleteRaw(path *njsonpath.Path, data []byte) ([]byte, error) {
	return ApplyRawPatch(path, data, func(njsonpath.Value) njsonpath.Replacement {
		return njsonpath.DeleteMatch()
	})
}

// sortDeepestFirst mirrors the in-tree edit driver's ordering (deepest
// location first, then largest trailing array index first among equal
// depths), so sequential sjson.SetRawBytes/DeleteBytes calls never
// invalidate a still-pending match's index by shifting an earlier sibling.
func sortDeepestFirst(in []njsonpath.LocationValue) []njsonpath.LocationValue {
	out := make([]njsonpath.LocationValue, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := out[i].Location, out[j].Location
		if len(li) != len(lj) {
			return len(li) > len(lj)
		}
		if len(li) == 0 {
			return false
		}
		a, b := li[len(li)-1], lj[len(lj)-1]
		ai, bi := 0, 0
		if a.IsIndex() {
			ai = a.Index()
		}
		if b.IsIndex() {
			bi = b.Index()
		}
		return ai > bi
	})
	return out
}

// locationToSJSONPath renders a Location in sjson's dotted-path syntax,
// escaping the '.', '*', and '?' characters sjson treats specially within
// a path component.
func locationToSJSONPath(loc njsonpath.Location) string {
	parts := make([]string, len(loc))
	for i, k := range loc {
		if k.IsIndex() {
			parts[i] = strconv.Itoa(k.Index())
		} else {
			parts[i] = escapeSJSONComponent(k.Name())
		}
	}
	return strings.Join(parts, ".")
}

func escapeSJSONComponent(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '.', '*', '?', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// marshalRaw serializes a generic njsonpath.Value to compact JSON text, so
// a Replacement produced against one backend can be spliced into raw bytes
// belonging to another.
func marshalRaw(v njsonpath.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeRaw(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRaw(buf *bytes.Buffer, v njsonpath.Value) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}
	switch v.Kind() {
	case njsonpath.KindNull:
		buf.WriteString("null")
	case njsonpath.KindBool:
		if v.Bool() {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case njsonpath.KindInt:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case njsonpath.KindFloat:
		buf.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case njsonpath.KindString:
		writeRawString(buf, v.String())
	case njsonpath.KindArray:
		buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeRaw(buf, v.Index(i)); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case njsonpath.KindObject:
		buf.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeRawString(buf, k)
			buf.WriteByte(':')
			mv, _ := v.Get(k)
			if err := writeRaw(buf, mv); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeRawString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}
