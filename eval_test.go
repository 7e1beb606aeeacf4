package njsonpath_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dhawalhost/njsonpath"
	"github.com/dhawalhost/njsonpath/jsonvalue"
)

func findStrings(t *testing.T, pathText, doc string) []string {
	t.Helper()
	p, err := njsonpath.Compile(pathText)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pathText, err)
	}
	d, err := jsonvalue.ParseString(doc)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	vals := p.Find(d)
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = valueToJSON(v)
	}
	return out
}

func valueToJSON(v njsonpath.Value) string {
	switch v.Kind() {
	case njsonpath.KindNull:
		return "null"
	case njsonpath.KindBool:
		return fmt.Sprintf("%t", v.Bool())
	case njsonpath.KindInt:
		return fmt.Sprintf("%d", v.Int())
	case njsonpath.KindFloat:
		return fmt.Sprintf("%g", v.Float())
	case njsonpath.KindString:
		return fmt.Sprintf("%q", v.String())
	case njsonpath.KindArray:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = valueToJSON(v.Index(i))
		}
		return "[" + strings.Join(parts, ",") + "]"
	case njsonpath.KindObject:
		keys := v.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			mv, _ := v.Get(k)
			parts[i] = fmt.Sprintf("%q:%s", k, valueToJSON(mv))
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return "?"
	}
}

func TestConcreteScenarios(t *testing.T) {
	tests := []struct {
		name string
		path string
		doc  string
		want []string
	}{
		{
			"scenario1_bracket_names",
			`$['a']['b']['c']['d']['e']`,
			`{"a":{"b":{"c":{"d":{"e":null}}}}}`,
			[]string{"null"},
		},
		{
			"scenario2_dot_names",
			`$.a.b.c.d.e`,
			`{"a":{"b":{"c":{"d":{"e":null}}}}}`,
			[]string{"null"},
		},
		{
			"scenario3_filter_eq",
			`$[?(@.name == 'foo')]`,
			`[{"name":"foo","val":true},{"name":"bar","val":true},{"name":"foo","val":false},{"name":"bar","val":false}]`,
			[]string{`{"name":"foo","val":true}`, `{"name":"foo","val":false}`},
		},
		{
			"scenario4_filter_lt_insertion_order",
			`$[?(@.val < 10)]`,
			`{"a":{"name":"foo","val":3},"b":{"name":"bar","val":15},"c":{"name":"baz","val":7},"d":{"name":"qux","val":19}}`,
			[]string{`{"name":"foo","val":3}`, `{"name":"baz","val":7}`},
		},
		{
			"scenario5_parent",
			`$.a.b.^`,
			`{"a":{"b":{}}}`,
			[]string{`{"b":{}}`},
		},
		{
			"scenario6_slice_step2",
			`$[0:50:2]`,
			rangeArray(0, 50),
			intStrings(evens(0, 50)),
		},
		{
			"scenario7_slice_plain",
			`$[10:40]`,
			rangeArray(0, 50),
			intStrings(seq(10, 40)),
		},
		{
			"scenario8_root_subpath",
			`$[$.a]`,
			`{"a":"b","b":[]}`,
			[]string{"[]"},
		},
		{
			"scenario9_current_subpath",
			`$[@.a]`,
			`{"a":"b","b":[]}`,
			[]string{"[]"},
		},
		{
			"scenario10_index_union",
			`$[0, 2, 5, 7, 10]`,
			rangeArrayFrom(1, 12),
			[]string{"1", "3", "6", "8", "11"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := findStrings(t, tc.path, tc.doc)
			if !equalStrings(got, tc.want) {
				t.Fatalf("path %s on %s:\n got  %v\n want %v", tc.path, tc.doc, got, tc.want)
			}
		})
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func rangeArray(lo, hi int) string {
	parts := make([]string, 0, hi-lo)
	for i := lo; i < hi; i++ {
		parts = append(parts, fmt.Sprintf("%d", i))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func rangeArrayFrom(lo, hi int) string {
	parts := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		parts = append(parts, fmt.Sprintf("%d", i))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func seq(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}

func evens(lo, hi int) []int {
	out := make([]int, 0)
	for i := lo; i < hi; i += 2 {
		out = append(out, i)
	}
	return out
}

func intStrings(vs []int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = fmt.Sprintf("%d", v)
	}
	return out
}

func TestBoundaryCases(t *testing.T) {
	t.Run("empty_array_wildcard", func(t *testing.T) {
		got := findStrings(t, "$.a[*]", `{"a":[]}`)
		if len(got) != 0 {
			t.Fatalf("expected no matches, got %v", got)
		}
	})

	t.Run("empty_object_wildcard", func(t *testing.T) {
		got := findStrings(t, "$.a.*", `{"a":{}}`)
		if len(got) != 0 {
			t.Fatalf("expected no matches, got %v", got)
		}
	})

	t.Run("negative_index_exactly_minus_n", func(t *testing.T) {
		got := findStrings(t, "$[-3]", `[1,2,3]`)
		if !equalStrings(got, []string{"1"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("negative_index_minus_n_minus_1_out_of_range", func(t *testing.T) {
		got := findStrings(t, "$[-4]", `[1,2,3]`)
		if len(got) != 0 {
			t.Fatalf("expected no matches, got %v", got)
		}
	})

	t.Run("slice_zero_step_is_parse_error", func(t *testing.T) {
		_, err := njsonpath.Compile("$[::0]")
		if err == nil {
			t.Fatal("expected a parse error for a zero slice step")
		}
	})

	t.Run("slice_reversed_bounds_positive_step_empty", func(t *testing.T) {
		got := findStrings(t, "$[5:2]", `[0,1,2,3,4,5,6,7]`)
		if len(got) != 0 {
			t.Fatalf("expected no matches, got %v", got)
		}
	})

	t.Run("slice_negative_step_reverse_order", func(t *testing.T) {
		got := findStrings(t, "$[5:1:-1]", `[0,1,2,3,4,5,6,7]`)
		if !equalStrings(got, []string{"5", "4", "3", "2"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("filter_missing_key_is_nothing_not_a_match", func(t *testing.T) {
		got := findStrings(t, "$[?(@.missing == 1)]", `[{"a":1},{"a":2}]`)
		if len(got) != 0 {
			t.Fatalf("expected no matches, got %v", got)
		}
	})

	t.Run("deep_nesting_does_not_overflow", func(t *testing.T) {
		var b strings.Builder
		depth := 2000
		for i := 0; i < depth; i++ {
			b.WriteString(`{"a":`)
		}
		b.WriteString("0")
		for i := 0; i < depth; i++ {
			b.WriteString("}")
		}
		got := findStrings(t, "$..a", b.String())
		if len(got) != depth {
			t.Fatalf("expected %d matches, got %d", depth, len(got))
		}
	})

	t.Run("name_selector_against_non_object_no_match_no_error", func(t *testing.T) {
		got := findStrings(t, "$.a.b", `{"a":5}`)
		if len(got) != 0 {
			t.Fatalf("expected no matches, got %v", got)
		}
	})

	t.Run("recursive_descent_parent_skips_root", func(t *testing.T) {
		got := findStrings(t, "$..^", `{"a":1}`)
		for _, g := range got {
			if g == "null" {
				t.Fatalf("parent at root should never appear as a match: %v", got)
			}
		}
	})

	t.Run("identity_selector_at_top_level_no_match", func(t *testing.T) {
		got := findStrings(t, "$.~", `{"a":1}`)
		if len(got) != 0 {
			t.Fatalf("expected identity at top level to produce no match, got %v", got)
		}
	})

	t.Run("wildcard_array_index_order", func(t *testing.T) {
		got := findStrings(t, "$[*]", `[3,1,2]`)
		if !equalStrings(got, []string{"3", "1", "2"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("wildcard_object_insertion_order", func(t *testing.T) {
		got := findStrings(t, "$.*", `{"z":1,"a":2,"m":3}`)
		if !equalStrings(got, []string{"1", "2", "3"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("numeric_cross_kind_equality", func(t *testing.T) {
		got := findStrings(t, "$[?(@ == 1.0)]", `[1, 2, 1.0]`)
		if !equalStrings(got, []string{"1", "1"}) {
			t.Fatalf("got %v", got)
		}
	})
}

func TestFindPathsAndLookupInvariant(t *testing.T) {
	doc := `{"items":[{"id":1},{"id":2},{"id":3}]}`
	p := njsonpath.MustCompile("$.items[*].id")
	d, err := jsonvalue.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	vals := p.Find(d)
	locs := p.FindPaths(d)
	if len(vals) != len(locs) {
		t.Fatalf("len(Find)=%d != len(FindPaths)=%d", len(vals), len(locs))
	}
	for i, loc := range locs {
		v, ok := njsonpath.Lookup(d, loc)
		if !ok {
			t.Fatalf("Lookup failed for location %s", loc.String())
		}
		if !v.Equal(vals[i]) {
			t.Fatalf("Lookup(%s) = %v, want %v", loc.String(), valueToJSON(v), valueToJSON(vals[i]))
		}
	}
}

func TestRecursiveDescentPreOrder(t *testing.T) {
	doc := `{"a":1,"b":{"a":2,"c":{"a":3}}}`
	got := findStrings(t, "$..a", doc)
	if !equalStrings(got, []string{"1", "2", "3"}) {
		t.Fatalf("got %v, want pre-order [1 2 3]", got)
	}
}

func TestSubpathUsesAbsoluteLocationInsideAtRoot(t *testing.T) {
	// `@.^` from inside the `.a` step must resolve to the *document* root
	// (via the absolute Location carried alongside the current value), not
	// to some value-only view isolated at `.a`. `^` climbs from ['a'] back
	// to the document root, `.key` reads the sibling key "key" there
	// ("b"), and that string is then applied, as a Name selector, back to
	// the current node {"b":1} — resolving to 1.
	doc := `{"a":{"b":1},"key":"b"}`
	p := njsonpath.MustCompile("$.a[@.^.key]")
	d, err := jsonvalue.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	got := p.Find(d)
	if len(got) != 1 || got[0].Int() != 1 {
		t.Fatalf("got %v, want [1]", got)
	}
}
