package njsonpath_test

import (
	"testing"

	"github.com/dhawalhost/njsonpath"
	"github.com/dhawalhost/njsonpath/jsonvalue"
)

// FuzzCompile checks spec.md §8's "parsing is total on its accepted
// grammar" claim the other direction: for any input at all, Compile either
// returns a path or a *ParseError, and never panics.
func FuzzCompile(f *testing.F) {
	seeds := []string{
		"$",
		"$.a.b.c",
		"$['a']['b']",
		"$[0]",
		"$[-1]",
		"$[0:10:2]",
		"$[*]",
		"$.*",
		"$..a",
		"$.~",
		"$.^",
		"$[?(@.a == 1)]",
		"$[?(@.a == 'x' && @.b < 2)]",
		"$[@.a]",
		"$[$.a]",
		"$[0, 2, 5]",
		"$[",
		"$..",
		"$[?(",
		"$['unterminated",
		"$[::0]",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, pathText string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Compile(%q) panicked: %v", pathText, r)
			}
		}()
		njsonpath.Compile(pathText)
	})
}

// FuzzFind checks that a successfully compiled path never panics evaluating
// against arbitrary (and possibly malformed) document text, regardless of
// how mismatched the path's assumptions are with the document's actual
// shape.
func FuzzFind(f *testing.F) {
	seeds := []struct {
		path, doc string
	}{
		{"$.a.b.c", `{"a":{"b":{"c":1}}}`},
		{"$[*]", `[1,2,3]`},
		{"$..a", `{"a":1,"b":{"a":2}}`},
		{"$[?(@.a == 1)]", `[{"a":1},{"a":2}]`},
		{"$.a.b", `{"a":5}`},
		{"$[0]", `{"a":1}`},
		{"$.a", `[1,2,3]`},
		{"$[@.a]", `{"a":"b","b":[]}`},
		{"$..^", `{"a":1}`},
		{"$.a[0:2]", `{"a":"not an array"}`},
	}
	for _, s := range seeds {
		f.Add(s.path, s.doc)
	}
	f.Fuzz(func(t *testing.T, pathText, docText string) {
		p, err := njsonpath.Compile(pathText)
		if err != nil {
			return
		}
		doc, err := jsonvalue.ParseString(docText)
		if err != nil {
			return
		}
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Find(%q) against %q panicked: %v", pathText, docText, r)
			}
		}()
		p.Find(doc)
	})
}
