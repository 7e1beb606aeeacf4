package njsonpath_test

import (
	"testing"

	"github.com/dhawalhost/njsonpath"
	"github.com/dhawalhost/njsonpath/jsonvalue"
)

func TestLocationString(t *testing.T) {
	doc := `{"a":{"b":[1,2,{"c's":3}]}}`
	d, err := jsonvalue.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	p := njsonpath.MustCompile("$.a.b[2]['c\\'s']")
	locs := p.FindPaths(d)
	if len(locs) != 1 {
		t.Fatalf("expected 1 location, got %d", len(locs))
	}
	want := `$['a']['b'][2]['c\'s']`
	if got := locs[0].String(); got != want {
		t.Fatalf("Location.String() = %q, want %q", got, want)
	}
}

func TestLocationEqual(t *testing.T) {
	a := njsonpath.Location{njsonpath.NameKey("a"), njsonpath.IndexKey(1)}
	b := njsonpath.Location{njsonpath.NameKey("a"), njsonpath.IndexKey(1)}
	c := njsonpath.Location{njsonpath.NameKey("a"), njsonpath.IndexKey(2)}
	if !a.Equal(b) {
		t.Fatal("expected a.Equal(b)")
	}
	if a.Equal(c) {
		t.Fatal("expected !a.Equal(c)")
	}
}

func TestLookupInvariant(t *testing.T) {
	doc := `{"a":[{"x":1},{"x":2},{"x":3}]}`
	d, err := jsonvalue.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	p := njsonpath.MustCompile("$.a[*].x")
	for _, lv := range p.FindWithPaths(d) {
		v, ok := njsonpath.Lookup(d, lv.Location)
		if !ok {
			t.Fatalf("Lookup(%s) failed", lv.Location.String())
		}
		if !v.Equal(lv.Value) {
			t.Fatalf("Lookup(%s) = %v, want %v", lv.Location.String(), v, lv.Value)
		}
	}
}

func TestLookupStaleLocationFails(t *testing.T) {
	doc := `{"a":1}`
	d, err := jsonvalue.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	loc := njsonpath.Location{njsonpath.NameKey("missing"), njsonpath.IndexKey(0)}
	if _, ok := njsonpath.Lookup(d, loc); ok {
		t.Fatal("expected Lookup to fail for an unresolvable location")
	}
}
