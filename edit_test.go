package njsonpath_test

import (
	"testing"

	"github.com/dhawalhost/njsonpath"
	"github.com/dhawalhost/njsonpath/jsonvalue"
)

func TestDeleteThenReevaluateIsEmpty(t *testing.T) {
	doc := `{"a":[1,2,3,4,5]}`
	d, err := jsonvalue.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	p := njsonpath.MustCompile("$.a[?(@ > 2)]")
	edited := p.Delete(d)
	remaining := p.Find(edited)
	if len(remaining) != 0 {
		t.Fatalf("expected no matches after delete, got %v", remaining)
	}
	all := njsonpath.MustCompile("$.a[*]").Find(edited)
	if len(all) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(all))
	}
}

func TestDeleteArrayPreservesOrderAndShifts(t *testing.T) {
	doc := `[0,1,2,3,4]`
	d, err := jsonvalue.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	p := njsonpath.MustCompile("$[1,3]")
	edited := p.Delete(d)
	got := njsonpath.MustCompile("$[*]").Find(edited)
	want := []int64{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("got %d elements, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Int() != w {
			t.Fatalf("element %d: got %d, want %d", i, got[i].Int(), w)
		}
	}
}

func TestDeleteObjectKey(t *testing.T) {
	doc := `{"a":1,"b":2,"c":3}`
	d, err := jsonvalue.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	p := njsonpath.MustCompile("$.b")
	edited := p.Delete(d)
	if _, ok := edited.Get("b"); ok {
		t.Fatal("expected key 'b' to be deleted")
	}
	keys := edited.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Fatalf("unexpected key order after delete: %v", keys)
	}
}

func TestReplacePreservesKeyOrder(t *testing.T) {
	doc := `{"a":1,"b":2,"c":3}`
	d, err := jsonvalue.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	p := njsonpath.MustCompile("$.b")
	edited := p.Replace(d, func(njsonpath.Value) njsonpath.Replacement {
		return njsonpath.ReplaceWith(njsonpath.NewInt(99))
	})
	keys := edited.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Fatalf("unexpected key order after replace: %v", keys)
	}
	v, ok := edited.Get("b")
	if !ok || v.Int() != 99 {
		t.Fatalf("expected b=99, got %v", v)
	}
}

func TestReplaceDoesNotMutateOriginal(t *testing.T) {
	doc := `{"a":1}`
	d, err := jsonvalue.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	p := njsonpath.MustCompile("$.a")
	_ = p.Replace(d, func(njsonpath.Value) njsonpath.Replacement {
		return njsonpath.ReplaceWith(njsonpath.NewInt(2))
	})
	v, ok := d.Get("a")
	if !ok || v.Int() != 1 {
		t.Fatalf("expected original document untouched, got a=%v", v)
	}
}

func TestKeepLeavesValueUntouched(t *testing.T) {
	doc := `[1,2,3]`
	d, err := jsonvalue.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	p := njsonpath.MustCompile("$[*]")
	edited := p.Replace(d, func(njsonpath.Value) njsonpath.Replacement {
		return njsonpath.Keep()
	})
	got := p.Find(edited)
	want := []int64{1, 2, 3}
	for i, w := range want {
		if got[i].Int() != w {
			t.Fatalf("element %d: got %d, want %d", i, got[i].Int(), w)
		}
	}
}
