package njsonpath

import "sort"

// EditAction is one of the three things a Transform can ask the edit
// driver to do with a matched location (spec.md §4.4).
type EditAction uint8

const (
	// ActionKeep leaves the matched location untouched.
	ActionKeep EditAction = iota
	// ActionReplace overwrites the matched location with Replacement.Value.
	ActionReplace
	// ActionDelete removes the matched location: the object key it lives
	// under, or the array slot it occupies (shifting later elements down).
	ActionDelete
)

// Replacement is a Transform's verdict for one matched value.
type Replacement struct {
	Action EditAction
	Value  Value
}

// Keep leaves a matched location untouched.
func Keep() Replacement { return Replacement{Action: ActionKeep} }

// ReplaceWith overwrites a matched location with v.
func ReplaceWith(v Value) Replacement { return Replacement{Action: ActionReplace, Value: v} }

// DeleteMatch removes a matched location entirely.
func DeleteMatch() Replacement { return Replacement{Action: ActionDelete} }

// Transform is the caller-supplied edit function passed to Path.Replace.
type Transform func(Value) Replacement

// Editable is the mutable document abstraction the edit driver requires
// exclusive access to (spec.md §5): a Value that additionally supports
// producing an independent clone and mutating itself at a given absolute
// Location. Concrete adapters live in the jsonvalue package; the edit
// driver itself never depends on any particular backend.
type Editable interface {
	Value

	// Clone returns an independent copy of the document. Path.Replace and
	// Path.Delete always edit the clone, never the receiver, satisfying
	// spec.md §1's "edits yield a new tree or operate on a copy" carve-out.
	Clone() Editable

	// ReplaceAt overwrites the value at loc (which must be non-empty) and
	// reports whether the location resolved. Object member order and
	// array sibling order elsewhere in the document are preserved.
	ReplaceAt(loc Location, v Value) bool

	// DeleteAt removes the object member or array element at loc (which
	// must be non-empty) and reports whether the location resolved.
	DeleteAt(loc Location) bool
}

// Replace evaluates the path against document, then applies fn to every
// matched value and commits the resulting edits to a clone of document,
// which is returned unchanged from the caller's original (spec.md §4.4).
func (p *Path) Replace(document Editable, fn Transform) Editable {
	ms := p.run(document)
	clone := document.Clone()
	applyEdits(clone, ms, fn)
	return clone
}

// Delete evaluates the path against document and removes every matched
// location from a clone of document.
func (p *Path) Delete(document Editable) Editable {
	return p.Replace(document, func(Value) Replacement { return DeleteMatch() })
}

// applyEdits commits fn's verdicts to clone, processing matches deepest
// location first and, within equal depth, largest trailing array index
// first, so an array deletion never shifts a still-pending sibling target
// out from under a later edit (spec.md §4.4).
func applyEdits(clone Editable, ms []match, fn Transform) {
	ordered := make([]match, len(ms))
	copy(ordered, ms)
	sort.SliceStable(ordered, func(i, j int) bool {
		li, lj := ordered[i].loc, ordered[j].loc
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
	for _, m := range ordered {
		if len(m.loc) == 0 {
			// The document root has no parent to remove it from or
			// container slot to overwrite in place; root-level edits are
			// a no-op for the edit driver, matching Parent/Identity's own
			// "undefined at the root produces no match, never an error".
			continue
		}
		r := fn(m.val)
		switch r.Action {
		case ActionReplace:
			clone.ReplaceAt(m.loc, r.Value)
		case ActionDelete:
			clone.DeleteAt(m.loc)
		}
	}
}
