package label

// Table is a value-interning store of Labels: every distinct Label
// inserted is assigned a dense, stable, nonnegative index, and
// re-inserting an equal Label returns the same index.
//
// Table is not safe for concurrent use; per spec.md §5 the whole core
// is single-threaded, and a Table is owned by the single discovery run
// that built it.
type Table struct {
	byValue map[Label]int
	values  []Label
}

// NewTable returns an empty label table.
func NewTable() *Table {
	return &Table{byValue: make(map[Label]int)}
}

// Intern returns the index of l, inserting it if this is the first
// occurrence. Complexity: O(1) amortized.
func (t *Table) Intern(l Label) int {
	if idx, ok := t.byValue[l]; ok {
		return idx
	}

	idx := len(t.values)
	t.values = append(t.values, l)
	t.byValue[l] = idx

	return idx
}

// Lookup returns the index of l without inserting it. ok is false if l
// has never been interned.
func (t *Table) Lookup(l Label) (idx int, ok bool) {
	idx, ok = t.byValue[l]
	return idx, ok
}

// At returns the Label stored at idx. Panics if idx is out of range,
// matching Go slice-indexing semantics (a bad index here is always a
// programming error inside this module, never caller input).
func (t *Table) At(idx int) Label {
	return t.values[idx]
}

// Len returns the number of distinct labels interned so far.
func (t *Table) Len() int {
	return len(t.values)
}

// Compact rebuilds the table keeping only the labels whose index
// appears in keep (a set of old indices), and returns a map from old
// index to new index, for dropping labels that are no longer
// referenced by any vertex or edge (spec.md §4.6, "recompute the label
// table, drop labels now unreferenced"). The discovery and compression
// code never calls it: discover.Iterate leaves the table uncompacted.
func (t *Table) Compact(keep map[int]bool) (remap map[int]int) {
	remap = make(map[int]int, len(keep))
	next := &Table{byValue: make(map[Label]int)}

	// Iterate in original index order so the relative order of
	// surviving labels is preserved, which keeps output deterministic.
	for oldIdx, l := range t.values {
		if !keep[oldIdx] {
			continue
		}
		newIdx := next.Intern(l)
		remap[oldIdx] = newIdx
	}

	t.byValue = next.byValue
	t.values = next.values

	return remap
}
