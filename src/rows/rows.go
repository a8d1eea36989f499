// Package rows manages a variable-length set of typed input rows for one
// logical table (mixture components, known two-base components, solver
// constraints). It owns row ordering and ordinals and mirrors every field
// into a flat key/value store so edits survive a restart. The package is
// UI-free: the viewer binds widgets on top of it.
package rows

import (
	"fmt"
	"strconv"
)

// Store is the flat string key/value namespace rows persist into. A nil
// Store is valid: values then simply behave as non-persisted.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// FieldSpec declares one field slot present in every row of a table.
type FieldSpec struct {
	Name    string
	Default string
}

// Row is one editable record. Ordinal is 1-based display position, derived
// from the row's place in the table, never stored identity.
type Row struct {
	Ordinal int
	values  map[string]string
}

// Value returns the raw string for a field, or the empty string.
func (r *Row) Value(field string) string { return r.values[field] }

// Table owns the ordered row list for one logical table.
type Table struct {
	name   string
	fields []FieldSpec
	rows   []*Row
	store  Store
}

// New creates an empty table. name namespaces every persisted key.
func New(name string, fields []FieldSpec, store Store) *Table {
	return &Table{name: name, fields: fields, store: store}
}

// Key builds the persisted identity for (table, field, ordinal).
func Key(table, field string, ordinal int) string {
	return fmt.Sprintf("%s.%s.%d", table, field, ordinal)
}

func (t *Table) countKey() string { return t.name + ".rows" }

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Len returns the current row count.
func (t *Table) Len() int { return len(t.rows) }

// Fields returns the field slots every row carries.
func (t *Table) Fields() []FieldSpec { return t.fields }

// Row returns the i-th row (0-based) or nil when out of range.
func (t *Table) Row(i int) *Row {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i]
}

// Rows returns the rows in display order.
func (t *Table) Rows() []*Row { return t.rows }

// AddRow appends a row with ordinal len+1. For each field the previously
// stored value under the new identity wins over the supplied initial value;
// otherwise the store is seeded with the initial (or the field default).
// The persisted row count is updated.
func (t *Table) AddRow(initial map[string]string) *Row {
	r := &Row{Ordinal: len(t.rows) + 1, values: make(map[string]string, len(t.fields))}
	for _, f := range t.fields {
		val := f.Default
		if initial != nil {
			if v, ok := initial[f.Name]; ok {
				val = v
			}
		}
		key := Key(t.name, f.Name, r.Ordinal)
		if t.store != nil {
			if stored, ok := t.store.Get(key); ok {
				val = stored
			} else {
				t.store.Set(key, val)
			}
		}
		r.values[f.Name] = val
	}
	t.rows = append(t.rows, r)
	t.persistCount()
	return r
}

// RemoveRow detaches the i-th row (0-based) and re-derives ordinals and
// persisted identities for every remaining row. Keys whose ordinal changed
// are deleted under the old identity and rewritten under the new one, so a
// later AddRow can never resurrect a stale value. Out-of-range indexes are
// ignored.
func (t *Table) RemoveRow(i int) {
	if i < 0 || i >= len(t.rows) {
		return
	}
	removed := t.rows[i]
	t.rows = append(t.rows[:i], t.rows[i+1:]...)

	if t.store != nil {
		// Drop every key at or above the removed ordinal, then rewrite the
		// survivors under their new ordinals.
		for _, f := range t.fields {
			for ord := removed.Ordinal; ord <= len(t.rows)+1; ord++ {
				t.store.Delete(Key(t.name, f.Name, ord))
			}
		}
	}
	for j := i; j < len(t.rows); j++ {
		t.rows[j].Ordinal = j + 1
	}
	if t.store != nil {
		for j := i; j < len(t.rows); j++ {
			r := t.rows[j]
			for _, f := range t.fields {
				t.store.Set(Key(t.name, f.Name, r.Ordinal), r.values[f.Name])
			}
		}
	}
	t.persistCount()
}

// SetValue updates one field of the i-th row and writes it through to the
// store under the row's current identity.
func (t *Table) SetValue(i int, field, value string) {
	r := t.Row(i)
	if r == nil {
		return
	}
	if _, ok := r.values[field]; !ok {
		return
	}
	r.values[field] = value
	if t.store != nil {
		t.store.Set(Key(t.name, field, r.Ordinal), value)
	}
}

// Bootstrap recreates the persisted number of rows, clamped to def when the
// count is absent or non-positive, so the table survives a reload.
func (t *Table) Bootstrap(def int) {
	n := def
	if t.store != nil {
		if raw, ok := t.store.Get(t.countKey()); ok {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				n = parsed
			}
		}
	}
	if n < 1 {
		n = 1
	}
	for len(t.rows) < n {
		t.AddRow(nil)
	}
}

// Clear removes all rows and their persisted keys, then recreates def
// default rows. Used by the preferences reset path.
func (t *Table) Clear(def int) {
	if t.store != nil {
		for _, r := range t.rows {
			for _, f := range t.fields {
				t.store.Delete(Key(t.name, f.Name, r.Ordinal))
			}
		}
		t.store.Delete(t.countKey())
	}
	t.rows = nil
	t.Bootstrap(def)
}

func (t *Table) persistCount() {
	if t.store != nil {
		t.store.Set(t.countKey(), strconv.Itoa(len(t.rows)))
	}
}
