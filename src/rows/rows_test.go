package rows

import (
	"fmt"
	"testing"
)

// memStore is the in-memory Store used across the row tests.
type memStore struct {
	m map[string]string
}

func newMemStore() *memStore { return &memStore{m: map[string]string{}} }

func (s *memStore) Get(key string) (string, bool) { v, ok := s.m[key]; return v, ok }
func (s *memStore) Set(key, value string)         { s.m[key] = value }
func (s *memStore) Delete(key string)             { delete(s.m, key) }

var mixFields = []FieldSpec{{Name: "percent", Default: ""}, {Name: "viscosity", Default: ""}}

func TestAddRowOrdinalsAndSeeding(t *testing.T) {
	st := newMemStore()
	tb := New("mixture", mixFields, st)
	tb.AddRow(map[string]string{"percent": "60", "viscosity": "10"})
	tb.AddRow(map[string]string{"percent": "40", "viscosity": "20"})

	if tb.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tb.Len())
	}
	for i, want := range []int{1, 2} {
		if got := tb.Row(i).Ordinal; got != want {
			t.Errorf("row %d ordinal = %d, want %d", i, got, want)
		}
	}
	if v, _ := st.Get("mixture.percent.2"); v != "40" {
		t.Errorf("store not seeded: mixture.percent.2 = %q", v)
	}
	if v, _ := st.Get("mixture.rows"); v != "2" {
		t.Errorf("row count not persisted: %q", v)
	}
}

func TestAddRowPrefersStoredValue(t *testing.T) {
	st := newMemStore()
	st.Set("mixture.percent.1", "33")
	tb := New("mixture", mixFields, st)
	r := tb.AddRow(map[string]string{"percent": "60"})
	if r.Value("percent") != "33" {
		t.Fatalf("stored value should win over initial: got %q", r.Value("percent"))
	}
}

func TestRemoveMiddleRowReindexes(t *testing.T) {
	st := newMemStore()
	tb := New("mixture", mixFields, st)
	for i := 1; i <= 4; i++ {
		tb.AddRow(map[string]string{"percent": fmt.Sprintf("p%d", i), "viscosity": fmt.Sprintf("v%d", i)})
	}
	tb.RemoveRow(1) // drop the second row

	if tb.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", tb.Len())
	}
	wantPercents := []string{"p1", "p3", "p4"}
	for i, want := range wantPercents {
		r := tb.Row(i)
		if r.Ordinal != i+1 {
			t.Errorf("row %d ordinal = %d, want %d", i, r.Ordinal, i+1)
		}
		if r.Value("percent") != want {
			t.Errorf("row %d percent = %q, want %q (relative order must survive)", i, r.Value("percent"), want)
		}
		if v, _ := st.Get(Key("mixture", "percent", i+1)); v != want {
			t.Errorf("persisted %s = %q, want %q", Key("mixture", "percent", i+1), v, want)
		}
	}
	// the vacated highest ordinal must not linger in the store
	if _, ok := st.Get("mixture.percent.4"); ok {
		t.Error("stale key mixture.percent.4 survived removal")
	}
	if v, _ := st.Get("mixture.rows"); v != "3" {
		t.Errorf("row count after removal = %q, want 3", v)
	}
}

func TestRemoveThenAddNeverResurrectsStaleValues(t *testing.T) {
	st := newMemStore()
	tb := New("mixture", mixFields, st)
	tb.AddRow(map[string]string{"percent": "10"})
	tb.AddRow(map[string]string{"percent": "20"})
	tb.AddRow(map[string]string{"percent": "30"})
	tb.RemoveRow(2)

	r := tb.AddRow(map[string]string{"percent": "99"})
	if r.Ordinal != 3 {
		t.Fatalf("new row ordinal = %d, want 3", r.Ordinal)
	}
	if r.Value("percent") != "99" {
		t.Fatalf("removed ordinal resurrected stale value: got %q, want 99", r.Value("percent"))
	}
	// no duplicate identities
	seen := map[string]bool{}
	for _, row := range tb.Rows() {
		k := Key("mixture", "percent", row.Ordinal)
		if seen[k] {
			t.Fatalf("duplicate field identity %s", k)
		}
		seen[k] = true
	}
}

func TestSetValueWritesThrough(t *testing.T) {
	st := newMemStore()
	tb := New("known", mixFields, st)
	tb.AddRow(nil)
	tb.SetValue(0, "viscosity", "46")
	if v, _ := st.Get("known.viscosity.1"); v != "46" {
		t.Fatalf("write-through missing: %q", v)
	}
	// unknown field slots are ignored
	tb.SetValue(0, "nope", "x")
	if _, ok := st.Get("known.nope.1"); ok {
		t.Fatal("unexpected key for undeclared field")
	}
}

func TestBootstrapFromPersistedCount(t *testing.T) {
	st := newMemStore()
	st.Set("mixture.rows", "3")
	st.Set("mixture.percent.2", "55")
	tb := New("mixture", mixFields, st)
	tb.Bootstrap(2)
	if tb.Len() != 3 {
		t.Fatalf("bootstrap count = %d, want 3", tb.Len())
	}
	if tb.Row(1).Value("percent") != "55" {
		t.Fatalf("bootstrap lost persisted field value")
	}
}

func TestBootstrapClampsBadCount(t *testing.T) {
	for _, raw := range []string{"", "0", "-4", "junk"} {
		st := newMemStore()
		if raw != "" {
			st.Set("solver.rows", raw)
		}
		tb := New("solver", mixFields, st)
		tb.Bootstrap(2)
		if tb.Len() != 2 {
			t.Errorf("count %q: bootstrap = %d rows, want default 2", raw, tb.Len())
		}
	}
}

func TestNilStoreDegradesSilently(t *testing.T) {
	tb := New("mixture", mixFields, nil)
	tb.AddRow(map[string]string{"percent": "60"})
	tb.AddRow(map[string]string{"percent": "40"})
	tb.RemoveRow(0)
	tb.SetValue(0, "percent", "100")
	tb.Bootstrap(2)
	if tb.Len() != 2 {
		t.Fatalf("nil store table broken: %d rows", tb.Len())
	}
	if tb.Row(0).Value("percent") != "100" {
		t.Fatalf("in-memory value lost without store")
	}
}

func TestClearResetsToDefaults(t *testing.T) {
	st := newMemStore()
	tb := New("mixture", mixFields, st)
	tb.Bootstrap(2)
	tb.SetValue(0, "percent", "77")
	tb.AddRow(nil)
	tb.Clear(2)
	if tb.Len() != 2 {
		t.Fatalf("clear left %d rows, want 2", tb.Len())
	}
	if v := tb.Row(0).Value("percent"); v == "77" {
		t.Fatalf("clear kept old value %q", v)
	}
	if _, ok := st.Get("mixture.percent.3"); ok {
		t.Fatal("clear left stale third-row key")
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"free":         KindFree,
		"range":        KindRange,
		"objectiveMin": KindObjectiveMin,
		"objectiveMax": KindObjectiveMax,
		"setValue":     KindSetValue,
		"fixed":        KindSetValue,
		"":             KindFree,
		"garbage":      KindFree,
	}
	for raw, want := range cases {
		if got := ParseKind(raw); got != want {
			t.Errorf("ParseKind(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestActiveFields(t *testing.T) {
	cases := []struct {
		kind   Kind
		value  bool
		minMax bool
	}{
		{KindFree, false, false},
		{KindObjectiveMin, false, false},
		{KindObjectiveMax, false, false},
		{KindSetValue, true, false},
		{KindRange, false, true},
	}
	for _, c := range cases {
		v, mm := c.kind.ActiveFields()
		if v != c.value || mm != c.minMax {
			t.Errorf("%s.ActiveFields() = (%v,%v), want (%v,%v)", c.kind, v, mm, c.value, c.minMax)
		}
	}
}
