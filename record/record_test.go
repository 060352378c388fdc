package record_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-laravel-query/record"
)

func makeNested() record.Record {
	return record.Record{
		"user": record.Record{
			"name": "Alice",
			"address": record.Record{
				"city":    "London",
				"country": "UK",
			},
		},
		"score": 42,
	}
}

func assertRecord(t *testing.T, got, want record.Record) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	r := makeNested()
	if v, ok := r.Get("user.name"); !ok || v != "Alice" {
		t.Fatalf("Get user.name = %v, %v; want Alice", v, ok)
	}
	if v, ok := r.Get("user.address.city"); !ok || v != "London" {
		t.Fatalf("Get city = %v, %v; want London", v, ok)
	}
	if v, ok := r.Get("score"); !ok || v != 42 {
		t.Fatalf("Get score = %v, %v; want 42", v, ok)
	}
	if _, ok := r.Get("user.missing"); ok {
		t.Fatal("Get should report absence for a missing path")
	}
	if _, ok := r.Get("user.name.too.deep"); ok {
		t.Fatal("Get should report absence when traversing a leaf")
	}
}

func TestGetDistinguishesNilFromAbsent(t *testing.T) {
	r := record.Record{"present": nil}
	if v, ok := r.Get("present"); !ok || v != nil {
		t.Fatal("a field set to nil is present")
	}
	if _, ok := r.Get("absent"); ok {
		t.Fatal("an unset field is absent")
	}
}

func TestGetTraversesPlainMaps(t *testing.T) {
	// Nested levels may arrive as map[string]any, e.g. from encoding/json.
	r := record.Record{"user": map[string]any{"name": "Alice"}}
	if v, ok := r.Get("user.name"); !ok || v != "Alice" {
		t.Fatalf("Get through map[string]any = %v, %v; want Alice", v, ok)
	}
}

func TestGetOr(t *testing.T) {
	r := makeNested()
	if v := r.GetOr("user.name", "fallback"); v != "Alice" {
		t.Fatalf("GetOr = %v; want Alice", v)
	}
	if v := r.GetOr("user.missing", "fallback"); v != "fallback" {
		t.Fatalf("GetOr = %v; want fallback", v)
	}
}

func TestHas(t *testing.T) {
	r := makeNested()
	if !r.Has("user.address.city") || r.Has("user.address.street") {
		t.Fatal("Has failed")
	}
	if !r.HasAll("score", "user.name") || r.HasAll("score", "nope") {
		t.Fatal("HasAll failed")
	}
	if !r.HasAny("nope", "score") || r.HasAny("nope", "also-nope") {
		t.Fatal("HasAny failed")
	}
}

func TestSet(t *testing.T) {
	r := record.Record{}
	r.Set("user.address.postcode", "EC1")
	if v, ok := r.Get("user.address.postcode"); !ok || v != "EC1" {
		t.Fatalf("Set then Get = %v, %v", v, ok)
	}
	r.Set("top", 1)
	if v, _ := r.Get("top"); v != 1 {
		t.Fatal("Set top-level failed")
	}
}

func TestSetReplacesLeafIntermediate(t *testing.T) {
	r := record.Record{"a": 1}
	r.Set("a.b", 2)
	if v, ok := r.Get("a.b"); !ok || v != 2 {
		t.Fatalf("Set through a leaf = %v, %v; want 2", v, ok)
	}
}

func TestForget(t *testing.T) {
	r := makeNested()
	r.Forget("user.address.city")
	if r.Has("user.address.city") {
		t.Fatal("Forget did not remove the nested key")
	}
	if !r.Has("user.address.country") {
		t.Fatal("Forget removed a sibling key")
	}
	r.Forget("score")
	if r.Has("score") {
		t.Fatal("Forget did not remove the top-level key")
	}
	r.Forget("score.not.a.map") // traversing a missing path is a no-op
}

func TestOnlyExcept(t *testing.T) {
	r := record.Record{"a": 1, "b": 2, "c": 3}
	assertRecord(t, r.Only("a", "c", "missing"), record.Record{"a": 1, "c": 3})
	assertRecord(t, r.Except("b"), record.Record{"a": 1, "c": 3})
}

func TestPick(t *testing.T) {
	r := makeNested()
	got := r.Pick("score", "user.address.city")
	assertRecord(t, got, record.Record{
		"score": 42,
		"user":  record.Record{"address": record.Record{"city": "London"}},
	})
}

func TestPickMissingPathsAbsent(t *testing.T) {
	r := record.Record{"a": 1}
	assertRecord(t, r.Pick("a", "b", "c.d"), record.Record{"a": 1})
}

func TestDot(t *testing.T) {
	flat := makeNested().Dot()
	want := map[string]any{
		"user.name":            "Alice",
		"user.address.city":    "London",
		"user.address.country": "UK",
		"score":                42,
	}
	if diff := cmp.Diff(want, flat); diff != "" {
		t.Fatalf("Dot mismatch (-want +got):\n%s", diff)
	}
}

func TestUndot(t *testing.T) {
	got := record.Undot(map[string]any{"a.b": 1, "a.c": 2, "d": 3})
	assertRecord(t, got, record.Record{
		"a": record.Record{"b": 1, "c": 2},
		"d": 3,
	})
}

func TestMerge(t *testing.T) {
	dst := record.Record{
		"name":    "Alice",
		"address": record.Record{"city": "London"},
	}
	dst.Merge(record.Record{
		"name":    "Alicia",
		"address": record.Record{"zip": "EC1"},
	})
	assertRecord(t, dst, record.Record{
		"name":    "Alicia",
		"address": record.Record{"city": "London", "zip": "EC1"},
	})
}

func TestClone(t *testing.T) {
	orig := makeNested()
	clone := orig.Clone()
	clone.Set("user.address.city", "Paris")
	if v, _ := orig.Get("user.address.city"); v != "London" {
		t.Fatalf("mutating the clone leaked into the original: %v", v)
	}
}
