package record

import "strings"

// Record is one structured element of a collection: a map of named fields.
// Fields may be absent, hold nil, or hold nested records of arbitrary depth.
//
// All accessors accept dot-notation key paths for reaching into nested
// fields, mirroring Laravel's Arr::get / Arr::set family:
//
//	r := record.Record{
//	    "name": "Alice",
//	    "address": record.Record{"city": "London"},
//	}
//
//	r.Get("address.city")  // "London", true
//	r.Set("address.postcode", "EC1")
//	r.Has("name")          // true
//
// Nested levels may be either Record or plain map[string]any; both are
// traversed transparently.
type Record map[string]any

// Get retrieves the value at the dot-notation key path.
// The second return value reports whether the full path exists; a field
// explicitly set to nil is present (nil, true), while a missing field is
// absent (nil, false).
func (r Record) Get(key string) (any, bool) {
	segments := strings.Split(key, ".")
	current := r
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := asRecord(val)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// GetOr retrieves the value at key, or def when the path does not exist.
func (r Record) GetOr(key string, def any) any {
	if v, ok := r.Get(key); ok {
		return v
	}
	return def
}

// Has reports whether the dot-notation key path exists.
func (r Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// HasAll reports whether every given key path exists.
func (r Record) HasAll(keys ...string) bool {
	for _, key := range keys {
		if !r.Has(key) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of the given key paths exists.
func (r Record) HasAny(keys ...string) bool {
	for _, key := range keys {
		if r.Has(key) {
			return true
		}
	}
	return false
}

// Set writes value at the dot-notation key path, creating intermediate
// records as needed. A non-record intermediate value is replaced by a new
// nested record.
func (r Record) Set(key string, value any) {
	segments := strings.SplitN(key, ".", 2)
	if len(segments) == 1 {
		r[key] = value
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := asRecord(r[seg])
	if !ok {
		nested = make(Record)
		r[seg] = nested
	}
	nested.Set(rest, value)
}

// Forget removes the dot-notation key path.
// Intermediate records are not cleaned up when they become empty.
func (r Record) Forget(key string) {
	segments := strings.SplitN(key, ".", 2)
	if len(segments) == 1 {
		delete(r, key)
		return
	}
	nested, ok := asRecord(r[segments[0]])
	if !ok {
		return
	}
	nested.Forget(segments[1])
}

// Only returns a new record containing only the given top-level fields.
// For dot-notation projection use [Record.Pick].
func (r Record) Only(keys ...string) Record {
	out := make(Record, len(keys))
	for _, k := range keys {
		if v, ok := r[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Except returns a shallow copy of r without the given top-level fields.
func (r Record) Except(keys ...string) Record {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(Record, len(r))
	for k, v := range r {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// Pick returns a new record containing only the given key paths, rebuilding
// nested structure for dot-notation keys:
//
//	r.Pick("id", "address.city")
//	// → {"id": ..., "address": {"city": ...}}
//
// Paths that do not exist on r are simply absent from the result.
func (r Record) Pick(keys ...string) Record {
	out := make(Record, len(keys))
	for _, key := range keys {
		if v, ok := r.Get(key); ok {
			out.Set(key, v)
		}
	}
	return out
}

// Dot flattens the record into a single-level map keyed by dot-notation
// paths.
//
//	Record{"a": Record{"b": 1}}.Dot() // → {"a.b": 1}
func (r Record) Dot() map[string]any {
	out := make(map[string]any)
	dotFlatten("", r, out)
	return out
}

func dotFlatten(prefix string, r Record, out map[string]any) {
	for k, v := range r {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := asRecord(v); ok {
			dotFlatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Undot expands a flat dot-notation map into a nested Record.
//
//	record.Undot(map[string]any{"a.b": 1, "a.c": 2})
//	// → Record{"a": Record{"b": 1, "c": 2}}
func Undot(m map[string]any) Record {
	out := make(Record, len(m))
	for key, val := range m {
		out.Set(key, val)
	}
	return out
}

// Merge merges src into r, returning r.
// Fields in src overwrite fields in r; nested records are merged recursively.
func (r Record) Merge(src Record) Record {
	for k, srcVal := range src {
		if dstNested, ok := asRecord(r[k]); ok {
			if srcNested, ok := asRecord(srcVal); ok {
				dstNested.Merge(srcNested)
				continue
			}
		}
		r[k] = srcVal
	}
	return r
}

// Clone returns a deep copy of r: nested records are copied recursively,
// leaf values are copied by assignment.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		if nested, ok := asRecord(v); ok {
			out[k] = nested.Clone()
		} else {
			out[k] = v
		}
	}
	return out
}

// asRecord unwraps a field value holding a nested record, whether stored as
// Record or as plain map[string]any.
func asRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return Record(m), true
	}
	return nil, false
}
