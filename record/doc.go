// Package record defines the Record type used throughout this module: a
// map-backed structured value with named, possibly nested, possibly absent
// fields, plus dot-notation access helpers inspired by Laravel's Arr facade.
//
// # Dot-notation access
//
//	r := record.Record{
//	    "user": record.Record{
//	        "name": "Alice",
//	        "address": record.Record{"city": "London"},
//	    },
//	}
//
//	r.Get("user.address.city")          // → "London", true
//	r.Set("user.address.postcode", "EC1")
//	r.Has("user.name")                  // → true
//	flat := r.Dot()                     // → {"user.name": "Alice", ...}
//
// Nested levels may be stored as either Record or plain map[string]any
// (e.g. as produced by encoding/json); both are traversed transparently.
//
// # Presence vs nil
//
// A field set to nil is present: Get returns (nil, true). A field that was
// never set is absent: Get returns (nil, false). Query operations in the
// sibling query package rely on this distinction.
//
// # Projection
//
// [Record.Only] and [Record.Except] filter top-level fields; [Record.Pick]
// additionally understands dot-notation paths and rebuilds the nested shape
// in its result. Pick is what the query package's Select is built on.
package record
