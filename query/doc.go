// Package query provides a fluent, immutable query type over in-memory
// collections of records, inspired by Laravel's fluent query and collection
// surfaces.
//
// # Overview
//
// The central type is [Query][T], a generic wrapper around an ordered slice
// of map-backed records:
//
//	q, err := query.From([]record.Record{
//	    {"id": 1, "name": "Alice", "age": 30},
//	    {"id": 2, "name": "Bob", "age": 20},
//	    {"id": 3, "name": "Carol", "age": 20},
//	})
//
//	twenties, err := q.Where("age", query.OpEqual, 20)
//	total, err := twenties.Sum("age")          // 40
//	ids := twenties.Select("id").All()         // [{"id": 2}, {"id": 3}]
//	byID := q.KeyBy("id")                      // {"1": ..., "2": ..., "3": ...}
//
// # Immutability
//
// Every transform — [Query.Limit], [Query.Offset], [Query.Paginate],
// [Query.Where], [Query.Select] — returns a new Query over a freshly built
// sequence; the original is never mutated and the input slice is copied at
// construction. Queries are therefore safe to share across goroutines for
// concurrent reads. Terminal reads ([Query.First], [Query.Last],
// [Query.All], [Query.Count], [Query.Sum], [Query.KeyBy]) return plain
// values and end the chain.
//
// # Operators
//
// [Query.Where] accepts a closed set of operator tags, reported in
// canonical order by [Operators]:
//
//	=      strict value-and-type equality
//	!=     negation of =
//	<  <=  >  >=
//	       ordering; defined for number/number, string/string and
//	       time.Time/time.Time pairs, never matches otherwise
//	like   case-insensitive substring match
//	^like  case-insensitive prefix match
//	like$  case-insensitive suffix match
//
// The like family coerces both sides to their string form before
// lower-casing; a missing or nil field coerces to the empty string, which
// means an empty needle matches every record.
//
// # Error handling
//
// Operations that can fail return an error alongside the new Query; the
// receiver is never left in a partial state. Errors wrap the package's
// sentinel errors ([ErrInvalidRecord], [ErrInvalidLimit],
// [ErrOffsetOutOfRange], [ErrUnknownOperator], [ErrNonNumericField]), so
// callers branch with errors.Is. One deliberate boundary to be aware of:
// Offset(n) requires n strictly less than Count(), so skipping the entire
// sequence — including any offset on an empty query — is out of range, and
// Paginate inherits that behavior instead of returning empty pages.
package query
