package query

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"

	"github.com/hasbyte1/go-laravel-query/record"
)

// Query is a generic, immutable wrapper around an ordered sequence of
// records.
//
// Every transform (Limit, Offset, Paginate, Where, Select) returns a *new*
// Query over a freshly built sequence, leaving the original unchanged.
// Terminal reads (First, Last, All, Count, Sum, KeyBy) return plain values
// and end the chain. Because no method mutates the receiver, a Query may be
// read from multiple goroutines without locking.
//
// # Creating a query
//
//	q, err := query.New(
//	    record.Record{"id": 1, "age": 30},
//	    record.Record{"id": 2, "age": 20},
//	)
//
// # Chaining
//
//	adults, err := q.Where("age", query.OpGreaterOrEqual, 18)
//	if err != nil {
//	    return err
//	}
//	rows := adults.Select("id", "name").All()
//
// The record shape is any named map type with underlying map[string]any, so
// callers may define their own:
//
//	type User map[string]any
//	q, err := query.From([]User{{"id": 1}})
type Query[T ~map[string]any] struct {
	records []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Query from a variadic list of records (copied).
// Returns [ErrInvalidRecord] if any record is nil.
func New[T ~map[string]any](records ...T) (*Query[T], error) {
	return From(records)
}

// From creates a Query from a slice of records.
//
// The slice is copied, so later mutation of it (appending, reordering,
// replacing elements) is not observable through the Query. Field values
// inside each record are shared, not deep-copied.
//
// Returns [ErrInvalidRecord] naming the index if any record is nil.
func From[T ~map[string]any](records []T) (*Query[T], error) {
	dst := make([]T, len(records))
	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("%w: element at index %d is nil", ErrInvalidRecord, i)
		}
		dst[i] = r
	}
	return &Query[T]{records: dst}, nil
}

// Empty creates an empty Query of record shape T.
func Empty[T ~map[string]any]() *Query[T] {
	return &Query[T]{records: []T{}}
}

// FromAny creates a Query[record.Record] from an untyped slice, such as the
// result of unmarshalling a JSON array. Every element must be a
// record.Record or map[string]any; anything else (nil, primitives, slices)
// fails with [ErrInvalidRecord] naming the index and the offending type.
func FromAny(items []any) (*Query[record.Record], error) {
	dst := make([]record.Record, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case record.Record:
			if v == nil {
				return nil, fmt.Errorf("%w: element at index %d is nil", ErrInvalidRecord, i)
			}
			dst[i] = v
		case map[string]any:
			if v == nil {
				return nil, fmt.Errorf("%w: element at index %d is nil", ErrInvalidRecord, i)
			}
			dst[i] = record.Record(v)
		default:
			return nil, fmt.Errorf("%w: element at index %d is %T, not a record", ErrInvalidRecord, i, item)
		}
	}
	return &Query[record.Record]{records: dst}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal reads
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the wrapped sequence, in order.
func (q *Query[T]) All() []T {
	out := make([]T, len(q.records))
	copy(out, q.records)
	return out
}

// Count returns the number of records.
func (q *Query[T]) Count() int { return len(q.records) }

// IsEmpty reports whether the query holds no records.
func (q *Query[T]) IsEmpty() bool { return len(q.records) == 0 }

// IsNotEmpty reports whether the query holds at least one record.
func (q *Query[T]) IsNotEmpty() bool { return len(q.records) > 0 }

// First returns the first record.
// Returns the zero value and false when the query is empty.
func (q *Query[T]) First() (T, bool) {
	if len(q.records) == 0 {
		var zero T
		return zero, false
	}
	return q.records[0], true
}

// Last returns the last record.
// Returns the zero value and false when the query is empty.
func (q *Query[T]) Last() (T, bool) {
	if len(q.records) == 0 {
		var zero T
		return zero, false
	}
	return q.records[len(q.records)-1], true
}

// ToJSON serialises the records to a JSON array.
func (q *Query[T]) ToJSON() ([]byte, error) {
	return json.Marshal(q.records)
}

// String returns a JSON representation of the records.
// It implements [fmt.Stringer].
func (q *Query[T]) String() string {
	b, err := q.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", q.records)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & pagination
// ─────────────────────────────────────────────────────────────────────────────

// Limit returns a new Query containing the first min(n, Count()) records.
// Returns [ErrInvalidLimit] if n <= 0. Asking for more records than exist is
// not an error; the whole sequence is returned.
func (q *Query[T]) Limit(n int) (*Query[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	if n > len(q.records) {
		n = len(q.records)
	}
	out := make([]T, n)
	copy(out, q.records[:n])
	return &Query[T]{records: out}, nil
}

// Offset returns a new Query with the first n records removed.
//
// Returns [ErrOffsetOutOfRange] unless 0 <= n < Count(). Note that
// n == Count() — skip everything — is out of range too, so on an empty
// query every offset fails.
func (q *Query[T]) Offset(n int) (*Query[T], error) {
	if n < 0 || n >= len(q.records) {
		return nil, fmt.Errorf("%w: %d", ErrOffsetOutOfRange, n)
	}
	out := make([]T, len(q.records)-n)
	copy(out, q.records[n:])
	return &Query[T]{records: out}, nil
}

// Paginate returns the 1-based page of size records. Any page < 1 behaves
// as page 1.
//
// It is defined purely as Offset((page-1)*size) followed by Limit(size) and
// inherits their error conditions: a page whose starting offset reaches past
// the last record fails with [ErrOffsetOutOfRange] rather than returning an
// empty page, and size <= 0 fails with [ErrInvalidLimit].
func (q *Query[T]) Paginate(page, size int) (*Query[T], error) {
	if page < 1 {
		page = 1
	}
	shifted, err := q.Offset((page - 1) * size)
	if err != nil {
		return nil, err
	}
	return shifted.Limit(size)
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & projection
// ─────────────────────────────────────────────────────────────────────────────

// Where returns a new Query over the records whose field at key compares
// true against value under op, preserving relative order. key may be a
// dot-notation path into nested records. A match-nothing filter yields an
// empty query, not an error.
//
// Returns [ErrUnknownOperator] naming the tag if op is not in the set
// reported by [Operators].
func (q *Query[T]) Where(key string, op Operator, value any) (*Query[T], error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, string(op))
	}
	out := make([]T, 0, len(q.records))
	for _, r := range q.records {
		field, _ := record.Record(r).Get(key)
		if op.match(field, value) {
			out = append(out, r)
		}
	}
	return &Query[T]{records: out}, nil
}

// Select projects every record down to the given fields, preserving order
// and count. Keys may be dot-notation paths; the projected record rebuilds
// the nested shape. Fields absent from a record are simply absent from its
// projection.
//
// The result is a full Query and supports every operation, so projections
// can be filtered, paged, and keyed further.
func (q *Query[T]) Select(keys ...string) *Query[T] {
	out := make([]T, len(q.records))
	for i, r := range q.records {
		out[i] = T(record.Record(r).Pick(keys...))
	}
	return &Query[T]{records: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation & grouping
// ─────────────────────────────────────────────────────────────────────────────

// Sum accumulates the numeric field at key across all records. A missing or
// nil field contributes 0. key may be a dot-notation path.
//
// Returns [ErrNonNumericField] naming the field if any present value is not
// a numeric type; numeric strings do not count.
func (q *Query[T]) Sum(key string) (float64, error) {
	var sum float64
	for _, r := range q.records {
		v, ok := record.Record(r).Get(key)
		if !ok || v == nil {
			continue
		}
		f, numeric := toFloat(v)
		if !numeric {
			return 0, fmt.Errorf("%w: %q", ErrNonNumericField, key)
		}
		sum += f
	}
	return sum, nil
}

// KeyBy builds a map from each record's field at key (in its string form)
// to the record itself. key may be a dot-notation path.
//
// Records whose key field is absent, nil, or not representable as a string
// key (maps, slices) are excluded. When two records share a key value, the
// later one by sequence order wins. KeyBy is a true terminal: the result is
// a plain map, and record order is not preserved.
func (q *Query[T]) KeyBy(key string) map[string]T {
	out := make(map[string]T, len(q.records))
	for _, r := range q.records {
		v, ok := record.Record(r).Get(key)
		if !ok || v == nil {
			continue
		}
		k, err := cast.ToStringE(v)
		if err != nil {
			continue
		}
		out[k] = r
	}
	return out
}
