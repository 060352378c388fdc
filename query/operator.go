package query

import (
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Operator selects the predicate applied by [Query.Where] between a record's
// field value and the caller-supplied comparison value.
//
// The set is closed: Where rejects any other tag with [ErrUnknownOperator].
type Operator string

const (
	// OpEqual matches on strict value-and-type equality: an int field never
	// equals a float64 comparison value, even for the same number.
	OpEqual Operator = "="

	// OpNotEqual is the negation of OpEqual.
	OpNotEqual Operator = "!="

	// OpLessThan, OpLessOrEqual, OpGreaterThan and OpGreaterOrEqual compare
	// under the natural ordering of the field's type. Ordering is defined
	// when both sides are numeric, both are strings, or both are time.Time;
	// any other pairing never matches.
	OpLessThan       Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpGreaterThan    Operator = ">"
	OpGreaterOrEqual Operator = ">="

	// OpContains, OpStartsWith and OpEndsWith are case-insensitive string
	// matches. Both sides are coerced to their string form first; a missing
	// or nil field coerces to the empty string.
	OpContains   Operator = "like"
	OpStartsWith Operator = "^like"
	OpEndsWith   Operator = "like$"
)

// operators is the canonical ordered catalog.
var operators = []Operator{
	OpEqual,
	OpNotEqual,
	OpLessThan,
	OpLessOrEqual,
	OpGreaterThan,
	OpGreaterOrEqual,
	OpContains,
	OpStartsWith,
	OpEndsWith,
}

// Operators returns the closed, ordered set of operator tags accepted by
// [Query.Where]. The returned slice is a copy.
func Operators() []Operator {
	out := make([]Operator, len(operators))
	copy(out, operators)
	return out
}

// Valid reports whether op is a member of the catalog.
func (op Operator) Valid() bool {
	for _, known := range operators {
		if op == known {
			return true
		}
	}
	return false
}

// match evaluates op between a record's field value and the comparison
// value. Callers must have validated op first; an unknown operator never
// matches.
func (op Operator) match(field, value any) bool {
	switch op {
	case OpEqual:
		return reflect.DeepEqual(field, value)
	case OpNotEqual:
		return !reflect.DeepEqual(field, value)
	case OpLessThan, OpLessOrEqual, OpGreaterThan, OpGreaterOrEqual:
		n, ok := compare(field, value)
		if !ok {
			return false
		}
		switch op {
		case OpLessThan:
			return n < 0
		case OpLessOrEqual:
			return n <= 0
		case OpGreaterThan:
			return n > 0
		default:
			return n >= 0
		}
	case OpContains, OpStartsWith, OpEndsWith:
		// cast.ToString maps nil to "", so an absent field never crashes
		// coercion.
		haystack := strings.ToLower(cast.ToString(field))
		needle := strings.ToLower(cast.ToString(value))
		switch op {
		case OpContains:
			return strings.Contains(haystack, needle)
		case OpStartsWith:
			return strings.HasPrefix(haystack, needle)
		default:
			return strings.HasSuffix(haystack, needle)
		}
	}
	return false
}

// compare orders a against b: -1, 0 or 1 when both sides share an orderable
// type (numbers, strings, time.Time), ok=false otherwise.
func compare(a, b any) (int, bool) {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		if !ok {
			return 0, false
		}
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv), true
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv), true
		}
	}
	return 0, false
}

// toFloat widens any Go numeric value to float64.
// Numeric strings do not count as numbers.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
