package query

import "errors"

// Sentinel errors returned by Query operations. Errors carrying context
// (the offending index, operator token, or field name) wrap these, so use
// errors.Is to test for them.
var (
	// ErrInvalidRecord is returned by the constructors when an element of
	// the input is nil or not a record.
	ErrInvalidRecord = errors.New("query: collection must contain only non-nil records")

	// ErrInvalidLimit is returned by Limit (and Paginate) when the limit is
	// not a positive number.
	ErrInvalidLimit = errors.New("query: limit must be a positive number")

	// ErrOffsetOutOfRange is returned by Offset (and Paginate) when the
	// offset is negative or not strictly less than the collection length.
	ErrOffsetOutOfRange = errors.New("query: offset is out of range")

	// ErrUnknownOperator is returned by Where when given an operator tag
	// outside the set reported by [Operators].
	ErrUnknownOperator = errors.New("query: unknown operator")

	// ErrNonNumericField is returned by Sum when a present field value is
	// not a numeric type.
	ErrNonNumericField = errors.New("query: field value is not numeric")
)
