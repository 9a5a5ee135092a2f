package reportquery

import (
	"errors"
	"fmt"
)

// Validation failures surfaced to callers. All are deterministic and map to
// 4xx responses at the API layer; none are retried.
var (
	ErrUnknownDataSource    = errors.New("unknown data source")
	ErrInvalidField         = errors.New("invalid field")
	ErrInvalidOperator      = errors.New("invalid operator")
	ErrMalformedFilterValue = errors.New("malformed filter value")
)

func unknownDataSource(ds DataSource) error {
	return fmt.Errorf("%w: %q", ErrUnknownDataSource, string(ds))
}

func invalidField(ds DataSource, field string) error {
	return fmt.Errorf("%w: %q is not a field of data source %s", ErrInvalidField, field, ds)
}

func invalidOperator(field, operator string) error {
	return fmt.Errorf("%w: %q is not allowed on field %q", ErrInvalidOperator, operator, field)
}

func malformedValue(field, operator, reason string) error {
	return fmt.Errorf("%w: %s filter on %q %s", ErrMalformedFilterValue, operator, field, reason)
}
