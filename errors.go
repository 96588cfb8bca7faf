package docsift

import (
	"errors"
	"fmt"

	"github.com/docsift/docsift/filter"
	"github.com/docsift/docsift/schema"
)

var (
	// ErrUnknownType is returned when a query names a type the schema
	// does not define.
	ErrUnknownType = errors.New("unknown type")
	// ErrUnknownField is returned when a filter key does not exist on
	// the scoped type. The whole query aborts; there is no partial
	// result.
	ErrUnknownField = errors.New("unknown field")
	// ErrBadPattern is returned when a regex or glob pattern fails to
	// compile.
	ErrBadPattern = errors.New("bad pattern")
	// ErrUnsupportedOperator is returned for a terminal operator outside
	// the source dialect.
	ErrUnsupportedOperator = errors.New("unsupported operator")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ut *schema.ErrUnknownType
	if errors.As(err, &ut) {
		return fmt.Errorf("%w: %w", ErrUnknownType, err)
	}
	var uf *schema.ErrUnknownField
	if errors.As(err, &uf) {
		return fmt.Errorf("%w: %w", ErrUnknownField, err)
	}
	var bp *filter.ErrBadPattern
	if errors.As(err, &bp) {
		return fmt.Errorf("%w: %w", ErrBadPattern, err)
	}
	var uo *filter.ErrUnsupportedOperator
	if errors.As(err, &uo) {
		return fmt.Errorf("%w: %w", ErrUnsupportedOperator, err)
	}

	return err
}
