package portfolio

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched (via errors.Is) by every NotFoundError.
var ErrNotFound = errors.New("portfolio item not found")

// NotFoundError reports an id lookup with no matching record.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Portfolio item with ID %d not found", e.ID)
}

// Is makes errors.Is(err, ErrNotFound) true for any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
