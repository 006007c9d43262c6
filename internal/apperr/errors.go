package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the service handlers and mapped to HTTP
// statuses at the gateway.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCompanyNotFound = errors.New("company not found")
	ErrEmailTaken      = errors.New("email already in use")
	ErrInvalidSalary   = errors.New("salary must be a number")
)

// Violations maps a field name to the reason it was rejected. All field
// checks run before anything is persisted so the caller gets every
// violation at once.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

func (v Violations) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(v))
}
