package services

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks errors caused by the caller's data rather than the
// store. Match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

var ErrBillWithoutCustomer = invalidf("bill has no customer")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}
