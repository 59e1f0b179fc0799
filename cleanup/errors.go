package cleanup

import (
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/rest"
)

// ErrAmountRange is returned before any platform call is made.
var ErrAmountRange = errors.New("amount must be between 1 and 100")

// Platform JSON error codes that mean the bot lacks rights rather than the
// request being transient.
const (
	errorCodeMissingAccess      = 50001
	errorCodeMissingPermissions = 50013
)

func isPermissionError(err error) bool {
	var restErr *rest.Error
	if !errors.As(err, &restErr) {
		return false
	}
	return restErr.Code == errorCodeMissingAccess || restErr.Code == errorCodeMissingPermissions
}

func classify(op string, err error) error {
	if isPermissionError(err) {
		return fmt.Errorf("%s: missing permissions: %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
