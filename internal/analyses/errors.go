package analyses

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrTooLarge           = errors.New("document too large")
	ErrStoreNotConfigured = errors.New("object store not configured")
	ErrInvalidOutput      = errors.New("result failed schema validation")
)
