package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrOriginUnavailable     = errors.New("origin unavailable")
	ErrImportRejected        = errors.New("annotation import rejected")
)

func isInvalid(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
