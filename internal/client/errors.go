package client

import "errors"

var (
	// ErrUnauthenticated is returned when no user identity is available.
	ErrUnauthenticated = errors.New("not authenticated")
	ErrNotFound        = errors.New("not found")
	ErrInvalid         = errors.New("invalid input")
	// ErrOperationFailed reports a remote write that did not succeed. The
	// optimistic change has been rolled back and the call may be retried.
	ErrOperationFailed = errors.New("operation failed, please try again")
)

// OperationError carries the remote cause of a failed mutation.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return e.Op + ": " + ErrOperationFailed.Error()
}

func (e *OperationError) Is(target error) bool {
	return target == ErrOperationFailed
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
