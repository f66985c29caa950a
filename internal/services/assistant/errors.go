package assistant

import (
	"errors"
	"fmt"
)

var ErrEmptyQuestion = errors.New("question is required")

// ServiceError wraps any failure to obtain an answer from the language model.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ai service %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
