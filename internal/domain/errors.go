package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrParkingNotEnded = errors.New("cannot set paid if parking is not ended")
	ErrPaymentExpired  = errors.New("payment has required too much time, retry")
	ErrAlreadyPaid     = errors.New("ticket is already paid")
	ErrValidation      = errors.New("validation failed")
)

// ValidationError reports invalid input per field. It matches ErrValidation
// with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}

	return strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
