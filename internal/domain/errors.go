package domain

import (
	"errors"
	"fmt"
)

// NotFoundError is returned by every service operation that requires a prior
// existence check and finds no row. It fires before any mutation, so a failed
// update or remove leaves the store untouched.
type NotFoundError struct {
	Resource string
	KeyName  string
	KeyValue string
}

func NewNotFound(resource, keyName, keyValue string) *NotFoundError {
	return &NotFoundError{Resource: resource, KeyName: keyName, KeyValue: keyValue}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s[%s] not found.", e.Resource, e.KeyName, e.KeyValue)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
