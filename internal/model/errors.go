package model

import (
	"errors"
	"fmt"
)

// Entity kinds reported by NotFoundError.
const (
	KindUser    = "user"
	KindProduct = "product"
	KindOrder   = "order"
)

// NotFoundError is returned when a referenced entity does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %s", e.Kind, e.ID)
}

// NotFound builds a NotFoundError for the given entity kind and id.
func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ErrEmailExists is returned on an attempt to register a duplicate email.
var ErrEmailExists = errors.New("email already exists")
