package typed

import (
	"errors"
	"fmt"
)

var (
	ErrCoercion   = errors.New("not coercible")
	ErrRejected   = errors.New("value rejected")
	ErrInvalidKey = errors.New("invalid key")
	ErrIndex      = errors.New("index out of range")
)

// Role names the part of a container a value was headed for.
type Role string

const (
	RoleElement Role = "element"
	RoleKey     Role = "key"
	RoleValue   Role = "value"
)

// CoercionError reports a value that could not be brought into the shape
// declared for its role.
type CoercionError struct {
	Kind  string
	Role  Role
	Shape string
	Value any
	Err   error
}

func (e *CoercionError) Error() string {
	msg := fmt.Sprintf("%ss must be coercible to %s, got %T", e.Role, e.Shape, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Kind != "" {
		return e.Kind + ": " + msg
	}
	return msg
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

func (e *CoercionError) Is(target error) bool {
	return target == ErrCoercion
}

// RejectionError reports a coerced element refused by a strict list.
type RejectionError struct {
	Kind  string
	Value any
}

func (e *RejectionError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s: value rejected: %v", e.Kind, e.Value)
	}
	return fmt.Sprintf("value rejected: %v", e.Value)
}

func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}

// InvalidKeyError reports a key outside a map's allowed keys.
type InvalidKeyError struct {
	Kind string
	Key  any
}

func (e *InvalidKeyError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s: invalid key: %v", e.Kind, e.Key)
	}
	return fmt.Sprintf("invalid key: %v", e.Key)
}

func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0:%d]", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndex
}

// ContractViolation is the panic value raised when a map's key or value
// assertion fails. It is never returned as an error: a failed assertion
// means the caller broke the map's contract.
type ContractViolation struct {
	Kind  string
	Role  Role
	Value any
}

func (c *ContractViolation) Error() string {
	return fmt.Sprintf("%s: %s assertion failed for %#v", c.Kind, c.Role, c.Value)
}
