// Package errx provides the error kinds of the link service. Every layer wraps
// the error below it with its own operation name and keeps the kind, so the
// HTTP layer can pick a status from KindOf alone.
package errx

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	Unknown Kind = iota
	Invalid
	Duplicate
	NotFound
	Storage
)

type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func E(op string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{
		Op:   op,
		Kind: kind,
		Err:  err,
	}
}

// Wrap re-wraps err under op, keeping whatever kind it already carries.
func Wrap(op string, err error) error {
	return E(op, KindOf(err), err)
}

// String returns the string representation of the error kind.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Invalid:
		return "InvalidInput"
	case Duplicate:
		return "DuplicateCode"
	case NotFound:
		return "NotFound"
	case Storage:
		return "StorageError"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

func OpOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}
