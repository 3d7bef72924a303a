package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMalformedCommand = errors.New("malformed command")
	ErrNotFound         = errors.New("not found")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrInvalidValue     = errors.New("invalid value")
	ErrUnavailable      = errors.New("unavailable")
)

// Kind names an entity collection in error messages.
type Kind string

const (
	KindPartner  Kind = "partner"
	KindCompany  Kind = "company"
	KindEmployee Kind = "employee"
	KindContact  Kind = "contact"
	KindFile     Kind = "file"
)

// UnknownCommandError reports a verb outside {Partner, Company, Employee, Contact}.
type UnknownCommandError struct {
	Verb string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("%s type: %q", ErrUnknownCommand.Error(), e.Verb)
}

func (e *UnknownCommandError) Unwrap() error {
	return ErrUnknownCommand
}

// MalformedCommandError reports a known verb with the wrong number of arguments.
type MalformedCommandError struct {
	Verb string
	Want int
	Got  int
}

func (e *MalformedCommandError) Error() string {
	return fmt.Sprintf("%s: %s takes %d argument(s), got %d", ErrMalformedCommand.Error(), e.Verb, e.Want, e.Got)
}

func (e *MalformedCommandError) Unwrap() error {
	return ErrMalformedCommand
}

// NotFoundError reports a reference to an entity that was never created.
type NotFoundError struct {
	Kind Kind
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.Name, ErrNotFound.Error())
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// DuplicateKeyError reports an insert that would violate name uniqueness.
type DuplicateKeyError struct {
	Kind Kind
	Name string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %s %q already exists", ErrDuplicateKey.Error(), e.Kind, e.Name)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// InvalidValueError reports a field value outside its allowed set.
type InvalidValueError struct {
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s for %s: %q", ErrInvalidValue.Error(), e.Field, e.Value)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidValue
}

// LineError attaches the 1-based input line number to a command failure.
// The wrapped error keeps its errors.Is and errors.As identity.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
