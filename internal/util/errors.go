package util

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid")
	ErrConflict = errors.New("conflict")
)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the rule violations of a request.
type ValidationError struct {
	Message string
	Details []FieldError
}

func NewValidationError(message string, details ...FieldError) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

func Invalid(field, message string) *ValidationError {
	return NewValidationError("Erro de validação", FieldError{Field: field, Message: message})
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s %s", e.Message, e.Details[0].Field, e.Details[0].Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// NotFoundError names the missing entity, e.g. "Prova não encontrada".
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

var (
	ErrPastaNotFound   = &NotFoundError{Message: "Pasta não encontrada"}
	ErrProvaNotFound   = &NotFoundError{Message: "Prova não encontrada"}
	ErrQuestaoNotFound = &NotFoundError{Message: "Questão não encontrada"}
)
