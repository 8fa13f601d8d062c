package stocks

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNotFound         = errors.New("stock item not found")
	ErrAlreadyExists    = errors.New("stock item already registered")
	ErrCapacityExceeded = errors.New("stock capacity exceeded")

	// ErrDuplicateKey is returned by a Store when the unique name constraint
	// rejects an insert.
	ErrDuplicateKey = errors.New("duplicate key")
)

type NotFoundError struct {
	Field string // "id" or "name"
	Value string
}

func notFoundByID(id int) *NotFoundError {
	return &NotFoundError{Field: "id", Value: strconv.Itoa(id)}
}

func notFoundByName(name string) *NotFoundError {
	return &NotFoundError{Field: "name", Value: name}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("stock item with %s %s not found", e.Field, e.Value)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("stock item with name %s is already registered", e.Name)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

type CapacityExceededError struct {
	ID     int
	Amount int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("amount %d for stock item with id %d exceeds the stock capacity", e.Amount, e.ID)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
