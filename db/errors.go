package db

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
)

// UserNotFoundError is returned when no user has the requested id.
type UserNotFoundError struct {
	ID uuid.UUID
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("User with id %s not found", e.ID)
}

func (e *UserNotFoundError) Is(target error) bool {
	return target == ErrUserNotFound
}

// TaskNotFoundError is returned when the user exists but owns no task with the requested id.
type TaskNotFoundError struct {
	ID uuid.UUID
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("Task with id %s not found", e.ID)
}

func (e *TaskNotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound
}
