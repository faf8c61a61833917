package db

import (
	"log"
	"maps"
	"sync"

	"github.com/google/uuid"

	"task-tracker/models"
)

// Store is the in-memory root of all users and their tasks.
// A single RWMutex guards the whole tree: reads share it, mutations hold it exclusively.
type Store struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*models.User
}

func NewStore() *Store {
	return &Store{users: make(map[uuid.UUID]*models.User)}
}

// abortOnPanic kills the process when a panic escapes while the lock is held.
// The tree may be half-updated at that point, so it must never be served again.
func abortOnPanic() {
	if r := recover(); r != nil {
		log.Fatalf("db: panic while holding store lock: %v", r)
	}
}

func (s *Store) CreateUser(name string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer abortOnPanic()

	id := uuid.New()
	for _, taken := s.users[id]; taken; _, taken = s.users[id] {
		id = uuid.New()
	}
	s.users[id] = &models.User{
		ID:    id,
		Name:  name,
		Tasks: make(map[uuid.UUID]models.Task),
	}
	return id
}

func (s *Store) CreateTask(userID uuid.UUID, in models.TaskInput) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer abortOnPanic()

	user, ok := s.users[userID]
	if !ok {
		return uuid.Nil, &UserNotFoundError{ID: userID}
	}

	id := uuid.New()
	for _, taken := user.Tasks[id]; taken; _, taken = user.Tasks[id] {
		id = uuid.New()
	}
	user.Tasks[id] = models.Task{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Status:      in.Status,
	}
	return id, nil
}

// ListTasks returns a copy of the user's tasks keyed by task id.
func (s *Store) ListTasks(userID uuid.UUID) (map[uuid.UUID]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	defer abortOnPanic()

	user, ok := s.users[userID]
	if !ok {
		return nil, &UserNotFoundError{ID: userID}
	}
	return maps.Clone(user.Tasks), nil
}

func (s *Store) GetTask(userID, taskID uuid.UUID) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	defer abortOnPanic()

	user, ok := s.users[userID]
	if !ok {
		return models.Task{}, &UserNotFoundError{ID: userID}
	}
	task, ok := user.Tasks[taskID]
	if !ok {
		return models.Task{}, &TaskNotFoundError{ID: taskID}
	}
	return task, nil
}

// UpdateTask replaces all mutable fields of the task and returns the result.
func (s *Store) UpdateTask(userID, taskID uuid.UUID, in models.TaskInput) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer abortOnPanic()

	user, ok := s.users[userID]
	if !ok {
		return models.Task{}, &UserNotFoundError{ID: userID}
	}
	if _, ok := user.Tasks[taskID]; !ok {
		return models.Task{}, &TaskNotFoundError{ID: taskID}
	}

	task := models.Task{
		ID:          taskID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Status:      in.Status,
	}
	user.Tasks[taskID] = task
	return task, nil
}

func (s *Store) DeleteTask(userID, taskID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer abortOnPanic()

	user, ok := s.users[userID]
	if !ok {
		return &UserNotFoundError{ID: userID}
	}
	if _, ok := user.Tasks[taskID]; !ok {
		return &TaskNotFoundError{ID: taskID}
	}
	delete(user.Tasks, taskID)
	return nil
}
