package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	titleMaxLen       = 100
	descriptionMaxLen = 500
)

// TaskStatus is the closed set of states a task can be in.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// ParseStatus validates a status value supplied by a caller. The empty
// string is not accepted here; callers decide whether absence means
// "default" or "no filter".
func ParseStatus(value string) (TaskStatus, *Error) {
	switch TaskStatus(value) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return TaskStatus(value), nil
	}
	return "", NewError(ErrCodeInvalid,
		fmt.Sprintf("status must be one of %q, %q or %q", StatusPending, StatusInProgress, StatusCompleted))
}

// Task represents a unit of work owned by exactly one user.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == StatusCompleted
}

// NewTask builds a validated task for the given owner. An empty status
// defaults to pending.
func NewTask(userID, title, description, status string) (*Task, *Error) {
	task := &Task{
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      StatusPending,
	}
	if status != "" {
		parsed, err := ParseStatus(status)
		if err != nil {
			return nil, err
		}
		task.Status = parsed
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}
	return task, nil
}

// Validate checks the field constraints in order and returns the first
// violated rule. It is re-run after every merge-patch.
func (t *Task) Validate() *Error {
	if t.Title == "" {
		return NewError(ErrCodeInvalid, "title is required")
	}
	if n := len([]rune(t.Title)); n > titleMaxLen {
		return NewError(ErrCodeInvalid,
			fmt.Sprintf("title must be at most %d characters", titleMaxLen))
	}
	if t.Description == "" {
		return NewError(ErrCodeInvalid, "description is required")
	}
	if n := len([]rune(t.Description)); n > descriptionMaxLen {
		return NewError(ErrCodeInvalid,
			fmt.Sprintf("description must be at most %d characters", descriptionMaxLen))
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return err
	}
	return nil
}
