package tasks

import (
	"errors"
	"fmt"
	"time"
)

// Task list errors
var (
	ErrTaskNotFound    = errors.New("task id does not exist")
	ErrDeadlineFormat  = errors.New("incorrect date format, want YYYY-MM-DD")
	ErrNoUpdateFields  = errors.New("update needs a status or a priority")
	ErrUnknownPriority = errors.New("unknown priority")
	ErrUnknownStatus   = errors.New("unknown status")
	ErrEmptyTitle      = errors.New("task title is required")
	ErrLoad            = errors.New("task file missing or corrupt")
)

// Priority represents how urgent a task is
type Priority string

const (
	// Task priorities
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority validates a priority display string
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPriority, s)
}

// rank orders priorities for sorting, highest first
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Status represents the progress of a task
type Status string

const (
	// Task statuses
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// ParseStatus validates a status display string
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// deadlineLayout is the ISO date format deadlines are validated against
const deadlineLayout = "2006-01-02"

// Task represents one entry in the task list. The deadline is optional and
// kept as a validated ISO date string.
type Task struct {
	ID          int
	Title       string
	Description string
	Priority    Priority
	Status      Status

	deadline string
}

// SetDeadline validates and stores the deadline; an empty string clears it
func (t *Task) SetDeadline(value string) error {
	if value == "" {
		t.deadline = ""
		return nil
	}
	parsed, err := time.Parse(deadlineLayout, value)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrDeadlineFormat, value)
	}
	t.deadline = parsed.Format(deadlineLayout)
	return nil
}

// Deadline returns the deadline, empty when none is set
func (t *Task) Deadline() string {
	return t.deadline
}

// String renders the task for listings
func (t *Task) String() string {
	return fmt.Sprintf("%s - Priority: %s, Status: %s", t.Title, t.Priority, t.Status)
}
