package tasks

import (
	"fmt"
	"sort"
	"strings"
)

// TaskSpec describes a task to be added. Priority defaults to low and
// status to pending when left empty.
type TaskSpec struct {
	Title       string
	Description string
	Priority    Priority
	Status      Status
	Deadline    string
}

// TaskUpdate lists the optional fields of a task update; at least one must
// be present
type TaskUpdate struct {
	Status   *Status
	Priority *Priority
}

// SortKey selects the ordering of a listing
type SortKey int

const (
	// Listing orders
	SortNone SortKey = iota
	SortByPriority
	SortByDeadline
)

// ListOptions filters and orders a listing
type ListOptions struct {
	Status *Status
	SortBy SortKey
}

// TaskList manages tasks. It owns the id counter; ids start at 0 and
// continue past the highest id seen when a file is loaded.
type TaskList struct {
	tasks  []*Task
	nextID int
}

// NewTaskList creates an empty task list
func NewTaskList() *TaskList {
	return &TaskList{}
}

// Add validates the spec, assigns the next id and appends the task
func (l *TaskList) Add(spec TaskSpec) (*Task, error) {
	if strings.TrimSpace(spec.Title) == "" {
		return nil, ErrEmptyTitle
	}
	task := &Task{
		ID:          l.nextID,
		Title:       spec.Title,
		Description: spec.Description,
		Priority:    spec.Priority,
		Status:      spec.Status,
	}
	if task.Priority == "" {
		task.Priority = PriorityLow
	}
	if task.Status == "" {
		task.Status = StatusPending
	}
	if _, err := ParsePriority(string(task.Priority)); err != nil {
		return nil, err
	}
	if _, err := ParseStatus(string(task.Status)); err != nil {
		return nil, err
	}
	if err := task.SetDeadline(spec.Deadline); err != nil {
		return nil, err
	}
	l.nextID++
	l.tasks = append(l.tasks, task)
	return task, nil
}

// Find retrieves a task by id
func (l *TaskList) Find(id int) (*Task, error) {
	for _, task := range l.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
}

// Remove deletes a task by id
func (l *TaskList) Remove(id int) error {
	task, err := l.Find(id)
	if err != nil {
		return err
	}
	for i, t := range l.tasks {
		if t == task {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			break
		}
	}
	return nil
}

// Update applies a status and/or priority change to a task
func (l *TaskList) Update(id int, update TaskUpdate) error {
	if update.Status == nil && update.Priority == nil {
		return ErrNoUpdateFields
	}
	task, err := l.Find(id)
	if err != nil {
		return err
	}
	if update.Status != nil {
		if _, err := ParseStatus(string(*update.Status)); err != nil {
			return err
		}
		task.Status = *update.Status
	}
	if update.Priority != nil {
		if _, err := ParsePriority(string(*update.Priority)); err != nil {
			return err
		}
		task.Priority = *update.Priority
	}
	return nil
}

// List returns tasks matching the options. Sorting is stable, so equal keys
// keep insertion order; tasks without a deadline sort last.
func (l *TaskList) List(opts ListOptions) []*Task {
	var matches []*Task
	for _, task := range l.tasks {
		if opts.Status != nil && task.Status != *opts.Status {
			continue
		}
		matches = append(matches, task)
	}
	switch opts.SortBy {
	case SortByPriority:
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Priority.rank() < matches[j].Priority.rank()
		})
	case SortByDeadline:
		sort.SliceStable(matches, func(i, j int) bool {
			di, dj := matches[i].Deadline(), matches[j].Deadline()
			if di == "" || dj == "" {
				return dj == "" && di != ""
			}
			return di < dj
		})
	}
	return matches
}

// Tasks returns all tasks in insertion order
func (l *TaskList) Tasks() []*Task {
	return l.tasks
}

// FormatTasks renders tasks one per line for display
func FormatTasks(tasks []*Task) string {
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, "- "+task.String())
	}
	return strings.Join(lines, "\n")
}

// String renders the whole list
func (l *TaskList) String() string {
	return "Task List:\n" + FormatTasks(l.tasks)
}
