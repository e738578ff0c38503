package tasks

import (
	"encoding/json"
	"fmt"
	"os"
)

// taskRecord is the flat on-disk shape of a task
type taskRecord struct {
	TaskID      int     `json:"task_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	Deadline    *string `json:"deadline"`
}

// Save writes all tasks in list order
func (l *TaskList) Save(path string) error {
	records := make([]taskRecord, 0, len(l.tasks))
	for _, task := range l.tasks {
		record := taskRecord{
			TaskID:      task.ID,
			Title:       task.Title,
			Description: task.Description,
			Priority:    string(task.Priority),
			Status:      string(task.Status),
		}
		if deadline := task.Deadline(); deadline != "" {
			record.Deadline = &deadline
		}
		records = append(records, record)
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// Load resets the list and replays the file's records, keeping their
// original ids; the id counter continues past the highest id seen. A
// missing or corrupt file leaves the list empty and returns an error
// wrapping ErrLoad.
func (l *TaskList) Load(path string) error {
	l.tasks = nil
	l.nextID = 0
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}
	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}
	for _, record := range records {
		priority, err := ParsePriority(record.Priority)
		if err != nil {
			return fmt.Errorf("load task %q: %w", record.Title, err)
		}
		status, err := ParseStatus(record.Status)
		if err != nil {
			return fmt.Errorf("load task %q: %w", record.Title, err)
		}
		task := &Task{
			ID:          record.TaskID,
			Title:       record.Title,
			Description: record.Description,
			Priority:    priority,
			Status:      status,
		}
		if record.Deadline != nil {
			if err := task.SetDeadline(*record.Deadline); err != nil {
				return fmt.Errorf("load task %q: %w", record.Title, err)
			}
		}
		l.tasks = append(l.tasks, task)
		if record.TaskID >= l.nextID {
			l.nextID = record.TaskID + 1
		}
	}
	return nil
}
