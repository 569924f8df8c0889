// Package task defines the to-do record and the filters used to select it.
package task

import (
	"encoding/json"
	"strings"
	"time"

	"todo/internal/errs"
)

// Status is the progress state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseStatus converts user input into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", errs.Invalid("status", "must be one of todo, in-progress, done: "+s)
	}
	return st, nil
}

// Task is a single to-do item.
type Task struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// RemoteID is the Google Tasks id assigned by push.
	RemoteID string `json:"remote_id,omitempty"`
}

// UnmarshalJSON accepts the older "task" key for the description.
func (t *Task) UnmarshalJSON(data []byte) error {
	type plain Task
	var aux struct {
		plain
		Legacy string `json:"task"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*t = Task(aux.plain)
	if t.Description == "" {
		t.Description = aux.Legacy
	}
	return nil
}

// ValidateDescription rejects empty or whitespace-only descriptions.
func ValidateDescription(desc string) error {
	if strings.TrimSpace(desc) == "" {
		return errs.Invalid("description", "must not be empty")
	}
	return nil
}
