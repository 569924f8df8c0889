// Package service defines the backends consumed by commands.
// Commands reach storage and Google Tasks only through these interfaces.
package service

import (
	"context"
	"iter"

	"todo/internal/expense"
	"todo/internal/task"
)

// TaskStore is the local to-do collection.
type TaskStore interface {
	// Add creates a todo task and returns it with its assigned id.
	Add(description string) (task.Task, error)

	// Delete removes a task. Returns *errs.NotFoundError on a miss.
	Delete(id int) error

	// Modify replaces a task's description.
	Modify(id int, description string) (task.Task, error)

	// SetStatus changes a task's status.
	SetStatus(id int, status task.Status) (task.Task, error)

	// SetRemoteID records the Google Tasks id assigned by push.
	SetRemoteID(id int, remoteID string) error

	// List yields tasks matching the filter in insertion order.
	List(f task.Filter) iter.Seq[task.Task]
}

// ExpenseStore is the local expense database.
type ExpenseStore interface {
	Add(ctx context.Context, e expense.Expense) (int64, error)
	List(ctx context.Context, f expense.Filter) ([]expense.Expense, error)
	Delete(ctx context.Context, id int64) error
	Close() error
}

// Remote is the Google Tasks mirror written by push.
type Remote interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// InsertTask creates t in the list and returns the remote task id.
	InsertTask(ctx context.Context, listID string, t task.Task) (string, error)

	// UpdateTask overwrites the remote copy of t.
	UpdateTask(ctx context.Context, listID, remoteID string, t task.Task) error
}

// TaskList represents a Google Tasks list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}
