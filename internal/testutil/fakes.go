// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"todo/internal/errs"
	"todo/internal/service"
	"todo/internal/task"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// ErrNotFound is returned when a remote task does not exist.
var ErrNotFound = errors.New("not found")

// FakeRemote is an in-memory implementation of service.Remote.
type FakeRemote struct {
	mu     sync.Mutex
	tasks  map[string]task.Task // remote id -> last pushed copy
	nextID int

	// Error injection for testing
	DefaultListErr error
	InsertErr      error
	UpdateErr      error

	Inserted []string
	Updated  []string
}

// NewFakeRemote creates an empty FakeRemote.
func NewFakeRemote() *FakeRemote {
	return &FakeRemote{tasks: make(map[string]task.Task)}
}

// DefaultList implements service.Remote.
func (f *FakeRemote) DefaultList(ctx context.Context) (service.TaskList, error) {
	if f.DefaultListErr != nil {
		return service.TaskList{}, f.DefaultListErr
	}
	return service.TaskList{ID: DefaultListID, Title: "My Tasks", IsDefault: true}, nil
}

// InsertTask implements service.Remote.
func (f *FakeRemote) InsertTask(ctx context.Context, listID string, t task.Task) (string, error) {
	if f.InsertErr != nil {
		return "", f.InsertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := fmt.Sprintf("remote-%d", f.nextID)
	f.tasks[id] = t
	f.Inserted = append(f.Inserted, id)
	return id, nil
}

// UpdateTask implements service.Remote.
func (f *FakeRemote) UpdateTask(ctx context.Context, listID, remoteID string, t task.Task) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[remoteID]; !ok {
		return ErrNotFound
	}
	f.tasks[remoteID] = t
	f.Updated = append(f.Updated, remoteID)
	return nil
}

// Task returns the last copy pushed under remoteID.
func (f *FakeRemote) Task(remoteID string) (task.Task, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[remoteID]
	return t, ok
}

// FakeTaskStore is an in-memory service.TaskStore whose writes can be made
// to fail.
type FakeTaskStore struct {
	Tasks []task.Task

	// SaveErr, when set, is returned by every mutation.
	SaveErr error
}

// Add implements service.TaskStore.
func (f *FakeTaskStore) Add(description string) (task.Task, error) {
	if err := task.ValidateDescription(description); err != nil {
		return task.Task{}, err
	}
	if f.SaveErr != nil {
		return task.Task{}, f.SaveErr
	}
	id := 1
	for _, t := range f.Tasks {
		id = max(id, t.ID+1)
	}
	t := task.Task{ID: id, Description: description, Status: task.StatusTodo}
	f.Tasks = append(f.Tasks, t)
	return t, nil
}

// Delete implements service.TaskStore.
func (f *FakeTaskStore) Delete(id int) error {
	i, err := f.find(id)
	if err != nil {
		return err
	}
	f.Tasks = slices.Delete(f.Tasks, i, i+1)
	return nil
}

// Modify implements service.TaskStore.
func (f *FakeTaskStore) Modify(id int, description string) (task.Task, error) {
	if err := task.ValidateDescription(description); err != nil {
		return task.Task{}, err
	}
	i, err := f.find(id)
	if err != nil {
		return task.Task{}, err
	}
	f.Tasks[i].Description = description
	return f.Tasks[i], nil
}

// SetStatus implements service.TaskStore.
func (f *FakeTaskStore) SetStatus(id int, status task.Status) (task.Task, error) {
	i, err := f.find(id)
	if err != nil {
		return task.Task{}, err
	}
	f.Tasks[i].Status = status
	return f.Tasks[i], nil
}

// SetRemoteID implements service.TaskStore.
func (f *FakeTaskStore) SetRemoteID(id int, remoteID string) error {
	i, err := f.find(id)
	if err != nil {
		return err
	}
	f.Tasks[i].RemoteID = remoteID
	return nil
}

// List implements service.TaskStore.
func (f *FakeTaskStore) List(filter task.Filter) iter.Seq[task.Task] {
	return func(yield func(task.Task) bool) {
		for _, t := range f.Tasks {
			if filter.Match(t) && !yield(t) {
				return
			}
		}
	}
}

func (f *FakeTaskStore) find(id int) (int, error) {
	i := slices.IndexFunc(f.Tasks, func(t task.Task) bool { return t.ID == id })
	if i < 0 {
		return -1, &errs.NotFoundError{Kind: "task", ID: int64(id)}
	}
	if f.SaveErr != nil {
		return -1, f.SaveErr
	}
	return i, nil
}
