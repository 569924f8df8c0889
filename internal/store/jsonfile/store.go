// Package jsonfile implements the task store on top of a single JSON document.
//
// Every mutation rewrites the whole document. There is no locking: two
// processes writing the same file race and the last writer wins.
package jsonfile

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"todo/internal/errs"
	"todo/internal/task"
)

// Store is a task collection backed by one JSON document.
type Store struct {
	path  string
	tasks []task.Task
	now   func() time.Time
	log   *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for recovery warnings.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// Open loads the document at path. A missing document is created empty.
// An unreadable document is copied aside, reported as a warning, and the
// store starts empty; the next mutation overwrites it.
func Open(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("task file path is required")
	}
	s := &Store{
		path: path,
		now:  func() time.Time { return time.Now().UTC() },
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	tasks, err := Load(path)
	if err != nil {
		var corrupt *errs.CorruptionError
		if !errors.As(err, &corrupt) {
			return nil, err
		}
		backup, berr := backupCorrupt(path, s.now())
		if berr != nil {
			s.log.Warn("could not back up unreadable task file", "path", path, "err", berr)
		}
		corrupt.Backup = backup
		s.log.Warn("task file unreadable, starting with an empty list",
			"path", path, "backup", backup, "err", corrupt.Err)
		tasks = nil
	}
	s.tasks = tasks
	s.log.Debug("task store opened", "path", path, "tasks", len(tasks))
	return s, nil
}

// Path returns the backing document path.
func (s *Store) Path() string { return s.path }

// Add appends a new todo task and persists the collection.
func (s *Store) Add(description string) (task.Task, error) {
	if err := task.ValidateDescription(description); err != nil {
		return task.Task{}, err
	}
	now := s.now()
	t := task.Task{
		ID:          nextID(s.tasks),
		Description: description,
		Status:      task.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	next := append(slices.Clip(s.tasks), t)
	if err := Save(s.path, next); err != nil {
		return task.Task{}, err
	}
	s.tasks = next
	return t, nil
}

// Delete removes the task with the given id.
func (s *Store) Delete(id int) error {
	i := s.index(id)
	if i < 0 {
		return notFound(id)
	}
	next := slices.Delete(slices.Clone(s.tasks), i, i+1)
	if err := Save(s.path, next); err != nil {
		return err
	}
	s.tasks = next
	return nil
}

// Modify replaces the description of a task.
func (s *Store) Modify(id int, description string) (task.Task, error) {
	if err := task.ValidateDescription(description); err != nil {
		return task.Task{}, err
	}
	return s.update(id, func(t *task.Task) {
		t.Description = description
		t.UpdatedAt = s.now()
	})
}

// SetStatus moves a task to status. Any status may move to any other.
func (s *Store) SetStatus(id int, status task.Status) (task.Task, error) {
	if !status.Valid() {
		return task.Task{}, errs.Invalid("status", "must be one of todo, in-progress, done: "+string(status))
	}
	return s.update(id, func(t *task.Task) {
		t.Status = status
		t.UpdatedAt = s.now()
	})
}

// SetRemoteID records the Google Tasks id for a task. It does not touch
// UpdatedAt.
func (s *Store) SetRemoteID(id int, remoteID string) error {
	_, err := s.update(id, func(t *task.Task) { t.RemoteID = remoteID })
	return err
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (task.Task, error) {
	i := s.index(id)
	if i < 0 {
		return task.Task{}, notFound(id)
	}
	return s.tasks[i], nil
}

// List yields the tasks matching f in insertion order. The sequence reads the
// collection as it is when iteration starts and can be ranged over again.
func (s *Store) List(f task.Filter) iter.Seq[task.Task] {
	return func(yield func(task.Task) bool) {
		for _, t := range s.tasks {
			if !f.Match(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int { return len(s.tasks) }

func (s *Store) update(id int, mutate func(*task.Task)) (task.Task, error) {
	i := s.index(id)
	if i < 0 {
		return task.Task{}, notFound(id)
	}
	next := slices.Clone(s.tasks)
	mutate(&next[i])
	if err := Save(s.path, next); err != nil {
		return task.Task{}, err
	}
	s.tasks = next
	return next[i], nil
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool { return t.ID == id })
}

// nextID derives the id from the highest id present, so ids freed by Delete
// are not handed out again while a higher id survives.
func nextID(tasks []task.Task) int {
	hi := 0
	for _, t := range tasks {
		if t.ID > hi {
			hi = t.ID
		}
	}
	return hi + 1
}

func notFound(id int) error {
	return &errs.NotFoundError{Kind: "task", ID: int64(id)}
}

func backupCorrupt(path string, now time.Time) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backup := fmt.Sprintf("%s.corrupt-%s", path, now.UTC().Format("20060102T150405Z"))
	if err := os.WriteFile(filepath.Clean(backup), data, 0o644); err != nil {
		return "", err
	}
	return backup, nil
}
