package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"todo/internal/errs"
	"todo/internal/task"
)

// Load reads the task collection at path.
//
// A missing document is materialized as an empty array so later reads are
// well formed. A document that is not a JSON array of tasks, or whose ids are
// not unique positive integers, yields an *errs.CorruptionError.
func Load(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := Save(path, nil); err != nil {
			return nil, fmt.Errorf("create task file: %w", err)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &errs.CorruptionError{Path: path, Err: errors.New("empty document")}
	}
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &errs.CorruptionError{Path: path, Err: err}
	}
	if tasks == nil {
		// "null" decodes without error but is not a collection.
		return nil, &errs.CorruptionError{Path: path, Err: errors.New("document is not an array")}
	}
	if err := checkIDs(tasks); err != nil {
		return nil, &errs.CorruptionError{Path: path, Err: err}
	}
	return tasks, nil
}

// Save writes tasks to path, replacing the previous document. The data goes
// to a temporary file in the same directory which is then renamed over path.
func Save(path string, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create task dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("replace task file: %w", err)
	}
	return nil
}

func checkIDs(tasks []task.Task) error {
	seen := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		if t.ID <= 0 {
			return fmt.Errorf("invalid task id %d", t.ID)
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate task id %d", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}
