package googletasks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"google.golang.org/api/option"

	"todo/internal/task"
)

type recorded struct {
	Method string
	Path   string
	Body   map[string]any
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, r recorded)) (*Client, *[]recorded) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []recorded
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{Method: r.Method, Path: r.URL.Path}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&rec.Body)
		}
		mu.Lock()
		reqs = append(reqs, rec)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		handler(w, rec)
	}))
	t.Cleanup(srv.Close)

	c, err := NewWithHTTPClient(context.Background(), srv.Client(), option.WithEndpoint(srv.URL+"/"))
	if err != nil {
		t.Fatalf("NewWithHTTPClient: %v", err)
	}
	return c, &reqs
}

func TestDefaultList(t *testing.T) {
	c, reqs := newTestClient(t, func(w http.ResponseWriter, r recorded) {
		w.Write([]byte(`{"id":"real-id","title":"My Tasks"}`))
	})

	list, err := c.DefaultList(context.Background())
	if err != nil {
		t.Fatalf("DefaultList: %v", err)
	}
	if list.ID != DefaultListID || list.Title != "My Tasks" || !list.IsDefault {
		t.Errorf("unexpected list: %+v", list)
	}
	if len(*reqs) != 1 || (*reqs)[0].Method != http.MethodGet {
		t.Errorf("unexpected requests: %+v", *reqs)
	}
}

func TestInsertTask(t *testing.T) {
	c, reqs := newTestClient(t, func(w http.ResponseWriter, r recorded) {
		w.Write([]byte(`{"id":"remote-1","title":"Buy milk"}`))
	})

	id, err := c.InsertTask(context.Background(), DefaultListID, task.Task{ID: 1, Description: "Buy milk", Status: task.StatusDone})
	if err != nil {
		t.Fatalf("InsertTask: %v", err)
	}
	if id != "remote-1" {
		t.Errorf("expected remote-1, got %q", id)
	}

	got := (*reqs)[0]
	if got.Method != http.MethodPost || !strings.HasSuffix(got.Path, "/tasks") {
		t.Errorf("unexpected request %s %s", got.Method, got.Path)
	}
	if got.Body["title"] != "Buy milk" || got.Body["status"] != "completed" {
		t.Errorf("unexpected body: %v", got.Body)
	}
}

func TestUpdateTask(t *testing.T) {
	c, reqs := newTestClient(t, func(w http.ResponseWriter, r recorded) {
		w.Write([]byte(`{"id":"remote-9"}`))
	})

	err := c.UpdateTask(context.Background(), DefaultListID, "remote-9", task.Task{ID: 2, Description: "Draft", Status: task.StatusInProgress})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	got := (*reqs)[0]
	if got.Method != http.MethodPatch || !strings.HasSuffix(got.Path, "/tasks/remote-9") {
		t.Errorf("unexpected request %s %s", got.Method, got.Path)
	}
	if got.Body["status"] != "needsAction" {
		t.Errorf("expected needsAction, got %v", got.Body["status"])
	}
	if notes, _ := got.Body["notes"].(string); !strings.Contains(notes, "in-progress") {
		t.Errorf("expected status in notes, got %q", notes)
	}
	if v, ok := got.Body["completed"]; !ok || v != nil {
		t.Errorf("expected explicit null completed, got %v (present=%v)", v, ok)
	}
}

func TestWrapError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r recorded) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":401,"message":"bad token"}}`))
	})

	_, err := c.DefaultList(context.Background())
	if err == nil || !strings.Contains(err.Error(), "run: todo login") {
		t.Errorf("expected login hint, got %v", err)
	}
}
