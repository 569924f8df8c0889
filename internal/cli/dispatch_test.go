package cli_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/store/jsonfile"
	"todo/internal/store/sqlite"
	"todo/internal/testutil"
)

var testNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

type harness struct {
	dir    string
	remote *testutil.FakeRemote
	todo   *cli.Dispatcher
	spend  *cli.Dispatcher
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("TODO_CONFIG_DIR", "")
	t.Setenv("TODO_FILE", "")
	t.Setenv("SPEND_DB", "")

	h := &harness{dir: t.TempDir(), remote: testutil.NewFakeRemote()}
	clock := func() time.Time { return testNow }
	h.todo = cli.NewDispatcher(cli.Todo, cli.Backends{
		Tasks: func(cfg *config.Config, log *slog.Logger) (service.TaskStore, error) {
			return jsonfile.Open(cfg.TaskFile, jsonfile.WithClock(clock), jsonfile.WithLogger(log))
		},
		Remote: func(ctx context.Context, cfg *config.Config) (service.Remote, error) {
			return h.remote, nil
		},
	}, cli.WithClock(clock))
	h.spend = cli.NewDispatcher(cli.Spend, cli.Backends{
		Expenses: func(ctx context.Context, cfg *config.Config) (service.ExpenseStore, error) {
			return sqlite.Open(ctx, cfg.SpendDB)
		},
	}, cli.WithClock(clock))
	return h
}

func (h *harness) run(d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	var outBuf, errBuf bytes.Buffer
	args = append(args, "--config", h.dir)
	code = d.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func (h *harness) taskFile() string { return filepath.Join(h.dir, config.TaskFile) }

func TestDispatcher_NoArgsPrintsHelp(t *testing.T) {
	h := newHarness(t)
	var stdout, stderr bytes.Buffer
	code := h.todo.Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no stdout, got %q", stdout.String())
	}
	if stderr.String() != commands.TodoHelp {
		t.Errorf("expected help on stderr, got %q", stderr.String())
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	h := newHarness(t)
	var stdout, stderr bytes.Buffer
	code := h.todo.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\nrun 'todo help' for usage\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_UsageLine(t *testing.T) {
	h := newHarness(t)
	_, stderr, code := h.run(h.todo, "list")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: one of --all, --done, --todo, --in-progress is required\n" +
		"usage: todo list (--all | --done | --todo | --in-progress)\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
	if _, err := os.Stat(h.taskFile()); !os.IsNotExist(err) {
		t.Error("a usage error should not touch the task file")
	}
}

func TestDispatcher_HelpAndVersion(t *testing.T) {
	h := newHarness(t)

	stdout, stderr, code := h.run(h.todo, "help")
	if code != exitcode.Success || stderr != "" || stdout != commands.TodoHelp {
		t.Errorf("unexpected help result code=%d stderr=%q", code, stderr)
	}
	stdout, _, code = h.run(h.spend, "version")
	if code != exitcode.Success || stdout != "spend 0.1.0\n" {
		t.Errorf("unexpected version result %q (code %d)", stdout, code)
	}
}

// The concrete walk-throughs from the store's documentation, run end to end.
func TestDispatcher_Scenarios(t *testing.T) {
	t.Run("add to empty store", func(t *testing.T) {
		h := newHarness(t)
		stdout, _, code := h.run(h.todo, "add", "Buy milk")
		if code != exitcode.Success || stdout != "added task 1\n" {
			t.Fatalf("unexpected result %q (code %d)", stdout, code)
		}
		stdout, _, _ = h.run(h.todo, "list", "--all")
		if stdout != "   1  todo         Buy milk\n" {
			t.Errorf("unexpected list %q", stdout)
		}
	})

	t.Run("deleted ids are not reissued", func(t *testing.T) {
		h := newHarness(t)
		h.run(h.todo, "add", "one")
		h.run(h.todo, "add", "two")
		if _, _, code := h.run(h.todo, "delete", "1"); code != exitcode.Success {
			t.Fatalf("delete failed: %d", code)
		}
		stdout, _, _ := h.run(h.todo, "add", "New task")
		if stdout != "added task 3\n" {
			t.Errorf("expected id 3, got %q", stdout)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		h := newHarness(t)
		h.run(h.todo, "add", "X")
		stdout, _, code := h.run(h.todo, "progress", "1", "--done")
		if code != exitcode.Success || stdout != "task 1 marked done\n" {
			t.Fatalf("unexpected result %q (code %d)", stdout, code)
		}
		stdout, _, _ = h.run(h.todo, "list", "--done")
		if stdout != "   1  done         X\n" {
			t.Errorf("unexpected list %q", stdout)
		}
	})

	t.Run("modify missing id", func(t *testing.T) {
		h := newHarness(t)
		h.run(h.todo, "add", "keep")
		before, _ := os.ReadFile(h.taskFile())

		_, stderr, code := h.run(h.todo, "modify", "5", "Y")
		if code != exitcode.UserError || stderr != "error: task not found: 5\n" {
			t.Errorf("unexpected result %q (code %d)", stderr, code)
		}
		after, _ := os.ReadFile(h.taskFile())
		if !bytes.Equal(before, after) {
			t.Error("task file changed")
		}
	})

	t.Run("corrupt document", func(t *testing.T) {
		h := newHarness(t)
		if err := os.WriteFile(h.taskFile(), []byte("not json {"), 0o644); err != nil {
			t.Fatal(err)
		}
		stdout, stderr, code := h.run(h.todo, "list", "--all")
		if code != exitcode.Success {
			t.Fatalf("expected success, got %d (%s)", code, stderr)
		}
		if stdout != "no tasks found\n" {
			t.Errorf("expected empty list, got %q", stdout)
		}
		if !strings.Contains(stderr, "level=WARN") || !strings.Contains(stderr, ".corrupt-") {
			t.Errorf("expected warning naming the backup, got %q", stderr)
		}
		backups, _ := filepath.Glob(h.taskFile() + ".corrupt-*")
		if len(backups) != 1 {
			t.Fatalf("expected one backup, got %v", backups)
		}
		if data, _ := os.ReadFile(backups[0]); string(data) != "not json {" {
			t.Errorf("backup content mismatch: %q", data)
		}
	})
}

func TestDispatcher_FileFlagAndEnv(t *testing.T) {
	h := newHarness(t)
	custom := filepath.Join(t.TempDir(), "elsewhere.json")

	if _, _, code := h.run(h.todo, "add", "--file", custom, "flagged"); code != exitcode.Success {
		t.Fatalf("add failed: %d", code)
	}
	if _, err := os.Stat(custom); err != nil {
		t.Errorf("expected task file at %s: %v", custom, err)
	}

	fromEnv := filepath.Join(t.TempDir(), "env.json")
	t.Setenv("TODO_FILE", fromEnv)
	if _, _, code := h.run(h.todo, "add", "from env"); code != exitcode.Success {
		t.Fatalf("add failed: %d", code)
	}
	if _, err := os.Stat(fromEnv); err != nil {
		t.Errorf("expected task file at %s: %v", fromEnv, err)
	}
}

func TestDispatcher_Quiet(t *testing.T) {
	h := newHarness(t)
	stdout, stderr, code := h.run(h.todo, "add", "--quiet", "silent")
	if code != exitcode.Success || stdout != "" || stderr != "" {
		t.Errorf("expected silent success, got stdout=%q stderr=%q code=%d", stdout, stderr, code)
	}
}

func TestDispatcher_DebugLogs(t *testing.T) {
	h := newHarness(t)
	_, stderr, _ := h.run(h.todo, "list", "--all", "--debug")
	if !strings.Contains(stderr, "level=DEBUG") || !strings.Contains(stderr, "command=list") {
		t.Errorf("expected debug trace, got %q", stderr)
	}
}

func TestDispatcher_StorageError(t *testing.T) {
	h := newHarness(t)
	// A directory where the task file should be cannot be read as a document.
	if err := os.MkdirAll(h.taskFile(), 0o755); err != nil {
		t.Fatal(err)
	}
	_, stderr, code := h.run(h.todo, "list", "--all")
	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if !strings.HasPrefix(stderr, "error: storage error: ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_PushAuthPreflight(t *testing.T) {
	h := newHarness(t)

	_, stderr, code := h.run(h.todo, "push")
	if code != exitcode.AuthError || !strings.Contains(stderr, "oauth_client.json not found") {
		t.Errorf("expected missing client error, got %q (code %d)", stderr, code)
	}

	if err := os.WriteFile(filepath.Join(h.dir, config.OAuthClientFile), []byte(`{}`), 0o600); err != nil {
		t.Fatal(err)
	}
	_, stderr, code = h.run(h.todo, "push")
	if code != exitcode.AuthError || stderr != "error: not logged in (run: todo login)\n" {
		t.Errorf("expected not logged in, got %q (code %d)", stderr, code)
	}

	if err := os.WriteFile(filepath.Join(h.dir, config.TokenFile), []byte(`{}`), 0o600); err != nil {
		t.Fatal(err)
	}
	h.run(h.todo, "add", "sync me")
	stdout, stderr, code := h.run(h.todo, "push")
	if code != exitcode.Success || stdout != "pushed 1 tasks\n" {
		t.Errorf("unexpected push result %q %q (code %d)", stdout, stderr, code)
	}
}

func TestDispatcher_RemoteFactoryErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{errors.New("invalid token.json: unexpected EOF"), exitcode.AuthError},
		{errors.New("failed to create tasks service: dial"), exitcode.BackendError},
	}
	for _, tc := range cases {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, config.OAuthClientFile), []byte(`{}`), 0o600)
		os.WriteFile(filepath.Join(dir, config.TokenFile), []byte(`{}`), 0o600)
		d := cli.NewDispatcher(cli.Todo, cli.Backends{
			Remote: func(ctx context.Context, cfg *config.Config) (service.Remote, error) {
				return nil, tc.err
			},
		})
		var stdout, stderr bytes.Buffer
		code := d.Run(context.Background(), []string{"push", "--config", dir}, &stdout, &stderr)
		if code != tc.code {
			t.Errorf("%v: expected exit code %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestDispatcher_Spend(t *testing.T) {
	h := newHarness(t)

	stdout, stderr, code := h.run(h.spend, "add", "coffee", "--amount", "3.5", "--category", "food")
	if code != exitcode.Success || stdout != "added expense 1\n" {
		t.Fatalf("unexpected add result %q %q (code %d)", stdout, stderr, code)
	}
	stdout, _, _ = h.run(h.spend, "list")
	want := "   1  2026-10-19        3.50  food  coffee\ntotal 3.50\n"
	if stdout != want {
		t.Errorf("expected %q, got %q", want, stdout)
	}
	if _, err := os.Stat(filepath.Join(h.dir, config.SpendDBFile)); err != nil {
		t.Errorf("expected database in config dir: %v", err)
	}

	_, stderr, code = h.run(h.spend, "add", "--category", "food")
	if code != exitcode.UserError || !strings.HasPrefix(stderr, "error: --amount is required\nusage: spend add") {
		t.Errorf("unexpected usage error %q (code %d)", stderr, code)
	}
}
