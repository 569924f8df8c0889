package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/service"
)

// Backends opens the stores and remotes a command asks for. A nil factory
// means the program does not offer that backend.
type Backends struct {
	Tasks    func(cfg *config.Config, log *slog.Logger) (service.TaskStore, error)
	Expenses func(ctx context.Context, cfg *config.Config) (service.ExpenseStore, error)
	Remote   func(ctx context.Context, cfg *config.Config) (service.Remote, error)
}

// Dispatcher parses a command line, opens the backends the command needs and
// runs it.
type Dispatcher struct {
	program  Program
	backends Backends
	now      func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock overrides the clock handed to commands.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// NewDispatcher creates a dispatcher for program p.
func NewDispatcher(p Program, b Backends, opts ...Option) *Dispatcher {
	d := &Dispatcher{program: p, backends: b, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(errOut, d.program.Help)
		return exitcode.UserError
	}

	inv, err := Parse(d.program, args)
	if err != nil {
		return d.usage(errOut, err)
	}

	cfg, err := config.New(inv.Overrides)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = inv.Quiet
	cfg.Debug = inv.Debug

	log := logging.New(errOut, cfg.Debug)
	log.Debug("dispatch", "program", d.program.Name, "command", inv.Command.Name(), "config", cfg.Dir)

	env := &commands.Env{Config: cfg, Log: log, Now: d.now}
	needs := inv.Command.Needs()

	if needs.Has(commands.NeedsRemote) {
		if code := d.openRemote(ctx, env, errOut); code != exitcode.Success {
			return code
		}
	}
	if needs.Has(commands.NeedsTasks) {
		if d.backends.Tasks == nil {
			fmt.Fprintf(errOut, "error: %s has no task store\n", d.program.Name)
			return exitcode.StorageError
		}
		env.Tasks, err = d.backends.Tasks(cfg, log)
		if err != nil {
			fmt.Fprintf(errOut, "error: storage error: %v\n", err)
			return exitcode.StorageError
		}
	}
	if needs.Has(commands.NeedsExpenses) {
		if d.backends.Expenses == nil {
			fmt.Fprintf(errOut, "error: %s has no expense store\n", d.program.Name)
			return exitcode.StorageError
		}
		env.Expenses, err = d.backends.Expenses(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: storage error: %v\n", err)
			return exitcode.StorageError
		}
		defer func() {
			if err := env.Expenses.Close(); err != nil {
				log.Warn("close expense store", "err", err)
			}
		}()
	}

	return inv.Intent.Run(ctx, env, out, errOut)
}

func (d *Dispatcher) usage(errOut io.Writer, err error) int {
	var ue *UsageError
	if !errors.As(err, &ue) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	fmt.Fprintf(errOut, "error: %s\n", ue.Msg)
	if ue.Usage != "" {
		fmt.Fprintf(errOut, "usage: %s\n", ue.Usage)
	} else {
		fmt.Fprintf(errOut, "run '%s help' for usage\n", d.program.Name)
	}
	return exitcode.UserError
}

// openRemote checks for credentials before building the client so a missing
// login is reported without touching the network.
func (d *Dispatcher) openRemote(ctx context.Context, env *commands.Env, errOut io.Writer) int {
	cfg := env.Config
	if !cfg.HasOAuthClient() {
		fmt.Fprintf(errOut, "error: %s not found in %s\n", config.OAuthClientFile, cfg.Dir)
		return exitcode.AuthError
	}
	if !cfg.HasToken() {
		fmt.Fprintf(errOut, "error: not logged in (run: %s login)\n", d.program.Name)
		return exitcode.AuthError
	}
	if d.backends.Remote == nil {
		fmt.Fprintf(errOut, "error: backend error: %s has no remote\n", d.program.Name)
		return exitcode.BackendError
	}
	remote, err := d.backends.Remote(ctx, cfg)
	if err != nil {
		if strings.Contains(err.Error(), "token") || strings.Contains(err.Error(), "oauth") {
			fmt.Fprintf(errOut, "error: auth error: %v\n", err)
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	env.Remote = remote
	return exitcode.Success
}
