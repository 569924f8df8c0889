// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"todo/internal/config"
	"todo/internal/service"
)

// Needs declares which backends a command expects in its Env.
type Needs uint8

const (
	NeedsTasks Needs = 1 << iota
	NeedsExpenses
	NeedsRemote
)

// Has reports whether n includes x.
func (n Needs) Has(x Needs) bool { return n&x != 0 }

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Needs reports the backends the dispatcher must open before Run.
	Needs() Needs

	// New returns an empty intent for one invocation.
	New() Intent
}

// Intent is a parsed command invocation.
type Intent interface {
	// RegisterFlags registers command-specific flags on fs.
	RegisterFlags(fs *flag.FlagSet)

	// Bind validates positional arguments after flag parsing. It never
	// touches a backend and reports bad input as *UsageError.
	Bind(args []string) error

	// Run executes the intent and returns the exit code.
	Run(ctx context.Context, env *Env, out, errOut io.Writer) int
}

// Env carries configuration and the backends a command declared in Needs.
// Backends not requested are nil.
type Env struct {
	Config   *config.Config
	Log      *slog.Logger
	Now      func() time.Time
	Tasks    service.TaskStore
	Expenses service.ExpenseStore
	Remote   service.Remote
}

// UsageError reports a malformed command line.
type UsageError struct {
	// Usage is the usage line of the command, if one was identified.
	Usage string
	Msg   string
}

func (e *UsageError) Error() string { return e.Msg }

func usageErrorf(c Command, format string, args ...any) *UsageError {
	return &UsageError{Usage: c.Usage(), Msg: fmt.Sprintf(format, args...)}
}
