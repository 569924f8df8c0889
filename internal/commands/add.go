package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/exitcode"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "todo add <description...>" }
func (c *AddCmd) Needs() Needs      { return NeedsTasks }
func (c *AddCmd) New() Intent       { return &AddIntent{} }

// AddIntent adds one task.
type AddIntent struct {
	Description string
}

func (in *AddIntent) RegisterFlags(fs *flag.FlagSet) {}

func (in *AddIntent) Bind(args []string) error {
	desc := strings.Join(args, " ")
	if strings.TrimSpace(desc) == "" {
		return usageErrorf(&AddCmd{}, "description required")
	}
	in.Description = desc
	return nil
}

func (in *AddIntent) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	t, err := env.Tasks.Add(in.Description)
	if err != nil {
		return reportError(errOut, err)
	}
	env.Log.Debug("task added", "id", t.ID)
	if !env.Config.Quiet {
		fmt.Fprintf(out, "added task %d\n", t.ID)
	}
	return exitcode.Success
}
