package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
)

func init() {
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return []string{"rm"} }
func (c *DeleteCmd) Synopsis() string  { return "Delete a task" }
func (c *DeleteCmd) Usage() string     { return "todo delete <id>" }
func (c *DeleteCmd) Needs() Needs      { return NeedsTasks }
func (c *DeleteCmd) New() Intent       { return &DeleteIntent{} }

// DeleteIntent removes one task.
type DeleteIntent struct {
	ID int
}

func (in *DeleteIntent) RegisterFlags(fs *flag.FlagSet) {}

func (in *DeleteIntent) Bind(args []string) error {
	c := &DeleteCmd{}
	id, err := bindTaskID(c, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return usageErrorf(c, "unexpected argument: %s", args[1])
	}
	in.ID = id
	return nil
}

func (in *DeleteIntent) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	if err := env.Tasks.Delete(in.ID); err != nil {
		return reportError(errOut, err)
	}
	if !env.Config.Quiet {
		fmt.Fprintf(out, "deleted task %d\n", in.ID)
	}
	return exitcode.Success
}

// bindTaskID parses args[0] as a task id.
func bindTaskID(c Command, args []string) (int, error) {
	if len(args) == 0 {
		return 0, usageErrorf(c, "task id required")
	}
	id, err := parseID("task", args[0])
	if err != nil {
		return 0, usageErrorf(c, "%v", err)
	}
	return int(id), nil
}
