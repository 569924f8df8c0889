package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"slices"

	"todo/internal/exitcode"
	"todo/internal/task"
)

func init() {
	Register(&PushCmd{})
}

// PushCmd implements the push command.
type PushCmd struct{}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return []string{"sync"} }
func (c *PushCmd) Synopsis() string  { return "Copy tasks to Google Tasks" }
func (c *PushCmd) Usage() string     { return "todo push [common flags]" }
func (c *PushCmd) Needs() Needs      { return NeedsTasks | NeedsRemote }
func (c *PushCmd) New() Intent       { return &PushIntent{} }

// PushIntent mirrors every local task into the default Google Tasks list.
type PushIntent struct{}

func (in *PushIntent) RegisterFlags(fs *flag.FlagSet) {}

func (in *PushIntent) Bind(args []string) error {
	if len(args) > 0 {
		return usageErrorf(&PushCmd{}, "unexpected argument: %s", args[0])
	}
	return nil
}

func (in *PushIntent) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	list, err := env.Remote.DefaultList(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}

	// Snapshot first: SetRemoteID rewrites the collection.
	local := slices.Collect(env.Tasks.List(task.All()))
	pushed := 0
	for _, t := range local {
		if t.RemoteID != "" {
			if err := env.Remote.UpdateTask(ctx, list.ID, t.RemoteID, t); err != nil {
				fmt.Fprintf(errOut, "error: task %d: %v\n", t.ID, err)
				return exitcode.BackendError
			}
			env.Log.Debug("task updated remotely", "id", t.ID, "remote_id", t.RemoteID)
			pushed++
			continue
		}
		remoteID, err := env.Remote.InsertTask(ctx, list.ID, t)
		if err != nil {
			fmt.Fprintf(errOut, "error: task %d: %v\n", t.ID, err)
			return exitcode.BackendError
		}
		if err := env.Tasks.SetRemoteID(t.ID, remoteID); err != nil {
			return reportError(errOut, err)
		}
		env.Log.Debug("task inserted remotely", "id", t.ID, "remote_id", remoteID)
		pushed++
	}

	if !env.Config.Quiet {
		fmt.Fprintf(out, "pushed %d tasks\n", pushed)
	}
	return exitcode.Success
}
