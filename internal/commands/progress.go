package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/task"
)

func init() {
	Register(&ProgressCmd{})
}

// progressFlags map one-to-one onto task statuses.
var progressFlags = []string{"todo", "in-progress", "done"}

// ProgressCmd implements the progress command.
type ProgressCmd struct{}

func (c *ProgressCmd) Name() string      { return "progress" }
func (c *ProgressCmd) Aliases() []string { return nil }
func (c *ProgressCmd) Synopsis() string  { return "Set a task's status" }
func (c *ProgressCmd) Usage() string     { return "todo progress <id> (--todo | --done | --in-progress)" }
func (c *ProgressCmd) Needs() Needs      { return NeedsTasks }
func (c *ProgressCmd) New() Intent       { return &ProgressIntent{} }

// ProgressIntent moves a task to Status.
type ProgressIntent struct {
	ID     int
	Status task.Status

	set map[string]*bool
}

func (in *ProgressIntent) RegisterFlags(fs *flag.FlagSet) {
	in.set = make(map[string]*bool, len(progressFlags))
	for _, name := range progressFlags {
		in.set[name] = fs.Bool(name, false, "")
	}
}

func (in *ProgressIntent) Bind(args []string) error {
	c := &ProgressCmd{}
	id, err := bindTaskID(c, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return usageErrorf(c, "unexpected argument: %s", args[1])
	}
	chosen, err := exactlyOne(progressFlags, values(in.set))
	if err != nil {
		return usageErrorf(c, "%v", err)
	}
	in.ID, in.Status = id, task.Status(chosen)
	return nil
}

func (in *ProgressIntent) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	t, err := env.Tasks.SetStatus(in.ID, in.Status)
	if err != nil {
		return reportError(errOut, err)
	}
	if !env.Config.Quiet {
		fmt.Fprintf(out, "task %d marked %s\n", t.ID, t.Status)
	}
	return exitcode.Success
}
