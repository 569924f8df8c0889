package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/task"
)

func init() {
	Register(&ListCmd{})
}

// listFlags are the mutually exclusive filters, in help order.
var listFlags = []string{"all", "done", "todo", "in-progress"}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "todo list (--all | --done | --todo | --in-progress)" }
func (c *ListCmd) Needs() Needs      { return NeedsTasks }
func (c *ListCmd) New() Intent       { return &ListIntent{} }

// ListIntent prints the tasks matching Filter.
type ListIntent struct {
	Filter task.Filter

	set map[string]*bool
}

func (in *ListIntent) RegisterFlags(fs *flag.FlagSet) {
	in.set = make(map[string]*bool, len(listFlags))
	for _, name := range listFlags {
		in.set[name] = fs.Bool(name, false, "")
	}
}

func (in *ListIntent) Bind(args []string) error {
	c := &ListCmd{}
	if len(args) > 0 {
		return usageErrorf(c, "unexpected argument: %s", args[0])
	}
	chosen, err := exactlyOne(listFlags, values(in.set))
	if err != nil {
		return usageErrorf(c, "%v", err)
	}
	if chosen == "all" {
		in.Filter = task.All()
	} else {
		in.Filter = task.WithStatus(task.Status(chosen))
	}
	return nil
}

func (in *ListIntent) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	n := 0
	for t := range env.Tasks.List(in.Filter) {
		output.FormatTask(out, t)
		n++
	}
	if n == 0 && !env.Config.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	return exitcode.Success
}

func values(set map[string]*bool) map[string]bool {
	out := make(map[string]bool, len(set))
	for k, v := range set {
		out[k] = v != nil && *v
	}
	return out
}
