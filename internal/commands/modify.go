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
	Register(&ModifyCmd{})
}

// ModifyCmd implements the modify command.
type ModifyCmd struct{}

func (c *ModifyCmd) Name() string      { return "modify" }
func (c *ModifyCmd) Aliases() []string { return nil }
func (c *ModifyCmd) Synopsis() string  { return "Change a task's description" }
func (c *ModifyCmd) Usage() string     { return "todo modify <id> <description...>" }
func (c *ModifyCmd) Needs() Needs      { return NeedsTasks }
func (c *ModifyCmd) New() Intent       { return &ModifyIntent{} }

// ModifyIntent replaces a task's description.
type ModifyIntent struct {
	ID          int
	Description string
}

func (in *ModifyIntent) RegisterFlags(fs *flag.FlagSet) {}

func (in *ModifyIntent) Bind(args []string) error {
	c := &ModifyCmd{}
	id, err := bindTaskID(c, args)
	if err != nil {
		return err
	}
	desc := strings.Join(args[1:], " ")
	if strings.TrimSpace(desc) == "" {
		return usageErrorf(c, "description required")
	}
	in.ID, in.Description = id, desc
	return nil
}

func (in *ModifyIntent) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	if _, err := env.Tasks.Modify(in.ID, in.Description); err != nil {
		return reportError(errOut, err)
	}
	if !env.Config.Quiet {
		fmt.Fprintf(out, "updated task %d\n", in.ID)
	}
	return exitcode.Success
}
