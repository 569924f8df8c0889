package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
)

func init() {
	RegisterSpend(&SpendDeleteCmd{})
}

// SpendDeleteCmd implements spend delete.
type SpendDeleteCmd struct{}

func (c *SpendDeleteCmd) Name() string      { return "delete" }
func (c *SpendDeleteCmd) Aliases() []string { return []string{"rm"} }
func (c *SpendDeleteCmd) Synopsis() string  { return "Delete an expense" }
func (c *SpendDeleteCmd) Usage() string     { return "spend delete <id>" }
func (c *SpendDeleteCmd) Needs() Needs      { return NeedsExpenses }
func (c *SpendDeleteCmd) New() Intent       { return &SpendDeleteIntent{} }

// SpendDeleteIntent removes one expense.
type SpendDeleteIntent struct {
	ID int64
}

func (in *SpendDeleteIntent) RegisterFlags(fs *flag.FlagSet) {}

func (in *SpendDeleteIntent) Bind(args []string) error {
	c := &SpendDeleteCmd{}
	if len(args) != 1 {
		return usageErrorf(c, "exactly one expense id required")
	}
	id, err := parseID("expense", args[0])
	if err != nil {
		return usageErrorf(c, "%v", err)
	}
	in.ID = id
	return nil
}

func (in *SpendDeleteIntent) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	if err := env.Expenses.Delete(ctx, in.ID); err != nil {
		return reportError(errOut, err)
	}
	if !env.Config.Quiet {
		fmt.Fprintf(out, "deleted expense %d\n", in.ID)
	}
	return exitcode.Success
}
