package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/expense"
	"todo/internal/output"
)

func init() {
	RegisterSpend(&SpendListCmd{})
}

// SpendListCmd implements spend list.
type SpendListCmd struct{}

func (c *SpendListCmd) Name() string      { return "list" }
func (c *SpendListCmd) Aliases() []string { return []string{"ls"} }
func (c *SpendListCmd) Synopsis() string  { return "List expenses" }
func (c *SpendListCmd) Usage() string {
	return "spend list [--category <c>] [--from YYYY-MM-DD] [--to YYYY-MM-DD]"
}
func (c *SpendListCmd) Needs() Needs { return NeedsExpenses }
func (c *SpendListCmd) New() Intent  { return &SpendListIntent{} }

// SpendListIntent prints the expenses matching Filter.
type SpendListIntent struct {
	Filter expense.Filter

	category string
	from     string
	to       string
}

func (in *SpendListIntent) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&in.category, "category", "", "")
	fs.StringVar(&in.from, "from", "", "")
	fs.StringVar(&in.to, "to", "", "")
}

func (in *SpendListIntent) Bind(args []string) error {
	c := &SpendListCmd{}
	if len(args) > 0 {
		return usageErrorf(c, "unexpected argument: %s", args[0])
	}
	f, err := bindExpenseFilter(in.category, in.from, in.to)
	if err != nil {
		return usageErrorf(c, "%v", err)
	}
	in.Filter = f
	return nil
}

func (in *SpendListIntent) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	rows, err := env.Expenses.List(ctx, in.Filter)
	if err != nil {
		return reportError(errOut, err)
	}
	if len(rows) == 0 {
		if !env.Config.Quiet {
			fmt.Fprintln(out, "no expenses found")
		}
		return exitcode.Success
	}
	var total float64
	for _, e := range rows {
		output.FormatExpense(out, e)
		total += e.Amount
	}
	if !env.Config.Quiet {
		fmt.Fprintf(out, "total %.2f\n", total)
	}
	return exitcode.Success
}

func bindExpenseFilter(category, from, to string) (expense.Filter, error) {
	f := expense.Filter{Category: category}
	var err error
	if from != "" {
		if f.From, err = expense.ParseDate(from); err != nil {
			return expense.Filter{}, err
		}
	}
	if to != "" {
		if f.To, err = expense.ParseDate(to); err != nil {
			return expense.Filter{}, err
		}
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return expense.Filter{}, fmt.Errorf("--to %s is before --from %s", to, from)
	}
	return f, nil
}
