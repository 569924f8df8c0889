package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"todo/internal/exitcode"
	"todo/internal/expense"
)

func init() {
	RegisterSpend(&SpendAddCmd{})
}

// SpendAddCmd implements spend add.
type SpendAddCmd struct{}

func (c *SpendAddCmd) Name() string      { return "add" }
func (c *SpendAddCmd) Aliases() []string { return nil }
func (c *SpendAddCmd) Synopsis() string  { return "Record an expense" }
func (c *SpendAddCmd) Usage() string {
	return "spend add --amount <n> --category <c> [--sub <s>] [--date YYYY-MM-DD] [description...]"
}
func (c *SpendAddCmd) Needs() Needs { return NeedsExpenses }
func (c *SpendAddCmd) New() Intent  { return &SpendAddIntent{} }

// SpendAddIntent records one expense. A zero Date means today.
type SpendAddIntent struct {
	Expense expense.Expense

	amount   string
	category string
	sub      string
	date     string
}

func (in *SpendAddIntent) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&in.amount, "amount", "", "")
	fs.StringVar(&in.category, "category", "", "")
	fs.StringVar(&in.sub, "sub", "", "")
	fs.StringVar(&in.date, "date", "", "")
}

func (in *SpendAddIntent) Bind(args []string) error {
	c := &SpendAddCmd{}
	if in.amount == "" {
		return usageErrorf(c, "--amount is required")
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(in.amount), 64)
	if err != nil {
		return usageErrorf(c, "invalid amount: %s", in.amount)
	}
	if strings.TrimSpace(in.category) == "" {
		return usageErrorf(c, "--category is required")
	}
	var date time.Time
	if in.date != "" {
		if date, err = expense.ParseDate(in.date); err != nil {
			return usageErrorf(c, "%v", err)
		}
	}
	in.Expense = expense.Expense{
		Description: strings.Join(args, " "),
		Amount:      amount,
		Category:    in.category,
		SubCategory: in.sub,
		Date:        date,
	}
	return nil
}

func (in *SpendAddIntent) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	e := in.Expense
	if e.Date.IsZero() {
		e.Date = env.Now()
	}
	id, err := env.Expenses.Add(ctx, e)
	if err != nil {
		return reportError(errOut, err)
	}
	if !env.Config.Quiet {
		fmt.Fprintf(out, "added expense %d\n", id)
	}
	return exitcode.Success
}
