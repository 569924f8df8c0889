package commands

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"todo/internal/exitcode"
	"todo/internal/expense"
	"todo/internal/report"
)

func init() {
	RegisterSpend(&SpendExportCmd{})
}

// SpendExportCmd implements spend export.
type SpendExportCmd struct{}

func (c *SpendExportCmd) Name() string      { return "export" }
func (c *SpendExportCmd) Aliases() []string { return nil }
func (c *SpendExportCmd) Synopsis() string  { return "Export expenses" }
func (c *SpendExportCmd) Usage() string {
	return "spend export [--format json|csv|pdf] [--out <path>] [--category <c>] [--from YYYY-MM-DD] [--to YYYY-MM-DD]"
}
func (c *SpendExportCmd) Needs() Needs { return NeedsExpenses }
func (c *SpendExportCmd) New() Intent  { return &SpendExportIntent{} }

// SpendExportIntent renders the matching expenses to Out, or stdout when Out
// is empty or "-".
type SpendExportIntent struct {
	Format string
	Out    string
	Filter expense.Filter

	category string
	from     string
	to       string
}

func (in *SpendExportIntent) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&in.Format, "format", "csv", "")
	fs.StringVar(&in.Out, "out", "", "")
	fs.StringVar(&in.category, "category", "", "")
	fs.StringVar(&in.from, "from", "", "")
	fs.StringVar(&in.to, "to", "", "")
}

func (in *SpendExportIntent) Bind(args []string) error {
	c := &SpendExportCmd{}
	if len(args) > 0 {
		return usageErrorf(c, "unexpected argument: %s", args[0])
	}
	in.Format = strings.ToLower(strings.TrimSpace(in.Format))
	if !slices.Contains(report.Formats, in.Format) {
		return usageErrorf(c, "unknown format: %s", in.Format)
	}
	f, err := bindExpenseFilter(in.category, in.from, in.to)
	if err != nil {
		return usageErrorf(c, "%v", err)
	}
	in.Filter = f
	return nil
}

func (in *SpendExportIntent) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	rows, err := env.Expenses.List(ctx, in.Filter)
	if err != nil {
		return reportError(errOut, err)
	}

	if in.Out == "" || in.Out == "-" {
		if err := report.Write(out, in.Format, rows); err != nil {
			return reportError(errOut, err)
		}
		return exitcode.Success
	}

	// Render fully before touching the file so a failed export leaves none.
	var buf bytes.Buffer
	if err := report.Write(&buf, in.Format, rows); err != nil {
		return reportError(errOut, err)
	}
	if err := os.WriteFile(in.Out, buf.Bytes(), 0o644); err != nil {
		return reportError(errOut, err)
	}
	if !env.Config.Quiet {
		fmt.Fprintf(out, "exported %d expenses to %s\n", len(rows), in.Out)
	}
	return exitcode.Success
}
