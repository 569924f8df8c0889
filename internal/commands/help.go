package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
)

func init() {
	Register(&HelpCmd{prog: "todo", text: TodoHelp})
	RegisterSpend(&HelpCmd{prog: "spend", text: SpendHelp})
}

// HelpCmd implements the help command.
type HelpCmd struct {
	prog string
	text string
}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return c.prog + " help" }
func (c *HelpCmd) Needs() Needs      { return 0 }
func (c *HelpCmd) New() Intent       { return &HelpIntent{Text: c.text} }

// HelpIntent prints Text.
type HelpIntent struct {
	Text string
}

func (in *HelpIntent) RegisterFlags(fs *flag.FlagSet) {}
func (in *HelpIntent) Bind(args []string) error       { return nil }

func (in *HelpIntent) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	fmt.Fprint(out, in.Text)
	return exitcode.Success
}

// TodoHelp is the todo usage text.
const TodoHelp = `Usage:
  todo add [common flags] <description...>
  todo delete [common flags] <id>
  todo modify [common flags] <id> <description...>
  todo list [common flags] (--all | --done | --todo | --in-progress)
  todo progress [common flags] <id> (--todo | --done | --in-progress)
  todo push [common flags]
  todo login [common flags]
  todo logout [common flags]
  todo help
  todo version

Common flags:
  --config <dir>   Override config directory
  --file <path>    Override task file (default <config>/todo_list.json)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`

// SpendHelp is the spend usage text.
const SpendHelp = `Usage:
  spend add [common flags] --amount <n> --category <c> [--sub <s>] [--date YYYY-MM-DD] [description...]
  spend list [common flags] [--category <c>] [--from YYYY-MM-DD] [--to YYYY-MM-DD]
  spend delete [common flags] <id>
  spend export [common flags] [--format json|csv|pdf] [--out <path>]
  spend help
  spend version

Common flags:
  --config <dir>   Override config directory
  --db <path>      Override database (default <config>/spend_tracker.db)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
