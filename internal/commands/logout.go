package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd implements the logout command.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string      { return "logout" }
func (c *LogoutCmd) Aliases() []string { return nil }
func (c *LogoutCmd) Synopsis() string  { return "Remove stored Google credentials" }
func (c *LogoutCmd) Usage() string     { return "todo logout [common flags]" }
func (c *LogoutCmd) Needs() Needs      { return 0 }
func (c *LogoutCmd) New() Intent       { return &logoutIntent{} }

type logoutIntent struct{}

func (in *logoutIntent) RegisterFlags(fs *flag.FlagSet) {}

func (in *logoutIntent) Bind(args []string) error {
	if len(args) > 0 {
		return usageErrorf(&LogoutCmd{}, "unexpected argument: %s", args[0])
	}
	return nil
}

func (in *logoutIntent) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	cfg := env.Config
	if !cfg.HasToken() {
		if !cfg.Quiet {
			fmt.Fprintln(out, "not logged in")
		}
		return exitcode.Success
	}
	if err := cfg.RemoveToken(); err != nil {
		fmt.Fprintf(errOut, "error: failed to remove token: %v\n", err)
		return exitcode.AuthError
	}
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
