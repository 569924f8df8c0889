package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

func init() {
	Register(&VersionCmd{prog: "todo"})
	RegisterSpend(&VersionCmd{prog: "spend"})
}

// VersionCmd implements the version command.
type VersionCmd struct {
	prog string
}

func (c *VersionCmd) Name() string      { return "version" }
func (c *VersionCmd) Aliases() []string { return nil }
func (c *VersionCmd) Synopsis() string  { return "Print version" }
func (c *VersionCmd) Usage() string     { return c.prog + " version" }
func (c *VersionCmd) Needs() Needs      { return 0 }
func (c *VersionCmd) New() Intent       { return &versionIntent{prog: c.prog} }

type versionIntent struct {
	prog string
}

func (in *versionIntent) RegisterFlags(fs *flag.FlagSet) {}
func (in *versionIntent) Bind(args []string) error       { return nil }

func (in *versionIntent) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	fmt.Fprintf(out, "%s %s\n", in.prog, Version)
	return exitcode.Success
}
