// Package cli turns a command line into an intent and runs it.
package cli

import (
	"errors"
	"flag"
	"io"
	"strings"

	"todo/internal/commands"
	"todo/internal/config"
)

// UsageError reports a malformed command line.
type UsageError = commands.UsageError

// Program describes one binary: its name, help text, commands and the flag
// that overrides its data file.
type Program struct {
	Name     string
	Help     string
	Registry *commands.Registry
	DataFlag func(fs *flag.FlagSet, o *config.Overrides)
}

// Todo is the task list program.
var Todo = Program{
	Name:     "todo",
	Help:     commands.TodoHelp,
	Registry: commands.DefaultRegistry,
	DataFlag: func(fs *flag.FlagSet, o *config.Overrides) {
		fs.StringVar(&o.TaskFile, "file", "", "")
	},
}

// Spend is the expense tracker program.
var Spend = Program{
	Name:     "spend",
	Help:     commands.SpendHelp,
	Registry: commands.SpendRegistry,
	DataFlag: func(fs *flag.FlagSet, o *config.Overrides) {
		fs.StringVar(&o.SpendDB, "db", "", "")
	},
}

// Invocation is a fully parsed command line.
type Invocation struct {
	Command   commands.Command
	Intent    commands.Intent
	Overrides config.Overrides
	Quiet     bool
	Debug     bool
}

// Parse maps args (without the program name) to an Invocation. It reads no
// files and opens no backends. Malformed input yields a *UsageError.
func Parse(p Program, args []string) (*Invocation, error) {
	if len(args) == 0 {
		return nil, &UsageError{Msg: "no command given"}
	}

	name := args[0]
	if name == "-h" || name == "--help" {
		return p.helpInvocation(p.Help), nil
	}
	if strings.HasPrefix(name, "-") {
		return nil, &UsageError{Msg: "unknown command: " + name}
	}
	cmd, ok := p.Registry.Find(name)
	if !ok {
		return nil, &UsageError{Msg: "unknown command: " + name}
	}

	inv := &Invocation{Command: cmd, Intent: cmd.New()}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&inv.Overrides.ConfigDir, "config", "", "")
	fs.BoolVar(&inv.Quiet, "quiet", false, "")
	fs.BoolVar(&inv.Debug, "debug", false, "")
	if p.DataFlag != nil {
		p.DataFlag(fs, &inv.Overrides)
	}
	inv.Intent.RegisterFlags(fs)

	positional, err := parseInterspersed(fs, args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return p.helpInvocation("Usage: " + cmd.Usage() + "\n"), nil
		}
		return nil, &UsageError{Usage: cmd.Usage(), Msg: flagError(err)}
	}

	if err := inv.Intent.Bind(positional); err != nil {
		return nil, err
	}
	return inv, nil
}

func (p Program) helpInvocation(text string) *Invocation {
	cmd, _ := p.Registry.Find("help")
	return &Invocation{Command: cmd, Intent: &commands.HelpIntent{Text: text}}
}

// parseInterspersed lets flags follow positional arguments, so that
// "progress 3 --done" parses like "progress --done 3". Everything after
// "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) < len(args) && args[len(args)-len(rest)-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// flagError rewrites the flag package's messages into the CLI's wording.
func flagError(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, "flag provided but not defined: "); ok {
		return "unknown flag: " + rest
	}
	return msg
}
