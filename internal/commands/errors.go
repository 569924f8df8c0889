package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"todo/internal/errs"
	"todo/internal/exitcode"
)

// reportError prints err and maps it to an exit code. Validation and
// not-found errors are the user's; anything else is a storage failure.
func reportError(errOut io.Writer, err error) int {
	var (
		ve *errs.ValidationError
		nf *errs.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		fmt.Fprintf(errOut, "error: %v\n", ve)
		return exitcode.UserError
	case errors.As(err, &nf):
		fmt.Fprintf(errOut, "error: %v\n", nf)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}
}

// parseID parses a positive record id.
func parseID(kind, s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s id: %s", kind, s)
	}
	return n, nil
}

// exactlyOne returns the name of the single set flag among flags.
func exactlyOne(flags []string, set map[string]bool) (string, error) {
	var chosen []string
	for _, f := range flags {
		if set[f] {
			chosen = append(chosen, f)
		}
	}
	switch len(chosen) {
	case 1:
		return chosen[0], nil
	case 0:
		return "", fmt.Errorf("one of %s is required", flagList(flags))
	default:
		return "", fmt.Errorf("only one of %s may be given", flagList(flags))
	}
}

func flagList(flags []string) string {
	out := make([]string, len(flags))
	for i, f := range flags {
		out[i] = "--" + f
	}
	return strings.Join(out, ", ")
}
