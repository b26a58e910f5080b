// Command nif checks a single tax identification number.
//
// It prints true or false and exits 0 for a valid number, 1 for an invalid
// one and 2 on usage errors. The reasons for rejection go to stderr.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bgrewell/usage"

	"github.com/dmitrymomot/nifkit/pkg/validator"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	u := usage.NewUsage()
	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	quiet := u.AddBooleanOption("q", "quiet", false, "Print nothing, report through the exit code only", "optional", nil)
	id := u.AddArgument(1, "nif", "Tax identification number to check", "")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(exitUsage)
	}

	if *help {
		u.PrintUsage()
		os.Exit(exitValid)
	}

	if id == nil || *id == "" {
		u.PrintError(fmt.Errorf("a <nif> argument must be provided"))
		os.Exit(exitUsage)
	}

	os.Exit(check(os.Stdout, os.Stderr, *id, *quiet))
}

// check validates id and returns the exit code. Unless quiet, the verdict is
// printed to w and each failed rule to errw.
func check(w, errw io.Writer, id string, quiet bool) int {
	err := validator.Apply(
		validator.NIFPrefix("nif", id),
		validator.ValidNIF("nif", id),
	)
	if !quiet {
		fmt.Fprintln(w, err == nil)
		for _, msg := range validator.ExtractValidationErrors(err).Get("nif") {
			fmt.Fprintf(errw, "nif: %s\n", msg)
		}
	}
	if err != nil {
		return exitInvalid
	}
	return exitValid
}
