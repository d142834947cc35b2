// Package cli parses the hr command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ExitUsage is the exit status for invalid command lines.
const ExitUsage = 2

// ErrHelp is returned when -h/--help was requested and usage was printed.
var ErrHelp = flag.ErrHelp

// ArgumentError is an invalid command line. Usage has already been
// written to the parser output.
type ArgumentError struct {
	Code    int
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

// Options is the parsed command line.
type Options struct {
	// Path is the dump file to read, or to write with Export.
	Path string
	// Export dumps the host accounts to Path instead of loading Path.
	Export bool
	// Users restricts an export to these names, in this order. Empty means
	// every account.
	Users []string
	// ConfigPath overrides the configuration file location.
	ConfigPath string
	// ReportPath, when loading, also writes an HTML report there.
	ReportPath string
	// VerifyUser, when loading, checks a password read from stdin against
	// that user's stored hash.
	VerifyUser string
}

const usageHeader = `hr - dump and load local users, groups and password hashes.

Usage:
  hr [options] PATH           load PATH and list its accounts
  hr --export [options] PATH  dump the host accounts to PATH

Options:
`

// Parse processes command-line arguments (without the program name).
func Parse(args []string, output io.Writer) (*Options, error) {
	fs := flag.NewFlagSet("hr", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, usageHeader)
		fs.PrintDefaults()
	}

	var opts Options
	fs.BoolVar(&opts.Export, "export", false, "dump the host accounts to PATH instead of loading it")
	fs.StringSliceVar(&opts.Users, "user", nil, "with --export, only dump these accounts (repeatable, comma separated)")
	fs.StringVar(&opts.ConfigPath, "config", "", "configuration file (default $HR_CONFIG or /etc/hr/config.yaml)")
	fs.StringVar(&opts.ReportPath, "report", "", "when loading, also write an HTML report to this file")
	fs.StringVar(&opts.VerifyUser, "verify", "", "when loading, check the password on stdin against this user's hash")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, usageError(fs, err.Error())
	}

	switch fs.NArg() {
	case 0:
		return nil, usageError(fs, "the following arguments are required: PATH")
	case 1:
		opts.Path = fs.Arg(0)
	default:
		return nil, usageError(fs, fmt.Sprintf("unrecognized arguments: %v", fs.Args()[1:]))
	}

	if opts.Export && opts.ReportPath != "" {
		return nil, usageError(fs, "--report cannot be used with --export")
	}
	if opts.Export && opts.VerifyUser != "" {
		return nil, usageError(fs, "--verify cannot be used with --export")
	}
	if !opts.Export && len(opts.Users) > 0 {
		return nil, usageError(fs, "--user requires --export")
	}
	return &opts, nil
}

func usageError(fs *flag.FlagSet, msg string) error {
	fs.Usage()
	return &ArgumentError{Code: ExitUsage, Message: msg}
}
