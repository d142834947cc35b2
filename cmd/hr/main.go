package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hnrobert/hr/internal/accounts"
	"github.com/hnrobert/hr/internal/cli"
	"github.com/hnrobert/hr/internal/config"
	"github.com/hnrobert/hr/internal/hostfs"
	"github.com/hnrobert/hr/internal/inventory"
	"github.com/hnrobert/hr/internal/logger"
	"github.com/hnrobert/hr/internal/pwhash"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one hr invocation and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := cli.Parse(args, stderr)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			return 0
		}
		var ae *cli.ArgumentError
		if errors.As(err, &ae) {
			fmt.Fprintf(stderr, "hr: error: %s\n", ae.Message)
			return ae.Code
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger.SetOutput(stderr)
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		logger.Error("%v", err)
		return 1
	}
	if err := logger.Init(cfg.LogDir); err != nil {
		logger.Warn("file logging disabled: %v", err)
	}
	defer logger.Close()

	if opts.Export {
		err = export(opts, cfg)
	} else {
		err = load(opts, stdin, stdout)
	}
	if err != nil {
		logger.Error("%v", err)
		return 1
	}
	return 0
}

func export(opts *cli.Options, cfg config.Config) error {
	dir, err := accounts.NewFileDirectory(cfg.HostRoot)
	if err != nil {
		return err
	}
	// Already validated by config.Load.
	mode, _ := cfg.FileMode()
	d := &inventory.Dumper{Dir: dir, Mode: mode}

	if len(opts.Users) > 0 {
		err = d.Dump(opts.Path, opts.Users)
	} else {
		err = d.DumpAll(opts.Path)
	}
	if err != nil {
		return err
	}
	logger.Info("dumped accounts from %s to %s", dir.PasswdPath, opts.Path)
	return nil
}

func load(opts *cli.Options, stdin io.Reader, stdout io.Writer) error {
	records, err := inventory.Load(opts.Path)
	if err != nil {
		return err
	}
	logger.Info("loaded %d accounts from %s", len(records), opts.Path)

	if err := inventory.WriteListing(stdout, records); err != nil {
		return err
	}

	if opts.ReportPath != "" {
		var buf bytes.Buffer
		if err := inventory.WriteReport(&buf, "Accounts in "+filepath.Base(opts.Path), records); err != nil {
			return err
		}
		if err := hostfs.WriteFileAtomic(opts.ReportPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("wrote report to %s", opts.ReportPath)
	}

	if opts.VerifyUser != "" {
		return verify(records, opts.VerifyUser, stdin)
	}
	return nil
}

func verify(records []inventory.UserRecord, user string, stdin io.Reader) error {
	rec, ok := inventory.Find(records, user)
	if !ok {
		return fmt.Errorf("%w: %s", accounts.ErrAccountNotFound, user)
	}
	scheme := pwhash.Scheme(rec.Password)
	if rec.Password != "" && !pwhash.Locked(rec.Password) && !pwhash.Supported(rec.Password) {
		return fmt.Errorf("verify %s: %w (%s)", user, pwhash.ErrUnsupportedHash, scheme)
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")

	if err := pwhash.Verify(rec.Password, password); err != nil {
		return fmt.Errorf("verify %s: %w", user, err)
	}
	logger.Info("password for %s matches (%s)", user, scheme)
	return nil
}
