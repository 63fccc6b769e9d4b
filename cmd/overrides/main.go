package main

import (
	"fmt"
	"io"
	"os"

	"github.com/randalmurphal/overrides/config"
	clierrors "github.com/randalmurphal/overrides/errors"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], config.DefaultOptions(), os.Stdout, os.Stderr))
}

func run(args []string, opts config.Options, stdout, stderr io.Writer) int {
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return clierrors.ExitCode(err)
	}
	return clierrors.ExitOK
}
