// Command execas resolves a user name, restricts the process capability sets
// to CAP_SETUID and CAP_SETGID, switches to that user and replaces itself
// with the given command. It is meant to be installed setuid root.
package main

import (
	"errors"
	"fmt"
	"os"

	"code.cloudfoundry.org/execas/execascmd"
	"code.cloudfoundry.org/execas/runner"
	"github.com/jessevdk/go-flags"
)

func main() {
	cmd := &execascmd.ExecasCommand{}

	// PassAfterNonOption keeps flags belonging to the launched command (e.g.
	// `execas alice ls -la`) out of our own parsing.
	parser := flags.NewParser(cmd, flags.HelpFlag|flags.PassDoubleDash|flags.PassAfterNonOption)
	parser.NamespaceDelimiter = "-"

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(flagsErr.Message)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "execas:", err)
		if errors.Is(err, runner.ErrUsage) {
			fmt.Fprintf(os.Stderr, "usage: %s <username> <command> [args...]\n", os.Args[0])
		}
		os.Exit(1)
	}
}
