package execascmd

import (
	"os"

	"code.cloudfoundry.org/execas/capability"
	"code.cloudfoundry.org/execas/execer"
	"code.cloudfoundry.org/execas/runner"
	"code.cloudfoundry.org/execas/users"
)

type ExecasCommand struct {
	Logger LagerFlag

	Positional struct {
		Username string   `positional-arg-name:"username" description:"Target user name, resolved in the system user database."`
		Command  string   `positional-arg-name:"command" description:"Command to exec, resolved via PATH when not a path."`
		Args     []string `positional-arg-name:"args" description:"Arguments passed verbatim to the command."`
	} `positional-args:"yes"`
}

// Run wires the real collaborators and hands control to the runner. On
// success it never returns: the process image has been replaced.
func (cmd *ExecasCommand) Run() error {
	if cmd.Positional.Username == "" || cmd.Positional.Command == "" {
		return runner.ErrUsage
	}

	log, _ := cmd.Logger.Logger("execas")

	r := runner.New(
		runner.LookupFunc(func(username string) (*users.ExecUser, error) {
			return users.LookupUser("/", username)
		}),
		capability.NewManager(),
		execer.New(),
	)

	argv := append([]string{cmd.Positional.Command}, cmd.Positional.Args...)
	return r.Run(log, cmd.Positional.Username, argv, os.Environ())
}
