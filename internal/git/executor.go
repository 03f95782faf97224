package git

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// CommandExecutor runs prepared git commands. Tests swap in a recorder.
type CommandExecutor interface {
	// Run executes cmd and returns its stdout.
	Run(cmd *exec.Cmd) (string, error)
}

// ExecExecutor runs commands through os/exec.
type ExecExecutor struct {
	log logrus.FieldLogger
}

// NewExecExecutor creates an ExecExecutor that logs every invocation at
// debug level.
func NewExecExecutor(log logrus.FieldLogger) *ExecExecutor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ExecExecutor{log: log}
}

// Run implements CommandExecutor.
func (e *ExecExecutor) Run(cmd *exec.Cmd) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	entry := e.log.WithFields(logrus.Fields{
		"dir":  cmd.Dir,
		"args": strings.Join(cmd.Args, " "),
	})
	entry.Debug("running command")

	if err := cmd.Run(); err != nil {
		// git explains some failures, such as "nothing to commit", on stdout.
		output := strings.TrimSpace(stderr.String())
		if output == "" {
			output = strings.TrimSpace(stdout.String())
		}
		entry.WithError(err).WithField("output", output).Debug("command failed")
		return "", newGitError(cmd.Args, err, output)
	}

	return stdout.String(), nil
}
