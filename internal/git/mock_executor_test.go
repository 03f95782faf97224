package git

import (
	"os/exec"
	"strings"
)

// recordingExecutor records commands instead of running them.
type recordingExecutor struct {
	Commands []*exec.Cmd
	RunFn    func(cmd *exec.Cmd) (string, error)
}

func (m *recordingExecutor) Run(cmd *exec.Cmd) (string, error) {
	m.Commands = append(m.Commands, cmd)
	if m.RunFn != nil {
		return m.RunFn(cmd)
	}
	return "", nil
}

// argLines renders each recorded command without the binary name.
func (m *recordingExecutor) argLines() []string {
	lines := make([]string, 0, len(m.Commands))
	for _, c := range m.Commands {
		lines = append(lines, strings.Join(c.Args[1:], " "))
	}
	return lines
}

func hasSubcommand(cmd *exec.Cmd, sub ...string) bool {
	return strings.Contains(strings.Join(cmd.Args, " "), strings.Join(sub, " "))
}
