package git

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGitOperationFailed indicates a git command returned an error.
var ErrGitOperationFailed = errors.New("git operation failed")

// GitError describes a failed git invocation together with whatever the
// command printed on stderr.
type GitError struct {
	Operation string
	Args      []string
	Err       error
	Output    string
}

func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s failed", e.Operation)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg = fmt.Sprintf("%s: %s", msg, out)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *GitError) Unwrap() error {
	return e.Err
}

func newGitError(args []string, err error, output string) *GitError {
	// args[0] is the binary; the subcommand is the first non-flag argument
	// after any "-c key=value" pairs.
	op := ""
	rest := args
	if len(rest) > 0 {
		rest = rest[1:]
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] == "-c" || rest[i] == "-C" {
			i++
			continue
		}
		op = rest[i]
		rest = rest[i+1:]
		break
	}

	return &GitError{
		Operation: op,
		Args:      rest,
		Err:       fmt.Errorf("%w: %v", ErrGitOperationFailed, err),
		Output:    output,
	}
}
