package help

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"github.com/maildex-tools/cli/internal/usage"
)

// execProcess and lookPath are indirect so tests can observe the handoff
// without actually exec'ing.
var (
	execProcess = unix.Exec
	lookPath    = exec.LookPath
)

// execMan hands the current process over to the man viewer for the given
// page. On success this function does not return: the viewer replaces the
// process, and any state owned by this invocation (open config handle,
// format-version state) is abandoned with it. It returns only when the
// handoff failed, and that failure is fatal.
func execMan(page string) error {
	path, err := lookPath("man")
	if err != nil {
		return &usage.Error{
			Message: fmt.Sprintf("exec man: %v", err),
			Code:    usage.ExitFailure,
		}
	}

	err = execProcess(path, []string{"man", page}, os.Environ())
	// Exec only returns on failure.
	return &usage.Error{
		Message: fmt.Sprintf("exec man: %v", err),
		Code:    usage.ExitFailure,
	}
}
