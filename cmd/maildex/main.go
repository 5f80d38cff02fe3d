package main

import (
	"os"

	"golang.org/x/term"

	"github.com/maildex-tools/cli/internal/cli"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/log"
	"github.com/maildex-tools/cli/internal/paths"
	"github.com/maildex-tools/cli/internal/ui/style"
)

func main() {
	os.Exit(run())
}

// run keeps os.Exit out of the way of deferred teardown.
func run() int {
	style.Init(term.IsTerminal(int(os.Stdout.Fd())))

	// Logging is best-effort; the tool works without it.
	_ = log.Init(paths.LogFilePath(), log.LevelDebug)
	defer func() { _ = log.Close() }()

	inv := dispatch.NewInvocation()
	reg := cli.BuildRegistry(inv)

	return dispatch.Run(reg, inv, os.Args[1:])
}
