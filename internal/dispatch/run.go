package dispatch

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/log"
	"github.com/maildex-tools/cli/internal/opts"
	"github.com/maildex-tools/cli/internal/usage"
)

// EnvResourceReport names the environment variable that, when non-empty,
// requests a resource-usage report be written to the named file at teardown.
const EnvResourceReport = "MAILDEX_RESOURCE_REPORT"

// openConfig is the config lifecycle gate, indirect so dispatch tests can
// substitute a spy handle.
var openConfig = config.Open

// Run executes one maildex invocation and returns the process exit status.
// args is the raw argument vector without the program name. Teardown (config
// release, optional resource report) runs on every path.
func Run(reg *Registry, inv *Invocation, args []string) int {
	status := exitStatus(inv, run(reg, inv, args))

	// A failed report write is reported but never overrides the status the
	// command already earned.
	if path := os.Getenv(EnvResourceReport); path != "" {
		if err := writeResourceReport(path); err != nil {
			fmt.Fprintf(inv.Stderr, "WARNING: unable to write resource report: %v\n", err)
		}
	}

	return status
}

func run(reg *Registry, inv *Invocation, args []string) error {
	var configPath string
	options := []opts.Option{
		{String: &configPath, Name: "config", Short: 'c'},
		{Inherit: inv.SharedOptions()},
	}

	index, err := opts.Parse(args, options, 0)
	if err != nil {
		return usage.ParseError(err)
	}

	var commandName string
	if index < len(args) {
		commandName = args[index]
	}

	// Shared-option side effects run before any command-specific logic, so
	// --version and --help short-circuit regardless of what follows.
	if err := inv.ProcessSharedOptions(commandName); err != nil {
		return err
	}

	command, ok := reg.Find(commandName)
	if !ok {
		return usage.UnknownCommand(commandName)
	}

	cfg, err := openConfig(configPath, command.CreateConfig)
	if err != nil {
		return usage.ConfigError(err)
	}
	defer func() {
		if cerr := cfg.Close(); cerr != nil {
			log.Warn("dispatch: release config: %v", cerr)
		}
	}()

	return command.Run(inv, cfg, args[index:])
}

// exitStatus reports err to the user and maps it to a process exit status.
func exitStatus(inv *Invocation, err error) int {
	if err == nil {
		return usage.ExitSuccess
	}

	var ue *usage.Error
	if errors.As(err, &ue) {
		if ue.Message != "" {
			fmt.Fprintln(inv.Stderr, ue.Message)
		}
		return ue.ExitCode()
	}

	fmt.Fprintf(inv.Stderr, "maildex: %v\n", err)
	return usage.ExitFailure
}

// writeResourceReport dumps process resource usage, the Go analog of the
// original allocator report written at teardown.
func writeResourceReport(path string) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	report := fmt.Sprintf(
		"maildex resource report\n"+
			"goroutines:    %d\n"+
			"heap_alloc:    %d\n"+
			"total_alloc:   %d\n"+
			"sys:           %d\n"+
			"mallocs:       %d\n"+
			"frees:         %d\n"+
			"gc_cycles:     %d\n",
		runtime.NumGoroutine(), m.HeapAlloc, m.TotalAlloc, m.Sys,
		m.Mallocs, m.Frees, m.NumGC,
	)

	return os.WriteFile(path, []byte(report), 0600)
}
