package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "maildex"

// EnvConfig names the environment variable that overrides the default
// configuration file location. The --config flag wins over both.
const EnvConfig = "MAILDEX_CONFIG"

// ConfigFilePath resolves the configuration file location: explicit path if
// given, otherwise $MAILDEX_CONFIG, otherwise ~/.maildex-config.toml.
func ConfigFilePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".maildex-config.toml"), nil
}

// StateDir returns the application state directory, created on first use.
// Linux: $XDG_STATE_HOME/maildex or ~/.local/state/maildex.
func StateDir() string {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, ".local", "state")
	}

	path := filepath.Join(base, appDirName)
	_ = os.MkdirAll(path, 0700)
	return path
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), "maildex.log")
}

// DefaultMailRoot returns the default location of the indexed mail store.
func DefaultMailRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "mail"
	}
	return filepath.Join(home, "mail")
}
