package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maildex-tools/cli/internal/config"
)

func TestConfigCmd_GetSet(t *testing.T) {
	inv, cfg, out := testEnv(t)

	require.NoError(t, ConfigCmd(inv, cfg, []string{"config", "set", "user.name", "Alice"}))
	require.FileExists(t, cfg.Path(), "set persists the configuration")

	out.Reset()
	require.NoError(t, ConfigCmd(inv, cfg, []string{"config", "get", "user.name"}))
	require.Equal(t, "Alice\n", out.String())

	// Multi-valued keys print one value per line.
	require.NoError(t, ConfigCmd(inv, cfg, []string{"config", "set", "new.tags", "unread", "todo"}))
	out.Reset()
	require.NoError(t, ConfigCmd(inv, cfg, []string{"config", "get", "new.tags"}))
	require.Equal(t, "unread\ntodo\n", out.String())

	// The written file round-trips.
	reloaded, err := config.Open(cfg.Path(), false)
	require.NoError(t, err)
	require.Equal(t, "Alice", reloaded.User.Name)
	require.Equal(t, []string{"unread", "todo"}, reloaded.New.Tags)
}

func TestConfigCmd_List(t *testing.T) {
	inv, cfg, out := testEnv(t)
	cfg.User.Name = "Alice"

	require.NoError(t, ConfigCmd(inv, cfg, []string{"config", "list"}))
	text := out.String()
	require.Contains(t, text, "database.path")
	require.Contains(t, text, "user.name")
	require.Contains(t, text, "Alice")
	require.Contains(t, text, "new.tags")
}

func TestConfigCmd_Errors(t *testing.T) {
	inv, cfg, _ := testEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no subcommand", args: []string{"config"},
			want: "expected get, set, or list"},
		{name: "unknown subcommand", args: []string{"config", "frobnicate"},
			want: "unknown subcommand"},
		{name: "get without key", args: []string{"config", "get"},
			want: "exactly one key"},
		{name: "get with extra args", args: []string{"config", "get", "a", "b"},
			want: "exactly one key"},
		{name: "set without key", args: []string{"config", "set"},
			want: "expected a key"},
		{name: "unknown key", args: []string{"config", "get", "no.such.key"},
			want: "no.such.key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ConfigCmd(inv, cfg, tt.args)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}
