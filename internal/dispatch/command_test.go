package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maildex-tools/cli/internal/config"
)

func noopCommand(inv *Invocation, cfg *config.Config, args []string) error {
	return nil
}

func testRegistry() *Registry {
	return NewRegistry([]Command{
		{Name: "", Run: noopCommand, CreateConfig: true, Summary: "Default action."},
		{Name: "search", Run: noopCommand, Summary: "Search for messages."},
		{Name: "tag", Run: noopCommand, Summary: "Adjust tags."},
	})
}

func TestRegistry_FindExactMatch(t *testing.T) {
	reg := testRegistry()

	for _, name := range []string{"search", "tag"} {
		cmd, ok := reg.Find(name)
		require.True(t, ok, "expected to find %s", name)
		require.Equal(t, name, cmd.Name)
	}
}

func TestRegistry_EmptyNameResolvesDefault(t *testing.T) {
	reg := testRegistry()

	cmd, ok := reg.Find("")
	require.True(t, ok)
	require.Empty(t, cmd.Name)
	require.True(t, cmd.CreateConfig)
}

func TestRegistry_UnknownNameNotFound(t *testing.T) {
	reg := testRegistry()

	_, ok := reg.Find("nonexistent")
	require.False(t, ok)

	// No prefix matching.
	_, ok = reg.Find("sear")
	require.False(t, ok)
}

func TestRegistry_ValidateAcceptsWellFormedTable(t *testing.T) {
	require.NoError(t, testRegistry().Validate())
}

func TestRegistry_ValidateRejectsDuplicateNames(t *testing.T) {
	reg := NewRegistry([]Command{
		{Name: "", Run: noopCommand},
		{Name: "search", Run: noopCommand},
		{Name: "search", Run: noopCommand},
	})
	require.Error(t, reg.Validate())
}

func TestRegistry_ValidateRequiresExactlyOneDefault(t *testing.T) {
	reg := NewRegistry([]Command{
		{Name: "search", Run: noopCommand},
	})
	require.Error(t, reg.Validate())

	reg = NewRegistry([]Command{
		{Name: "", Run: noopCommand},
		{Name: "", Run: noopCommand},
	})
	require.Error(t, reg.Validate())
}
