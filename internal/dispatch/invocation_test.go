package dispatch

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maildex-tools/cli/internal/opts"
	"github.com/maildex-tools/cli/internal/usage"
)

func testInvocation() (*Invocation, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	inv := NewInvocation()
	inv.Stdout = &stdout
	inv.Stderr = &stderr
	return inv, &stdout, &stderr
}

func TestProcessSharedOptions_NothingRequested(t *testing.T) {
	inv, stdout, _ := testInvocation()

	require.NoError(t, inv.ProcessSharedOptions("search"))
	require.Empty(t, stdout.String())
}

func TestProcessSharedOptions_Version(t *testing.T) {
	inv, stdout, _ := testInvocation()
	inv.Version = true

	err := inv.ProcessSharedOptions("")
	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ExitSuccess, ue.ExitCode())
	require.Contains(t, stdout.String(), "maildex "+Version)
}

func TestProcessSharedOptions_Help(t *testing.T) {
	inv, _, _ := testInvocation()
	inv.Help = true

	var routed []string
	inv.SetHelpRouter(func(topic string) error {
		routed = append(routed, topic)
		return nil
	})

	err := inv.ProcessSharedOptions("search")
	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ExitSuccess, ue.ExitCode())
	require.Equal(t, []string{"search"}, routed)
}

func TestProcessSharedOptions_VersionWinsOverHelp(t *testing.T) {
	inv, stdout, _ := testInvocation()
	inv.Version = true
	inv.Help = true

	helpCalled := false
	inv.SetHelpRouter(func(topic string) error {
		helpCalled = true
		return nil
	})

	err := inv.ProcessSharedOptions("")
	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ExitSuccess, ue.ExitCode())
	require.Contains(t, stdout.String(), "maildex")
	require.False(t, helpCalled, "help must not run when version was requested")
}

func TestProcessSharedOptions_HelpRouterFailurePropagates(t *testing.T) {
	inv, _, _ := testInvocation()
	inv.Help = true
	inv.SetHelpRouter(func(topic string) error {
		return &usage.Error{Message: "no such topic", Code: usage.ExitFailure}
	})

	err := inv.ProcessSharedOptions("bogus")
	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ExitFailure, ue.ExitCode())
}

func TestSharedOptions_BindToInvocation(t *testing.T) {
	inv, _, _ := testInvocation()

	index, err := opts.Parse(
		[]string{"--uuid", "ABC", "-v", "search"},
		[]opts.Option{{Inherit: inv.SharedOptions()}}, 0)
	require.NoError(t, err)
	require.Equal(t, 3, index)
	require.Equal(t, "ABC", inv.RequestedUUID)
	require.True(t, inv.Version)
	require.False(t, inv.Help)
}

func TestMinimalOptions_SkipsSubcommandName(t *testing.T) {
	inv, _, _ := testInvocation()

	index, err := inv.MinimalOptions("tag", []string{"tag", "--uuid=XYZ", "+flagged"})
	require.NoError(t, err)
	require.Equal(t, 2, index)
	require.Equal(t, "XYZ", inv.RequestedUUID)
}

func TestMinimalOptions_ParseFailure(t *testing.T) {
	inv, _, _ := testInvocation()

	_, err := inv.MinimalOptions("tag", []string{"tag", "--bogus"})
	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ExitFailure, ue.ExitCode())
}

func TestCheckFormatVersion_RecordsAndGates(t *testing.T) {
	inv, _, _ := testInvocation()

	require.NoError(t, inv.CheckFormatVersion(3))
	require.Equal(t, 3, inv.FormatVersion)

	err := inv.CheckFormatVersion(99)
	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ExitFormatTooNew, ue.ExitCode())
}
