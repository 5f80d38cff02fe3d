package help

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/usage"
)

func noop(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	return nil
}

func helpTestRegistry() *dispatch.Registry {
	return dispatch.NewRegistry([]dispatch.Command{
		{Name: "", Run: noop, CreateConfig: true, Summary: "Maildex main command."},
		{Name: "search", Run: noop, Summary: "Search for messages matching the given search terms."},
		{Name: "tag", Run: noop, Summary: "Add/remove tags."},
	})
}

func helpTestInvocation() (*dispatch.Invocation, *bytes.Buffer) {
	var stdout bytes.Buffer
	inv := dispatch.NewInvocation()
	inv.Stdout = &stdout
	inv.Stderr = &bytes.Buffer{}
	return inv, &stdout
}

// stubExec captures the man handoff instead of replacing the process.
func stubExec(t *testing.T) *[]string {
	t.Helper()

	var pages []string

	origExec, origLook := execProcess, lookPath
	lookPath = func(file string) (string, error) { return "/usr/bin/" + file, nil }
	execProcess = func(argv0 string, argv []string, envv []string) error {
		pages = append(pages, argv[len(argv)-1])
		return errors.New("exec stubbed")
	}
	t.Cleanup(func() { execProcess, lookPath = origExec, origLook })

	return &pages
}

func TestFor_NoTopicPrintsBannerAndUsage(t *testing.T) {
	inv, stdout := helpTestInvocation()

	err := For(inv, helpTestRegistry(), "")
	require.NoError(t, err)

	out := stdout.String()
	require.Contains(t, out, "The maildex mail system.")
	require.Contains(t, out, "Usage: maildex --help")
	require.Contains(t, out, "search")
	require.Contains(t, out, "search-terms")
	require.Contains(t, out, "hooks")
}

func TestFor_HelpTopicIsSelfReferential(t *testing.T) {
	inv, stdout := helpTestInvocation()
	pages := stubExec(t)

	err := For(inv, helpTestRegistry(), "help")
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "The maildex help system.")
	require.Empty(t, *pages, "help's own topic must not delegate to man")
}

func TestFor_CommandDelegatesToManPage(t *testing.T) {
	inv, _ := helpTestInvocation()
	pages := stubExec(t)

	err := For(inv, helpTestRegistry(), "search")

	// The stub makes the handoff fail, which is fatal; the page it was
	// asked for is the command page, checked before topics.
	require.Error(t, err)
	require.Equal(t, []string{"maildex-search"}, *pages)
}

func TestFor_TopicDelegatesToManPage(t *testing.T) {
	inv, _ := helpTestInvocation()
	pages := stubExec(t)

	err := For(inv, helpTestRegistry(), "search-terms")
	require.Error(t, err)
	require.Equal(t, []string{"maildex-search-terms"}, *pages)
}

func TestFor_ViewerLaunchFailureIsFatal(t *testing.T) {
	inv, _ := helpTestInvocation()
	_ = stubExec(t)

	err := For(inv, helpTestRegistry(), "search")
	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ExitFailure, ue.ExitCode())
	require.Contains(t, ue.Message, "exec man")
}

func TestFor_UnknownTopic(t *testing.T) {
	inv, _ := helpTestInvocation()

	err := For(inv, helpTestRegistry(), "frobnicate")
	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ExitFailure, ue.ExitCode())
	require.Contains(t, ue.Message, "frobnicate")
}

func TestTopics_DoNotCollideWithCommands(t *testing.T) {
	reg := helpTestRegistry()
	for _, topic := range Topics() {
		_, found := reg.Find(topic.Name)
		require.False(t, found, "topic %s collides with a command", topic.Name)
	}
}
