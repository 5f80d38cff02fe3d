package actions

import (
	"fmt"
	"strings"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/mail"
	"github.com/maildex-tools/cli/internal/opts"
	"github.com/maildex-tools/cli/internal/store"
	"github.com/maildex-tools/cli/internal/usage"
)

func replySubject(subject string) string {
	if strings.HasPrefix(strings.ToLower(subject), "re:") {
		return subject
	}
	return "Re: " + subject
}

// ownAddress reports whether addr belongs to the configured user.
func ownAddress(cfg *config.Config, addr string) bool {
	spec := mail.AddressSpec(addr)
	if spec == mail.AddressSpec(cfg.User.PrimaryEmail) {
		return true
	}
	for _, other := range cfg.User.OtherEmail {
		if spec == mail.AddressSpec(other) {
			return true
		}
	}
	return false
}

// Reply constructs a reply template for the newest message matching the
// given terms and prints it to stdout.
func Reply(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	replyTo := "all"
	options := []opts.Option{
		{String: &replyTo, Name: "reply-to", Choices: []string{"all", "sender"}},
		{Inherit: inv.SharedOptions()},
	}
	index, err := opts.Parse(args, options, 1)
	if err != nil {
		return err
	}
	if err := inv.ProcessSharedOptions("reply"); err != nil {
		return err
	}

	db, err := openDB(inv, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	messages, err := db.Search(store.ParseTerms(args[index:]), 1)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return &usage.Error{
			Message: "maildex: no messages match the given search terms",
			Code:    usage.ExitFailure,
		}
	}
	m := messages[0]

	to := []string{m.Sender}
	if replyTo == "all" {
		for _, addr := range mail.Addresses(m.Recipients) {
			if !ownAddress(cfg, addr) {
				to = append(to, addr)
			}
		}
	}

	from := cfg.User.PrimaryEmail
	if cfg.User.Name != "" {
		from = fmt.Sprintf("%s <%s>", cfg.User.Name, cfg.User.PrimaryEmail)
	}

	fmt.Fprintf(inv.Stdout, "From: %s\n", from)
	fmt.Fprintf(inv.Stdout, "To: %s\n", strings.Join(to, ", "))
	fmt.Fprintf(inv.Stdout, "Subject: %s\n", replySubject(m.Subject))
	fmt.Fprintf(inv.Stdout, "In-Reply-To: <%s>\n", m.MessageID)
	fmt.Fprintf(inv.Stdout, "References: <%s>\n\n", m.MessageID)

	fmt.Fprintf(inv.Stdout, "On %s, %s wrote:\n", m.Date.Format("2006-01-02"), m.Sender)
	for _, line := range strings.Split(strings.TrimRight(messageBody(m), "\n"), "\n") {
		fmt.Fprintf(inv.Stdout, "> %s\n", line)
	}

	return nil
}
