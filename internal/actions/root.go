package actions

import (
	"fmt"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/store"
)

// Root handles maildex being invoked with no command argument. A never
// configured user is routed into setup; a configured user without a database
// yet is pointed at "maildex new"; otherwise a short orientation is printed.
func Root(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	if cfg.IsNew() {
		return Setup(inv, cfg, nil)
	}

	if !store.Exists(cfg.Database.Path) {
		fmt.Fprintf(inv.Stdout,
			"Maildex is configured, but there's not yet a database at\n\n\t%s\n\n",
			store.Path(cfg.Database.Path))
		fmt.Fprintf(inv.Stdout,
			"You probably want to run \"maildex new\" now to create that database.\n\n"+
				"Note that the first run of \"maildex new\" can take a while on a large\n"+
				"email archive.\n\n")
		return nil
	}

	fmt.Fprintf(inv.Stdout,
		"Maildex is configured and appears to have a database. Excellent!\n\n"+
			"At this point you can start exploring the functionality of maildex by\n"+
			"using commands such as:\n\n"+
			"\tmaildex search tag:inbox\n\n"+
			"\tmaildex search to:\"%s\"\n\n"+
			"\tmaildex search from:\"%s\"\n\n"+
			"\tmaildex search subject:\"my favorite things\"\n\n"+
			"See \"maildex help search\" for more details.\n\n"+
			"And don't forget to run \"maildex new\" whenever new mail arrives.\n\n",
		cfg.User.PrimaryEmail, cfg.User.PrimaryEmail)

	return nil
}
