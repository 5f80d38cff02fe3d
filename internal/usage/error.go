package usage

// Exit statuses reported by maildex.
//
//	0: success
//	1: generic failure (parse errors, unknown command, config/database
//	   trouble, database identity mismatch)
//	20: a caller requested a structured-output format version older than
//	    the oldest version this CLI still supports
//	21: a caller requested a structured-output format version newer than
//	    the newest version this CLI knows how to produce
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitFormatTooOld = 20
	ExitFormatTooNew = 21
)

// Error is a user-facing diagnostic paired with the process exit status it
// should produce. Gates and handlers return it instead of calling os.Exit so
// that teardown always runs; only main translates it into a real exit.
type Error struct {
	Message string
	Code    int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// ExitCode returns the process exit status for this error.
// Errors created with a zero code map to the generic failure status,
// except the explicit Exit(0) sentinel which carries no message.
func (e *Error) ExitCode() int {
	if e.Code == 0 && e.Message != "" {
		return ExitFailure
	}
	return e.Code
}

// Exit signals an early, already-reported exit with the given status and no
// further diagnostic. Used for the --version and --help short-circuits.
func Exit(code int) *Error {
	return &Error{Code: code}
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
