package usage

import "fmt"

// UnknownCommand is returned when the first non-option argument does not
// name any registered command.
func UnknownCommand(name string) *Error {
	return &Error{
		Message: fmt.Sprintf("Unknown command '%s' (see \"maildex help\")", name),
		Code:    ExitFailure,
	}
}

// ParseError is returned when argument parsing fails before any command
// logic has run.
func ParseError(err error) *Error {
	return &Error{
		Message: fmt.Sprintf("maildex: %v", err),
		Code:    ExitFailure,
	}
}

// ConfigError wraps a configuration open/create failure.
func ConfigError(err error) *Error {
	return &Error{
		Message: fmt.Sprintf("maildex: %v", err),
		Code:    ExitFailure,
	}
}

// FormatTooNew is returned when a caller requests a structured-output format
// version newer than this CLI can produce.
func FormatTooNew(requested, cur int) *Error {
	return &Error{
		Message: fmt.Sprintf(
			"A caller requested output format version %d, but the installed maildex\n"+
				"CLI only supports up to format version %d.  You may need to upgrade your\n"+
				"maildex CLI.", requested, cur),
		Code: ExitFormatTooNew,
	}
}

// FormatTooOld is returned when a caller requests a structured-output format
// version that is no longer supported.
func FormatTooOld(requested, min int) *Error {
	return &Error{
		Message: fmt.Sprintf(
			"A caller requested output format version %d, which is no longer supported\n"+
				"by the maildex CLI (it requires at least version %d).  You may need to\n"+
				"upgrade your maildex front-end.", requested, min),
		Code: ExitFormatTooOld,
	}
}

// UUIDMismatch is returned when --uuid names a database revision other than
// the one currently on disk.
func UUIDMismatch(requested, actual string) *Error {
	return &Error{
		Message: fmt.Sprintf("Error: requested database revision %s does not match %s", requested, actual),
		Code:    ExitFailure,
	}
}

// UUIDUnavailable is returned when the database identity cannot be read while
// a specific identity was requested. Comparing against an unknown value is
// unsafe, so this is fatal rather than a silent pass.
func UUIDUnavailable(err error) *Error {
	return &Error{
		Message: fmt.Sprintf("Error: could not read database revision: %v", err),
		Code:    ExitFailure,
	}
}
