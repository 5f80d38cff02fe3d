package dispatch

import "github.com/maildex-tools/cli/internal/usage"

// CheckUUID is the database identity gate. When no identity was requested it
// is a no-op and never calls actual. Otherwise the current identity is
// fetched and compared: a fetch failure is fatal (comparing against an
// unknown value would let a stale caller through), as is a mismatch. This is
// a consistency guard against acting on a rebuilt database, not a lock.
func CheckUUID(requested string, actual func() (string, error)) error {
	if requested == "" {
		return nil
	}

	id, err := actual()
	if err != nil {
		return usage.UUIDUnavailable(err)
	}
	if requested != id {
		return usage.UUIDMismatch(requested, id)
	}
	return nil
}
