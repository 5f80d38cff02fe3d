// Package opts implements the declarative argument scanner used by every
// maildex command. A command describes its flags as a slice of Option
// descriptors; an Inherit entry splices another descriptor slice in place, so
// the shared flag set is recognized identically at the top level and inside
// any subcommand's own re-parse.
package opts

import (
	"fmt"
	"strconv"
	"strings"
)

// Option describes one flag. Exactly one of the destination pointers
// (Bool, String, Int) must be set, or Inherit must point at another
// descriptor slice to splice in.
type Option struct {
	// Destinations. The kind of the option is implied by which one is set.
	Bool   *bool
	String *string
	Int    *int

	// Inherit splices another option set into this one.
	Inherit []Option

	// Name is the long flag name, without the leading dashes.
	Name string

	// Short is the single-letter alias, 0 for none.
	Short byte

	// Choices restricts a String option to a fixed keyword set.
	Choices []string
}

func flatten(options []Option, out []Option) []Option {
	for _, o := range options {
		if o.Inherit != nil {
			out = flatten(o.Inherit, out)
			continue
		}
		out = append(out, o)
	}
	return out
}

func match(o Option, name string) bool {
	if name == o.Name {
		return true
	}
	return len(name) == 1 && o.Short != 0 && name[0] == o.Short
}

func assign(o Option, name, value string, haveValue bool) error {
	switch {
	case o.Bool != nil:
		switch {
		case !haveValue || value == "true":
			*o.Bool = true
		case value == "false":
			*o.Bool = false
		default:
			return fmt.Errorf("unknown value for --%s: %s", o.Name, value)
		}
	case o.String != nil:
		if !haveValue {
			return fmt.Errorf("option --%s needs a value", o.Name)
		}
		if len(o.Choices) > 0 {
			ok := false
			for _, c := range o.Choices {
				if value == c {
					ok = true
					break
				}
			}
			if !ok {
				return fmt.Errorf("unknown keyword for --%s: %s", o.Name, value)
			}
		}
		*o.String = value
	case o.Int != nil:
		if !haveValue {
			return fmt.Errorf("option --%s needs a value", o.Name)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("option --%s needs an integer value, got %s", o.Name, value)
		}
		*o.Int = n
	default:
		return fmt.Errorf("option --%s has no destination", name)
	}
	return nil
}

// Parse scans args from index first against the given descriptors and
// returns the index of the first non-option argument (len(args) when every
// argument was consumed). Supported forms: --flag, --flag=value,
// --flag value, -f, -f value. A bare "--" ends option processing; the
// returned index points just past it.
//
// Any parse failure is returned as an error; the caller is expected to
// surface it and abort before reaching the command registry.
func Parse(args []string, options []Option, first int) (int, error) {
	flat := flatten(options, nil)

	i := first
	for i < len(args) {
		arg := args[i]

		if arg == "--" {
			return i + 1, nil
		}
		if len(arg) < 2 || arg[0] != '-' {
			return i, nil
		}

		name := strings.TrimLeft(arg, "-")
		value := ""
		haveValue := false
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			value = name[eq+1:]
			name = name[:eq]
			haveValue = true
		}

		var opt *Option
		for j := range flat {
			if match(flat[j], name) {
				opt = &flat[j]
				break
			}
		}
		if opt == nil {
			return -1, fmt.Errorf("unknown option: %s", arg)
		}

		// Non-boolean options may take their value as the next argument.
		if !haveValue && opt.Bool == nil {
			if i+1 >= len(args) {
				return -1, fmt.Errorf("option %s needs a value", arg)
			}
			i++
			value = args[i]
			haveValue = true
		}

		if err := assign(*opt, name, value, haveValue); err != nil {
			return -1, err
		}
		i++
	}

	return i, nil
}
