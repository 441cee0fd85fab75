package cmdflags

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

const (
	endOptionsIndicator = "--"
)

// Parse scans args, where args[0] is the program name, and invokes the
// handlers of the options it recognizes. Scanning follows POSIX getopt in
// its POSIXLY_CORRECT flavor: it stops at the first non-option argument
// and never reorders args.
//
// The first non-option argument is not a stop, though: it names the module
// whose options are recognized from then on. Without a module name, only
// options of GlobalModule are recognized. The token "-" is a non-option;
// the token "--" ends option processing and is consumed.
//
// Parse returns the index into args of the first argument it did not
// process. Unknown options, options given an argument they do not take and
// options missing their argument are reported on the registry output
// (unless disabled through SetConfig) and skipped; they never end the scan.
//
// A handler returning a non-nil error ends the scan early: Parse then
// returns the index past the argument holding the option (or its value)
// and a *StopError wrapping the handler's error. The only failure is an
// empty args, for which Parse returns -1 and ErrNoArguments.
func (r *Registry) Parse(args []string) (int, error) {
	if len(args) < 1 {
		return -1, ErrNoArguments
	}

	p := parser{Registry: r, args: args}
	return p.run()
}

// Parse parses args with CommandLine.
func Parse(args []string) (int, error) {
	return CommandLine.Parse(args)
}

// ParseCommandLine parses os.Args with CommandLine.
func ParseCommandLine() (int, error) {
	return CommandLine.Parse(os.Args)
}

// -----

// parser carries the state of a single Parse call.
type parser struct {
	*Registry

	args       []string
	module     string
	haveModule bool
}

// Lookups during a scan use the captured module verbatim, or GlobalModule
// if none was captured.
func (p *parser) scope() string {
	if p.haveModule {
		return p.module
	}
	return GlobalModule
}

func (p *parser) run() (int, error) {
	i := 1
	for ; i < len(p.args); i++ {
		arg := p.args[i]

		if arg == endOptionsIndicator {
			return i + 1, nil
		}

		if isNonOption(arg) {
			if p.haveModule {
				return i, nil
			}
			p.module, p.haveModule = arg, true
			p.log.WithField("module", arg).Debug("module selected")
			continue
		}

		var (
			next int
			err  error
		)
		if strings.HasPrefix(arg, "--") {
			next, err = p.long(i)
		} else {
			next, err = p.shorts(i)
		}
		if err != nil {
			return next + 1, err
		}
		i = next
	}

	return i, nil
}

// long processes the long option in args[i]. It returns the index of the
// last argument it consumed.
func (p *parser) long(i int) (int, error) {
	name, value, hasValue := strings.Cut(p.args[i][2:], "=")

	d := p.findLong(p.scope(), name)
	if d == nil {
		if p.haveModule {
			p.diag("unrecognized option '--%s' for '%s' module", name, p.module)
		} else {
			p.diag("unrecognized option '--%s'", name)
		}
		return i, nil
	}

	at := i
	switch {
	case !d.TakesArgument() && hasValue:
		p.diag("option '--%s' doesn't allow an argument", name)
		return i, nil

	case !d.TakesArgument():
		// no argument to gather

	case hasValue:
		// value given as --name=value

	case i+1 < len(p.args):
		i++
		value = p.args[i]

	default:
		p.diag("option '--%s' requires an argument", name)
		return i, nil
	}

	return i, p.dispatch(d, at, value)
}

// shorts walks the cluster of short options in args[i]. It returns the
// index of the last argument it consumed.
func (p *parser) shorts(i int) (int, error) {
	arg := p.args[i]
	at := i

	for j := 1; j < len(arg); {
		c, size := utf8.DecodeRuneInString(arg[j:])
		j += size

		d := p.findShort(p.scope(), c)
		if d == nil {
			if p.haveModule {
				p.diag("unrecognized option '-%c' for '%s' module", c, p.module)
			} else {
				p.diag("unrecognized option '-%c'", c)
			}
			continue
		}

		if !d.TakesArgument() {
			if err := p.dispatch(d, at, ""); err != nil {
				return i, err
			}
			continue
		}

		// The rest of the token is the argument; the cluster ends here
		if j < len(arg) {
			return i, p.dispatch(d, at, arg[j:])
		}

		if i+1 < len(p.args) {
			i++
			return i, p.dispatch(d, at, p.args[i])
		}

		p.diag("option '-%c' requires an argument", c)
	}

	return i, nil
}

func (p *parser) dispatch(d *Descriptor, at int, value string) error {
	p.log.WithFields(logrus.Fields{
		"module": d.module,
		"option": d.option.String(),
		"index":  at,
	}).Debug("dispatching option")

	if err := d.invoke(value); err != nil {
		return &StopError{Option: d.option, Index: at, Err: err}
	}
	return nil
}

// diag reports a malformed or unknown option, prefixed with the program
// name, unless diagnostics are disabled.
func (p *parser) diag(format string, a ...any) {
	if !p.cfg.EmitDebugMessages {
		return
	}
	fmt.Fprintf(p.output, "%s: %s\n", p.args[0], fmt.Sprintf(format, a...))
}

// isNonOption reports whether arg is a module name or positional argument
// rather than an option (cluster).
func isNonOption(arg string) bool {
	return len(arg) < 2 || arg[0] != '-'
}
