package cmdflags

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Registry holds the registered short and long options, in registration
// order, together with the configuration and diagnostics output used while
// parsing.
//
// A Registry is not safe for concurrent use. Options are meant to be
// registered during package initialization; Parse and the help functions
// only read the option sets.
type Registry struct {
	shorts []*Descriptor
	longs  []*Descriptor

	cfg    Config
	output io.Writer
	log    *logrus.Logger
}

// CommandLine is the registry populated by the package-level Define
// functions and consulted by Parse, ParseCommandLine and the package-level
// help functions.
var CommandLine = NewRegistry()

// NewRegistry returns an empty registry with the default configuration.
func NewRegistry() *Registry {
	return &Registry{
		cfg:    DefaultConfig(),
		output: os.Stderr,
		log:    newLogger(),
	}
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetOutput sets the destination of diagnostics and of PrintHelp. A nil
// writer restores os.Stderr.
func (r *Registry) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	r.output = w
}

// Output returns the destination of diagnostics.
func (r *Registry) Output() io.Writer { return r.output }

// SetLogger replaces the logger receiving trace output about registration
// and dispatch. A nil logger restores the default, which only reports
// warnings.
func (r *Registry) SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newLogger()
	}
	r.log = l
}

// Add appends descriptors to the set matching their kind. Placeholders
// (nil, or descriptors without module) are kept in the short set so
// that enumeration sees them, but they are never matched.
func (r *Registry) Add(ds ...*Descriptor) {
	for _, d := range ds {
		if d.IsPlaceholder() {
			r.shorts = append(r.shorts, d)
			continue
		}

		switch d.option.Kind {
		case ShortOption:
			r.shorts = append(r.shorts, d)
		case LongOption:
			r.longs = append(r.longs, d)
		}

		r.log.WithFields(logrus.Fields{
			"module": d.module,
			"option": d.option.String(),
			"flags":  d.flags,
		}).Debug("registered option")
	}
}

// DefineShort registers a short option (-x) under module. Use GlobalModule
// (or "") for options that apply when no module is given.
//
// fn must be a NoArgHandler (or func(Option) error) when flags is
// NoArgument and a ValueHandler (or func(Option, string) error) when flags
// is RequiredArgument. DefineShort panics if the handler does not fit, or
// if short is not a single printable character other than '-'.
func (r *Registry) DefineShort(module string, short rune, flags Flags, fn any,
	help string) *Descriptor {
	d := NewShortDescriptor(module, short, flags, fn, help)
	r.Add(d)
	return d
}

// DefineLong registers a long option (--name) under module. Underscores and
// dashes in name are interchangeable on the command line. DefineLong panics
// if name is empty, contains '=' or whitespace, or if the handler does not
// fit flags.
func (r *Registry) DefineLong(module, long string, flags Flags, fn any,
	help string) *Descriptor {
	d := NewLongDescriptor(module, long, flags, fn, help)
	r.Add(d)
	return d
}

// Define registers a short and a long option sharing one handler and help
// text. The pair is shown as one "-x, --name" entry in the help message.
// It returns the short descriptor; its Sibling is the long one.
func (r *Registry) Define(module string, short rune, long string, flags Flags,
	fn any, help string) *Descriptor {
	l := NewLongDescriptor(module, long, flags, fn, help)
	l.sibling = l

	s := NewShortDescriptor(module, short, flags, fn, help)
	s.sibling = l

	r.Add(l, s)
	return s
}

// Shorts returns the registered short options in registration order.
func (r *Registry) Shorts() []*Descriptor { return present(r.shorts) }

// Longs returns the registered long options in registration order.
func (r *Registry) Longs() []*Descriptor { return present(r.longs) }

func present(ds []*Descriptor) []*Descriptor {
	out := make([]*Descriptor, 0, len(ds))
	for _, d := range ds {
		if !d.IsPlaceholder() {
			out = append(out, d)
		}
	}
	return out
}

// -----

// DefineShort registers a short option with CommandLine.
func DefineShort(module string, short rune, flags Flags, fn any,
	help string) *Descriptor {
	return CommandLine.DefineShort(module, short, flags, fn, help)
}

// DefineLong registers a long option with CommandLine.
func DefineLong(module, long string, flags Flags, fn any,
	help string) *Descriptor {
	return CommandLine.DefineLong(module, long, flags, fn, help)
}

// Define registers a short and long option pair with CommandLine.
func Define(module string, short rune, long string, flags Flags, fn any,
	help string) *Descriptor {
	return CommandLine.Define(module, short, long, flags, fn, help)
}
