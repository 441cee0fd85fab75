package cmdflags

import (
	"errors"
	"fmt"
	"regexp"
)

// GlobalModule is the module of options that apply when no module name was
// given on the command line.
const GlobalModule = "_"

const (
	shortOption = `^[^-\s[:cntrl:]]$`
	longOption  = `^[^=\s[:cntrl:]]+$`
)

// Compiled in variable initializers rather than init(), so that options
// declared by package-level variables of this package can use them.
var (
	shortOptionRE = regexp.MustCompile(shortOption)
	longOptionRE  = regexp.MustCompile(longOption)
)

// -----

// Kind tells short options (-x) from long options (--xyz).
type Kind int

const (
	ShortOption Kind = iota
	LongOption
)

func (k Kind) String() string {
	switch k {
	case ShortOption:
		return "short"
	case LongOption:
		return "long"
	default:
		return "unknown"
	}
}

// Option is the option token of a descriptor: a single character for
// short options, a name for long ones. It is what handlers receive.
type Option struct {
	Kind  Kind
	Short rune
	Long  string
}

// String renders the option the way it is written on the command line,
// using the canonical (registered) spelling of long option names.
func (o Option) String() string {
	if o.Kind == ShortOption {
		return "-" + string(o.Short)
	}
	return "--" + o.Long
}

// Flags selects whether an option takes an argument.
type Flags uint

const (
	NoArgument       Flags = 0
	RequiredArgument Flags = 1
)

// NoArgHandler is invoked for options registered with NoArgument. A non-nil
// error stops the parse pass.
type NoArgHandler func(opt Option) error

// ValueHandler is invoked for options registered with RequiredArgument,
// together with the option's argument. A non-nil error stops the parse pass.
type ValueHandler func(opt Option, value string) error

// handler holds exactly one of the two callback shapes.
type handler struct {
	noArg NoArgHandler
	value ValueHandler
}

// -----

// Descriptor is the unit of registration. Descriptors are created by the
// Define functions and never change afterwards.
type Descriptor struct {
	module  string
	option  Option
	flags   Flags
	h       handler
	help    string
	sibling *Descriptor // short: co-declared long; long: itself if paired
}

func (d *Descriptor) Module() string      { return d.module }
func (d *Descriptor) Option() Option      { return d.option }
func (d *Descriptor) Kind() Kind          { return d.option.Kind }
func (d *Descriptor) Flags() Flags        { return d.flags }
func (d *Descriptor) TakesArgument() bool { return d.flags == RequiredArgument }
func (d *Descriptor) Help() string        { return d.help }

// Sibling returns the long option declared together with a short one by
// Define, or nil. For long options it is always nil.
func (d *Descriptor) Sibling() *Descriptor {
	if d.option.Kind != ShortOption {
		return nil
	}
	return d.sibling
}

// IsPlaceholder reports whether d is an empty registry slot. Placeholders
// are never matched, rendered or invoked.
func (d *Descriptor) IsPlaceholder() bool {
	return d == nil || d.module == ""
}

// hiddenFromHelp reports whether d is a long option rendered through its
// short sibling.
func (d *Descriptor) hiddenFromHelp() bool {
	return d.option.Kind == LongOption && d.sibling == d
}

// invoke calls the handler matching the descriptor's flags. The value is
// ignored for options without argument.
func (d *Descriptor) invoke(value string) error {
	if d.flags == NoArgument {
		return d.h.noArg(d.option)
	}
	return d.h.value(d.option, value)
}

// NewShortDescriptor builds a short option descriptor without registering
// it. See DefineShort for the accepted handler types; it panics on the same
// misuse.
func NewShortDescriptor(module string, short rune, flags Flags, fn any,
	help string) *Descriptor {
	if !shortOptionRE.MatchString(string(short)) {
		panic(fmt.Sprintf("cmdflags: malformed short option %q", short))
	}

	return newDescriptor(module, Option{Kind: ShortOption, Short: short},
		flags, fn, help)
}

// NewLongDescriptor builds a long option descriptor without registering
// it. See DefineLong for the accepted handler types; it panics on the same
// misuse.
func NewLongDescriptor(module, long string, flags Flags, fn any,
	help string) *Descriptor {
	if !longOptionRE.MatchString(long) {
		panic(fmt.Sprintf("cmdflags: malformed long option %q", long))
	}

	return newDescriptor(module, Option{Kind: LongOption, Long: long},
		flags, fn, help)
}

func newDescriptor(module string, opt Option, flags Flags, fn any,
	help string) *Descriptor {
	if module == "" {
		module = GlobalModule
	}

	h, err := makeHandler(flags, fn)
	if err != nil {
		panic(fmt.Sprintf("cmdflags: option %s: %v", opt, err))
	}

	return &Descriptor{
		module: module,
		option: opt,
		flags:  flags,
		h:      h,
		help:   help,
	}
}

var errNilHandler = errors.New("nil handler")

// makeHandler checks that fn has the callback shape selected by flags.
func makeHandler(flags Flags, fn any) (handler, error) {
	switch flags {
	case NoArgument:
		switch f := fn.(type) {
		case NoArgHandler:
			if f != nil {
				return handler{noArg: f}, nil
			}
			return handler{}, errNilHandler
		case func(Option) error:
			if f != nil {
				return handler{noArg: f}, nil
			}
			return handler{}, errNilHandler
		case ValueHandler, func(Option, string) error:
			return handler{}, fmt.Errorf("value handler given for option without argument")
		}

	case RequiredArgument:
		switch f := fn.(type) {
		case ValueHandler:
			if f != nil {
				return handler{value: f}, nil
			}
			return handler{}, errNilHandler
		case func(Option, string) error:
			if f != nil {
				return handler{value: f}, nil
			}
			return handler{}, errNilHandler
		case NoArgHandler, func(Option) error:
			return handler{}, fmt.Errorf("no-argument handler given for option with argument")
		}

	default:
		return handler{}, fmt.Errorf("invalid flags %d", flags)
	}

	if fn == nil {
		return handler{}, errNilHandler
	}
	return handler{}, fmt.Errorf("unsupported handler type %T", fn)
}
