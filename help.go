package cmdflags

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	helpLineFormat  = "   %-40s : %s\n"
	helpModuleFmt   = "\n%s\n"
	helpArgSuffix   = " <arg>"
	maxPrefixLength = 127
)

// HelpMessage formats the help message into msg the way snprintf does: it
// copies at most len(msg)-1 bytes of the message followed by a NUL byte,
// and returns the length of the complete message, excluding the NUL. A
// result of len(msg) or more means the copy was truncated; calling with an
// empty msg is the way to learn the length beforehand.
//
// When sorted is true, options of GlobalModule come first, followed by the
// other modules in lexical order, each module's options ordered by option
// name. Otherwise the order is implementation defined.
func (r *Registry) HelpMessage(msg []byte, sorted bool) (int, error) {
	var b strings.Builder

	n, err := r.WriteHelp(&b, sorted)
	if err != nil {
		return -1, err
	}

	if len(msg) > 0 {
		k := copy(msg[:len(msg)-1], b.String())
		msg[k] = 0
	}

	return n, nil
}

// WriteHelp writes the help message to w and returns the number of bytes
// written. See HelpMessage for the layout.
func (r *Registry) WriteHelp(w io.Writer, sorted bool) (int, error) {
	total := 0
	module := ""

	for _, d := range r.helpEntries(sorted) {
		if d.module != GlobalModule && d.module != module {
			module = d.module
			n, err := fmt.Fprintf(w, helpModuleFmt, module)
			total += n
			if err != nil {
				return total, fmt.Errorf("cmdflags: writing help: %w", err)
			}
		}

		n, err := fmt.Fprintf(w, helpLineFormat, helpPrefix(d), d.help)
		total += n
		if err != nil {
			return total, fmt.Errorf("cmdflags: writing help: %w", err)
		}
	}

	return total, nil
}

// Help returns the help message as a string.
func (r *Registry) Help(sorted bool) string {
	var b strings.Builder
	r.WriteHelp(&b, sorted) // strings.Builder never fails
	return b.String()
}

// PrintHelp writes the help message to the registry output.
func (r *Registry) PrintHelp(sorted bool) error {
	_, err := r.WriteHelp(r.output, sorted)
	return err
}

// HelpMessage formats the help message of CommandLine into msg.
func HelpMessage(msg []byte, sorted bool) (int, error) {
	return CommandLine.HelpMessage(msg, sorted)
}

// WriteHelp writes the help message of CommandLine to w.
func WriteHelp(w io.Writer, sorted bool) (int, error) {
	return CommandLine.WriteHelp(w, sorted)
}

// PrintHelp writes the help message of CommandLine to its output, standard
// error unless changed with SetOutput.
func PrintHelp(sorted bool) error {
	return CommandLine.PrintHelp(sorted)
}

// -----

// helpEntries gathers the options to show: all short options, then all
// long options not already shown through a short sibling. Sorting inserts
// each entry before the first one comparing greater, so equal entries keep
// their discovery order. Unsorted, the discovery order is reversed.
func (r *Registry) helpEntries(sorted bool) []*Descriptor {
	entries := make([]*Descriptor, 0, len(r.shorts)+len(r.longs))

	add := func(d *Descriptor) {
		if !sorted {
			entries = append(entries, d)
			return
		}

		i := 0
		for ; i < len(entries); i++ {
			if compareOptions(d, entries[i]) < 0 {
				break
			}
		}
		entries = slices.Insert(entries, i, d)
	}

	for _, d := range r.shorts {
		if !d.IsPlaceholder() {
			add(d)
		}
	}
	for _, d := range r.longs {
		if !d.IsPlaceholder() && !d.hiddenFromHelp() {
			add(d)
		}
	}

	if !sorted {
		slices.Reverse(entries)
	}

	return entries
}

// compareOptions orders options of GlobalModule before all others, then
// by module, then by option. Short and long options compare by their first
// character only.
func compareOptions(l, r *Descriptor) int {
	if l.module != r.module {
		switch {
		case l.module == GlobalModule:
			return -1
		case r.module == GlobalModule:
			return +1
		default:
			return strings.Compare(l.module, r.module)
		}
	}

	lk, rk := l.option.Kind, r.option.Kind
	switch {
	case lk == ShortOption && rk == LongOption:
		return int(l.option.Short) - int(firstRune(r.option.Long))
	case lk == LongOption && rk == ShortOption:
		return int(firstRune(l.option.Long)) - int(r.option.Short)
	case lk == LongOption && rk == LongOption:
		return strings.Compare(l.option.Long, r.option.Long)
	default:
		return int(l.option.Short) - int(r.option.Short)
	}
}

func firstRune(s string) rune {
	c, _ := utf8.DecodeRuneInString(s)
	return c
}

// helpPrefix renders the option column of a help line: "-x, --name",
// "-x" or "--name", followed by " <arg>" for options taking an argument.
func helpPrefix(d *Descriptor) string {
	var prefix string

	switch {
	case d.option.Kind == LongOption:
		prefix = "--" + displayName(d.option.Long)
	case d.sibling != nil:
		prefix = fmt.Sprintf("-%c, --%s", d.option.Short,
			displayName(d.sibling.option.Long))
	default:
		prefix = fmt.Sprintf("-%c", d.option.Short)
	}

	if d.TakesArgument() {
		prefix += helpArgSuffix
	}

	return truncate(prefix, maxPrefixLength)
}

// displayName shows underscores in long option names as dashes.
func displayName(long string) string {
	return strings.ReplaceAll(long, "_", "-")
}

// truncate cuts s to at most n bytes without splitting a character.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
