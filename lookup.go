package cmdflags

// FindShort returns the first short option registered under module for
// character c, or nil. An empty module means GlobalModule.
func (r *Registry) FindShort(module string, c rune) *Descriptor {
	if module == "" {
		module = GlobalModule
	}
	return r.findShort(module, c)
}

// FindLong returns the first long option registered under module whose
// name equals name, treating '_' and '-' as the same character, or nil.
// An empty module means GlobalModule.
func (r *Registry) FindLong(module, name string) *Descriptor {
	if module == "" {
		module = GlobalModule
	}
	return r.findLong(module, name)
}

// Both scans compare module verbatim and skip placeholders; the first
// match wins.
func (r *Registry) findShort(module string, c rune) *Descriptor {
	for _, d := range r.shorts {
		if d.IsPlaceholder() || d.option.Kind != ShortOption {
			continue
		}
		if d.module == module && d.option.Short == c {
			return d
		}
	}

	return nil
}

func (r *Registry) findLong(module, name string) *Descriptor {
	for _, d := range r.longs {
		if d.IsPlaceholder() {
			continue
		}
		if d.module == module && longNamesEqual(d.option.Long, name) {
			return d
		}
	}

	return nil
}

// FindShort looks up a short option in CommandLine.
func FindShort(module string, c rune) *Descriptor {
	return CommandLine.FindShort(module, c)
}

// FindLong looks up a long option in CommandLine.
func FindLong(module, name string) *Descriptor {
	return CommandLine.FindLong(module, name)
}

// longNamesEqual compares two long option names byte by byte, folding
// '_' onto '-'.
func longNamesEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if dashed(a[i]) != dashed(b[i]) {
			return false
		}
	}

	return true
}

func dashed(c byte) byte {
	if c == '_' {
		return '-'
	}
	return c
}
