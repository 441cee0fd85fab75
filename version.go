package cmdflags

const version = "1.2.0"

// Version returns the version of the cmdflags library.
func Version() string { return version }
