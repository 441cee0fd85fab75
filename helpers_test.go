package cmdflags

import (
	"bytes"
	"errors"
)

// recorder collects handler invocations as "-x", "--name" or
// "-x=value", in call order.
type recorder struct {
	calls []string
	stop  map[string]bool // options whose handler returns ErrStop
}

func (r *recorder) flag(opt Option) error {
	r.calls = append(r.calls, opt.String())
	if r.stop[opt.String()] {
		return ErrStop
	}
	return nil
}

func (r *recorder) value(opt Option, v string) error {
	r.calls = append(r.calls, opt.String()+"="+v)
	if r.stop[opt.String()] {
		return ErrStop
	}
	return nil
}

// newTestRegistry mirrors a typical program: paired options in the
// global module and separately declared options in "mod".
func newTestRegistry(rec *recorder) (*Registry, *bytes.Buffer) {
	r := NewRegistry()
	out := &bytes.Buffer{}
	r.SetOutput(out)

	r.Define(GlobalModule, 'i', "expected_v_cnt", RequiredArgument,
		rec.value, "sets expected v counter")
	r.Define(GlobalModule, 'j', "expected_c_cnt", RequiredArgument,
		rec.value, "sets expected c counter")
	r.Define(GlobalModule, 'h', "help", NoArgument,
		rec.flag, "prints help message")
	r.DefineShort(GlobalModule, 'v', NoArgument, rec.flag,
		"prints version information")
	r.DefineLong(GlobalModule, "version", NoArgument, rec.flag,
		"prints version information")

	r.DefineShort("mod", 'v', NoArgument, rec.flag,
		"prints version information")
	r.DefineShort("mod", 'c', RequiredArgument, rec.value,
		"configuration file")
	r.DefineLong("mod", "configuration", RequiredArgument, rec.value,
		"configuration file")

	return r, out
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}
