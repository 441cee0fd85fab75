package cobraflags

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/janert/cmdflags"
	"github.com/spf13/cobra"
)

type fixture struct {
	reg     *cmdflags.Registry
	diag    *bytes.Buffer
	verbose int
	output  string
	rest    []string
	ran     bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{reg: cmdflags.NewRegistry(), diag: &bytes.Buffer{}}
	f.reg.SetOutput(f.diag)

	f.reg.DefineShort(cmdflags.GlobalModule, 'v', cmdflags.NoArgument,
		func(cmdflags.Option) error { f.verbose++; return nil }, "more output")
	f.reg.Define("build", 'o', "output_dir", cmdflags.RequiredArgument,
		func(_ cmdflags.Option, v string) error { f.output = v; return nil },
		"output directory")
	f.reg.Define(cmdflags.GlobalModule, 'h', "help", cmdflags.NoArgument,
		func(cmdflags.Option) error { return cmdflags.ErrStop }, "prints help")
	f.reg.DefineLong(cmdflags.GlobalModule, "fail", cmdflags.NoArgument,
		func(cmdflags.Option) error { return errors.New("failed") }, "fails")

	return f
}

func (f *fixture) command() *cobra.Command {
	return NewCommand("tool", "a tool", f.reg,
		func(cmd *cobra.Command, args []string) error {
			f.ran = true
			f.rest = args
			return nil
		})
}

func Test_NewCommandRun(t *testing.T) {
	f := newFixture(t)
	cmd := f.command()
	cmd.SetArgs([]string{"-vv", "build", "--output-dir", "out", "a.go", "-v"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if !f.ran || f.verbose != 2 || f.output != "out" {
		t.Errorf("ran=%v verbose=%d output=%q", f.ran, f.verbose, f.output)
	}
	if diff := cmp.Diff([]string{"a.go", "-v"}, f.rest); diff != "" {
		t.Errorf("leftover (-want +got):\n%s", diff)
	}
}

func Test_NewCommandStop(t *testing.T) {
	f := newFixture(t)
	cmd := f.command()
	cmd.SetArgs([]string{"-h", "x"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if f.ran {
		t.Errorf("run called after stop")
	}
}

func Test_NewCommandHandlerError(t *testing.T) {
	f := newFixture(t)
	cmd := f.command()
	cmd.SetArgs([]string{"--fail"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil || !cmdflags.IsStop(err) {
		t.Fatalf("got %v, want handler error", err)
	}
	if f.ran {
		t.Errorf("run called after failure")
	}
}

func Test_NewCommandDiagnostics(t *testing.T) {
	f := newFixture(t)
	cmd := f.command()
	cmd.SetArgs([]string{"-x"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got, want := f.diag.String(), "tool: unrecognized option '-x'\n"; got != want {
		t.Errorf("got=%q want=%q", got, want)
	}
}

func Test_NewCommandHelp(t *testing.T) {
	f := newFixture(t)
	cmd := f.command()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	if err := cmd.Help(); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"a tool", "Usage:\n  tool [module]",
		"-h, --help", "--fail", "\nbuild\n", "-o, --output-dir <arg>"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help lacks %q:\n%s", want, out.String())
		}
	}
}

func Test_NewCommandNilRun(t *testing.T) {
	f := newFixture(t)
	cmd := NewCommand("tool", "", f.reg, nil)
	cmd.SetArgs([]string{"-v", "anything"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if f.verbose != 1 {
		t.Errorf("verbose=%d", f.verbose)
	}
}
