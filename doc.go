/*
Package cmdflags implements a command-line option parser whose options are
registered where they are used, rather than in one central place. Any
package of a program may contribute short (-x) and long (--xyz) options
from its package-level variable declarations; a single call to Parse at
program start then dispatches the options found on the command line to
their handlers.


# Registering Options

Options are registered during package initialization, so that they exist
before main runs and the program does not have to call anything to
collect them:

	package server

	import "github.com/janert/cmdflags"

	var port = "8080"

	var _ = cmdflags.Define("server", 'p', "listen_port",
		cmdflags.RequiredArgument,
		func(opt cmdflags.Option, value string) error {
			port = value
			return nil
		},
		"port to listen on")

There are three registration functions:

	DefineShort : a short option only, eg. "-v"
	DefineLong  : a long option only, eg. "--version"
	Define      : a short and a long option sharing handler and help text

Define's short and long option are shown as a single "-p, --listen-port"
entry in the help message.

Options taking an argument (RequiredArgument) need a handler of the form
func(Option, string) error, options without argument (NoArgument) one of
the form func(Option) error. The registration functions panic on a
handler of the wrong shape, on a short option that is not exactly one
character, and on an empty long option, so that mistakes surface as soon
as the program starts.

Arguments are handed to handlers as raw strings; converting them is up to
the handler. A handler runs once per occurrence of its option.


# Modules

Every option belongs to a module. Options of GlobalModule are recognized as
long as no module was named; the first non-option argument on the command
line names the module whose options are recognized from then on:

	prog -v server -p 9090 --listen_port=9091 data.db

Here "-v" must be an option of GlobalModule and "-p" and "--listen_port" are
options of module "server". Module names are compared exactly.


# Command-Line Processing

Processing follows POSIX getopt with POSIXLY_CORRECT semantics:
arguments are scanned left to right and never reordered, and scanning
stops at the first non-option argument after the module name. Parse
returns the index of that argument.

Short options may be clustered ("-abc"). An option taking an argument ends
the cluster: the rest of the token is its argument ("-ofile"), or, when
nothing is left, the next command-line argument is ("-o file"). Long
options take their argument either as "--name=value" or as the next
argument. Underscores and dashes in long option names are
interchangeable: "--listen_port" and "--listen-port" name the same option.

The special argument "--" ends option processing. A lone "-" is not an
option.

Unknown options, long options given an argument they do not take, and
options missing their argument are reported on standard error, prefixed
with the program name, and skipped. Reporting can be disabled through
SetConfig.

A handler returning an error ends the scan at once. Parse then returns a
*StopError wrapping it, together with the index where processing stopped;
this is a request by the handler (for instance after printing the help
message), not a parse failure.


# Help

HelpMessage, WriteHelp and PrintHelp render all registered options, one per
line, with their help text. Named modules are introduced by a header line.

	   -c, --configuration <arg>                : configuration file
	   -h, --help                               : prints help message

	server
	   -p, --listen-port <arg>                  : port to listen on


# Concurrency

Registration, Parse and the help functions are meant to be called from a
single goroutine; none of them lock.
*/
package cmdflags
