// Package main is the entry point for partnerreport. It reads a command stream
// describing partners, companies, employees, and contacts, and prints each
// company's dominant partner. The serve subcommand exposes the same batch run
// over HTTP.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

var version = "dev"

// Globals are the flags shared by every subcommand.
type Globals struct {
	Profile   string           `help:"Configuration profile (local, prod, ...)." env:"APP_PROFILE" default:"local"`
	ConfigDir string           `help:"Directory holding base.yaml and the profile files." env:"APP_CONFIG_DIR" default:"configs" name:"config-dir"`
	Version   kong.VersionFlag `help:"Print version and exit."`
}

// CLI is the root command line.
type CLI struct {
	Globals

	Run   RunCmd   `cmd:"" default:"withargs" help:"Apply a command stream and print the relationship report (default)."`
	Serve ServeCmd `cmd:"" help:"Serve report runs over HTTP."`
}

// streams are the process standard streams, bound into every subcommand so
// tests can substitute buffers.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], &streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}, os.Exit)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and executes the selected subcommand. exit is called by
// kong after --help and --version.
func run(ctx context.Context, args []string, s *streams, exit func(int)) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("partnerreport"),
		kong.Description("Report each company's dominant partner from a command stream."),
		kong.Writers(s.out, s.err),
		kong.Exit(exit),
		kong.Vars{"version": version},
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Bind(s),
	)
	if err != nil {
		return fmt.Errorf("building command line: %w", err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kctx.Run(&cli.Globals)
}
