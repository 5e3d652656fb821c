package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mmynk/gradebook/internal/config"
	"github.com/mmynk/gradebook/internal/console"
	"github.com/mmynk/gradebook/internal/exchange"
	"github.com/mmynk/gradebook/internal/registry"
	"github.com/mmynk/gradebook/internal/seed"
)

var errHelp = errors.New("help provided")

// stringList collects a repeatable flag.
type stringList []string

func (l *stringList) String() string     { return strings.Join(*l, ",") }
func (l *stringList) Set(v string) error { *l = append(*l, v); return nil }

type commandLine struct {
	cfg *config.Config
	in  io.Reader
	out io.Writer
}

func (cli *commandLine) printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  gradebook [-seed FILE] [-import FILE]... [-report-all]            interactive console on stdin")
	fmt.Fprintln(cli.out, "  gradebook [-seed FILE] [-import FILE]... [-report-all] COMMAND    run one console command")
	fmt.Fprintln(cli.out, "Flags:")
	fs.SetOutput(cli.out)
	fs.PrintDefaults()
}

// run builds a fresh registry from the seed and import files, then executes
// the remaining arguments as one console command, or reads commands from in.
func (cli *commandLine) run(args []string) error {
	fs := flag.NewFlagSet("gradebook", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	seedFile := fs.String("seed", cli.cfg.SeedFile, "YAML seed file applied before anything else")
	reportAll := fs.Bool("report-all", cli.cfg.ImportReportAll, "report every malformed import line, not only Score lines")
	var imports stringList
	fs.Var(&imports, "import", "records file to import (repeatable)")

	if err := fs.Parse(args[1:]); err != nil {
		cli.printUsage(fs)
		if errors.Is(err, flag.ErrHelp) {
			return errHelp
		}
		return err
	}

	reg := registry.New()
	if *seedFile != "" {
		if _, err := seed.LoadAndApply(reg, *seedFile); err != nil {
			return err
		}
	}

	c := console.New(reg, cli.out, exchange.Options{ReportAll: *reportAll})
	for _, path := range imports {
		if err := c.Exec("import " + path); err != nil {
			return err
		}
	}

	if fs.NArg() == 0 {
		return c.Run(cli.in, "> ")
	}
	if err := c.Exec(strings.Join(fs.Args(), " ")); err != nil && !errors.Is(err, console.ErrQuit) {
		return err
	}
	return nil
}
