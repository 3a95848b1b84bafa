package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/danmuck/bufrkit/internal/accessor"
	"github.com/danmuck/bufrkit/internal/config"
	"github.com/danmuck/bufrkit/internal/descriptor"
	"github.com/danmuck/bufrkit/internal/logging"
	"github.com/danmuck/bufrkit/internal/observability"
	"github.com/danmuck/bufrkit/internal/server"
)

const usage = `usage: bufrdesc [-config path] <command> [args]

commands:
  lookup <code>...   resolve descriptors and print them
  kinds              list accessor kinds and their lineage
  serve              serve descriptor lookups over HTTP
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "bufrdesc: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("bufrdesc", flag.ContinueOnError)
	configPath := fs.String("config", "bufrdesc.toml", "config path")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return fmt.Errorf("missing command")
	}

	logging.ConfigureRuntime()

	switch rest[0] {
	case "kinds":
		return printKinds(out, accessor.DefaultRegistry())
	case "lookup", "serve":
	default:
		return fmt.Errorf("unknown command %q", rest[0])
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	table, err := newTableAccessor(cfg)
	if err != nil {
		return err
	}

	if rest[0] == "lookup" {
		return lookup(out, table, rest[1:])
	}
	logger := observability.InitLogger(cfg.Server.Name)
	srv := server.New(server.Config{
		Name:        cfg.Server.Name,
		Addr:        cfg.Server.Addr,
		CorsOrigins: cfg.Server.CorsOrigins,
	}, table, logger)
	return srv.Run()
}

func lookup(out io.Writer, table *accessor.ElementsTable, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("lookup needs at least one code")
	}
	failed := 0
	for _, raw := range args {
		code, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			fmt.Fprintf(out, "%s\terror: not a code\n", raw)
			failed++
			continue
		}
		d, err := table.Descriptor(code)
		if err != nil {
			fmt.Fprintf(out, "%06d\terror: %v\n", code, err)
			failed++
			continue
		}
		printDescriptor(out, d)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lookups failed", failed, len(args))
	}
	return nil
}

func printDescriptor(out io.Writer, d *descriptor.Descriptor) {
	fmt.Fprintf(out, "%06d\tF=%d X=%02d Y=%03d\t%s", d.Code, d.F, d.X, d.Y, d.Type)
	if d.ShortName != "" {
		fmt.Fprintf(out, "\t%s\tunits=%s scale=%d factor=%g reference=%d width=%d",
			d.ShortName, d.Units, d.Scale, d.Factor, d.Reference, d.Width)
	}
	if descriptor.IsMarker(d) {
		fmt.Fprint(out, "\tmarker")
	}
	fmt.Fprintln(out)
}

func printKinds(out io.Writer, r *accessor.Registry) error {
	for _, name := range r.Names() {
		kind, _ := r.Kind(name)
		fmt.Fprintf(out, "%s\t%s\n", name, strings.Join(kind.Lineage(), " -> "))
	}
	return nil
}
