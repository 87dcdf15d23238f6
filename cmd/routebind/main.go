package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/routebind/routebind/bindgen"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate route binding files."`
	Check   CheckCmd   `cmd:"" help:"Validate routes without writing files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Out     string `arg:"" optional:"" help:"Output directory (overrides out_dir from the config file)."`
	Config  string `help:"Path to the HCL configuration file." default:"routebind.hcl" short:"c"`
	Routes  string `help:"Path to the JSON route table." default:"routes.json" short:"r"`
	NoTools bool   `help:"Skip the formatting, type-checking, and linting steps."`
	Verbose bool   `help:"Enable debug logging." short:"v"`
}

func (c *GenCmd) Run() error {
	gen, cfg, err := buildGenerator(c.Config, c.Routes, c.Verbose)
	if err != nil {
		return err
	}
	out := c.Out
	if out == "" {
		out = cfg.OutDir
	}
	if out == "" {
		return fmt.Errorf("no output directory: pass one or set out_dir in %s", c.Config)
	}
	if c.NoTools {
		gen = gen.WithoutTools()
	}

	result, err := gen.ToDir(context.Background(), out)
	if err != nil {
		return err
	}
	routes := 0
	for _, rs := range result.Groups {
		routes += len(rs)
	}
	fmt.Printf("wrote %d files to %s (%d routes, %d skipped)\n", len(result.Files), out, routes, len(result.Skips))
	return nil
}

type CheckCmd struct {
	Config  string `help:"Path to the HCL configuration file." default:"routebind.hcl" short:"c"`
	Routes  string `help:"Path to the JSON route table." default:"routes.json" short:"r"`
	Verbose bool   `help:"Enable debug logging." short:"v"`
}

func (c *CheckCmd) Run() error {
	gen, _, err := buildGenerator(c.Config, c.Routes, c.Verbose)
	if err != nil {
		return err
	}
	result, err := gen.Check(context.Background())
	if err != nil {
		return err
	}
	routes := 0
	for _, rs := range result.Groups {
		routes += len(rs)
	}
	fmt.Printf("ok: %d routes accepted, %d skipped\n", routes, len(result.Skips))
	for _, s := range result.Skips {
		fmt.Printf("  skip %s (%s): %s\n", s.Pattern, s.Handler, s.Reason)
	}
	return nil
}

// buildGenerator loads configuration and the route table. A missing config
// file is not an error; every route then lands in the fallback group.
func buildGenerator(configPath, routesPath string, verbose bool) (*bindgen.Generator, *bindgen.Config, error) {
	cfg := &bindgen.Config{}
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = bindgen.LoadConfig(configPath)
		if err != nil {
			return nil, nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, nil, err
	}

	data, err := os.ReadFile(routesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read route table: %w", err)
	}
	var records []bindgen.RouteRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil, fmt.Errorf("parse route table %s: %w", routesPath, err)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	gen := bindgen.From(records).WithConfig(*cfg).WithLogger(logger)
	return gen, cfg, nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("routebind"),
		kong.Description("Generate typed client route bindings from a route table."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
