package bindgen

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
)

// Skip records one route excluded from generated output, with the reason
// it failed the handler contract.
type Skip struct {
	Pattern string `json:"pattern"`
	Handler string `json:"handler"`
	Reason  string `json:"reason"`
}

// Result reports what a run produced.
type Result struct {
	// Groups holds the accepted routes partitioned by group key, in
	// acceptance order.
	Groups map[string][]*Route

	// Skips lists the routes excluded from output.
	Skips []Skip

	// Files lists the artifacts written, relative to the destination.
	// Empty for Check runs.
	Files []string
}

// Generator drives the pipeline. Create one with From and configure it
// with method chaining:
//
//	bindgen.From(records).
//	    WithGroups(bindgen.Group{Key: "admin", Prefix: "/admin/"}).
//	    ToDir(ctx, "./gen/api")
type Generator struct {
	records []RouteRecord
	cfg     Config
	logger  *slog.Logger
	tools   []Tool
	noTools bool
	workDir string
}

// From creates a Generator for an ordered route table.
func From(records []RouteRecord) *Generator {
	return &Generator{records: records}
}

// WithConfig replaces the generator's configuration wholesale.
func (g *Generator) WithConfig(cfg Config) *Generator {
	g.cfg = cfg
	return g
}

// WithGroups appends route groups. Declaration order is match order.
func (g *Generator) WithGroups(groups ...Group) *Generator {
	g.cfg.Groups = append(g.cfg.Groups, groups...)
	return g
}

// WithPackage sets the package name for generated files.
func (g *Generator) WithPackage(name string) *Generator {
	g.cfg.Package = name
	return g
}

// WithLogger sets the logger. slog.Default() is used otherwise.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	g.logger = logger
	return g
}

// WithWorkDir sets the directory handler package paths are resolved from.
// Defaults to the current directory.
func (g *Generator) WithWorkDir(dir string) *Generator {
	g.workDir = dir
	return g
}

// WithTools replaces the default post-emission tools.
func (g *Generator) WithTools(tools ...Tool) *Generator {
	g.tools = tools
	return g
}

// WithoutTools disables the post-emission formatting, type-checking, and
// linting steps.
func (g *Generator) WithoutTools() *Generator {
	g.noTools = true
	return g
}

// ToDir runs the pipeline and writes generated files to dir.
func (g *Generator) ToDir(ctx context.Context, dir string) (*Result, error) {
	g.cfg.OutDir = dir
	return g.run(ctx, true)
}

// Check runs the full pipeline without writing anything: path rewriting,
// naming, contract validation, and collision detection all happen; the
// emission and tooling stages do not.
func (g *Generator) Check(ctx context.Context) (*Result, error) {
	return g.run(ctx, false)
}

var packageNamePattern = regexp.MustCompile(`[^a-z0-9]+`)

// run executes the pipeline. Routes are processed strictly in table order:
// collision detection depends on the full ordered history of previously
// accepted routes, so there is no per-route parallelism.
func (g *Generator) run(ctx context.Context, write bool) (*Result, error) {
	logger := g.logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := validateGroups(g.cfg.Groups); err != nil {
		return nil, err
	}
	if write && g.cfg.OutDir == "" {
		return nil, fmt.Errorf("OutDir is required")
	}

	pkgName := g.cfg.Package
	if pkgName == "" {
		pkgName = packageNamePattern.ReplaceAllString(strings.ToLower(filepath.Base(g.cfg.OutDir)), "")
	}
	if pkgName == "" || pkgName == "." {
		pkgName = "routes"
	}

	handlers, err := loadHandlers(ctx, g.workDir, g.records)
	if err != nil {
		return nil, err
	}

	result := &Result{Groups: make(map[string][]*Route)}
	hist := newHistory()

	for _, rec := range g.records {
		template, err := rewritePath(rec.Pattern)
		if err != nil {
			return nil, err
		}
		name, err := deriveName(rec.Pattern, rec.Handler.Pkg)
		if err != nil {
			return nil, err
		}

		info, skipReason := handlers.inspect(rec.Handler)
		if skipReason != "" {
			logger.Warn("skipping route",
				"pattern", rec.Pattern,
				"handler", rec.Handler.Pkg,
				"reason", skipReason)
			result.Skips = append(result.Skips, Skip{
				Pattern: rec.Pattern,
				Handler: rec.Handler.Pkg,
				Reason:  skipReason,
			})
			continue
		}

		if err := hist.claim(name.Key, info.pkgPath, rec.Pattern); err != nil {
			return nil, err
		}

		group := matchGroup(g.cfg.Groups, rec.Pattern)
		route := &Route{
			Key:      name.Key,
			Type:     name.Type,
			Group:    group,
			Pattern:  rec.Pattern,
			Template: template,
			Method:   resolveMethod(rec.Methods),
			Form:     info.form,
			Controller: Controller{
				Pkg: info.pkgPath,
				Rel: relToDest(g.cfg.OutDir, info.dir),
			},
			input:  info.input,
			output: info.output,
		}
		result.Groups[group] = append(result.Groups[group], route)
	}

	if !write {
		return result, nil
	}

	if err := prepareDest(g.cfg.OutDir); err != nil {
		return nil, err
	}
	if err := writeArtifact(filepath.Join(g.cfg.OutDir, anchorFile), anchorSource(pkgName), createIfAbsent); err != nil {
		return nil, err
	}

	for _, group := range g.emissionOrder(result) {
		routes := result.Groups[group]
		content, err := emitGroup(pkgName, group, routes)
		if err != nil {
			return nil, err
		}
		file := groupFileName(group)
		if err := writeArtifact(filepath.Join(g.cfg.OutDir, file), content, alwaysOverwrite); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, file)
		logger.Info("wrote group bindings", "group", group, "file", file, "routes", len(routes))
	}

	if err := writeArtifact(filepath.Join(g.cfg.OutDir, skipReportFile), skipReport(result.Skips), alwaysOverwrite); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, skipReportFile)

	if !g.noTools {
		tools := g.tools
		if tools == nil {
			tools = defaultTools(g.cfg.OutDir)
		}
		if err := runTools(ctx, logger, tools); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// emissionOrder returns the non-empty groups in configuration declaration
// order, with the fallback group last. Groups are written one at a time,
// fully replacing the previous file before the next begins.
func (g *Generator) emissionOrder(result *Result) []string {
	var order []string
	seen := make(map[string]bool)
	for _, grp := range g.cfg.Groups {
		if !seen[grp.Key] && len(result.Groups[grp.Key]) > 0 {
			seen[grp.Key] = true
			order = append(order, grp.Key)
		}
	}
	if !seen[FallbackGroup] && len(result.Groups[FallbackGroup]) > 0 {
		order = append(order, FallbackGroup)
	}
	return order
}

// skipReport renders the skip list as one line per route.
func skipReport(skips []Skip) []byte {
	var b bytes.Buffer
	for _, s := range skips {
		fmt.Fprintf(&b, "%s\t%s\t%s\n", s.Pattern, s.Handler, s.Reason)
	}
	return b.Bytes()
}

func relToDest(outDir, dir string) string {
	if outDir == "" || dir == "" {
		return dir
	}
	rel, err := filepath.Rel(outDir, dir)
	if err != nil {
		return dir
	}
	return filepath.ToSlash(rel)
}
