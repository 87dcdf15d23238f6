package bindgen

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclConfigFile is the top-level structure of a routebind.hcl file.
//
//	out_dir = "./gen/api"
//	package = "api"
//
//	group "admin" {
//	  prefix = "/admin/"
//	}
//
// group blocks are ordered; their declaration order decides prefix-match
// tie-breaking, exactly as with a programmatic Config.
type hclConfigFile struct {
	OutDir  *string `hcl:"out_dir,optional"`
	Package *string `hcl:"package,optional"`
	Groups  []Group `hcl:"group,block"`
}

// LoadConfig parses an HCL configuration file and validates its groups.
// Malformed keys and prefixes are rejected here, before any route is
// touched.
func LoadConfig(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", path, diags)
	}

	var parsed hclConfigFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", path, diags)
	}

	cfg := &Config{Groups: parsed.Groups}
	if parsed.OutDir != nil {
		cfg.OutDir = *parsed.OutDir
	}
	if parsed.Package != nil {
		cfg.Package = *parsed.Package
	}

	if err := validateGroups(cfg.Groups); err != nil {
		return nil, err
	}
	return cfg, nil
}
