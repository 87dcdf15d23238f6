// Package bindgen generates typed client binding files from a web
// application's registered routes.
//
// The pipeline partitions the route table into named groups, derives a
// stable identifier pair per route, validates each route's controller
// package against the handler contract, and emits one Go binding file per
// group. Individual routes can be skipped without aborting the run; naming
// collisions, unparsable paths, and malformed configuration are fatal.
package bindgen

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	groupKeyPattern    = regexp.MustCompile(`^[a-z0-9_]+$`)
	groupPrefixPattern = regexp.MustCompile(`^/(?:[a-z0-9-]+/)*$`)
)

var validate = validator.New()

func init() {
	// Group syntax checks are registered as named validators so the tags on
	// Group document the contract next to the HCL tags.
	must(validate.RegisterValidation("groupkey", func(fl validator.FieldLevel) bool {
		return groupKeyPattern.MatchString(fl.Field().String())
	}))
	must(validate.RegisterValidation("groupprefix", func(fl validator.FieldLevel) bool {
		return groupPrefixPattern.MatchString(fl.Field().String())
	}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// FallbackGroup receives every route whose path matches no configured
// prefix.
const FallbackGroup = "internal"

// Group names one route partition. Key becomes part of the generated file
// name; Prefix is matched literally against route paths.
type Group struct {
	Key    string `hcl:"key,label" validate:"required,groupkey"`
	Prefix string `hcl:"prefix" validate:"required,groupprefix"`
}

// Config holds the configuration for binding generation.
type Config struct {
	// OutDir is the destination directory for generated files.
	OutDir string

	// Groups partitions routes by path prefix. Declaration order is
	// significant: the first matching prefix wins, so overlapping prefixes
	// are tie-broken by position, never by specificity.
	Groups []Group

	// Package is the package name for generated files. Defaults to the
	// base name of OutDir.
	Package string
}

// validateGroups rejects malformed group keys and prefixes with an error
// naming the offender. Duplicate keys are rejected too; a duplicate would
// silently shadow the later declaration.
func validateGroups(groups []Group) error {
	seen := make(map[string]bool, len(groups))
	for _, g := range groups {
		if err := validate.Struct(g); err != nil {
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				return err
			}
			for _, fe := range fieldErrs {
				switch fe.Field() {
				case "Key":
					return &ConfigError{Key: g.Key, Value: g.Key, Reason: "key must be lowercase alphanumeric or underscore"}
				case "Prefix":
					return &ConfigError{Key: g.Key, Value: g.Prefix, Reason: "prefix must start and end with / and contain only lowercase alphanumeric or hyphen segments"}
				}
			}
			return err
		}
		if seen[g.Key] {
			return &ConfigError{Key: g.Key, Value: g.Prefix, Reason: "duplicate group key"}
		}
		seen[g.Key] = true
	}
	return nil
}

// matchGroup returns the key of the first configured group whose prefix is
// a literal prefix of path, or FallbackGroup when none match.
func matchGroup(groups []Group, path string) string {
	for _, g := range groups {
		if strings.HasPrefix(path, g.Prefix) {
			return g.Key
		}
	}
	return FallbackGroup
}
