package bindgen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"strings"
)

// runtimeImport is the package generated files depend on for descriptors
// and path interpolation.
const runtimeImport = "github.com/routebind/routebind"

// Route is one accepted, validated route as it appears in generated
// output.
type Route struct {
	Key      string // UPPER_SNAKE entry name in the group's routes mapping
	Type     string // PascalCase type alias name, ending in Route
	Group    string
	Pattern  string // original pattern with :name markers
	Template string // emitted template with {{ name }} placeholders
	Method   string
	Form     bool

	Controller Controller

	input  types.Type
	output types.Type
}

// Controller identifies the handler package backing a route.
type Controller struct {
	Pkg string // import path
	Rel string // directory relative to the destination, for diagnostics
}

// emitGroup renders the generated binding file for one group. The output
// is gofmt-formatted, so regenerating an unchanged route table produces a
// byte-identical file.
func emitGroup(pkgName, group string, routes []*Route) ([]byte, error) {
	type emitted struct {
		route                 *Route
		inputName, outputName string
		inputShape, outShape  string
		hasInput, hasOutput   bool
	}

	entries := make([]emitted, 0, len(routes))
	for _, r := range routes {
		base := strings.TrimSuffix(r.Type, "Route")
		e := emitted{route: r, inputName: "routebind.None", outputName: "routebind.None"}
		p := newProjector()
		if shape, ok := p.structShape(r.input); ok {
			e.inputName, e.inputShape, e.hasInput = base+"Input", shape, true
		}
		if shape, ok := p.structShape(r.output); ok {
			e.outputName, e.outShape, e.hasOutput = base+"Output", shape, true
		}
		entries = append(entries, e)
	}

	var b bytes.Buffer

	fmt.Fprintf(&b, "// Code generated by routebind. DO NOT EDIT.\n")
	fmt.Fprintf(&b, "//\n")
	fmt.Fprintf(&b, "// Bindings for the %q route group. Shared declarations live in\n", group)
	fmt.Fprintf(&b, "// %s alongside this file.\n\n", anchorFile)
	fmt.Fprintf(&b, "package %s\n\n", pkgName)
	fmt.Fprintf(&b, "import routebind %q\n\n", runtimeImport)

	for _, e := range entries {
		r := e.route
		if e.hasInput {
			fmt.Fprintf(&b, "// %s is the request shape declared by %s.\n", e.inputName, r.Controller.Pkg)
			fmt.Fprintf(&b, "type %s %s\n\n", e.inputName, e.inputShape)
		}
		if e.hasOutput {
			fmt.Fprintf(&b, "// %s is the serialized response shape of %s.\n", e.outputName, r.Controller.Pkg)
			fmt.Fprintf(&b, "type %s %s\n\n", e.outputName, e.outShape)
		}
		fmt.Fprintf(&b, "// %s binds %s %s.\n", r.Type, r.Method, r.Template)
		fmt.Fprintf(&b, "type %s = routebind.Route[%s, %s]\n\n", r.Type, e.inputName, e.outputName)
	}

	mappingName := identifier(pascal(strings.Split(group, "_"))) + "Routes"
	fmt.Fprintf(&b, "// %s maps each route key in the %q group to its descriptor.\n", mappingName, group)
	fmt.Fprintf(&b, "var %s = struct {\n", mappingName)
	for _, e := range entries {
		fmt.Fprintf(&b, "\t%s %s\n", e.route.Key, e.route.Type)
	}
	fmt.Fprintf(&b, "}{\n")
	for _, e := range entries {
		r := e.route
		fmt.Fprintf(&b, "\t%s: routebind.Register[%s, %s](routebind.Meta{\n", r.Key, e.inputName, e.outputName)
		fmt.Fprintf(&b, "\t\tPath:   %q,\n", r.Template)
		fmt.Fprintf(&b, "\t\tMethod: %q,\n", r.Method)
		if r.Form {
			fmt.Fprintf(&b, "\t\tForm:   true,\n")
		}
		fmt.Fprintf(&b, "\t}),\n")
	}
	fmt.Fprintf(&b, "}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format group %s: %w", group, err)
	}
	return src, nil
}

// groupFileName is the on-disk name for a group's generated file.
func groupFileName(group string) string {
	return "routes_" + group + ".go"
}

// anchorSource renders the shared anchor file. It carries the package doc
// and is created once, never overwritten, so a project can add shared
// declarations next to the generated files.
func anchorSource(pkgName string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Package %s contains route bindings generated by routebind.\n", pkgName)
	fmt.Fprintf(&b, "//\n")
	fmt.Fprintf(&b, "// The routes_*.go files in this directory are rewritten on every\n")
	fmt.Fprintf(&b, "// generator run. This file is created once and left alone; shared\n")
	fmt.Fprintf(&b, "// declarations may be added to it.\n")
	fmt.Fprintf(&b, "package %s\n", pkgName)
	return b.Bytes()
}
