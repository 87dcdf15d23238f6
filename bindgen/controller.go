package bindgen

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// Ref locates a route's handler: a Go package import path plus the
// exported declaration to inspect. An empty Symbol means Controller.
type Ref struct {
	Pkg    string `json:"pkg"`
	Symbol string `json:"symbol,omitempty"`
}

// RouteRecord is one raw route as known to the host router. Records are
// read-only input to the pipeline and are consumed in table order.
type RouteRecord struct {
	Pattern string   `json:"pattern"`
	Methods []string `json:"methods"`
	Handler Ref      `json:"handler"`
}

const defaultSymbol = "Controller"

// The handler contract: the referenced symbol must be an exported struct
// type with a Handle method. An Input field, when present, must be struct
// shaped and becomes the route's request shape. A Form method, when
// present, must be func() bool; a literal return true/false supplies the
// route's form flag.

// controllerInfo is the validated view of one handler.
type controllerInfo struct {
	pkgPath string
	dir     string
	form    bool
	input   types.Type // nil when no Input member is declared
	output  types.Type // nil when Handle returns nothing beyond error
}

// handlerSet holds the type information for every handler package in the
// run, loaded once up front.
type handlerSet struct {
	pkgs map[string]*packages.Package
}

// loadHandlers loads all handler packages referenced by records in a
// single go/packages pass. A package that fails to load does not fail the
// run here; the failure surfaces as a per-route skip during inspection.
func loadHandlers(ctx context.Context, dir string, records []RouteRecord) (*handlerSet, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, r := range records {
		if r.Handler.Pkg == "" || seen[r.Handler.Pkg] {
			continue
		}
		seen[r.Handler.Pkg] = true
		paths = append(paths, r.Handler.Pkg)
	}

	set := &handlerSet{pkgs: make(map[string]*packages.Package, len(paths))}
	if len(paths) == 0 {
		return set, nil
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, paths...)
	if err != nil {
		return nil, fmt.Errorf("load handler packages: %w", err)
	}
	for _, pkg := range pkgs {
		set.pkgs[pkg.PkgPath] = pkg
	}
	return set, nil
}

// inspect validates the referenced handler against the contract. A
// non-empty skip reason excludes the route from output without aborting
// the run.
func (s *handlerSet) inspect(ref Ref) (*controllerInfo, string) {
	symbol := ref.Symbol
	if symbol == "" {
		symbol = defaultSymbol
	}

	pkg, ok := s.pkgs[ref.Pkg]
	if !ok {
		return nil, fmt.Sprintf("handler package %s not found", ref.Pkg)
	}
	if len(pkg.Errors) > 0 {
		return nil, fmt.Sprintf("handler package %s failed to load: %v", ref.Pkg, pkg.Errors[0])
	}

	obj := pkg.Types.Scope().Lookup(symbol)
	if obj == nil || !obj.Exported() {
		return nil, fmt.Sprintf("no exported %s declaration", symbol)
	}
	typeName, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Sprintf("%s is not a type", symbol)
	}
	structType, ok := typeName.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Sprintf("%s is not a struct type", symbol)
	}

	handle := methodNamed(typeName.Type(), pkg.Types, "Handle")
	if handle == nil {
		return nil, fmt.Sprintf("%s has no Handle method", symbol)
	}

	info := &controllerInfo{
		pkgPath: ref.Pkg,
		dir:     packageDir(pkg),
		output:  handleResult(handle),
	}

	for i := 0; i < structType.NumFields(); i++ {
		field := structType.Field(i)
		if field.Name() != "Input" {
			continue
		}
		if !isStructShaped(field.Type()) {
			return nil, "Input member is not a struct type"
		}
		info.input = field.Type()
	}

	if form := methodNamed(typeName.Type(), pkg.Types, "Form"); form != nil {
		sig := form.Type().(*types.Signature)
		if sig.Params().Len() != 0 || sig.Results().Len() != 1 || !isBool(sig.Results().At(0).Type()) {
			return nil, "Form member is not a niladic bool method"
		}
		info.form = literalFormValue(pkg, symbol)
	}

	return info, ""
}

// methodNamed resolves a method on t (value or pointer receiver, including
// promoted ones).
func methodNamed(t types.Type, pkg *types.Package, name string) *types.Func {
	obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(t), true, pkg, name)
	fn, ok := obj.(*types.Func)
	if !ok {
		return nil
	}
	return fn
}

// handleResult returns Handle's first non-error result, or nil when the
// handler returns nothing to serialize.
func handleResult(handle *types.Func) types.Type {
	sig := handle.Type().(*types.Signature)
	results := sig.Results()
	for i := 0; i < results.Len(); i++ {
		t := results.At(i).Type()
		if !isErrorType(t) {
			return t
		}
	}
	return nil
}

func isErrorType(t types.Type) bool {
	named, ok := t.(*types.Named)
	return ok && named.Obj().Pkg() == nil && named.Obj().Name() == "error"
}

func isStructShaped(t types.Type) bool {
	if ptr, ok := t.Underlying().(*types.Pointer); ok {
		t = ptr.Elem()
	}
	_, ok := t.Underlying().(*types.Struct)
	return ok
}

func isBool(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	return ok && basic.Kind() == types.Bool
}

// literalFormValue reads the literal returned by the symbol's Form method.
// Anything other than a plain `return true` reads as false.
func literalFormValue(pkg *packages.Package, symbol string) bool {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Name.Name != "Form" || fn.Recv == nil || fn.Body == nil {
				continue
			}
			if receiverTypeName(fn.Recv) != symbol {
				continue
			}
			if len(fn.Body.List) != 1 {
				return false
			}
			ret, ok := fn.Body.List[0].(*ast.ReturnStmt)
			if !ok || len(ret.Results) != 1 {
				return false
			}
			ident, ok := ret.Results[0].(*ast.Ident)
			return ok && ident.Name == "true"
		}
	}
	return false
}

func receiverTypeName(recv *ast.FieldList) string {
	if len(recv.List) == 0 {
		return ""
	}
	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}
	return ""
}
