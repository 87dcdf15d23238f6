package bindgen

import (
	"fmt"
	"go/types"
	"reflect"
	"strings"
)

// Serialization-aware projection of handler types into generated source.
//
// The emitted shapes describe what encoding/json actually produces for a
// handler's input and output: funcs and chans vanish, unexported fields
// vanish, arrays and slices project element-wise, nested structs are
// flattened into explicit struct literals so the generated file stands on
// its own with no imports back into server packages.

type projector struct {
	// active guards against recursive types; a cycle degrades to any.
	active map[*types.Named]bool
}

func newProjector() *projector {
	return &projector{active: make(map[*types.Named]bool)}
}

// structShape renders t's projection as the body of a named struct
// declaration. ok is false when t is not object shaped and therefore has
// no generated declaration.
func (p *projector) structShape(t types.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	t = types.Unalias(t)
	if ptr, ok := t.Underlying().(*types.Pointer); ok {
		t = ptr.Elem()
	}
	if named, ok := t.(*types.Named); ok {
		if qualifiedName(named) == "time.Time" {
			return "", false
		}
		t = named.Underlying()
	}
	structType, ok := t.(*types.Struct)
	if !ok {
		return "", false
	}
	return p.structExpr(structType, 0), true
}

// expr renders the projection of t as a type expression at the given
// indent depth. ok is false when t has no JSON representation at all.
func (p *projector) expr(t types.Type, depth int) (string, bool) {
	switch t := t.(type) {
	case *types.Basic:
		switch {
		case t.Info()&types.IsComplex != 0, t.Kind() == types.UnsafePointer, t.Kind() == types.Invalid:
			return "", false
		default:
			return t.Name(), true
		}
	case *types.Pointer:
		elem, ok := p.expr(t.Elem(), depth)
		if !ok {
			return "", false
		}
		return "*" + elem, true
	case *types.Slice:
		return p.elementwise("[]", t.Elem(), depth)
	case *types.Array:
		return p.elementwise(fmt.Sprintf("[%d]", t.Len()), t.Elem(), depth)
	case *types.Map:
		key, ok := p.expr(t.Key(), depth)
		if !ok || !isMapKey(t.Key()) {
			return "", false
		}
		value, ok := p.expr(t.Elem(), depth)
		if !ok {
			value = "any"
		}
		return "map[" + key + "]" + value, true
	case *types.Named:
		return p.named(t, depth)
	case *types.Alias:
		return p.expr(types.Unalias(t), depth)
	case *types.Struct:
		return p.structExpr(t, depth), true
	case *types.Interface:
		// Dynamic values serialize, but their static shape is opaque.
		return "any", true
	case *types.Signature, *types.Chan:
		return "", false
	default:
		return "any", true
	}
}

func (p *projector) named(t *types.Named, depth int) (string, bool) {
	switch qualifiedName(t) {
	case "time.Time":
		// encoding/json serializes time.Time as an RFC 3339 string.
		return "string", true
	case "encoding/json.RawMessage":
		return "any", true
	}
	if p.active[t] {
		return "any", true
	}
	p.active[t] = true
	defer delete(p.active, t)
	return p.expr(t.Underlying(), depth)
}

func (p *projector) elementwise(prefix string, elem types.Type, depth int) (string, bool) {
	inner, ok := p.expr(elem, depth)
	if !ok {
		inner = "any"
	}
	return prefix + inner, true
}

// structExpr renders a struct's serializable fields. Unexported fields,
// `json:"-"` fields, and fields with no JSON representation are dropped.
func (p *projector) structExpr(t *types.Struct, depth int) string {
	indent := strings.Repeat("\t", depth+1)
	var b strings.Builder
	b.WriteString("struct {\n")
	for i := 0; i < t.NumFields(); i++ {
		field := t.Field(i)
		if !field.Exported() {
			continue
		}
		tag := jsonTag(t.Tag(i))
		if tag == "-" {
			continue
		}
		fieldExpr, ok := p.expr(field.Type(), depth+1)
		if !ok {
			continue
		}
		b.WriteString(indent)
		b.WriteString(field.Name())
		b.WriteString(" ")
		b.WriteString(fieldExpr)
		if raw := rawJSONTag(t.Tag(i)); raw != "" {
			b.WriteString(" `json:\"" + raw + "\"`")
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("\t", depth))
	b.WriteString("}")
	return b.String()
}

func qualifiedName(t *types.Named) string {
	obj := t.Obj()
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Path() + "." + obj.Name()
}

func isMapKey(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return false
	}
	return basic.Info()&(types.IsString|types.IsInteger) != 0
}

// jsonTag returns the name portion of a field's json tag, or "".
func jsonTag(tag string) string {
	raw := rawJSONTag(tag)
	if raw == "" {
		return ""
	}
	name, _, _ := strings.Cut(raw, ",")
	return name
}

// rawJSONTag returns the full json tag value, or "".
func rawJSONTag(tag string) string {
	return reflect.StructTag(tag).Get("json")
}
