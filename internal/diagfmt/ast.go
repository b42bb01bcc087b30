package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"graft/internal/ast"
	"graft/internal/source"
	"graft/internal/token"
)

var (
	tokenType = reflect.TypeOf(token.Token{})
	spanType  = reflect.TypeOf(source.Span{})
	infoType  = reflect.TypeOf(ast.Info{})
)

// BuildASTJSON converts a node into a JSON-friendly tree. Every struct node
// becomes an object with a "node" kind, a "span" and its populated fields;
// separator tokens inside punctuated sequences are dropped.
func BuildASTJSON(node ast.Node) any {
	return astValue(reflect.ValueOf(node))
}

// FormatASTJSON writes the tree for a parsed file as indented JSON.
func FormatASTJSON(w io.Writer, f *ast.File) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTJSON(f))
}

// FormatASTTree writes an indented one-line-per-node outline of the tree.
func FormatASTTree(w io.Writer, node ast.Node) error {
	treeValue(w, reflect.ValueOf(node), "", 0)
	return nil
}

func astValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return astValue(v.Elem())
	case reflect.Struct:
		return astStruct(v)
	case reflect.Slice:
		if v.Len() == 0 {
			return nil
		}
		arr := make([]any, v.Len())
		for i := range v.Len() {
			arr[i] = astValue(v.Index(i))
		}
		return arr
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	default:
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		return v.Interface()
	}
}

func astStruct(v reflect.Value) any {
	t := v.Type()
	switch t {
	case tokenType:
		tok := v.Interface().(token.Token)
		if tok.Text != "" {
			return tok.Text
		}
		return tok.Kind.String()
	case spanType:
		sp := v.Interface().(source.Span)
		return fmt.Sprintf("%d..%d", sp.Start, sp.End)
	}
	if strings.HasPrefix(t.Name(), "Punctuated[") {
		return astValue(v.FieldByName("Items"))
	}

	out := map[string]any{"node": t.Name()}
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Anonymous && f.Type == infoType {
			sp := v.Field(i).Interface().(ast.Info).Span
			out["span"] = fmt.Sprintf("%d..%d", sp.Start, sp.End)
			continue
		}
		if fv := astValue(v.Field(i)); fv != nil && fv != false && fv != "" {
			out[strings.ToLower(f.Name[:1])+f.Name[1:]] = fv
		}
	}
	return out
}

func treeValue(w io.Writer, v reflect.Value, label string, depth int) {
	switch v.Kind() {
	case reflect.Invalid:
		return
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return
		}
		treeValue(w, v.Elem(), label, depth)
	case reflect.Slice:
		for i := range v.Len() {
			treeValue(w, v.Index(i), label, depth)
		}
	case reflect.Struct:
		t := v.Type()
		if t == tokenType || t == spanType {
			return
		}
		if strings.HasPrefix(t.Name(), "Punctuated[") {
			treeValue(w, v.FieldByName("Items"), label, depth)
			return
		}
		treeStruct(w, v, label, depth)
	}
}

func treeStruct(w io.Writer, v reflect.Value, label string, depth int) {
	t := v.Type()
	line := strings.Repeat("  ", depth)
	if label != "" {
		line += label + ": "
	}
	line += t.Name()

	var span string
	var scalars []string
	for i := range t.NumField() {
		f := t.Field(i)
		fv := v.Field(i)
		if f.Anonymous && f.Type == infoType {
			sp := fv.Interface().(ast.Info).Span
			span = fmt.Sprintf(" %d..%d", sp.Start, sp.End)
			continue
		}
		switch fv.Kind() {
		case reflect.String:
			if fv.String() != "" {
				scalars = append(scalars, fmt.Sprintf("%s=%q", f.Name, fv.String()))
			}
		case reflect.Bool:
			if fv.Bool() {
				scalars = append(scalars, f.Name)
			}
		default:
			if fv.Kind() >= reflect.Int && fv.Kind() <= reflect.Uintptr {
				if s, ok := fv.Interface().(fmt.Stringer); ok {
					scalars = append(scalars, fmt.Sprintf("%s=%s", f.Name, s.String()))
				}
			}
		}
	}
	sort.Strings(scalars)
	line += span
	if len(scalars) > 0 {
		line += " [" + strings.Join(scalars, " ") + "]"
	}
	fmt.Fprintln(w, line)

	for i := range t.NumField() {
		f := t.Field(i)
		if f.Anonymous && f.Type == infoType {
			continue
		}
		treeValue(w, v.Field(i), f.Name, depth+1)
	}
}
