package loader

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"
	"unicode"

	"github.com/mickamy/ormrel/relation"
)

// declaredMembers reads the members of a RelationMembers method from its
// returned slice literal. Elements are relation.Rel(name, call) calls or
// keyed Member literals with literal Name and Body; others are skipped.
func declaredMembers(fset *token.FileSet, src []byte, fn *ast.FuncDecl) []relation.Member {
	var members []relation.Member
	for _, elt := range returnedElements(fn) {
		switch e := elt.(type) {
		case *ast.CallExpr:
			if calleeName(e.Fun) != "Rel" || len(e.Args) != 2 {
				continue
			}
			name, ok := stringLit(e.Args[0])
			if !ok {
				continue
			}
			members = append(members, relation.Member{Name: name, Body: exprSource(fset, src, e.Args[1])})
		case *ast.CompositeLit:
			fields := keyedFields(e)
			name, ok := stringLit(fields["Name"])
			if !ok {
				continue
			}
			body, _ := stringLit(fields["Body"])
			members = append(members, relation.Member{Name: name, Body: body})
		}
	}
	return members
}

// declaredOverrides reads keyed Override literals from a RelationOverrides
// method. Multiple is never read; it defaults from the type.
func declaredOverrides(fn *ast.FuncDecl) []relation.Override {
	var overrides []relation.Override
	for _, elt := range returnedElements(fn) {
		lit, ok := elt.(*ast.CompositeLit)
		if !ok {
			continue
		}
		fields := keyedFields(lit)
		str := func(key string) string {
			s, _ := stringLit(fields[key])
			return s
		}
		o := relation.Override{
			Name:         str("Name"),
			Type:         relationType(fields["Type"]),
			ModelFrom:    str("ModelFrom"),
			ModelTo:      str("ModelTo"),
			KeyFrom:      str("KeyFrom"),
			KeyTo:        str("KeyTo"),
			ModelThrough: str("ModelThrough"),
			KeyThrough:   str("KeyThrough"),
		}
		if o.Name == "" {
			continue
		}
		overrides = append(overrides, o)
	}
	return overrides
}

// returnedElements returns the elements of the first `return []T{...}`.
func returnedElements(fn *ast.FuncDecl) []ast.Expr {
	for _, stmt := range fn.Body.List {
		ret, ok := stmt.(*ast.ReturnStmt)
		if !ok || len(ret.Results) != 1 {
			continue
		}
		lit, ok := ret.Results[0].(*ast.CompositeLit)
		if !ok {
			continue
		}
		if _, ok := lit.Type.(*ast.ArrayType); ok {
			return lit.Elts
		}
	}
	return nil
}

func keyedFields(lit *ast.CompositeLit) map[string]ast.Expr {
	fields := make(map[string]ast.Expr, len(lit.Elts))
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		if key, ok := kv.Key.(*ast.Ident); ok {
			fields[key.Name] = kv.Value
		}
	}
	return fields
}

func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	}
	return ""
}

func stringLit(e ast.Expr) (string, bool) {
	lit, ok := e.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return s, true
}

// relationType accepts a string literal or a relation type constant such
// as relation.HasManyType.
func relationType(e ast.Expr) relation.Type {
	if s, ok := stringLit(e); ok {
		return relation.Type(s)
	}
	name := strings.TrimSuffix(calleeName(e), "Type")
	if name == "" {
		return ""
	}
	t := relation.Type(string(unicode.ToLower(rune(name[0]))) + name[1:])
	if !t.Valid() {
		return ""
	}
	return t
}

func exprSource(fset *token.FileSet, src []byte, e ast.Expr) string {
	start := fset.Position(e.Pos()).Offset
	end := fset.Position(e.End()).Offset
	if start < 0 || end > len(src) || start >= end {
		return ""
	}
	return string(src[start:end])
}
