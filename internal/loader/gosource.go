package loader

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/mickamy/ormrel/internal/annotation"
	"github.com/mickamy/ormrel/internal/expr"
	"github.com/mickamy/ormrel/internal/naming"
	"github.com/mickamy/ormrel/relation"
)

// Methods read for declaration metadata rather than treated as members.
const (
	methodTableName         = "TableName"
	methodIDAttribute       = "IDAttribute"
	methodModelName         = "ModelName"
	methodRelationMembers   = "RelationMembers"
	methodRelationOverrides = "RelationOverrides"
)

type method struct {
	name string
	decl *ast.FuncDecl
}

// ParseGo reads the Go file at filePath and returns a Model for every
// struct that declares a table (a TableName method returning a string
// literal) or has at least one method holding a relation.
//
// Each remaining method becomes a member, in source order. Its body is the
// method's doc comment followed by the method body source. RelationMembers
// and RelationOverrides methods returning slice literals contribute their
// elements in place (see relation.RelationDeclarer).
func ParseGo(filePath string) ([]Model, error) {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filePath, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	var structs []string
	methods := make(map[string][]method)

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				if _, ok := ts.Type.(*ast.StructType); ok {
					structs = append(structs, ts.Name.Name)
				}
			}
		case *ast.FuncDecl:
			recv := receiverName(d)
			if recv == "" || d.Body == nil {
				continue
			}
			methods[recv] = append(methods[recv], method{name: d.Name.Name, decl: d})
		}
	}

	var models []Model
	for _, name := range structs {
		m, ok := buildModel(fset, src, name, methods[name])
		if ok {
			models = append(models, m)
		}
	}
	return models, nil
}

func buildModel(fset *token.FileSet, src []byte, name string, methods []method) (Model, bool) {
	decl := relation.Declaration{}
	hasTable := false
	hasRelation := false

	for _, m := range methods {
		switch m.name {
		case methodTableName:
			if lit, ok := returnedString(m.decl); ok {
				decl.Table = lit
				hasTable = true
			}
			continue
		case methodIDAttribute:
			decl.IDAttribute, _ = returnedString(m.decl)
			continue
		case methodModelName:
			decl.ModelName, _ = returnedString(m.decl)
			continue
		case methodRelationMembers:
			members := declaredMembers(fset, src, m.decl)
			decl.Members = append(decl.Members, members...)
			hasRelation = hasRelation || len(members) > 0
			continue
		case methodRelationOverrides:
			overrides := declaredOverrides(m.decl)
			decl.Relations = append(decl.Relations, overrides...)
			hasRelation = hasRelation || len(overrides) > 0
			continue
		}

		body := memberBody(fset, src, m.decl)
		if isRelation(body) {
			hasRelation = true
		}
		decl.Members = append(decl.Members, relation.Member{Name: m.name, Body: body})
	}

	if !hasTable && !hasRelation {
		return Model{}, false
	}
	if !hasTable {
		decl.Table = inflection.Plural(naming.CamelToSnake(name))
	}
	return Model{Name: name, Declaration: decl}, true
}

func isRelation(body string) bool {
	if _, ok := annotation.Parse(body); ok {
		return true
	}
	_, ok := expr.Parse(body)
	return ok
}

// receiverName returns the base type name of a method receiver, or "" for
// plain functions and generic receivers.
func receiverName(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return ""
	}
	typ := fn.Recv.List[0].Type
	if star, ok := typ.(*ast.StarExpr); ok {
		typ = star.X
	}
	if id, ok := typ.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

// returnedString reports the literal of a `return "..."` body.
func returnedString(fn *ast.FuncDecl) (string, bool) {
	if len(fn.Body.List) != 1 {
		return "", false
	}
	ret, ok := fn.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return "", false
	}
	lit, ok := ret.Results[0].(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return s, true
}

// memberBody joins the raw doc comment and the body source of fn.
func memberBody(fset *token.FileSet, src []byte, fn *ast.FuncDecl) string {
	var b strings.Builder
	if fn.Doc != nil {
		for _, c := range fn.Doc.List {
			b.WriteString(c.Text)
			b.WriteByte('\n')
		}
	}
	start := fset.Position(fn.Body.Lbrace).Offset
	end := fset.Position(fn.Body.Rbrace).Offset + 1
	if start >= 0 && end <= len(src) && start < end {
		b.Write(src[start:end])
	}
	return b.String()
}
