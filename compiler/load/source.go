package load

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"
)

// Directive marks a Go struct as a value record:
//
//	//structarith:derive
//	type TokenMap struct {
//		Sol uint64
//		Eth uint64
//	}
const Directive = "//structarith:derive"

// LoadSource loads the records declared by annotated structs in a Go file.
// Generated files yield no records.
func LoadSource(path string) ([]*Record, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, nil, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	if ast.IsGenerated(f) {
		return nil, nil
	}
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	var records []*Record
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}
			if !hasDirective(doc) {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				return nil, fmt.Errorf("%s: %s is annotated but is not a struct", fset.Position(ts.Pos()), ts.Name.Name)
			}
			if ts.TypeParams != nil {
				return nil, fmt.Errorf("%s: %s: generic records are not supported", fset.Position(ts.Pos()), ts.Name.Name)
			}
			r := &Record{
				Name:     ts.Name.Name,
				Package:  f.Name.Name,
				Declared: true,
				Dir:      dir,
				Pos:      fset.Position(ts.Pos()).String(),
			}
			for _, fd := range st.Fields.List {
				if len(fd.Names) == 0 {
					return nil, fmt.Errorf("%s: %s: embedded fields are not supported", fset.Position(fd.Pos()), r.Name)
				}
				typ := types.ExprString(fd.Type)
				for _, name := range fd.Names {
					r.Fields = append(r.Fields, &Field{
						Name:    name.Name,
						Type:    typ,
						Comment: fieldComment(fd),
					})
				}
			}
			records = append(records, r)
		}
	}
	return records, nil
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == Directive {
			return true
		}
	}
	return false
}

func fieldComment(fd *ast.Field) string {
	switch {
	case fd.Doc != nil:
		return strings.TrimSpace(fd.Doc.Text())
	case fd.Comment != nil:
		return strings.TrimSpace(fd.Comment.Text())
	default:
		return ""
	}
}
