// gen is a codegen cmd for generating the per-width checked helpers from template.
package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// width describes one native unsigned type. Wide names a native type holding
// at least twice as many bits; it is empty for uint64, which widens through
// math/bits instead.
type width struct {
	Name string
	Bits int
	Wide string
}

func main() {
	buf, err := os.ReadFile("internal/numeric.tmpl")
	if err != nil {
		log.Fatal("reading template file:", err)
	}
	titleCaser := cases.Title(language.English)
	tmpl := template.Must(template.New("numeric").
		Funcs(template.FuncMap{"title": titleCaser.String}).
		Parse(string(buf)))
	b := &bytes.Buffer{}
	if err = tmpl.Execute(b, struct {
		Widths []width
	}{
		Widths: []width{
			{Name: "uint8", Bits: 8, Wide: "uint16"},
			{Name: "uint16", Bits: 16, Wide: "uint32"},
			{Name: "uint32", Bits: 32, Wide: "uint64"},
			{Name: "uint64", Bits: 64},
		},
	}); err != nil {
		log.Fatal("executing template:", err)
	}
	if buf, err = format.Source(b.Bytes()); err != nil {
		log.Fatal("formatting output:", err)
	}
	if err = os.WriteFile("numeric.go", buf, 0o644); err != nil {
		log.Fatal("writing go file:", err)
	}
}
