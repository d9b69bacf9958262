// Package render turns interface descriptions into gofmt-formatted Go source.
package render

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"github.com/aretw0/staged/pkg/domain"
)

const header = "// Code generated by staged. DO NOT EDIT."

var fileTemplate = template.Must(template.New("interface").Parse(`{{.Header}}

package {{.PackageName}}
{{if .Imports}}
import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{end}}
{{- range .Doc}}
// {{.}}
{{- end}}
type {{.Name}}{{.TypeParams}} interface {
{{- range .Embeds}}
	{{.}}
{{- end}}
{{- range .Methods}}
	{{.Name}}({{.Params}}){{if .Returns}} {{.Returns}}{{end}}
{{- end}}
}
`))

type fileData struct {
	Header      string
	PackageName string
	Imports     []string
	Doc         []string
	Name        string
	TypeParams  string
	Embeds      []string
	Methods     []methodData
}

type methodData struct {
	Name    string
	Params  string
	Returns string
}

// File is a rendered source file.
type File struct {
	Path    string
	Content []byte
}

// Render produces the source of c. The path is relative to the output root.
func Render(c *domain.Clazz) (File, error) {
	q := &qualifier{pkg: c.Package, imports: map[string]bool{}}
	data := fileData{
		Header:      header,
		PackageName: PackageName(c.Package),
		Doc:         docLines(c),
		Name:        c.Name,
		TypeParams:  typeParams(c.Generics),
	}
	for _, i := range c.Interfaces {
		data.Embeds = append(data.Embeds, q.expr(i))
	}
	for _, m := range c.Methods {
		md := methodData{Name: Exported(m.Name)}
		params := make([]string, len(m.Params))
		for i, p := range m.Params {
			typ := "any"
			if p.Type != nil {
				typ = q.expr(p.Type)
			}
			params[i] = p.Name + " " + typ
		}
		md.Params = strings.Join(params, ", ")
		if m.Returns != nil {
			md.Returns = q.expr(m.Returns)
		}
		data.Methods = append(data.Methods, md)
	}
	data.Imports = q.sorted()

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return File{}, fmt.Errorf("render %s: %w", c.Key(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return File{}, fmt.Errorf("format %s: %w", c.Key(), err)
	}
	return File{Path: FilePath(c), Content: src}, nil
}

// RenderAll renders every clazz, failing on the first error.
func RenderAll(clazzes []*domain.Clazz) ([]File, error) {
	files := make([]File, 0, len(clazzes))
	for _, c := range clazzes {
		f, err := Render(c)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// FilePath maps a clazz to <package>/<snake_name>.go.
func FilePath(c *domain.Clazz) string {
	return filepath.Join(PackageName(c.Package), SnakeCase(c.Name)+".go")
}

// PackageName returns the last element of an import path.
func PackageName(pkg string) string {
	if pkg == "" {
		return "main"
	}
	return path.Base(pkg)
}

func docLines(c *domain.Clazz) []string {
	var lines []string
	switch {
	case c.Attributes.EntryPoint:
		lines = append(lines, c.Name+" is the entry point of the DSL.")
	case c.Attributes.Transparent:
		members := make([]string, len(c.Interfaces))
		for i, m := range c.Interfaces {
			members[i] = m.Name
		}
		lines = append(lines, fmt.Sprintf("%s accepts any of %s.", c.Name, strings.Join(members, ", ")))
	case c.Attributes.Terminal:
		lines = append(lines, c.Name+" ends a call chain.")
	}
	if c.Attributes.Composite {
		lines = append(lines, "Its method nests another DSL.")
	}
	return lines
}

func typeParams(generics []*domain.TypeRef) string {
	if len(generics) == 0 {
		return ""
	}
	names := make([]string, len(generics))
	for i, g := range generics {
		names[i] = g.Name
	}
	return "[" + strings.Join(names, ", ") + " any]"
}

type qualifier struct {
	pkg     string
	imports map[string]bool
}

func (q *qualifier) expr(t *domain.TypeRef) string {
	name := t.Name
	if (t.Kind == domain.KindClass || t.Kind == domain.KindInterface) && t.Package != "" && t.Package != q.pkg {
		q.imports[t.Package] = true
		name = PackageName(t.Package) + "." + t.Name
	}
	if len(t.Generics) == 0 {
		return name
	}
	args := make([]string, len(t.Generics))
	for i, g := range t.Generics {
		args[i] = q.expr(g)
	}
	return name + "[" + strings.Join(args, ", ") + "]"
}

func (q *qualifier) sorted() []string {
	out := make([]string, 0, len(q.imports))
	for p := range q.imports {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Exported upper-cases the first letter of a method name.
func Exported(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// SnakeCase converts CreateableCircleInterface to createable_circle_interface.
func SnakeCase(s string) string {
	var sb strings.Builder
	r := []rune(s)
	for i, c := range r {
		if unicode.IsUpper(c) {
			if i > 0 && (unicode.IsLower(r[i-1]) || unicode.IsDigit(r[i-1]) || (i+1 < len(r) && unicode.IsLower(r[i+1]) && unicode.IsUpper(r[i-1]))) {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(c))
			continue
		}
		sb.WriteRune(c)
	}
	return sb.String()
}
