package page

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

var (
	ErrMissingImport    = errors.New("page: missing import")
	ErrMissingDirective = errors.New("page: missing client directive")
)

// Data is what a page template sees.
type Data struct {
	Identifier      string
	Title           string
	Slug            string
	WidgetImport    string
	LayoutImport    string
	ClientDirective string
}

var funcs = template.FuncMap{
	"attr": attrEscaper.Replace,
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;", `<`, "&lt;", `>`, "&gt;")

var defaultTemplate = template.Must(template.New("page").Funcs(funcs).Parse(pageTemplateSource))

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{tmpl: defaultTemplate}
}

// ParseRenderer builds a Renderer from a project supplied template. The
// template has access to the same fields and the attr helper.
func ParseRenderer(name string, source string) (*Renderer, error) {
	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse page template %s: %w", name, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(data Data) ([]byte, error) {
	if data.WidgetImport == "" || data.LayoutImport == "" {
		return nil, ErrMissingImport
	}

	if data.ClientDirective == "" {
		return nil, ErrMissingDirective
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render page %s: %w", data.Slug, err)
	}

	return buf.Bytes(), nil
}
