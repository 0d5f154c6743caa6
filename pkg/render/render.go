package render

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Parse compiles a text template with the sprig helpers available.
func Parse(name, tmplStr string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return tmpl, nil
}

// RenderTemplate executes tmplStr against data and returns the output.
func RenderTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := Parse("render", tmplStr)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Write executes tmpl against data straight into w.
func Write(w io.Writer, tmpl *template.Template, data any) error {
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return nil
}
