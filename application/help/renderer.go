// Package help renders shell help text for registered prototypes.
package help

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/phpshell/protoreg/domain/entities"
	"github.com/phpshell/protoreg/domain/ports"
)

// DefaultTemplate prints the signature line followed by the indented
// description, e.g.
//
//	object PDO::query(string statement)
//	  Prepares and executes an SQL statement ...
const DefaultTemplate = `{{if .Return}}{{.Return}} {{end}}{{.Key}}({{.Params}})` +
	`{{with .Description}}` + "\n" + `  {{.}}{{end}}`

// rendererConfig holds configuration for the Renderer.
type rendererConfig struct {
	text   string
	strict bool // Fail on missing keys
}

func defaultRendererConfig() rendererConfig {
	return rendererConfig{
		text:   DefaultTemplate,
		strict: true,
	}
}

// RendererOption configures a Renderer.
type RendererOption func(*rendererConfig)

// WithTemplate replaces the help template. The template sees Key, Return,
// Params, Description, Owner, Member and IsMethod.
func WithTemplate(text string) RendererOption {
	return func(c *rendererConfig) {
		c.text = text
	}
}

// WithStrict enables/disables strict mode for missing keys.
// When enabled (default), rendering fails if the template references a
// field that does not exist.
func WithStrict(enabled bool) RendererOption {
	return func(c *rendererConfig) {
		c.strict = enabled
	}
}

// Renderer implements ports.HelpRenderer over a prototype lookup.
type Renderer struct {
	lookup ports.PrototypeLookup
	tmpl   *template.Template
}

var _ ports.HelpRenderer = (*Renderer)(nil)

// NewRenderer parses the help template and returns a Renderer reading from lookup.
func NewRenderer(lookup ports.PrototypeLookup, opts ...RendererOption) (*Renderer, error) {
	cfg := defaultRendererConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	tmpl := template.New("help")
	if cfg.strict {
		tmpl = tmpl.Option("missingkey=error")
	}
	tmpl, err := tmpl.Parse(cfg.text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse help template: %w", err)
	}

	return &Renderer{lookup: lookup, tmpl: tmpl}, nil
}

// Render returns the help text for key. When the key is not registered the
// text is a short notice and the second result is false; that is not an error.
func (r *Renderer) Render(key string) (string, bool, error) {
	p, ok := r.lookup.Lookup(key)
	if !ok {
		return fmt.Sprintf("no documentation available for %s", key), false, nil
	}
	out, err := r.RenderPrototype(p)
	if err != nil {
		return "", true, err
	}
	return out, true, nil
}

// RenderPrototype renders a record directly, without a lookup.
func (r *Renderer) RenderPrototype(p entities.Prototype) (string, error) {
	data := map[string]interface{}{
		"Key":         p.Key,
		"Return":      p.Return,
		"Params":      p.Params,
		"Description": p.Description,
		"Owner":       p.Owner(),
		"Member":      p.Member(),
		"IsMethod":    p.IsMethod(),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute help template for %s: %w", p.Key, err)
	}
	return buf.String(), nil
}
