package screening

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/flosch/pongo2/v6"
	"github.com/samber/lo"
)

// ErrUnknownVariant is returned when a template variant name is not registered.
var ErrUnknownVariant = errors.New("unknown template variant")

// Renderer substitutes record fields into a narrative template.
// Values are inserted literally: no escaping, no locale handling.
type Renderer struct {
	variant string
	tpl     *pongo2.Template
	meta    Metadata
}

// Option configures a Renderer.
type Option func(*rendererConfig)

type rendererConfig struct {
	meta         Metadata
	templateFile string
}

// WithMetadata overrides non-empty header fields of the variant.
func WithMetadata(m Metadata) Option {
	return func(c *rendererConfig) { c.meta = m }
}

// WithTemplateFile replaces the built-in body with the template stored at path.
// The file uses the same placeholders as the built-in variants.
func WithTemplateFile(path string) Option {
	return func(c *rendererConfig) { c.templateFile = path }
}

// Variants returns the built-in variant names in sorted order.
func Variants() []string {
	names := lo.Keys(variants)
	sort.Strings(names)
	return names
}

// NewRenderer builds a renderer for the named variant.
func NewRenderer(name string, opts ...Option) (*Renderer, error) {
	v, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, valid variants: %v", ErrUnknownVariant, name, Variants())
	}

	var cfg rendererConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	body := v.body
	if cfg.templateFile != "" {
		data, err := os.ReadFile(cfg.templateFile)
		if err != nil {
			return nil, fmt.Errorf("reading template: %w", err)
		}
		body = string(data)
	}

	tpl, err := compile(body)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	return &Renderer{
		variant: name,
		tpl:     tpl,
		meta:    v.meta.Merge(cfg.meta),
	}, nil
}

// compile wraps body so substituted values are never HTML-escaped.
func compile(body string) (*pongo2.Template, error) {
	return pongo2.FromString("{% autoescape off %}" + body + "{% endautoescape %}")
}

// Variant returns the name of the variant this renderer was built for.
func (r *Renderer) Variant() string { return r.variant }

// Metadata returns the effective header values.
func (r *Renderer) Metadata() Metadata { return r.meta }

// Render returns the narrative text for rec.
func (r *Renderer) Render(rec Record) (string, error) {
	ctx := pongo2.Context{"meta": r.meta.context()}
	for k, v := range rec.Fields() {
		ctx[k] = v
	}

	out, err := r.tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("rendering %s template: %w", r.variant, err)
	}
	return out, nil
}
