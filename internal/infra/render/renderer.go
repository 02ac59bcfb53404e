// Package render turns page data into self-contained HTML documents, one
// variant per search intent, plus the sitemap, robots and fallback pages.
package render

import (
	"bytes"
	"html/template"
	"strings"

	"pagecast/internal/domain/entity"
	domainerrors "pagecast/internal/domain/errors"
	"pagecast/internal/domain/service"
	"pagecast/internal/errors"
)

// Renderer produces the document for a single intent.
type Renderer interface {
	Intent() entity.IntentType
	Render(data *entity.PageData) (string, error)
}

// variant is a Renderer built from the shared layout, a content block and a
// decorate step that fills the intent-specific parts of the view.
type variant struct {
	intent   entity.IntentType
	tmpl     *template.Template
	decorate func(v *view, data *entity.PageData)
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

var layout = template.Must(template.New("layout").Funcs(funcs).Parse(layoutTemplate))

func newVariant(intent entity.IntentType, content string, decorate func(*view, *entity.PageData)) *variant {
	tmpl := template.Must(template.Must(layout.Clone()).Parse(content))
	return &variant{intent: intent, tmpl: tmpl, decorate: decorate}
}

func (r *variant) Intent() entity.IntentType {
	return r.intent
}

func (r *variant) Render(data *entity.PageData) (string, error) {
	if data == nil {
		return "", domainerrors.ErrRenderFailed.WrapMessage("page data is nil")
	}

	v := newView(data)
	r.decorate(v, data)
	if err := v.finish(); err != nil {
		return "", errors.Wrap(err, "build structured data")
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "layout", v); err != nil {
		return "", errors.Wrapf(err, "render %s page", r.intent)
	}
	return buf.String(), nil
}

// Engine dispatches to the renderer registered for each intent.
type Engine struct {
	renderers map[entity.IntentType]Renderer
}

// NewEngine builds an Engine with all six intent variants registered.
// Rendering is a pure function of the page data.
func NewEngine() *Engine {
	e := &Engine{renderers: make(map[entity.IntentType]Renderer, len(entity.AllIntents))}
	for _, r := range []Renderer{
		newDirectRenderer(),
		newLocalRenderer(),
		newCategoryRenderer(),
		newBrandedLocalRenderer(),
		newServiceUrgentRenderer(),
		newCompetitiveRenderer(),
	} {
		e.renderers[r.Intent()] = r
	}
	return e
}

// NewPageRenderer exposes the Engine through the domain interface.
func NewPageRenderer() service.PageRenderer {
	return NewEngine()
}

// Render implements service.PageRenderer.
func (e *Engine) Render(intent entity.IntentType, data *entity.PageData) (string, error) {
	r, ok := e.renderers[intent]
	if !ok {
		return "", domainerrors.ErrRenderFailed.WrapMessage("no renderer for intent " + string(intent))
	}
	return r.Render(data)
}

// Renderer returns the renderer for intent, if one is registered.
func (e *Engine) Renderer(intent entity.IntentType) (Renderer, bool) {
	r, ok := e.renderers[intent]
	return r, ok
}
