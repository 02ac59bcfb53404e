package render

import "pagecast/internal/domain/entity"

const directContent = `{{define "content"}}
<header class="hero">
<h1>{{.Headline}}</h1>
<p class="lead">{{.Lead}}</p>
</header>
{{template "update" .}}
{{template "contact" .}}
{{template "hours" .}}
{{template "offerings" .}}
{{template "reviews" .}}
{{end}}`

// newDirectRenderer serves searches for the business itself: the update is
// the headline and contact details follow.
func newDirectRenderer() Renderer {
	return newVariant(entity.IntentDirect, directContent, decorateDirect)
}

func decorateDirect(v *view, data *entity.PageData) {
	v.Headline = v.Title
	v.Lead = v.Business.Description
	if v.Lead == "" {
		v.Lead = v.Speakable
	}
	v.addNode(updateOffer(v))
	v.addNode(updateEvent(v))
}
