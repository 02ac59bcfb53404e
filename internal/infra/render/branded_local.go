package render

import (
	"strconv"

	"pagecast/internal/domain/entity"
)

const brandedLocalContent = `{{define "content"}}
<header class="hero">
<h1>{{.Headline}}</h1>
<p class="lead">{{.Lead}}</p>
</header>
{{template "update" .}}
<section class="about" id="about">
<h2>About {{.Business.Name}} in {{.Business.Address.City}}</h2>
{{- if .Business.Description}}
<p>{{.Business.Description}}</p>
{{- end}}
{{template "highlights" .}}
</section>
{{template "area" .}}
{{template "contact" .}}
{{template "hours" .}}
{{end}}`

// newBrandedLocalRenderer serves "<business> <city>" searches, tying the
// brand to its location.
func newBrandedLocalRenderer() Renderer {
	return newVariant(entity.IntentBrandedLocal, brandedLocalContent, decorateBrandedLocal)
}

func decorateBrandedLocal(v *view, data *entity.PageData) {
	b := v.Business
	v.Headline = b.Name + " in " + v.Location
	v.Lead = "Visit " + b.Name + " at " + orDefault(v.Address, v.Location) + "."
	if years := v.years(); years > 0 {
		v.Highlights = append(v.Highlights, "Serving "+b.Address.City+" for "+strconv.Itoa(years)+" years")
	}
	v.Highlights = append(v.Highlights, firstN(b.Specialties, 3)...)
	v.AreaDescription = b.Name + " is part of the " + b.Address.City + " community."

	v.addNode(newObject("Organization").
		set("@context", schemaContext).
		set("name", b.Name).
		set("url", b.Website).
		set("sameAs", socialURLs(b.SocialLinks)).
		set("location", newObject("Place").set("address", postalAddress(b.Address))))
	v.addNode(updateOffer(v))
	v.addNode(updateEvent(v))
}
