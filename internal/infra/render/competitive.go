package render

import (
	"strconv"
	"strings"

	"pagecast/internal/domain/entity"
)

const competitiveContent = `{{define "content"}}
<header class="hero">
<h1>{{.Headline}}</h1>
<p class="lead">{{.Lead}}</p>
</header>
<section class="differentiators" id="why-choose">
<h2>What sets {{.Business.Name}} apart</h2>
{{template "highlights" .}}
</section>
{{template "update" .}}
{{template "reviews" .}}
{{template "credentials" .}}
{{template "offerings" .}}
{{template "contact" .}}
{{end}}`

// newCompetitiveRenderer serves comparison searches by listing what
// differentiates the business.
func newCompetitiveRenderer() Renderer {
	return newVariant(entity.IntentCompetitive, competitiveContent, decorateCompetitive)
}

func decorateCompetitive(v *view, data *entity.PageData) {
	b := v.Business
	v.Headline = "Why choose " + b.Name + " in " + v.Location
	v.Lead = b.Description
	if v.Lead == "" {
		v.Lead = b.Name + " is a trusted " + lowerOr(v.CategoryName, "business") + " in " + v.Location + "."
	}

	if years := v.years(); years > 0 {
		v.Highlights = append(v.Highlights, strconv.Itoa(years)+" years in business")
	}
	if r := b.Reviews; r != nil && r.Count > 0 {
		v.Highlights = append(v.Highlights, "Rated "+strconv.FormatFloat(r.Rating, 'f', 1, 64)+" by "+strconv.Itoa(r.Count)+" customers")
	}
	v.Highlights = append(v.Highlights, firstN(b.Awards, 3)...)
	v.Highlights = append(v.Highlights, firstN(b.Certifications, 3)...)
	v.Highlights = append(v.Highlights, firstN(b.Specialties, 3)...)
	v.addFact("Awards", strings.Join(b.Awards, ", "))
	v.addFact("Certifications", strings.Join(b.Certifications, ", "))

	v.addNode(updateOffer(v))
}

func lowerOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return strings.ToLower(s)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
