package render

import "pagecast/internal/domain/entity"

const serviceUrgentContent = `{{define "content"}}
<header class="hero">
<h1>{{.Headline}}</h1>
<p class="banner" role="status">{{.Lead}}</p>
{{- if .PhoneDisplay}}
<p><a class="cta" href="{{.PhoneHref}}">Call now: {{.PhoneDisplay}}</a></p>
{{- end}}
</header>
{{template "update" .}}
{{template "hours" .}}
{{template "contact" .}}
{{end}}`

// newServiceUrgentRenderer serves "open now" searches: hours today and a call
// button come first.
func newServiceUrgentRenderer() Renderer {
	return newVariant(entity.IntentServiceUrgent, serviceUrgentContent, decorateServiceUrgent)
}

func decorateServiceUrgent(v *view, data *entity.PageData) {
	b := v.Business
	v.Headline = "Hours and contact for " + b.Name + " in " + v.Location
	switch {
	case v.SpecialHours != "":
		v.Lead = "Today's hours: " + v.SpecialHours
	case b.Hours != "":
		v.Lead = "Hours: " + b.Hours
	default:
		v.Lead = "Call ahead to confirm today's hours."
	}
	if v.ExpiresOn != "" && v.DealTerms != "" {
		v.Lead += " Offer ends " + v.ExpiresOn + "."
	}
	v.UpdateHeading = "Right now at " + b.Name
	v.addFact("Today", v.SpecialHours)

	v.addNode(updateOffer(v))
}
