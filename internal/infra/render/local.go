package render

import "pagecast/internal/domain/entity"

const localContent = `{{define "content"}}
<header class="hero">
<h1>{{.Headline}}</h1>
<p class="lead">{{.Lead}}</p>
</header>
{{template "area" .}}
{{template "update" .}}
{{template "hours" .}}
{{template "contact" .}}
{{template "offerings" .}}
{{end}}`

// newLocalRenderer serves "near me" searches, leading with location and
// directions.
func newLocalRenderer() Renderer {
	return newVariant(entity.IntentLocal, localContent, decorateLocal)
}

func decorateLocal(v *view, data *entity.PageData) {
	name := v.Business.Name
	v.Headline = v.CategoryName + " near you: " + name
	if v.CategoryName == "" {
		v.Headline = name + " near you"
	}
	v.Lead = name + " is a local " + lowerOr(v.CategoryName, "business") + " in " + v.Location + "."
	v.UpdateHeading = "What's new nearby"
	v.AreaDescription = "Serving neighbors across " + v.Location + " and the surrounding area."
	if v.Business.HasGeo() {
		v.AreaDescription = "Serving customers within about five miles of our " + v.Business.Address.City + " location."
	}
	v.addFact("Service area", v.Location)
	v.addFact("Parking", v.Business.ParkingInfo)

	node := newObject(businessType(v.Business.Category)).
		set("@context", schemaContext).
		set("name", name).
		set("areaServed", areaServed(v.Business))
	v.addNode(node)
	v.addNode(updateOffer(v))
}
