package render

import (
	"strings"

	"pagecast/internal/domain/entity"
)

const categoryContent = `{{define "content"}}
<header class="hero">
<h1>{{.Headline}}</h1>
<p class="lead">{{.Lead}}</p>
{{template "highlights" .}}
</header>
{{template "update" .}}
{{template "offerings" .}}
{{template "reviews" .}}
{{template "hours" .}}
{{template "contact" .}}
{{end}}`

// newCategoryRenderer serves "best <category>" searches by positioning the
// business within its category.
func newCategoryRenderer() Renderer {
	return newVariant(entity.IntentCategory, categoryContent, decorateCategory)
}

func decorateCategory(v *view, data *entity.PageData) {
	b := v.Business
	category := v.CategoryName
	if category == "" {
		category = "Local business"
	}
	v.Headline = category + " in " + v.Location + ": " + b.Name
	v.Lead = b.Description
	if v.Lead == "" {
		v.Lead = b.Name + " is a " + strings.ToLower(category) + " serving " + v.Location + "."
	}
	v.UpdateHeading = "Latest " + strings.ToLower(category) + " news from " + b.Name

	v.Highlights = append(v.Highlights, firstN(b.Specialties, 5)...)
	if len(v.Highlights) == 0 {
		v.Highlights = append(v.Highlights, firstN(b.Services, 5)...)
	}
	v.addFact("Specialties", strings.Join(b.Specialties, ", "))

	list := make([]object, 0, len(v.Highlights))
	for i, h := range v.Highlights {
		list = append(list, newObject("ListItem").set("position", i+1).set("name", h))
	}
	if len(list) > 0 {
		v.addNode(newObject("ItemList").
			set("@context", schemaContext).
			set("name", b.Name+" "+strings.ToLower(category)+" highlights").
			set("itemListElement", list))
	}
	v.addNode(updateOffer(v))
}
