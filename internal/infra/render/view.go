package render

import (
	"html/template"
	"strconv"
	"strings"
	"time"

	"pagecast/internal/domain/entity"
)

type crumb struct {
	Name string
	URL  string
}

type metaTag struct {
	Name    string
	Content string
}

type fact struct {
	Label string
	Value string
}

// view is the template model. Every field a template prints is a plain
// string or slice so missing data renders as nothing.
type view struct {
	Lang         string
	Title        string
	Description  string
	Keywords     string
	CanonicalURL string
	Intent       string
	IntentClass  string
	Variant      string

	Business     *entity.BusinessProfile
	CategoryName string
	Location     string
	Address      string
	PhoneDisplay string
	PhoneHref    template.URL
	Hours        []string

	Content       string
	UpdateHeading string
	DealTerms     string
	SpecialHours  string
	EventDates    []string
	ExpiresOn     string
	ExpiresISO    string

	Headline        string
	Lead            string
	Highlights      []string
	AreaDescription string

	Speakable   string
	AISummary   string
	Facts       []fact
	FAQs        []entity.FAQ
	Breadcrumbs []crumb
	Meta        []metaTag
	Schemas     []template.JS

	phone   phone
	nodes   []object
	baseURL string
	asOf    *time.Time
}

func newView(data *entity.PageData) *view {
	biz := data.Business
	p := formatPhone(biz.Phone, biz.PhoneCountry, biz.Address.Country)

	v := &view{
		Lang:         "en",
		Title:        strings.TrimSpace(data.SEO.Title),
		Description:  strings.TrimSpace(data.SEO.Description),
		Keywords:     strings.Join(data.SEO.Keywords, ", "),
		CanonicalURL: data.SEO.CanonicalURL,
		Intent:       string(data.Intent.Type),
		IntentClass:  strings.ReplaceAll(string(data.Intent.Type), "_", "-"),
		Variant:      data.Intent.Variant,
		Business:     &biz,
		CategoryName: categoryName(biz.Category),
		Location:     location(biz.Address),
		Address:      fullAddress(biz.Address),
		PhoneDisplay: p.Display,
		PhoneHref:    phoneHref(p),
		Hours:        weeklyHours(biz.WeeklyHours),
		Content:      strings.TrimSpace(data.Update.ContentText),
		DealTerms:    data.Update.DealTerms,
		SpecialHours: data.Update.SpecialHoursToday,
		EventDates:   data.Update.EventDates,
		FAQs:         mergeFAQs(biz.FAQs, data.FAQs),
		phone:        p,
		baseURL:      baseOf(data.SEO.CanonicalURL, data.Intent.FilePath),
		asOf:         data.GeneratedAt,
	}
	if v.Title == "" {
		v.Title = biz.Name
		if v.Location != "" {
			v.Title += " in " + v.Location
		}
	}
	if v.Description == "" {
		v.Description = v.Content
	}
	if exp := data.Update.ExpiresAt; exp != nil {
		v.ExpiresOn = exp.Format("January 2, 2006")
		v.ExpiresISO = exp.UTC().Format(time.RFC3339)
	}
	v.UpdateHeading = "Latest from " + biz.Name
	v.Speakable = speakable(v)
	v.Breadcrumbs = breadcrumbs(v, data.Intent.FilePath)
	v.Facts = baseFacts(v)
	v.Meta = geoMeta(&biz)
	return v
}

// mergeFAQs returns business FAQs followed by update FAQs, dropping
// incomplete pairs and repeated questions.
func mergeFAQs(sets ...[]entity.FAQ) []entity.FAQ {
	seen := make(map[string]struct{})
	var merged []entity.FAQ
	for _, set := range sets {
		for _, f := range set {
			q := strings.TrimSpace(f.Question)
			if q == "" || strings.TrimSpace(f.Answer) == "" {
				continue
			}
			key := strings.ToLower(q)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, f)
		}
	}
	return merged
}

// baseOf strips the page path from the canonical URL so breadcrumbs can
// link to parent levels.
func baseOf(canonical, filePath string) string {
	if canonical == "" {
		return ""
	}
	trimmed := strings.TrimSuffix(canonical, "/")
	if filePath != "" {
		trimmed = strings.TrimSuffix(trimmed, strings.TrimSuffix(filePath, "/"))
	}
	return strings.TrimSuffix(trimmed, "/")
}

// speakable is the one-paragraph summary read by voice assistants.
func speakable(v *view) string {
	var b strings.Builder
	b.WriteString(v.Business.Name)
	if v.Location != "" {
		b.WriteString(" in ")
		b.WriteString(v.Location)
	}
	if v.Content != "" {
		b.WriteString(": ")
		b.WriteString(sentence(v.Content))
	} else {
		b.WriteString(".")
	}
	if v.PhoneDisplay != "" {
		b.WriteString(" Call ")
		b.WriteString(v.PhoneDisplay)
		b.WriteString(".")
	}
	return b.String()
}

// breadcrumbs follows the geographic hierarchy: home, state, city, business, page.
func breadcrumbs(v *view, filePath string) []crumb {
	addr := v.Business.Address
	link := func(path string) string {
		if v.baseURL == "" {
			return ""
		}
		return v.baseURL + path
	}

	crumbs := []crumb{{Name: "Home", URL: link("/")}}
	segments := strings.Split(strings.Trim(filePath, "/"), "/")
	if addr.State != "" {
		crumbs = append(crumbs, crumb{Name: addr.State})
	}
	if addr.City != "" && len(segments) > 0 && segments[0] != "" {
		crumbs = append(crumbs, crumb{Name: addr.City, URL: link("/" + segments[0])})
	}
	if len(segments) > 1 {
		crumbs = append(crumbs, crumb{Name: v.Business.Name, URL: link("/" + segments[0] + "/" + segments[1])})
	} else {
		crumbs = append(crumbs, crumb{Name: v.Business.Name})
	}
	crumbs = append(crumbs, crumb{Name: v.Title, URL: v.CanonicalURL})
	return crumbs
}

// baseFacts feeds the key-facts block that AI answer engines extract.
func baseFacts(v *view) []fact {
	b := v.Business
	facts := []fact{{Label: "Business", Value: b.Name}}
	add := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			facts = append(facts, fact{Label: label, Value: value})
		}
	}
	add("Category", v.CategoryName)
	add("Location", v.Address)
	add("Phone", v.PhoneDisplay)
	add("Hours", strings.Join(v.Hours, "; "))
	if len(v.Hours) == 0 {
		add("Hours", b.Hours)
	}
	add("Latest update", v.Content)
	add("Offer", v.DealTerms)
	add("Available until", v.ExpiresOn)
	if b.EstablishedYear > 0 {
		add("Established", strconv.Itoa(b.EstablishedYear))
	}
	add("Price range", b.PriceRange)
	if r := b.Reviews; r != nil && r.Count > 0 {
		add("Rating", strconv.FormatFloat(r.Rating, 'f', 1, 64)+" from "+strconv.Itoa(r.Count)+" reviews")
	}
	return facts
}

func geoMeta(b *entity.BusinessProfile) []metaTag {
	var tags []metaTag
	if b.Address.State != "" {
		country := b.Address.Country
		if country == "" {
			country = defaultRegion
		}
		tags = append(tags, metaTag{Name: "geo.region", Content: strings.ToUpper(country) + "-" + b.Address.State})
	}
	if b.Address.City != "" {
		tags = append(tags, metaTag{Name: "geo.placename", Content: b.Address.City})
	}
	if b.HasGeo() {
		pos := formatCoord(*b.Latitude) + ";" + formatCoord(*b.Longitude)
		tags = append(tags,
			metaTag{Name: "geo.position", Content: pos},
			metaTag{Name: "ICBM", Content: strings.ReplaceAll(pos, ";", ", ")},
		)
	}
	return tags
}

func (v *view) addFact(label, value string) {
	if strings.TrimSpace(value) != "" {
		v.Facts = append(v.Facts, fact{Label: label, Value: value})
	}
}

func (v *view) addNode(node object) {
	if len(node) > 0 {
		v.nodes = append(v.nodes, node)
	}
}

// years is the business age as of page generation, 0 when unknown.
func (v *view) years() int {
	if v.asOf == nil {
		return 0
	}

	return yearsInBusiness(v.Business.EstablishedYear, v.asOf.Year())
}

// finish assembles the schema blocks and the AI summary once a variant has
// decorated the view.
func (v *view) finish() error {
	nodes := make([]object, 0, len(v.nodes)+4)
	nodes = append(nodes, localBusiness(v))
	nodes = append(nodes, v.nodes...)
	if faq := faqPage(v.FAQs); faq != nil {
		nodes = append(nodes, faq)
	}
	nodes = append(nodes, breadcrumbList(v.Breadcrumbs), webPage(v))

	v.Schemas = make([]template.JS, 0, len(nodes))
	for _, n := range nodes {
		js, err := marshalSchema(n)
		if err != nil {
			return err
		}
		v.Schemas = append(v.Schemas, js)
	}

	parts := make([]string, 0, len(v.Facts))
	for _, f := range v.Facts {
		parts = append(parts, f.Label+": "+f.Value)
	}
	v.AISummary = strings.Join(parts, ". ")
	return nil
}
