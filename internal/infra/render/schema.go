package render

import (
	"encoding/json"
	"html/template"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"pagecast/internal/domain/entity"
)

const (
	schemaContext = "https://schema.org"

	// serviceRadiusMeters bounds the areaServed box for local pages (about five miles).
	serviceRadiusMeters = 8047.0
)

// object is a JSON-LD node. Use set so empty values never reach the output.
type object map[string]any

func newObject(typ string) object {
	return object{"@type": typ}
}

// set stores value under key unless it is empty.
func (o object) set(key string, value any) object {
	switch v := value.(type) {
	case nil:
		return o
	case string:
		if strings.TrimSpace(v) == "" {
			return o
		}
	case []string:
		if len(v) == 0 {
			return o
		}
	case []object:
		if len(v) == 0 {
			return o
		}
	case object:
		if len(v) == 0 {
			return o
		}
	case int:
		if v == 0 {
			return o
		}
	}
	o[key] = value
	return o
}

// schemaTypes maps category keywords to schema.org business types.
var schemaTypes = []struct {
	keyword string
	typ     string
}{
	{"pizza", "Restaurant"},
	{"restaurant", "Restaurant"},
	{"diner", "Restaurant"},
	{"coffee", "CafeOrCoffeeShop"},
	{"cafe", "CafeOrCoffeeShop"},
	{"bakery", "Bakery"},
	{"salon", "HairSalon"},
	{"barber", "HairSalon"},
	{"bar", "BarOrPub"},
	{"pub", "BarOrPub"},
	{"spa", "DaySpa"},
	{"dentist", "Dentist"},
	{"dental", "Dentist"},
	{"plumb", "Plumber"},
	{"electric", "Electrician"},
	{"hvac", "HVACBusiness"},
	{"auto", "AutoRepair"},
	{"mechanic", "AutoRepair"},
	{"gym", "ExerciseGym"},
	{"fitness", "ExerciseGym"},
	{"law", "LegalService"},
	{"legal", "LegalService"},
	{"clinic", "MedicalClinic"},
	{"doctor", "MedicalClinic"},
	{"vet", "VeterinaryCare"},
	{"hotel", "Hotel"},
	{"florist", "Florist"},
	{"book", "BookStore"},
	{"store", "Store"},
	{"shop", "Store"},
}

// businessType picks the most specific schema.org type for a category.
func businessType(category string) string {
	c := strings.ToLower(category)
	for _, st := range schemaTypes {
		if strings.Contains(c, st.keyword) {
			return st.typ
		}
	}
	return "LocalBusiness"
}

func postalAddress(addr entity.Address) object {
	country := addr.Country
	if country == "" {
		country = defaultRegion
	}
	return newObject("PostalAddress").
		set("streetAddress", addr.Street).
		set("addressLocality", addr.City).
		set("addressRegion", addr.State).
		set("postalCode", addr.Zip).
		set("addressCountry", country)
}

func geoCoordinates(p *entity.BusinessProfile) object {
	if !p.HasGeo() {
		return nil
	}
	return object{
		"@type":     "GeoCoordinates",
		"latitude":  *p.Latitude,
		"longitude": *p.Longitude,
	}
}

// areaServed describes the service box around the business coordinates,
// falling back to the city when there are none.
func areaServed(p *entity.BusinessProfile) object {
	if !p.HasGeo() {
		if p.Address.City == "" {
			return nil
		}
		return newObject("City").set("name", location(p.Address))
	}
	bound := geo.NewBoundAroundPoint(orb.Point{*p.Longitude, *p.Latitude}, serviceRadiusMeters)
	box := strings.Join([]string{
		formatCoord(bound.Min.Lat()), formatCoord(bound.Min.Lon()),
		formatCoord(bound.Max.Lat()), formatCoord(bound.Max.Lon()),
	}, " ")
	return newObject("GeoShape").set("box", box)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 5, 64)
}

func openingHours(days []entity.DayHours) []object {
	specs := make([]object, 0, len(days))
	for _, d := range days {
		if d.Closed || d.Opens == "" || d.Closes == "" || d.Day == "" {
			continue
		}
		specs = append(specs, newObject("OpeningHoursSpecification").
			set("dayOfWeek", schemaContext+"/"+titleCaser.String(d.Day)).
			set("opens", d.Opens).
			set("closes", d.Closes))
	}
	return specs
}

// localBusiness builds the primary business node shared by every variant.
func localBusiness(v *view) object {
	p := v.Business
	node := newObject(businessType(p.Category)).
		set("@context", schemaContext).
		set("name", p.Name).
		set("description", p.Description).
		set("url", v.CanonicalURL).
		set("telephone", v.phone.E164).
		set("email", p.Email).
		set("priceRange", p.PriceRange).
		set("address", postalAddress(p.Address)).
		set("geo", geoCoordinates(p)).
		set("paymentAccepted", strings.Join(p.PaymentMethods, ", ")).
		set("knowsLanguage", p.Languages).
		set("award", p.Awards).
		set("sameAs", socialURLs(p.SocialLinks))

	if p.EstablishedYear > 0 {
		node.set("foundingDate", strconv.Itoa(p.EstablishedYear))
	}
	if specs := openingHours(p.WeeklyHours); len(specs) > 0 {
		node.set("openingHoursSpecification", specs)
	} else {
		node.set("openingHours", p.Hours)
	}
	if r := p.Reviews; r != nil && r.Count > 0 && r.Rating > 0 {
		node.set("aggregateRating", object{
			"@type":       "AggregateRating",
			"ratingValue": r.Rating,
			"reviewCount": r.Count,
			"bestRating":  5,
		})
	}
	if offers := offerCatalog(p); offers != nil {
		node.set("hasOfferCatalog", offers)
	}
	return node
}

func socialURLs(links []entity.SocialLink) []string {
	urls := make([]string, 0, len(links))
	for _, l := range links {
		if l.URL != "" {
			urls = append(urls, l.URL)
		}
	}
	return urls
}

func offerCatalog(p *entity.BusinessProfile) object {
	items := make([]object, 0, len(p.Services)+len(p.FeaturedItems))
	for _, s := range p.Services {
		items = append(items, newObject("Offer").set("itemOffered", newObject("Service").set("name", s)))
	}
	for _, fi := range p.FeaturedItems {
		items = append(items, newObject("Offer").
			set("itemOffered", newObject("Product").set("name", fi.Name).set("description", fi.Description)).
			set("price", fi.Price))
	}
	if len(items) == 0 {
		return nil
	}
	return newObject("OfferCatalog").set("name", p.Name+" offerings").set("itemListElement", items)
}

// faqPage builds the FAQPage node, or nil when there are no complete pairs.
func faqPage(faqs []entity.FAQ) object {
	entities := make([]object, 0, len(faqs))
	for _, f := range faqs {
		if f.Question == "" || f.Answer == "" {
			continue
		}
		entities = append(entities, newObject("Question").
			set("name", f.Question).
			set("acceptedAnswer", newObject("Answer").set("text", f.Answer)))
	}
	if len(entities) == 0 {
		return nil
	}
	return newObject("FAQPage").set("@context", schemaContext).set("mainEntity", entities)
}

func breadcrumbList(crumbs []crumb) object {
	items := make([]object, 0, len(crumbs))
	for i, c := range crumbs {
		item := newObject("ListItem").set("position", i+1).set("name", c.Name)
		if c.URL != "" {
			item.set("item", c.URL)
		}
		items = append(items, item)
	}
	return newObject("BreadcrumbList").set("@context", schemaContext).set("itemListElement", items)
}

// webPage marks the speakable summary for voice assistants.
func webPage(v *view) object {
	return newObject("WebPage").
		set("@context", schemaContext).
		set("name", v.Title).
		set("description", v.Description).
		set("url", v.CanonicalURL).
		set("speakable", newObject("SpeakableSpecification").
			set("cssSelector", []string{"#speakable-summary", "#latest-update"}))
}

// updateOffer describes a time-limited deal attached to an update.
func updateOffer(v *view) object {
	if v.DealTerms == "" {
		return nil
	}
	offer := newObject("Offer").
		set("@context", schemaContext).
		set("name", v.Title).
		set("description", v.DealTerms).
		set("url", v.CanonicalURL).
		set("validThrough", v.ExpiresISO).
		set("offeredBy", newObject(businessType(v.Business.Category)).set("name", v.Business.Name))
	return offer
}

// updateEvent describes an event update with explicit dates.
func updateEvent(v *view) object {
	if len(v.EventDates) == 0 {
		return nil
	}
	return newObject("Event").
		set("@context", schemaContext).
		set("name", v.Title).
		set("description", v.Content).
		set("startDate", v.EventDates[0]).
		set("endDate", v.EventDates[len(v.EventDates)-1]).
		set("eventAttendanceMode", schemaContext+"/OfflineEventAttendanceMode").
		set("location", newObject("Place").
			set("name", v.Business.Name).
			set("address", postalAddress(v.Business.Address)))
}

// marshalSchema encodes a node for a JSON-LD script block. encoding/json
// escapes <, > and & so the output cannot close the script element.
func marshalSchema(node object) (template.JS, error) {
	b, err := json.Marshal(node)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil //nolint:gosec // HTML-escaped by encoding/json
}
