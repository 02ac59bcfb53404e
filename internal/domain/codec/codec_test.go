package codec

import (
	"encoding/json"
	"testing"
	"time"

	"pagecast/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullPageData() *entity.PageData {
	lat, lng := 47.6062, -122.3321
	expires := time.Date(2026, 9, 14, 23, 59, 0, 0, time.UTC)
	generated := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	return &entity.PageData{
		Business: entity.BusinessProfile{
			Name:            "Joe's Pizza",
			Category:        "pizza_restaurant",
			EstablishedYear: 1998,
			Description:     "Wood-fired pizza since 1998.",
			Slug:            "joes-pizza",
			Address: entity.Address{
				Street:  "123 Pike St",
				City:    "Seattle",
				State:   "WA",
				Zip:     "98101",
				Country: "US",
			},
			Latitude:       &lat,
			Longitude:      &lng,
			Phone:          "(206) 555-0100",
			PhoneCountry:   "+1",
			Email:          "hello@joespizza.example",
			Website:        "https://joespizza.example",
			Hours:          "Mon-Sun 11-22",
			WeeklyHours:    []entity.DayHours{{Day: "Monday", Opens: "11:00", Closes: "22:00"}, {Day: "Tuesday", Closed: true}},
			Services:       []string{"Dine-in", "Delivery"},
			Specialties:    []string{"Margherita"},
			PaymentMethods: []string{"Cash", "Apple Pay"},
			Languages:      []string{"English", "Italian"},
			Accessibility:  []string{"Wheelchair accessible"},
			FAQs:           []entity.FAQ{{Question: "Do you deliver?", Answer: "Yes, within 3 miles."}},
			FeaturedItems:  []entity.FeaturedItem{{Name: "Margherita", Description: "Classic", Price: "$14"}},
			SocialLinks:    []entity.SocialLink{{Platform: "instagram", URL: "https://instagram.com/joespizza"}},
			Awards:         []string{"Best Pizza 2024"},
			Certifications: []string{"Food Safety Certified"},
			Reviews:        &entity.ReviewSummary{Rating: 4.7, Count: 312, Source: "Google"},
			ParkingInfo:    "Street parking",
			PriceRange:     "$$",
		},
		Update: entity.UpdateContent{
			ContentText:       "New fall menu available Sept 7-14",
			DealTerms:         "10% off with code FALL",
			SpecialHoursToday: "11:00-23:00",
			Category:          entity.UpdateCategorySpecial,
			ExpiresAt:         &expires,
			EventDates:        []string{"2026-09-07", "2026-09-14"},
		},
		SEO: entity.SEOData{
			Title:        "Joe's Pizza in Seattle, WA | New fall menu",
			Description:  "New fall menu available Sept 7-14 at Joe's Pizza.",
			Keywords:     []string{"pizza seattle"},
			CanonicalURL: "https://pages.example/seattle-wa/joes-pizza/update/new-fall-menu-1a2b3c4d",
		},
		Intent: entity.IntentData{
			Type:     entity.IntentDirect,
			FilePath: "/seattle-wa/joes-pizza/update/new-fall-menu-1a2b3c4d",
			Slug:     "new-fall-menu-1a2b3c4d",
			Variant:  "standard",
		},
		FAQs:        []entity.FAQ{{Question: "When does the menu end?", Answer: "September 14."}},
		GeneratedAt: &generated,
	}
}

func TestRoundTrip_AllRecognizedFields(t *testing.T) {
	original := fullPageData()

	compact, err := Compress(original)
	require.NoError(t, err)

	decoded, err := Decompress(compact)
	require.NoError(t, err)

	assert.Equal(t, original, decoded)
}

func TestRoundTrip_ThroughBytes(t *testing.T) {
	original := fullPageData()

	raw, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, original, decoded)
}

func TestEncode_UsesShortKeys(t *testing.T) {
	raw, err := Encode(fullPageData())
	require.NoError(t, err)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &top))
	assert.ElementsMatch(t, []string{"b", "u", "seo", "i", "f", "g"}, keys(top))

	var business map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(top["b"], &business))
	assert.Contains(t, business, "n")
	assert.Contains(t, business, "ci")
	assert.NotContains(t, business, "name")
	assert.NotContains(t, business, "city")
}

func TestDecompress_AppliesReadTimeDefaults(t *testing.T) {
	data := fullPageData()
	data.Business.Address.Country = ""
	data.Business.PaymentMethods = nil

	compact, err := Compress(data)
	require.NoError(t, err)

	// Defaults are not written at compression time.
	assert.Empty(t, compact.B.Co)
	assert.Empty(t, compact.B.Pm)

	decoded, err := Decompress(compact)
	require.NoError(t, err)
	assert.Equal(t, "US", decoded.Business.Address.Country)
	assert.Equal(t, []string{"Cash", "Credit Card"}, decoded.Business.PaymentMethods)
}

func TestDecode_MinimalPayload(t *testing.T) {
	raw := []byte(`{"b":{"n":"Joe's Pizza","c":"pizza","ci":"Seattle","s":"WA","p":"555"},"u":{"t":"Open late"},"seo":{"t":"T","d":"D"},"i":{"t":"local","p":"/x","s":"x"}}`)

	decoded, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, "Joe's Pizza", decoded.Business.Name)
	assert.Nil(t, decoded.Business.Latitude)
	assert.Nil(t, decoded.Business.Reviews)
	assert.Nil(t, decoded.Update.ExpiresAt)
	assert.Empty(t, decoded.FAQs)
	assert.Equal(t, entity.IntentLocal, decoded.Intent.Type)
}

func TestDecode_DropsUnknownKeys(t *testing.T) {
	raw := []byte(`{"b":{"n":"A","c":"b","ci":"c","s":"d","p":"1","zz":"ignored"},"u":{"t":"x"},"seo":{"t":"","d":""},"i":{"t":"direct","p":"/p","s":"p"},"extra":1}`)

	decoded, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "A", decoded.Business.Name)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}

func TestNilInputs(t *testing.T) {
	_, err := Compress(nil)
	assert.Error(t, err)

	_, err = Decompress(nil)
	assert.Error(t, err)
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
