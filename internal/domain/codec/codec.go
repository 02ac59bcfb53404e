// Package codec maps PageData to and from its compact, short-keyed storage form.
//
// Every compact key names exactly one PageData field. The key set is a storage
// schema: renaming a key breaks every payload already written. Values are copied
// as-is; only the key names shrink. Read-time defaults (country, payment
// methods) are applied by Decompress, never by Compress.
package codec

import (
	"encoding/json"
	"time"

	"pagecast/internal/domain/entity"
	"pagecast/internal/errors"
)

const defaultCountry = "US"

// DefaultPaymentMethods is applied on decompression when a payload has none.
var DefaultPaymentMethods = []string{"Cash", "Credit Card"}

// CompactPage is the stored shape of a PageData.
type CompactPage struct {
	B   CompactBusiness `json:"b"`
	U   CompactUpdate   `json:"u"`
	SEO CompactSEO      `json:"seo"`
	I   CompactIntent   `json:"i"`
	F   []entity.FAQ    `json:"f,omitempty"`
	G   *time.Time      `json:"g,omitempty"` // generated at
}

// CompactBusiness is the stored shape of entity.BusinessProfile.
type CompactBusiness struct {
	N  string                `json:"n"`            // name
	C  string                `json:"c"`            // category
	Y  int                   `json:"y,omitempty"`  // established year
	D  string                `json:"d,omitempty"`  // description
	Sl string                `json:"sl,omitempty"` // slug
	A  string                `json:"a,omitempty"`  // street
	Ci string                `json:"ci"`           // city
	S  string                `json:"s"`            // state
	Z  string                `json:"z,omitempty"`  // zip
	Co string                `json:"co,omitempty"` // country
	La *float64              `json:"la,omitempty"` // latitude
	Lo *float64              `json:"lo,omitempty"` // longitude
	P  string                `json:"p"`            // phone
	Pc string                `json:"pc,omitempty"` // phone country code
	E  string                `json:"e,omitempty"`  // email
	W  string                `json:"w,omitempty"`  // website
	H  string                `json:"h,omitempty"`  // hours
	Wh []entity.DayHours     `json:"wh,omitempty"` // weekly hours
	Sv []string              `json:"sv,omitempty"` // services
	Sp []string              `json:"sp,omitempty"` // specialties
	Pm []string              `json:"pm,omitempty"` // payment methods
	Lg []string              `json:"lg,omitempty"` // languages
	Ac []string              `json:"ac,omitempty"` // accessibility features
	Fq []entity.FAQ          `json:"fq,omitempty"` // business FAQs
	Fi []entity.FeaturedItem `json:"fi,omitempty"` // featured items
	So []entity.SocialLink   `json:"so,omitempty"` // social links
	Aw []string              `json:"aw,omitempty"` // awards
	Ce []string              `json:"ce,omitempty"` // certifications
	R  *entity.ReviewSummary `json:"r,omitempty"`  // review summary
	Pk string                `json:"pk,omitempty"` // parking info
	Pr string                `json:"pr,omitempty"` // price range
}

// CompactUpdate is the stored shape of entity.UpdateContent.
type CompactUpdate struct {
	T  string                `json:"t"`            // content text
	Dt string                `json:"dt,omitempty"` // deal terms
	Sh string                `json:"sh,omitempty"` // special hours today
	C  entity.UpdateCategory `json:"c,omitempty"`  // category
	X  *time.Time            `json:"x,omitempty"`  // expires at
	Ed []string              `json:"ed,omitempty"` // event dates
}

// CompactSEO is the stored shape of entity.SEOData.
type CompactSEO struct {
	T string   `json:"t"`           // title
	D string   `json:"d"`           // description
	K []string `json:"k,omitempty"` // keywords
	U string   `json:"u,omitempty"` // canonical url
}

// CompactIntent is the stored shape of entity.IntentData.
type CompactIntent struct {
	T entity.IntentType `json:"t"`           // intent type
	P string            `json:"p"`           // file path
	S string            `json:"s"`           // slug
	V string            `json:"v,omitempty"` // variant
}

// Compress maps data to its compact form.
func Compress(data *entity.PageData) (*CompactPage, error) {
	if data == nil {
		return nil, errors.New("codec: nil page data")
	}

	b := &data.Business
	compact := &CompactPage{
		B: CompactBusiness{
			N:  b.Name,
			C:  b.Category,
			Y:  b.EstablishedYear,
			D:  b.Description,
			Sl: b.Slug,
			A:  b.Address.Street,
			Ci: b.Address.City,
			S:  b.Address.State,
			Z:  b.Address.Zip,
			Co: b.Address.Country,
			La: b.Latitude,
			Lo: b.Longitude,
			P:  b.Phone,
			Pc: b.PhoneCountry,
			E:  b.Email,
			W:  b.Website,
			H:  b.Hours,
			Wh: b.WeeklyHours,
			Sv: b.Services,
			Sp: b.Specialties,
			Pm: b.PaymentMethods,
			Lg: b.Languages,
			Ac: b.Accessibility,
			Fq: b.FAQs,
			Fi: b.FeaturedItems,
			So: b.SocialLinks,
			Aw: b.Awards,
			Ce: b.Certifications,
			R:  b.Reviews,
			Pk: b.ParkingInfo,
			Pr: b.PriceRange,
		},
		U: CompactUpdate{
			T:  data.Update.ContentText,
			Dt: data.Update.DealTerms,
			Sh: data.Update.SpecialHoursToday,
			C:  data.Update.Category,
			X:  data.Update.ExpiresAt,
			Ed: data.Update.EventDates,
		},
		SEO: CompactSEO{
			T: data.SEO.Title,
			D: data.SEO.Description,
			K: data.SEO.Keywords,
			U: data.SEO.CanonicalURL,
		},
		I: CompactIntent{
			T: data.Intent.Type,
			P: data.Intent.FilePath,
			S: data.Intent.Slug,
			V: data.Intent.Variant,
		},
		F: data.FAQs,
		G: data.GeneratedAt,
	}

	return compact, nil
}

// Decompress maps a compact form back to PageData, applying read-time defaults.
func Decompress(compact *CompactPage) (*entity.PageData, error) {
	if compact == nil {
		return nil, errors.New("codec: nil compact page")
	}

	c := &compact.B
	data := &entity.PageData{
		Business: entity.BusinessProfile{
			Name:            c.N,
			Category:        c.C,
			EstablishedYear: c.Y,
			Description:     c.D,
			Slug:            c.Sl,
			Address: entity.Address{
				Street:  c.A,
				City:    c.Ci,
				State:   c.S,
				Zip:     c.Z,
				Country: c.Co,
			},
			Latitude:       c.La,
			Longitude:      c.Lo,
			Phone:          c.P,
			PhoneCountry:   c.Pc,
			Email:          c.E,
			Website:        c.W,
			Hours:          c.H,
			WeeklyHours:    c.Wh,
			Services:       c.Sv,
			Specialties:    c.Sp,
			PaymentMethods: c.Pm,
			Languages:      c.Lg,
			Accessibility:  c.Ac,
			FAQs:           c.Fq,
			FeaturedItems:  c.Fi,
			SocialLinks:    c.So,
			Awards:         c.Aw,
			Certifications: c.Ce,
			Reviews:        c.R,
			ParkingInfo:    c.Pk,
			PriceRange:     c.Pr,
		},
		Update: entity.UpdateContent{
			ContentText:       compact.U.T,
			DealTerms:         compact.U.Dt,
			SpecialHoursToday: compact.U.Sh,
			Category:          compact.U.C,
			ExpiresAt:         compact.U.X,
			EventDates:        compact.U.Ed,
		},
		SEO: entity.SEOData{
			Title:        compact.SEO.T,
			Description:  compact.SEO.D,
			Keywords:     compact.SEO.K,
			CanonicalURL: compact.SEO.U,
		},
		Intent: entity.IntentData{
			Type:     compact.I.T,
			FilePath: compact.I.P,
			Slug:     compact.I.S,
			Variant:  compact.I.V,
		},
		FAQs:        compact.F,
		GeneratedAt: compact.G,
	}

	if data.Business.Address.Country == "" {
		data.Business.Address.Country = defaultCountry
	}
	if len(data.Business.PaymentMethods) == 0 {
		data.Business.PaymentMethods = append([]string(nil), DefaultPaymentMethods...)
	}

	return data, nil
}

// Encode compresses data and serializes the compact form.
func Encode(data *entity.PageData) ([]byte, error) {
	compact, err := Compress(data)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(compact)
	if err != nil {
		return nil, errors.Wrap(err, "codec: marshal compact page")
	}

	return raw, nil
}

// Decode parses a serialized compact form and decompresses it.
func Decode(raw []byte) (*entity.PageData, error) {
	var compact CompactPage
	if err := json.Unmarshal(raw, &compact); err != nil {
		return nil, errors.Wrap(err, "codec: unmarshal compact page")
	}

	return Decompress(&compact)
}
