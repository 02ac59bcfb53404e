package render

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pagecast/internal/domain/entity"
)

const defaultRegion = "US"

var titleCaser = cases.Title(language.English)

// phone holds the display and dialable forms of a business phone number.
type phone struct {
	Display string
	E164    string
}

// formatPhone normalizes raw into E.164 using the dialing prefix or the
// address country. Numbers that cannot be parsed are shown as given.
func formatPhone(raw, dialPrefix, country string) phone {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return phone{}
	}

	region := regionFor(dialPrefix, country)
	num, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsPossibleNumber(num) {
		return phone{Display: raw, E164: digitsOnly(raw)}
	}

	return phone{
		Display: phonenumbers.Format(num, phonenumbers.NATIONAL),
		E164:    phonenumbers.Format(num, phonenumbers.E164),
	}
}

func regionFor(dialPrefix, country string) string {
	if code, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(dialPrefix), "+")); err == nil {
		if region := phonenumbers.GetRegionCodeForCountryCode(code); region != "" && region != "ZZ" {
			return region
		}
	}
	country = strings.ToUpper(strings.TrimSpace(country))
	if len(country) == 2 {
		return country
	}
	return defaultRegion
}

func digitsOnly(s string) string {
	var b strings.Builder
	for i, r := range s {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// phoneHref returns a tel: link. The value is built from digits only, so it is
// safe to mark as a trusted URL.
func phoneHref(p phone) template.URL {
	if p.E164 == "" {
		return ""
	}
	return template.URL("tel:" + digitsOnly(p.E164)) //nolint:gosec // digits and a leading plus only
}

// categoryName turns a stored category such as "coffee_shop" into "Coffee Shop".
func categoryName(category string) string {
	category = strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(category))
	return titleCaser.String(strings.Join(strings.Fields(category), " "))
}

func location(addr entity.Address) string {
	switch {
	case addr.City != "" && addr.State != "":
		return addr.City + ", " + addr.State
	case addr.City != "":
		return addr.City
	default:
		return addr.State
	}
}

func fullAddress(addr entity.Address) string {
	parts := make([]string, 0, 3)
	if addr.Street != "" {
		parts = append(parts, addr.Street)
	}
	if loc := location(addr); loc != "" {
		if addr.Zip != "" {
			loc += " " + addr.Zip
		}
		parts = append(parts, loc)
	}
	return strings.Join(parts, ", ")
}

// weeklyHours renders structured hours as "Monday: 09:00-17:00" lines.
func weeklyHours(days []entity.DayHours) []string {
	lines := make([]string, 0, len(days))
	for _, d := range days {
		if d.Day == "" {
			continue
		}
		day := titleCaser.String(d.Day)
		switch {
		case d.Closed:
			lines = append(lines, day+": Closed")
		case d.Opens != "" && d.Closes != "":
			lines = append(lines, day+": "+d.Opens+"-"+d.Closes)
		}
	}
	return lines
}

// sentence trims s and makes sure it ends with terminal punctuation.
func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

func yearsInBusiness(established, currentYear int) int {
	if established <= 0 || established > currentYear {
		return 0
	}
	return currentYear - established
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
