package render

// layoutTemplate is shared by every intent variant. Each variant supplies the
// "content" block; the partials below are available to all of them.
const layoutTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
{{- if .Keywords}}
<meta name="keywords" content="{{.Keywords}}">
{{- end}}
<meta name="robots" content="index, follow, max-snippet:-1">
{{- if .CanonicalURL}}
<link rel="canonical" href="{{.CanonicalURL}}">
<meta property="og:url" content="{{.CanonicalURL}}">
{{- end}}
<meta property="og:type" content="business.business">
<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
<meta name="voice-search-summary" content="{{.Speakable}}">
<meta name="ai-content-summary" content="{{.AISummary}}">
{{- range .Meta}}
<meta name="{{.Name}}" content="{{.Content}}">
{{- end}}
{{- range .Schemas}}
<script type="application/ld+json">{{.}}</script>
{{- end}}
<style>body{font-family:system-ui,sans-serif;max-width:46rem;margin:0 auto;padding:1rem;line-height:1.5}nav ol{list-style:none;padding:0;display:flex;gap:.5rem;flex-wrap:wrap}nav li+li:before{content:"/ "}.banner{padding:.75rem;border-radius:.5rem;background:#fff4d6}.cta{display:inline-block;padding:.5rem 1rem;border-radius:.5rem;background:#1a5fb4;color:#fff;text-decoration:none}</style>
</head>
<body>
<header class="site-header">
<nav aria-label="Breadcrumb"><ol>
{{- range .Breadcrumbs}}
<li>{{if .URL}}<a href="{{.URL}}">{{.Name}}</a>{{else}}{{.Name}}{{end}}</li>
{{- end}}
</ol></nav>
</header>
<main>
<article class="page page--{{.IntentClass}}" data-intent="{{.Intent}}">
{{template "content" .}}
<section class="speakable-summary" id="speakable-summary">
<p>{{.Speakable}}</p>
</section>
<section class="ai-summary" data-ai-content="key-facts" aria-label="Key facts">
<h2>Key facts about {{.Business.Name}}</h2>
<dl>
{{- range .Facts}}
<dt>{{.Label}}</dt><dd>{{.Value}}</dd>
{{- end}}
</dl>
</section>
{{- if .FAQs}}
<section class="faq" id="faq">
<h2>Frequently asked questions</h2>
{{- range .FAQs}}
<details><summary>{{.Question}}</summary><p>{{.Answer}}</p></details>
{{- end}}
</section>
{{- end}}
</article>
</main>
<footer class="nap">
<p><strong>{{.Business.Name}}</strong>{{if .Address}} &middot; {{.Address}}{{end}}</p>
<p>{{if .PhoneDisplay}}<a href="{{.PhoneHref}}">{{.PhoneDisplay}}</a>{{end}}
{{- if .Business.Email}} &middot; <a href="mailto:{{.Business.Email}}">{{.Business.Email}}</a>{{end}}
{{- if .Business.Website}} &middot; <a href="{{.Business.Website}}" rel="noopener">Website</a>{{end}}</p>
{{- if .Business.SocialLinks}}
<ul class="social">
{{- range .Business.SocialLinks}}
<li><a href="{{.URL}}" rel="noopener">{{.Platform}}</a></li>
{{- end}}
</ul>
{{- end}}
</footer>
</body>
</html>
{{define "update"}}
<section class="update" id="latest-update">
<h2>{{.UpdateHeading}}</h2>
<p class="update-content">{{.Content}}</p>
{{- template "deal" .}}
{{- template "timing" .}}
</section>
{{end}}
{{define "deal"}}
{{- if .DealTerms}}
<p class="deal"><strong>Offer:</strong> {{.DealTerms}}</p>
{{- end}}
{{end}}
{{define "timing"}}
{{- if .SpecialHours}}
<p class="special-hours"><strong>Today's hours:</strong> {{.SpecialHours}}</p>
{{- end}}
{{- if .EventDates}}
<p class="event-dates"><strong>Dates:</strong> {{join .EventDates ", "}}</p>
{{- end}}
{{- if .ExpiresOn}}
<p class="expires"><time datetime="{{.ExpiresISO}}">Available until {{.ExpiresOn}}</time></p>
{{- end}}
{{end}}
{{define "hours"}}
{{- if or .Hours .Business.Hours}}
<section class="hours" id="hours">
<h2>Hours</h2>
{{- if .Hours}}
<ul>
{{- range .Hours}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- else}}
<p>{{.Business.Hours}}</p>
{{- end}}
</section>
{{- end}}
{{end}}
{{define "contact"}}
<section class="contact" id="contact">
<h2>Contact {{.Business.Name}}</h2>
{{- if .PhoneDisplay}}
<p><a class="cta" href="{{.PhoneHref}}">Call {{.PhoneDisplay}}</a></p>
{{- end}}
{{- if .Address}}
<p class="address">{{.Address}}</p>
{{- end}}
{{- if .Business.ParkingInfo}}
<p class="parking"><strong>Parking:</strong> {{.Business.ParkingInfo}}</p>
{{- end}}
{{- if .Business.PaymentMethods}}
<p class="payments"><strong>Payment:</strong> {{join .Business.PaymentMethods ", "}}</p>
{{- end}}
{{- if .Business.Languages}}
<p class="languages"><strong>Languages:</strong> {{join .Business.Languages ", "}}</p>
{{- end}}
{{- if .Business.Accessibility}}
<p class="accessibility"><strong>Accessibility:</strong> {{join .Business.Accessibility ", "}}</p>
{{- end}}
</section>
{{end}}
{{define "offerings"}}
{{- if or .Business.Services .Business.FeaturedItems}}
<section class="offerings" id="offerings">
<h2>What {{.Business.Name}} offers</h2>
{{- if .Business.Services}}
<ul class="services">
{{- range .Business.Services}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
{{- range .Business.FeaturedItems}}
<div class="featured-item"><h3>{{.Name}}</h3>{{if .Description}}<p>{{.Description}}</p>{{end}}{{if .Price}}<p class="price">{{.Price}}</p>{{end}}</div>
{{- end}}
</section>
{{- end}}
{{end}}
{{define "highlights"}}
{{- if .Highlights}}
<ul class="highlights">
{{- range .Highlights}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
{{end}}
{{define "reviews"}}
{{- with .Business.Reviews}}
<section class="reviews" id="reviews">
<h2>Customer reviews</h2>
<p>Rated {{printf "%.1f" .Rating}} out of 5 from {{.Count}} reviews{{if .Source}} on {{.Source}}{{end}}.</p>
</section>
{{- end}}
{{end}}
{{define "credentials"}}
{{- if or .Business.Awards .Business.Certifications}}
<section class="credentials" id="credentials">
<h2>Awards and certifications</h2>
<ul>
{{- range .Business.Awards}}
<li class="award">{{.}}</li>
{{- end}}
{{- range .Business.Certifications}}
<li class="certification">{{.}}</li>
{{- end}}
</ul>
</section>
{{- end}}
{{end}}
{{define "area"}}
<section class="area" id="service-area">
<h2>Serving {{.Location}}</h2>
{{- if .AreaDescription}}
<p>{{.AreaDescription}}</p>
{{- end}}
{{- if .Address}}
<p>Find us at {{.Address}}.</p>
{{- end}}
</section>
{{end}}
`
