package render

import (
	"html"
	"strings"
)

// RenderFallback builds the last-resort page without touching templates, so
// it still works when page data or template execution is the problem.
func (e *Engine) RenderFallback(requestPath string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="robots" content="noindex">
<title>Page not found</title>
</head>
<body>
<main>
<h1>Page not found</h1>
<p>We could not find a page at <code>`)
	b.WriteString(html.EscapeString(requestPath))
	b.WriteString(`</code>. It may have expired or moved.</p>
<p><a href="/">Return to the home page</a></p>
</main>
</body>
</html>
`)
	return b.String()
}
