package page

import (
	_ "embed"
)

//go:embed page.astro.tmpl
var pageTemplateSource string
