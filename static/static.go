// Package static embeds the site's stylesheets.
package static

import "embed"

//go:embed css
var FS embed.FS
