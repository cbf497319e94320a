// Package static holds the stylesheet compiled into the binary.
package static

import "embed"

//go:embed *.css
var FS embed.FS
