// Package static embeds the board stylesheet and script.
package static

import "embed"

// FS exposes board static assets for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS
