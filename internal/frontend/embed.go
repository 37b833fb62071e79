// Package frontend serves the embedded single-page form that talks to
// the estimate API.
package frontend

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// StaticFS returns the embedded static filesystem rooted at static/.
func StaticFS() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
