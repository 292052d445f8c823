package view

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// Templates parses the embedded layout. The entry point is "base".
func Templates() (*template.Template, error) {
	return template.New("storefront").ParseFS(templateFS, "templates/*.tmpl")
}

// Assets is served under /assets.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
