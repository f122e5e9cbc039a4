// Package web embeds the page templates and the static stylesheet and script.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html static
var files embed.FS

// Templates parses every page and fragment template with funcs available.
func Templates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

// Static serves the embedded static/ directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic("web: failed to create sub filesystem: " + err.Error())
	}
	return http.FS(sub)
}
