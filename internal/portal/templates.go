package portal

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// Templates parses the pages served by the portal routes.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFiles, "templates/*.tmpl"))
}
