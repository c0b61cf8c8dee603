package handlers

import (
	"embed"
	"encoding/json"
	"html/template"
	"strings"

	"flyaway/internal/utils"
)

//go:embed views/*.tmpl
var viewsFS embed.FS

var templateFuncs = template.FuncMap{
	"baht":  utils.FormatBaht,
	"stars": func(n int) string { return strings.Repeat("★", n) + strings.Repeat("☆", 5-n) },
	"inc":   func(i int) int { return i + 1 },
	"json": func(v any) string {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err.Error()
		}
		return string(b)
	},
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(viewsFS, "views/*.tmpl")
}
