package site

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/yogu-code/portfolio/internal/portfolio"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"motion": motionStyle,
	"join":   strings.Join,
	"tone":   toneClass,
}

// motionStyle renders a transition as inline animation timing.
func motionStyle(t portfolio.Transition) template.CSS {
	return template.CSS(fmt.Sprintf("animation-delay: %dms; animation-duration: %dms", t.DelayMS(), t.DurationMS()))
}

func toneClass(t portfolio.Tone) string {
	return "badge--" + string(t)
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("static assets missing: " + err.Error())
	}
	return sub
}
