package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Spok95/sport-inventory/internal/domain/analytics"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Theme string

const (
	// ThemeDusk — тёмная тема, с таблицей порога.
	ThemeDusk Theme = "dusk"
	// ThemeClassic — светлая тема без таблицы порога.
	ThemeClassic Theme = "classic"
)

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeDusk, ThemeClassic:
		return Theme(s), nil
	case "":
		return ThemeDusk, nil
	}
	return "", fmt.Errorf("unknown report theme %q", s)
}

type Renderer struct {
	title string
	pages map[Theme]*template.Template
}

func NewRenderer(title string) (*Renderer, error) {
	funcs := template.FuncMap{
		"fixed2": fixed2,
		"inc":    func(i int) int { return i + 1 },
	}
	r := &Renderer{title: title, pages: map[Theme]*template.Template{}}
	for _, th := range []Theme{ThemeDusk, ThemeClassic} {
		t, err := template.New(string(th)+".html").Funcs(funcs).ParseFS(templatesFS, "templates/"+string(th)+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", th, err)
		}
		r.pages[th] = t
	}
	return r, nil
}

type page struct {
	Title string
	*analytics.Summary
}

// HTML renders the full page into memory first so a failed render writes nothing.
func (r *Renderer) HTML(w io.Writer, theme Theme, s *analytics.Summary) error {
	t, ok := r.pages[theme]
	if !ok {
		return fmt.Errorf("unknown report theme %q", theme)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, page{Title: r.title, Summary: s}); err != nil {
		return fmt.Errorf("render %s: %w", theme, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
