package web

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/heartmarshall/wordlookup/internal/lookup"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// pageData flattens a lookup.View for the template.
type pageData struct {
	Query      string
	Error      string
	HasResult  bool
	Definition string
	AudioURL   string
}

func newPageData(v lookup.View) pageData {
	d := pageData{Query: v.Query}
	if v.ErrorMessage != nil {
		d.Error = *v.ErrorMessage
	}
	if v.Result != nil {
		d.HasResult = true
		d.Definition = v.Result.DefinitionText
		if v.Result.AudioURL != nil {
			d.AudioURL = *v.Result.AudioURL
		}
	}
	return d
}

// RenderPage writes the full HTML page for v. Output is buffered so a
// template error never leaves a half-written page.
func RenderPage(w io.Writer, v lookup.View) error {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, newPageData(v)); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
