package certificate

import (
	"VeriUser/internal/expiry"
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

var tmpl = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Mode способ показа сертификата.
type Mode int

const (
	// ModePage — страница сертификата по ссылке.
	ModePage Mode = iota
	// ModePrint — документ, который сразу отправляется на печать.
	ModePrint
)

// palette — цвета блока срока действия для каждого уровня.
type palette struct {
	Background string
	Border     string
	Heading    string
	Text       string
}

var palettes = map[expiry.Tier]palette{
	expiry.TierOK:       {Background: "#f0fdf4", Border: "#bbf7d0", Heading: "#14532d", Text: "#16a34a"},
	expiry.TierWarning:  {Background: "#fefce8", Border: "#fef08a", Heading: "#713f12", Text: "#ca8a04"},
	expiry.TierCritical: {Background: "#fef2f2", Border: "#fecaca", Heading: "#7f1d1d", Text: "#dc2626"},
}

type pageData struct {
	Doc     Document
	Palette palette
	Print   bool
}

// Render пишет самодостаточный HTML-документ сертификата.
func (d Document) Render(w io.Writer, mode Mode) error {
	return tmpl.ExecuteTemplate(w, "certificate.html", pageData{
		Doc:     d,
		Palette: palettes[d.Expiry.Tier],
		Print:   mode == ModePrint,
	})
}

// RenderNotFound пишет страницу «Сертификат не найден».
func RenderNotFound(w io.Writer, id string) error {
	return tmpl.ExecuteTemplate(w, "not_found.html", struct{ ID string }{ID: id})
}
