package app

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// Page is the view model consumed by home.gohtml.
type Page struct {
	Site           Site
	Meta           []MetaTag
	Canonical      string
	StructuredData template.JS
	LastUpdated    string
	Year           int
	Message        string
	HasMessage     bool
	FooterText     string
	QuickStart     []string
	Pillars        []Card
	Topics         []Card
	Labs           []Card
	Tools          []Card
	Audiences      []Card
	Reasons        []string
	Badges         []Badge
	FAQs           []FAQ
}

// NewPage derives the landing page view from a loader result. acceptLanguage
// selects the "last updated" date format.
func NewPage(site Site, result LoaderResult, acceptLanguage string) (Page, error) {
	faqs := FAQs()
	ld, err := BuildStructuredData(site, faqs).JSON()
	if err != nil {
		return Page{}, err
	}

	footer := site.FooterFallback
	if result.HasMessage {
		footer = result.Message
	}

	return Page{
		Site:      site,
		Meta:      BuildMeta(site),
		Canonical: site.URL,
		// json.Marshal already escapes <, > and & so the payload is inert inside <script>
		StructuredData: template.JS(ld),
		LastUpdated:    FormatDate(result.Now, acceptLanguage),
		Year:           result.Now.Year(),
		Message:        result.Message,
		HasMessage:     result.HasMessage,
		FooterText:     footer,
		QuickStart:     QuickStart(),
		Pillars:        Pillars(),
		Topics:         Topics(),
		Labs:           Labs(),
		Tools:          Tools(),
		Audiences:      Audiences(),
		Reasons:        Reasons(),
		Badges:         Badges(),
		FAQs:           faqs,
	}, nil
}

// Renderer executes the embedded landing page template.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the bundled templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("base").ParseFS(templateFS, "templates/home.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render writes the page to w. Output is buffered so a template failure
// leaves w untouched.
func (r *Renderer) Render(w io.Writer, page Page) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "home.gohtml", page); err != nil {
		return fmt.Errorf("render home: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
