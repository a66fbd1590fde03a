package views

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed about.md
var aboutMarkdown []byte

// Stylesheet and Script are the static assets every page links to.
var (
	Stylesheet = []byte(cssContent)
	Script     = []byte(jsContent)
)

// FieldSet is a prefixed group of character fields as laid out by the
// "profile" template.
type FieldSet struct {
	Prefix string
	Fields Fields
}

// ID returns the target id for the named field, e.g. ID("Name") -> "charName".
func (s FieldSet) ID(name string) string { return s.Prefix + name }

// Text returns the value of the named field.
func (s FieldSet) Text(name string) string { return s.Fields.Text(s.Prefix + name) }

// Profile returns the page's fields for the "profile" template.
func (p DetailPage) Profile() FieldSet {
	return FieldSet{Prefix: DetailPrefix, Fields: p.Fields}
}

// IndexPage is the landing page with the generator panel. Every page load
// starts idle with empty result targets; results arrive over the page's own
// connection.
type IndexPage struct {
	Delay time.Duration
}

// Result returns the empty result targets.
func (IndexPage) Result() FieldSet {
	return FieldSet{Prefix: ResultPrefix, Fields: BlankFields(ResultPrefix)}
}

// layoutData wraps a page's own data for the shared layout.
type layoutData struct {
	Title   string
	Section string
	Page    any
}

// Renderer executes the page templates. It is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
	grid  *template.Template
	about template.HTML
}

// NewRenderer parses every page template and renders the about page once.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout").Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}
	for name, src := range map[string]string{"grid": gridTemplate, "profile": profileTemplate} {
		if _, err := base.New(name).Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	r.grid = base.Lookup("grid")

	pages := map[string]string{
		"index":   indexTemplate,
		"gallery": galleryTemplate,
		"detail":  detailTemplate,
		"about":   aboutTemplate,
	}
	for name, src := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", name, err)
		}
		if _, err := t.New("content").Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		r.pages[name] = t
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	var buf bytes.Buffer
	if err := md.Convert(aboutMarkdown, &buf); err != nil {
		return nil, fmt.Errorf("rendering about page: %w", err)
	}
	r.about = template.HTML(buf.String())

	return r, nil
}

// Index renders the landing page.
func (r *Renderer) Index(w io.Writer, page IndexPage) error {
	return r.execute(w, "index", layoutData{Title: "Home", Section: "home", Page: page})
}

// Gallery renders the full gallery page.
func (r *Renderer) Gallery(w io.Writer, page GalleryPage) error {
	return r.execute(w, "gallery", layoutData{Title: "Gallery", Section: "gallery", Page: page})
}

// Grid renders only the cards of the gallery.
func (r *Renderer) Grid(w io.Writer, page GalleryPage) error {
	return r.grid.Execute(w, page)
}

// Detail renders a character's detail page.
func (r *Renderer) Detail(w io.Writer, page DetailPage) error {
	return r.execute(w, "detail", layoutData{Title: page.Text(DetailPrefix + "Name"), Section: "gallery", Page: page})
}

// About renders the project description.
func (r *Renderer) About(w io.Writer) error {
	return r.execute(w, "about", layoutData{Title: "About", Section: "about", Page: r.about})
}

func (r *Renderer) execute(w io.Writer, name string, data layoutData) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}

// BlankFields returns every character field under prefix with empty values,
// so the targets exist before any result has been written.
func BlankFields(prefix string) Fields {
	names := []string{"Icon", "Name", "Quote", "Profile", "Age", "Gender", "Species", "Role", "Ability", "Wants"}
	f := make(Fields, len(names))
	for i, n := range names {
		f[i] = Field{ID: prefix + n}
	}
	return f
}
