package views

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/ziadkadry99/ai-heroes/internal/catalog"
)

// ErrLookupMiss is returned when the detail view cannot resolve a character
// from its query. Callers recover by sending the user back to the gallery.
var ErrLookupMiss = errors.New("character lookup miss")

// Field id prefixes for the two places a character's details are shown.
const (
	DetailPrefix = "char"
	ResultPrefix = "result"
)

// DetailPage is the detail view of a single character. Fields alone is
// enough to render it.
type DetailPage struct {
	Character catalog.Character
	Fields    Fields
}

// Text returns the value of the named field.
func (p DetailPage) Text(id string) string {
	return p.Fields.Text(id)
}

// BuildDetail resolves the character named by the "id" query parameter.
// The id is read like a leading integer, so "2abc" and "2.0" both name 2.
// Missing, non-numeric and unknown ids all yield an error wrapping
// ErrLookupMiss.
func BuildDetail(cat *catalog.Catalog, query url.Values) (DetailPage, error) {
	raw := query.Get("id")
	if strings.TrimSpace(raw) == "" {
		return DetailPage{}, fmt.Errorf("missing id: %w", ErrLookupMiss)
	}
	id, ok := parseLeadingInt(raw)
	if !ok {
		return DetailPage{}, fmt.Errorf("id %q is not a number: %w", raw, ErrLookupMiss)
	}
	c, err := cat.ByID(id)
	if err != nil {
		return DetailPage{}, fmt.Errorf("%v: %w", err, ErrLookupMiss)
	}

	return DetailPage{
		Character: c,
		Fields:    CharacterFields(DetailPrefix, c),
	}, nil
}

// RenderDetail writes the detail fields for query into t. On a lookup miss
// nothing is written and the gallery URL to redirect to is returned along
// with the error.
func RenderDetail(cat *catalog.Catalog, query url.Values, t Targets) (redirect string, err error) {
	page, err := BuildDetail(cat, query)
	if err != nil {
		return GalleryPath, err
	}
	page.Fields.Apply(t)
	return "", nil
}

// DetailFromTargets builds the page for detail targets filled by
// RenderDetail.
func DetailFromTargets(t MapTargets) DetailPage {
	return DetailPage{Fields: BlankFields(DetailPrefix).Collect(t)}
}

// DetailTargets returns empty targets for every detail field.
func DetailTargets() MapTargets {
	return NewTargets(BlankFields(DetailPrefix).IDs()...)
}

// parseLeadingInt reads an optionally signed run of digits after leading
// whitespace and ignores whatever follows it.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// CharacterFields lists a character's displayed values under target ids
// formed from prefix, e.g. "charName" or "resultName".
func CharacterFields(prefix string, c catalog.Character) Fields {
	return Fields{
		{ID: prefix + "Icon", Text: c.Icon},
		{ID: prefix + "Name", Text: c.Name},
		{ID: prefix + "Quote", Text: QuoteText(c.Quote)},
		{ID: prefix + "Profile", Text: c.Profile},
		{ID: prefix + "Age", Text: c.Age},
		{ID: prefix + "Gender", Text: c.Gender},
		{ID: prefix + "Species", Text: c.Species},
		{ID: prefix + "Role", Text: c.Role},
		{ID: prefix + "Ability", Text: c.Ability},
		{ID: prefix + "Wants", Text: c.Wants},
	}
}

// QuoteText wraps a catch phrase in corner-bracket quotation marks.
func QuoteText(q string) string {
	return "「" + q + "」"
}
