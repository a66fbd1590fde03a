package views

import (
	"bytes"
	"fmt"

	"github.com/ziadkadry99/ai-heroes/internal/catalog"
)

// Page paths. Cards link to DetailPath carrying the character id in the
// "id" query parameter, and a failed detail lookup redirects to GalleryPath.
const (
	IndexPath   = "/"
	GalleryPath = "/gallery.html"
	DetailPath  = "/character.html"
	AboutPath   = "/about.html"
)

// GridTarget is the container the gallery cards are written into.
const GridTarget = "characterGrid"

// Card is one clickable gallery entry.
type Card struct {
	ID   int
	Icon string
	Name string
	Role string
	Tags []string
	Href string
}

// GalleryPage is everything the gallery view renders.
type GalleryPage struct {
	Filter  Filter
	Filters []FilterButton
	Cards   []Card
}

// BuildGallery lays out one card per character. The filter only decides
// which button is marked active; the full catalog is always listed.
func BuildGallery(cat *catalog.Catalog, filter Filter, labels []Filter) GalleryPage {
	if filter == "" {
		filter = FilterAll
	}
	if len(labels) == 0 {
		labels = DefaultFilters
	}

	chars := applyFilter(cat.All(), filter)
	cards := make([]Card, len(chars))
	for i, c := range chars {
		cards[i] = Card{
			ID:   c.ID,
			Icon: c.Icon,
			Name: c.Name,
			Role: c.Role,
			Tags: c.Tags(),
			Href: DetailURL(c.ID),
		}
	}

	return GalleryPage{
		Filter:  filter,
		Filters: filterButtons(labels, filter),
		Cards:   cards,
	}
}

// DetailURL returns the detail page URL for the given character id.
func DetailURL(id int) string {
	return fmt.Sprintf("%s?id=%d", DetailPath, id)
}

// RenderGrid writes the card grid into the GridTarget of t. It does nothing
// when t has no such target.
func (r *Renderer) RenderGrid(t Targets, page GalleryPage) error {
	if !t.Has(GridTarget) {
		return nil
	}
	var buf bytes.Buffer
	if err := r.Grid(&buf, page); err != nil {
		return err
	}
	t.Set(GridTarget, buf.String())
	return nil
}
