package views

import (
	"net/url"
	"strings"

	"github.com/ziadkadry99/ai-heroes/internal/catalog"
)

// Filter is the selected gallery category. The set of labels is open;
// FilterAll is the default.
type Filter string

// FilterAll selects every character.
const FilterAll Filter = "all"

// DefaultFilters are the category buttons shown above the gallery.
var DefaultFilters = []Filter{FilterAll, "human", "hybrid", "digital", "mythic"}

// ParseFilter normalizes a raw filter value. Empty input means FilterAll.
func ParseFilter(raw string) Filter {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return FilterAll
	}
	return Filter(raw)
}

// FilterButton is one category control above the gallery grid.
type FilterButton struct {
	Label  Filter
	Href   string
	Active bool
}

// filterButtons marks exactly the button whose label equals current as
// active. An unknown current label leaves every button inactive.
func filterButtons(labels []Filter, current Filter) []FilterButton {
	buttons := make([]FilterButton, len(labels))
	for i, l := range labels {
		buttons[i] = FilterButton{
			Label:  l,
			Href:   GalleryURL(l),
			Active: l == current,
		}
	}
	return buttons
}

// applyFilter narrows chars to the selected category. Characters carry no
// category yet, so every filter value keeps the full catalog.
func applyFilter(chars []catalog.Character, _ Filter) []catalog.Character {
	return chars
}

// GalleryURL returns the gallery page URL for the given filter.
func GalleryURL(f Filter) string {
	if f == "" || f == FilterAll {
		return GalleryPath
	}
	return GalleryPath + "?" + url.Values{"filter": {string(f)}}.Encode()
}
