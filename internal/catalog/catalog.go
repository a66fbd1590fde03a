package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no character carries the requested id.
var ErrNotFound = errors.New("character not found")

// Catalog is a fixed, ordered collection of characters. It is built once at
// startup and never modified afterwards, so it is safe for concurrent use.
type Catalog struct {
	chars []Character
	index map[int]int // id -> position in chars
}

// New validates chars and builds a Catalog preserving their order.
func New(chars []Character) (*Catalog, error) {
	if len(chars) == 0 {
		return nil, errors.New("catalog must contain at least one character")
	}

	c := &Catalog{
		chars: make([]Character, len(chars)),
		index: make(map[int]int, len(chars)),
	}
	copy(c.chars, chars)

	for i, ch := range c.chars {
		if err := ch.Validate(); err != nil {
			return nil, err
		}
		if prev, dup := c.index[ch.ID]; dup {
			return nil, fmt.Errorf("duplicate character id %d (%q and %q)", ch.ID, c.chars[prev].Name, ch.Name)
		}
		c.index[ch.ID] = i
	}
	return c, nil
}

// All returns every character in insertion order. The slice is a copy.
func (c *Catalog) All() []Character {
	out := make([]Character, len(c.chars))
	copy(out, c.chars)
	return out
}

// ByID looks up a character by id.
func (c *Catalog) ByID(id int) (Character, error) {
	i, ok := c.index[id]
	if !ok {
		return Character{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return c.chars[i], nil
}

// At returns the character at position i in display order.
func (c *Catalog) At(i int) Character {
	return c.chars[i]
}

// Len returns the number of characters.
func (c *Catalog) Len() int { return len(c.chars) }
