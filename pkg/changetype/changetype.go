// Package changetype holds the catalog of change types a commit can be
// classified as, and the presets shipped with commitform.
package changetype

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-commitform/pkg/form"
)

// ErrDuplicateType is returned when a catalog declares the same id twice.
var ErrDuplicateType = errors.New("changetype: duplicate type")

// ChangeType is one entry of a catalog.
type ChangeType struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Catalog is an ordered, read-only list of change types with unique ids.
type Catalog struct {
	types []ChangeType
	index map[string]int
}

// New builds a catalog preserving the given order.
func New(types ...ChangeType) (*Catalog, error) {
	c := &Catalog{
		types: make([]ChangeType, 0, len(types)),
		index: make(map[string]int, len(types)),
	}
	for _, t := range types {
		id := strings.TrimSpace(t.ID)
		if id == "" {
			return nil, errors.New("changetype: type id is required")
		}
		if _, exists := c.index[id]; exists {
			return nil, fmt.Errorf("%w %q", ErrDuplicateType, id)
		}
		t.ID = id
		if strings.TrimSpace(t.Title) == "" {
			t.Title = id
		}
		c.index[id] = len(c.types)
		c.types = append(c.types, t)
	}
	if len(c.types) == 0 {
		return nil, errors.New("changetype: catalog is empty")
	}
	return c, nil
}

// MustNew is New for package level presets.
func MustNew(types ...ChangeType) *Catalog {
	c, err := New(types...)
	if err != nil {
		panic(err)
	}
	return c
}

// Types returns a copy of the catalog entries in order.
func (c *Catalog) Types() []ChangeType {
	if c == nil {
		return nil
	}
	return append([]ChangeType(nil), c.types...)
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.types)
}

// Lookup finds a change type by id.
func (c *Catalog) Lookup(id string) (ChangeType, bool) {
	if c == nil {
		return ChangeType{}, false
	}
	idx, ok := c.index[id]
	if !ok {
		return ChangeType{}, false
	}
	return c.types[idx], true
}

// First returns the first entry of the catalog.
func (c *Catalog) First() ChangeType {
	if c.Len() == 0 {
		return ChangeType{}
	}
	return c.types[0]
}

// Choices formats the catalog as select options. Each label is the title and
// a colon, padded to the longest title, followed by the description.
func (c *Catalog) Choices() []form.Choice {
	if c.Len() == 0 {
		return nil
	}
	width := 0
	for _, t := range c.types {
		if n := utf8.RuneCountInString(t.Title); n > width {
			width = n
		}
	}
	width++

	out := make([]form.Choice, 0, len(c.types))
	for _, t := range c.types {
		out = append(out, form.Choice{
			Label: rightPad(t.Title+":", width) + " " + t.Description,
			Value: t.ID,
		})
	}
	return out
}

func rightPad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
