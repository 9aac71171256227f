// Package catalog loads the category → script tree that the launcher browses.
// A catalog is built once at startup and is read-only afterwards.
package catalog

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a display string does not name a script.
var ErrNotFound = errors.New("script not found")

// Script is a single launchable entry.
type Script struct {
	Name        string
	Category    string
	Path        string
	Description string
}

// Display returns the "<category>/<name>" string used for searching and listing.
func (s Script) Display() string {
	return s.Category + "/" + s.Name
}

// Catalog holds categories in display order and the scripts for each of them.
type Catalog struct {
	root       string
	categories []string
	scripts    map[string][]Script
	byPath     map[string]Script
}

// New builds a catalog from scripts in the order supplied. Categories appear
// in the order their first script does. Duplicate (category, name) pairs are
// dropped.
func New(root string, scripts ...Script) *Catalog {
	c := &Catalog{
		root:    root,
		scripts: make(map[string][]Script),
		byPath:  make(map[string]Script, len(scripts)),
	}
	seen := make(map[string]struct{}, len(scripts))
	for _, s := range scripts {
		key := s.Display()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := c.scripts[s.Category]; !ok {
			c.categories = append(c.categories, s.Category)
		}
		c.scripts[s.Category] = append(c.scripts[s.Category], s)
		if s.Path != "" {
			c.byPath[s.Path] = s
		}
	}
	return c
}

// Root returns the directory the catalog was loaded from.
func (c *Catalog) Root() string {
	if c == nil {
		return ""
	}
	return c.root
}

// Categories returns the category names in display order.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Scripts returns the scripts belonging to category.
func (c *Catalog) Scripts(category string) []Script {
	if c == nil {
		return nil
	}
	list := c.scripts[category]
	out := make([]Script, len(list))
	copy(out, list)
	return out
}

// All returns every script, category by category.
func (c *Catalog) All() []Script {
	if c == nil {
		return nil
	}
	out := make([]Script, 0, c.Len())
	for _, category := range c.categories {
		out = append(out, c.scripts[category]...)
	}
	return out
}

// Len reports the total number of scripts.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, list := range c.scripts {
		n += len(list)
	}
	return n
}

// Lookup finds a script by its path.
func (c *Catalog) Lookup(path string) (Script, bool) {
	if c == nil {
		return Script{}, false
	}
	s, ok := c.byPath[path]
	return s, ok
}

// Resolve finds a script from its "<category>/<name>" display string.
func (c *Catalog) Resolve(display string) (Script, error) {
	trimmed := strings.Trim(strings.TrimSpace(display), "/")
	category, name, ok := strings.Cut(trimmed, "/")
	if !ok || c == nil {
		return Script{}, ErrNotFound
	}
	for _, s := range c.scripts[category] {
		if s.Name == name {
			return s, nil
		}
	}
	return Script{}, ErrNotFound
}

// IndexOfCategory returns the position of category or -1.
func (c *Catalog) IndexOfCategory(category string) int {
	if c == nil {
		return -1
	}
	for i, name := range c.categories {
		if name == category {
			return i
		}
	}
	return -1
}
