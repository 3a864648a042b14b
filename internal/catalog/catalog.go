package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mwalali_homes/internal/domain"
)

//go:embed properties.yaml
var bundled []byte

// Catalog is the immutable, in-memory listing set. Order is fixture order.
type Catalog struct {
	items []domain.Property
	byID  map[string]int
}

// Load parses the fixture at path, or the bundled one when path is empty.
func Load(path string) (*Catalog, error) {
	data := bundled
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var items []domain.Property
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return New(items)
}

func New(items []domain.Property) (*Catalog, error) {
	c := &Catalog{items: make([]domain.Property, 0, len(items)), byID: make(map[string]int, len(items))}
	for i, p := range items {
		p.ID = strings.TrimSpace(p.ID)
		p.Description = strings.TrimSpace(p.Description)
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("property #%d: %w", i, err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("property #%d: duplicate id %q", i, p.ID)
		}
		c.byID[p.ID] = len(c.items)
		c.items = append(c.items, p)
	}
	return c, nil
}

func validate(p domain.Property) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("missing id")
	case strings.TrimSpace(p.Title) == "":
		return fmt.Errorf("%s: missing title", p.ID)
	case !p.Category.Valid():
		return fmt.Errorf("%s: invalid category %q", p.ID, p.Category)
	case !p.Type.Valid():
		return fmt.Errorf("%s: invalid type %q", p.ID, p.Type)
	case strings.TrimSpace(p.ImageURL) == "":
		return fmt.Errorf("%s: missing imageUrl", p.ID)
	}
	return nil
}

// All returns a copy; callers may reorder it freely.
func (c *Catalog) All() []domain.Property {
	out := make([]domain.Property, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Get(id string) (domain.Property, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	return c.items[i], nil
}

func (c *Catalog) IDs() []string {
	out := make([]string, len(c.items))
	for i, p := range c.items {
		out[i] = p.ID
	}
	return out
}

// Assets lists every local or remote file a listing references, first-seen order.
func (c *Catalog) Assets() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, p := range c.items {
		add(p.ImageURL)
		for _, g := range p.Gallery {
			add(g)
		}
		for _, u := range p.Units {
			add(u.Image)
		}
		for _, ig := range p.InteriorGalleries {
			for _, img := range ig.Images {
				add(img)
			}
		}
		for _, a := range p.AmenitiesGallery {
			add(a)
		}
		add(p.Brochure)
	}
	return out
}
