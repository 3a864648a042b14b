package gallery

import (
	"fmt"

	"mwalali_homes/internal/domain"
)

// Slide is one image in the lightbox sequence.
type Slide struct {
	Index   int    `json:"index"`
	Image   string `json:"image"`
	Section string `json:"section"`
	Caption string `json:"caption,omitempty"`
	Badge   string `json:"badge,omitempty"`
}

// Slides flattens every gallery of p into lightbox order: hero, generic gallery,
// unit variants, interior sections, amenities. An image appears once, at its
// first position.
func Slides(p domain.Property) []Slide {
	var out []Slide
	seen := make(map[string]struct{})
	add := func(img, section, caption, badge string) {
		if img == "" {
			return
		}
		if _, ok := seen[img]; ok {
			return
		}
		seen[img] = struct{}{}
		out = append(out, Slide{Index: len(out), Image: img, Section: section, Caption: caption, Badge: badge})
	}

	add(p.ImageURL, "Overview", p.Title, "")
	for _, g := range p.Gallery {
		add(g, "Gallery", "", "")
	}
	for _, u := range p.Units {
		add(u.Image, "Units", fmt.Sprintf("%s · %s · %s", u.Name, u.Size, u.Price), u.Type)
	}
	for _, ig := range p.InteriorGalleries {
		for _, img := range ig.Images {
			add(img, ig.Title, ig.Title, ig.Badge)
		}
	}
	for _, a := range p.AmenitiesGallery {
		add(a, "Amenities", "", "")
	}
	return out
}

// Wrap maps any integer onto [0, n).
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
