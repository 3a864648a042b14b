package app

import (
	"fmt"
	"strings"

	"mwalali_homes/internal/domain"
)

const siteName = "Mwalali Homes"

type viewDef struct {
	label    string
	listing  bool
	category domain.Category
}

var views = map[string]viewDef{
	"home":    {label: "", listing: true},
	"about":   {label: "About Us"},
	"sale":    {label: "For Sale", listing: true, category: domain.CategorySale},
	"rent":    {label: "For Rent", listing: true, category: domain.CategoryRent},
	"contact": {label: "Contact Us"},
}

// Navigate describes what switching to a view does: new document title,
// scroll back to top, search box cleared, the listings that view shows.
func (s *ListingService) Navigate(view string) (domain.ViewPage, error) {
	name := strings.ToLower(strings.TrimSpace(view))
	def, ok := views[name]
	if !ok {
		return domain.ViewPage{}, fmt.Errorf("view %q: %w", view, domain.ErrNotFound)
	}
	page := domain.ViewPage{View: name, Title: title(def.label), ScrollTop: 0, Properties: []domain.Property{}}
	if def.listing {
		page.Properties = s.List(domain.ListingQuery{Category: def.category})
	}
	return page, nil
}

func title(label string) string {
	if label == "" {
		return siteName + " | Premium Real Estate in Nairobi"
	}
	return label + " | " + siteName
}
