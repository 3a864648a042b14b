package domain

import (
	"errors"
	"strconv"
)

var ErrNotFound = errors.New("not found")

type Category string

const (
	CategorySale Category = "Sale"
	CategoryRent Category = "Rent"
)

func (c Category) Valid() bool { return c == CategorySale || c == CategoryRent }

type PropertyType string

const (
	TypeApartment PropertyType = "Apartment"
	TypeVilla     PropertyType = "Villa"
	TypePenthouse PropertyType = "Penthouse"
	TypeStudio    PropertyType = "Studio"
)

func (t PropertyType) Valid() bool {
	switch t {
	case TypeApartment, TypeVilla, TypePenthouse, TypeStudio:
		return true
	}
	return false
}

// UnitVariant is one floor-plan/size option inside a development.
type UnitVariant struct {
	Name  string `json:"name" yaml:"name"`
	Size  string `json:"size" yaml:"size"`
	Price string `json:"price" yaml:"price"`
	Image string `json:"image" yaml:"image"`
	Type  string `json:"type" yaml:"type"`
}

// InteriorGallery groups renders of one kind (floor plan, interiors, brochure pages).
type InteriorGallery struct {
	Title  string   `json:"title" yaml:"title"`
	Badge  string   `json:"badge,omitempty" yaml:"badge"`
	Images []string `json:"images" yaml:"images"`
}

type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

type Property struct {
	ID                string            `json:"id" yaml:"id"`
	Title             string            `json:"title" yaml:"title"`
	Price             int64             `json:"price" yaml:"price"`
	PriceLabel        string            `json:"priceLabel,omitempty" yaml:"priceLabel"`
	Address           string            `json:"address" yaml:"address"`
	City              string            `json:"city" yaml:"city"`
	State             string            `json:"state" yaml:"state"`
	Beds              int               `json:"beds" yaml:"beds"`
	Baths             int               `json:"baths" yaml:"baths"`
	Sqft              int               `json:"sqft" yaml:"sqft"`
	Type              PropertyType      `json:"type" yaml:"type"`
	Category          Category          `json:"category" yaml:"category"`
	ImageURL          string            `json:"imageUrl" yaml:"imageUrl"`
	Gallery           []string          `json:"gallery,omitempty" yaml:"gallery"`
	InteriorGalleries []InteriorGallery `json:"interiorGalleries,omitempty" yaml:"interiorGalleries"`
	AmenitiesGallery  []string          `json:"amenitiesGallery,omitempty" yaml:"amenitiesGallery"`
	Units             []UnitVariant     `json:"units,omitempty" yaml:"units"`
	Brochure          string            `json:"brochure,omitempty" yaml:"brochure"`
	Description       string            `json:"description" yaml:"description"`
	Features          []string          `json:"features" yaml:"features"`
	Coordinates       Coordinates       `json:"coordinates" yaml:"coordinates"`
}

// DisplayPrice is the label shown on cards: the explicit label, else "KES 85,000".
func (p Property) DisplayPrice() string {
	if p.PriceLabel != "" {
		return p.PriceLabel
	}
	return "KES " + groupThousands(p.Price)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
