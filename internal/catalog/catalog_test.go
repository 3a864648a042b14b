package catalog_test

import (
	"errors"
	"strings"
	"testing"

	"mwalali_homes/internal/catalog"
	"mwalali_homes/internal/domain"
)

func TestLoad_Bundled(t *testing.T) {
	c, err := catalog.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ids := c.IDs()
	want := []string{"brookside-oak", "oak-breeze", "rental-1"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Fatalf("ids = %v, want %v", ids, want)
	}

	bo, err := c.Get("brookside-oak")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if bo.Category != domain.CategorySale || len(bo.Units) != 11 || len(bo.AmenitiesGallery) != 18 {
		t.Fatalf("unexpected brookside-oak: cat=%s units=%d amenities=%d", bo.Category, len(bo.Units), len(bo.AmenitiesGallery))
	}
	if strings.HasSuffix(bo.Description, "\n") {
		t.Fatalf("description should be trimmed")
	}

	r, _ := c.Get("rental-1")
	if r.Category != domain.CategoryRent || r.DisplayPrice() != "KES 85,000/mo" {
		t.Fatalf("unexpected rental: %+v", r)
	}
}

func TestGet_Unknown(t *testing.T) {
	c, _ := catalog.Load("")
	if _, err := c.Get("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad category": "- {id: a, title: A, category: Lease, type: Apartment, imageUrl: a.jpg}",
		"bad type":     "- {id: a, title: A, category: Sale, type: Castle, imageUrl: a.jpg}",
		"no id":        "- {title: A, category: Sale, type: Apartment, imageUrl: a.jpg}",
		"no image":     "- {id: a, title: A, category: Sale, type: Apartment}",
		"duplicate": "- {id: a, title: A, category: Sale, type: Apartment, imageUrl: a.jpg}\n" +
			"- {id: a, title: B, category: Rent, type: Studio, imageUrl: b.jpg}",
	}
	for name, doc := range cases {
		if _, err := catalog.Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	c, _ := catalog.Load("")
	all := c.All()
	all[0].Title = "mutated"
	if p, _ := c.Get(all[0].ID); p.Title == "mutated" {
		t.Fatalf("All must not alias catalog storage")
	}
}

func TestAssets_Deduplicated(t *testing.T) {
	c, _ := catalog.Load("")
	assets := c.Assets()
	seen := map[string]bool{}
	for _, a := range assets {
		if seen[a] {
			t.Fatalf("duplicate asset %q", a)
		}
		seen[a] = true
	}
	// hero image of brookside-oak doubles as its first unit image
	if assets[0] != "1BR 65SQM.jpg" {
		t.Fatalf("first asset = %q", assets[0])
	}
	if !seen["Oak_Breeze_Residency_Brochure.pdf"] {
		t.Fatalf("brochure missing from assets")
	}
}
