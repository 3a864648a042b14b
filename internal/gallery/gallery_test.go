package gallery_test

import (
	"testing"

	"mwalali_homes/internal/domain"
	"mwalali_homes/internal/gallery"
)

func sample() domain.Property {
	return domain.Property{
		ID:       "p",
		Title:    "Oak",
		ImageURL: "hero.jpg",
		Units: []domain.UnitVariant{
			{Name: "Mini", Size: "45 sqm", Price: "KES 5.65M", Type: "1 Bedroom", Image: "hero.jpg"},
			{Name: "Classic", Size: "91 sqm", Price: "KES 11.4M", Type: "2 Bedroom", Image: "2br.jpg"},
		},
		InteriorGalleries: []domain.InteriorGallery{{Title: "Renders", Badge: "Interior Render", Images: []string{"r1.jpg", "r2.jpg"}}},
		AmenitiesGallery:  []string{"a1.jpg"},
	}
}

func TestSlides_OrderAndDedup(t *testing.T) {
	s := gallery.Slides(sample())
	want := []string{"hero.jpg", "2br.jpg", "r1.jpg", "r2.jpg", "a1.jpg"}
	if len(s) != len(want) {
		t.Fatalf("got %d slides, want %d: %+v", len(s), len(want), s)
	}
	for i, w := range want {
		if s[i].Image != w || s[i].Index != i {
			t.Fatalf("slide %d = %+v, want image %s", i, s[i], w)
		}
	}
	if s[1].Caption != "Classic · 91 sqm · KES 11.4M" || s[1].Badge != "2 Bedroom" {
		t.Fatalf("unit caption wrong: %+v", s[1])
	}
	if s[2].Badge != "Interior Render" {
		t.Fatalf("interior badge wrong: %+v", s[2])
	}
}

func TestLightbox_WrapsAround(t *testing.T) {
	lb := gallery.NewLightbox(gallery.Slides(sample()))
	lb.Open(0)
	lb.Prev()
	if lb.Index() != 4 {
		t.Fatalf("prev from first should wrap to last, got %d", lb.Index())
	}
	lb.Next()
	if lb.Index() != 0 {
		t.Fatalf("next from last should wrap to first, got %d", lb.Index())
	}
}

func TestLightbox_OpenClamps(t *testing.T) {
	lb := gallery.NewLightbox(gallery.Slides(sample()))
	lb.Open(99)
	if lb.Index() != 4 {
		t.Fatalf("got %d", lb.Index())
	}
	lb.Open(-3)
	if lb.Index() != 0 {
		t.Fatalf("got %d", lb.Index())
	}
}

func TestLightbox_Keyboard(t *testing.T) {
	lb := gallery.NewLightbox(gallery.Slides(sample()))
	if lb.Apply(gallery.KeyAction("ArrowRight")) {
		t.Fatalf("closed lightbox must ignore keys")
	}
	lb.Open(1)
	lb.Apply(gallery.KeyAction("ArrowRight"))
	if lb.Index() != 2 {
		t.Fatalf("ArrowRight: got %d", lb.Index())
	}
	lb.Apply(gallery.KeyAction("ArrowLeft"))
	if lb.Index() != 1 {
		t.Fatalf("ArrowLeft: got %d", lb.Index())
	}
	if lb.Apply(gallery.KeyAction("Enter")) {
		t.Fatalf("Enter should be ignored")
	}
	lb.Apply(gallery.KeyAction("Escape"))
	if lb.IsOpen() {
		t.Fatalf("Escape should close")
	}
	if _, ok := lb.Current(); ok {
		t.Fatalf("closed lightbox has no current slide")
	}
}

func TestSwipeAction(t *testing.T) {
	cases := []struct {
		name           string
		sx, sy, ex, ey float64
		want           gallery.Action
	}{
		{"left swipe", 300, 100, 200, 110, gallery.Next},
		{"right swipe", 100, 100, 220, 90, gallery.Prev},
		{"too short", 100, 100, 140, 100, gallery.None},
		{"vertical scroll", 100, 100, 160, 300, gallery.None},
	}
	for _, c := range cases {
		if got := gallery.SwipeAction(c.sx, c.sy, c.ex, c.ey); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestWrap(t *testing.T) {
	if gallery.Wrap(-1, 5) != 4 || gallery.Wrap(5, 5) != 0 || gallery.Wrap(7, 0) != 0 {
		t.Fatalf("wrap arithmetic wrong")
	}
}
