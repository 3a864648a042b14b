package placeholder_test

import (
	"strings"
	"testing"

	"mwalali_homes/internal/placeholder"
)

func TestURL(t *testing.T) {
	got := placeholder.URL("1BR 65SQM.jpg")
	want := "https://placehold.co/800x600/EEE/31343C/png?text=1BR%2065SQM"
	if got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
	if !strings.Contains(placeholder.URL("logo-white.png"), "/333/FFF/") {
		t.Fatalf("white logo colours wrong")
	}
	if !strings.Contains(placeholder.URL("logo.png"), "/FFF/000/") {
		t.Fatalf("logo colours wrong")
	}
}

func TestURL_TruncatesLabel(t *testing.T) {
	got := placeholder.URL("Oak_Breeze_Residency_Brochure-01.jpg")
	if !strings.HasSuffix(got, "text=Oak_Breeze_Residency") {
		t.Fatalf("label not truncated to 20 chars: %q", got)
	}
}

func TestFallback_OnlyOnce(t *testing.T) {
	first, ok := placeholder.Fallback("/assets/1BR 45SQM-1.jpg")
	if !ok || !placeholder.IsPlaceholder(first) {
		t.Fatalf("expected placeholder substitution, got %q ok=%v", first, ok)
	}
	second, ok := placeholder.Fallback(first)
	if ok || second != "" {
		t.Fatalf("placeholder must not be substituted again, got %q ok=%v", second, ok)
	}
}

func TestIsPlaceholder(t *testing.T) {
	if placeholder.IsPlaceholder("https://images.unsplash.com/photo-1502672260266") {
		t.Fatalf("unsplash is not a placeholder")
	}
	if !placeholder.IsPlaceholder("https://placehold.co/800x600/EEE/31343C/png?text=x") {
		t.Fatalf("expected placeholder")
	}
}

func TestIsImage(t *testing.T) {
	for name, want := range map[string]bool{
		"1BR 65SQM.jpg":              true,
		"logo-white.PNG":             true,
		"brookside-oak-brochure.pdf": false,
		"README":                     false,
	} {
		if got := placeholder.IsImage(name); got != want {
			t.Errorf("IsImage(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestURL_SpacesEncodedAsPercent20(t *testing.T) {
	got := placeholder.URL("Master Bedroom 2.jpg")
	if !strings.HasSuffix(got, "text=Master%20Bedroom%202") || strings.Contains(got, "+") {
		t.Fatalf("label encoding = %q", got)
	}
}
