package placeholder

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"mwalali_homes/internal/mailto"
)

const (
	Host   = "placehold.co"
	width  = 800
	height = 600
	maxLen = 20
)

// URL returns the generated stand-in image for an asset name.
func URL(name string) string {
	bg, fg := colors(name)
	return fmt.Sprintf("https://%s/%dx%d/%s/%s/png?text=%s", Host, width, height, bg, fg, mailto.Escape(label(name)))
}

// Fallback returns the placeholder to try after src failed to load. The second
// result is false when src already is a placeholder: the caller should show the
// "image unavailable" state instead of substituting again.
func Fallback(src string) (string, bool) {
	if IsPlaceholder(src) {
		return "", false
	}
	return URL(src), true
}

func IsPlaceholder(src string) bool {
	u, err := url.Parse(src)
	if err != nil {
		return strings.Contains(src, Host)
	}
	return u.Host == Host || strings.HasSuffix(u.Host, "."+Host)
}

// IsImage reports whether name is a raster image a placeholder can stand in for.
func IsImage(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
		return true
	}
	return false
}

func label(name string) string {
	base := path.Base(name)
	if u, err := url.Parse(name); err == nil && u.Host != "" {
		base = path.Base(u.Path)
	}
	base = strings.TrimSuffix(base, ".jpg")
	base = strings.TrimSuffix(base, ".png")
	if r := []rune(base); len(r) > maxLen {
		base = string(r[:maxLen])
	}
	return base
}

func colors(name string) (bg, fg string) {
	if strings.Contains(name, "logo") {
		if strings.Contains(name, "white") {
			return "333", "FFF"
		}
		return "FFF", "000"
	}
	return "EEE", "31343C"
}
