package httpserver

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/rs/zerolog/log"

	"mwalali_homes/internal/placeholder"
)

// serveAsset serves PUBLIC_DIR. A missing image is redirected to its
// placeholder once; the placeholder itself is never redirected again.
func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/assets/")
	clean := path.Clean("/" + name)
	if name == "" || clean == "/" {
		writeProblem(w, http.StatusNotFound, "Not Found", "asset not found")
		return
	}

	f, err := http.Dir(s.publicDir).Open(clean)
	if err == nil {
		defer f.Close()
		st, serr := f.Stat()
		if serr == nil && !st.IsDir() {
			http.ServeContent(w, r, st.Name(), st.ModTime(), f)
			return
		}
		err = fs.ErrNotExist
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log.Error().Err(err).Str("asset", clean).Msg("open asset failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "could not read asset")
		return
	}

	src := strings.TrimPrefix(clean, "/")
	target, ok := placeholder.Fallback(src)
	if !ok || strings.Contains(src, placeholder.Host) || !placeholder.IsImage(src) {
		writeProblem(w, http.StatusNotFound, "Not Found", "asset not found")
		return
	}
	log.Debug().Str("asset", src).Msg("asset missing, redirecting to placeholder")
	http.Redirect(w, r, target, http.StatusFound)
}
